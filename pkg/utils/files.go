package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive is empty")

// LoadFile loads the given file and performs decompression if
// necessary. The compression is chosen by the file extension; files
// with any other extension are returned as is. Archives (.zip, .7z)
// yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decompresses data according to the file extension ext.
func Decompress(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)
	r := bytes.NewReader(data)

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".zst":
		var d *zstd.Decoder
		if d, err = zstd.NewReader(r); err == nil {
			defer d.Close()
			decoder = d
		}
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".zip":
		var zr *zip.Reader
		if zr, err = zip.NewReader(r, int64(len(data))); err != nil {
			return nil, err
		}
		if len(zr.File) == 0 {
			return nil, ErrEmptyArchive
		}
		decoder, err = openFirst(zr.File[0].Open)
	case ".7z":
		var sr *sevenzip.Reader
		if sr, err = sevenzip.NewReader(r, int64(len(data))); err != nil {
			return nil, err
		}
		if len(sr.File) == 0 {
			return nil, ErrEmptyArchive
		}
		decoder, err = openFirst(sr.File[0].Open)
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}

// openFirst opens an archive member and reads it fully, so that the
// member can be closed before returning.
func openFirst(open func() (io.ReadCloser, error)) (io.Reader, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
