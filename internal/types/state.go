package types

import (
	"errors"
	"fmt"
)

// ErrShortState is returned when a State does not hold enough bytes
// for the object being loaded from it.
var ErrShortState = errors.New("state too short")

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// State is an in-memory snapshot of machine state. Values are
// appended in the order they are saved and must be read back in
// the same order. The layout is private to this process; callers
// that persist the bytes own the format.
type State struct {
	raw          []byte // raw state data
	readPosition int    // current read position
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, MemorySize+32),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// Len returns the total number of bytes held.
func (s *State) Len() int {
	return len(s.raw)
}

// Remaining returns the number of bytes that have not been read yet.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

// Require returns an error wrapping ErrShortState if fewer than n
// bytes remain to be read.
func (s *State) Require(n int) error {
	if s.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortState, n, s.Remaining())
	}
	return nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) Write64(value uint64) {
	s.Write16(uint16(value))
	s.Write16(uint16(value >> 16))
	s.Write16(uint16(value >> 32))
	s.Write16(uint16(value >> 48))
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() uint8 {
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

func (s *State) Read16() uint16 {
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value
}

func (s *State) Read64() uint64 {
	var value uint64
	for shift := 0; shift < 64; shift += 16 {
		value |= uint64(s.Read16()) << shift
	}
	return value
}

func (s *State) ReadData(p []byte) {
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
}

// Bytes returns the raw state. The slice is shared, not copied.
func (s *State) Bytes() []byte {
	return s.raw
}
