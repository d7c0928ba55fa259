package gameboy

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config is a machine profile. It holds the same settings as the
// options, in a form that can be read from a YAML file:
//
//	program: hello.gb.zst
//	stack_pointer: 0xFFFE
//	program_counter: 0x0100
//	byte_order: big
//	steps: 1000
//	trace: true
type Config struct {
	Program        string `yaml:"program"`
	StackPointer   int    `yaml:"stack_pointer"`
	ProgramCounter int    `yaml:"program_counter"`
	ByteOrder      string `yaml:"byte_order"`
	Steps          int    `yaml:"steps"`
	Trace          bool   `yaml:"trace"`
}

// DefaultConfig returns the profile used when no file is given.
func DefaultConfig() Config {
	return Config{
		StackPointer: 0xFFFE,
		ByteOrder:    "big",
		Steps:        1000,
	}
}

// LoadConfig reads a profile from path. Fields missing from the file
// keep their default values; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid field of the profile.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.StackPointer < 0 || c.StackPointer > 0xFFFF {
		result = multierror.Append(result, fmt.Errorf("stack_pointer: %#x is not a 16-bit address", c.StackPointer))
	}
	if c.ProgramCounter < 0 || c.ProgramCounter > 0xFFFF {
		result = multierror.Append(result, fmt.Errorf("program_counter: %#x is not a 16-bit address", c.ProgramCounter))
	}
	if _, err := c.byteOrder(); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Steps < 0 {
		result = multierror.Append(result, fmt.Errorf("steps: %d is negative", c.Steps))
	}
	return result.ErrorOrNil()
}

func (c Config) byteOrder() (binary.ByteOrder, error) {
	switch c.ByteOrder {
	case "", "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	}
	return nil, fmt.Errorf("byte_order: %q is not big or little", c.ByteOrder)
}

// Options returns the options that apply the profile. The program is
// not loaded here; callers pass it with WithBootstrap.
func (c Config) Options() ([]Opt, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	order, _ := c.byteOrder()
	opts := []Opt{
		WithStackPointer(uint16(c.StackPointer)),
		WithProgramCounter(uint16(c.ProgramCounter)),
		WithByteOrder(order),
	}
	if c.Trace {
		opts = append(opts, Trace())
	}
	return opts, nil
}
