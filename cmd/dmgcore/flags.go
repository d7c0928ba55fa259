package main

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
)

// applyFlags overrides the fields of cfg named by set, a map of flag
// name to the value given on the command line. Every malformed value
// is reported, not just the first.
func applyFlags(cfg gameboy.Config, set map[string]string) (gameboy.Config, error) {
	var result *multierror.Error
	for name, value := range set {
		var err error
		switch name {
		case "program":
			cfg.Program = value
		case "steps":
			cfg.Steps, err = strconv.Atoi(value)
		case "sp":
			cfg.StackPointer, err = parseAddress(value)
		case "pc":
			cfg.ProgramCounter, err = parseAddress(value)
		case "byte-order":
			cfg.ByteOrder = value
		case "trace":
			cfg.Trace, err = strconv.ParseBool(value)
		}
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("-%s: %w", name, err))
		}
	}
	return cfg, result.ErrorOrNil()
}

// parseAddress parses a 16-bit address in any base strconv accepts,
// such as 0x0100.
func parseAddress(s string) (int, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return int(v), nil
}
