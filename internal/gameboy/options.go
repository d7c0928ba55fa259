package gameboy

import (
	"encoding/binary"

	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Trace logs every executed instruction at debug level.
func Trace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		if log != nil {
			gb.Logger = log
		}
	}
}

// WithBootstrap copies program into memory starting at address 0.
func WithBootstrap(program []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootstrap = program
	}
}

// WithStackPointer sets the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return func(gb *GameBoy) {
		gb.stackPointer = sp
	}
}

// WithProgramCounter sets the address of the first instruction.
func WithProgramCounter(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.counter = pc
	}
}

// WithRenderer attaches a renderer to the PPU.
func WithRenderer(r ppu.Renderer) Opt {
	return func(gb *GameBoy) {
		gb.renderer = r
	}
}

// WithByteOrder sets the order of the two bytes of 16-bit values in
// memory, on the stack and in immediate operands.
func WithByteOrder(order binary.ByteOrder) Opt {
	return func(gb *GameBoy) {
		gb.order = order
	}
}

// WithState restores a snapshot previously returned by Save. It
// takes precedence over WithBootstrap, WithStackPointer and
// WithProgramCounter.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}
