// Package gameboy wires the CPU, memory and video timing of a single
// machine together and steps them in lockstep.
package gameboy

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// CyclesPerFrame is the number of clock cycles per frame.
const CyclesPerFrame = 70224

// ErrInvalidState is returned when a snapshot cannot be restored.
var ErrInvalidState = errors.New("invalid state")

// stateSize is the number of bytes in a snapshot: the CPU, PPU and
// memory followed by the 64-bit cycle count.
var stateSize = cpu.StateSize() + ppu.StateSize() + types.MemorySize + 8

// GameBoy is a single machine. It is not safe for concurrent use.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	log.Logger

	// set by options, applied by NewGameBoy
	order        binary.ByteOrder
	renderer     ppu.Renderer
	bootstrap    []byte
	state        []byte
	stackPointer uint16
	counter      uint16
	trace        bool

	cycles uint64
}

// NewGameBoy returns a new GameBoy. Memory is zeroed and bootstrapped
// if WithBootstrap is given, the stack pointer starts at the top of
// memory and the PPU starts at the beginning of a frame, unless a
// snapshot is restored with WithState.
func NewGameBoy(opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:       log.NewNullLogger(),
		order:        binary.BigEndian,
		stackPointer: types.StackTop,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.MMU = mmu.NewMMU(mmu.WithByteOrder(g.order))
	g.CPU = cpu.NewCPU(g.MMU, g.Logger)
	g.CPU.Debug = g.trace
	g.PPU = ppu.New(g.renderer)

	if g.bootstrap != nil {
		n := g.MMU.Bootstrap(g.bootstrap)
		g.Infof("bootstrapped %d bytes", n)
		if n < len(g.bootstrap) {
			g.Errorf("program truncated: %d bytes did not fit", len(g.bootstrap)-n)
		}
	}
	g.CPU.Stack.SetPointer(g.stackPointer)
	g.CPU.PC.SetCounter(g.counter)

	if g.state != nil {
		if err := g.Load(types.StateFromBytes(g.state)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Step executes the next instruction and advances the PPU by the
// cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		g.Errorf("%v", err)
		return 0, err
	}
	g.PPU.Tick(uint16(cycles))
	g.cycles += uint64(cycles)
	return cycles, nil
}

// Run steps the machine n times, stopping at the first error. It
// returns the number of instructions executed.
func (g *GameBoy) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := g.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Frame steps the machine until at least one frame's worth of cycles
// has passed.
func (g *GameBoy) Frame() error {
	target := g.cycles + CyclesPerFrame
	for g.cycles < target {
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Cycles returns the number of clock cycles executed so far.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Save returns a snapshot of the CPU, PPU, memory and cycle count.
func (g *GameBoy) Save() *types.State {
	s := types.NewState()
	g.CPU.Save(s)
	g.PPU.Save(s)
	g.MMU.Save(s)
	s.Write64(g.cycles)
	return s
}

// Load restores a snapshot created by Save, reading from the
// current position of s. The snapshot is decoded in full before any
// of it is applied, so a failed Load leaves the machine untouched.
func (g *GameBoy) Load(s *types.State) error {
	if err := s.Require(stateSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	m := mmu.NewMMU(mmu.WithByteOrder(g.MMU.ByteOrder()))
	c := cpu.NewCPU(m, g.Logger)
	p := ppu.New(g.renderer)
	c.Load(s)
	p.Load(s)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	m.Load(s)
	cycles := s.Read64()

	// the CPU's stack and counter keep pointing at g.MMU
	*g.MMU = *m
	g.CPU.Registers = c.Registers
	g.CPU.Stack.SetPointer(c.Stack.Pointer())
	g.CPU.PC.SetCounter(c.PC.Counter())
	*g.PPU = *p
	g.cycles = cycles

	g.Infof("restored state at %04X after %d cycles", g.CPU.PC.Counter(), g.cycles)
	return nil
}

// Digest returns a hash of the machine state. Two machines that have
// executed the same program from the same state have the same digest.
func (g *GameBoy) Digest() uint64 {
	return xxhash.Sum64(g.Save().Bytes())
}
