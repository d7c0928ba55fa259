package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// stateSize is the number of bytes Save appends to a State.
const stateSize = 8 + 2 + 2

// CPU fetches, decodes and executes instructions against a single
// execution context.
type CPU struct {
	*Context

	// Debug logs the address and mnemonic of every executed
	// instruction.
	Debug bool

	log log.Logger
}

// NewCPU creates a new CPU executing against m. The stack pointer and
// program counter start at 0 and are expected to be set by the caller.
func NewCPU(m *mmu.MMU, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &CPU{
		Context: NewContext(m),
		log:     logger,
	}
}

// Step fetches, decodes and executes the next instruction, returning
// the number of clock cycles it took. An opcode that matches no
// instruction is reported as an error wrapping *UnknownInstructionError,
// with the program counter left after the offending byte.
func (c *CPU) Step() (uint8, error) {
	address := c.PC.Counter()
	instruction, err := Decode(&c.PC)
	if err != nil {
		return 0, fmt.Errorf("cpu: decoding at %04X: %w", address, err)
	}
	if c.Debug {
		c.log.Debugf("%04X\t%s", address, instruction.Name())
	}
	return instruction.Execute(c.Context), nil
}

// ExecuteNextInstruction executes the next instruction. Its effects
// are only observable through memory, the registers and the stack. An
// unknown opcode cannot be recovered from and panics.
func (c *CPU) ExecuteNextInstruction() {
	if _, err := c.Step(); err != nil {
		panic(err)
	}
}

var _ types.Stater = (*CPU)(nil)

// Load restores the registers, stack pointer and program counter.
func (c *CPU) Load(s *types.State) {
	for r := A; r <= L; r++ {
		c.Registers.Set(r, s.Read8())
	}
	c.Stack.SetPointer(s.Read16())
	c.PC.SetCounter(s.Read16())
}

// Save stores the registers, stack pointer and program counter.
func (c *CPU) Save(s *types.State) {
	for r := A; r <= L; r++ {
		s.Write8(c.Registers.Get(r))
	}
	s.Write16(c.Stack.Pointer())
	s.Write16(c.PC.Counter())
}

// StateSize returns the number of bytes the CPU occupies in a State.
func StateSize() int {
	return stateSize
}
