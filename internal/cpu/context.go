package cpu

import "github.com/thelolagemann/dmgcore/internal/mmu"

// Context is the state every instruction executes against. It owns
// the registers, the stack pointer and the program counter, and
// shares its MMU with the stack and program counter.
type Context struct {
	MMU       *mmu.MMU
	Registers Registers
	Stack     Stack
	PC        ProgramCounter
}

// NewContext returns a Context over m with zeroed registers, stack
// pointer and program counter.
func NewContext(m *mmu.MMU) *Context {
	return &Context{
		MMU:   m,
		Stack: Stack{mmu: m},
		PC:    ProgramCounter{mmu: m},
	}
}
