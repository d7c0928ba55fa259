package cpu

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// newTestCPU returns a CPU with program bootstrapped at address 0
// and the stack pointer at the top of memory.
func newTestCPU(program ...byte) *CPU {
	m := mmu.NewMMU()
	m.Bootstrap(program)
	c := NewCPU(m, nil)
	c.Stack.SetPointer(types.StackTop)
	return c
}

// place writes data to memory starting at address.
func place(c *CPU, address uint16, data ...byte) {
	for i, b := range data {
		c.MMU.Write(address+uint16(i), b)
	}
}

// step executes one instruction, failing the test on a decode error.
func step(t *testing.T, c *CPU) uint8 {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cycles
}

// expectFlags fails the test if the flags do not match "ZNHC" with
// dashes for each clear flag.
func expectFlags(t *testing.T, c *CPU, want string) {
	t.Helper()
	if got := c.Registers.flagString(); got != want {
		t.Errorf("expected flags %s, got %s", want, got)
	}
}
