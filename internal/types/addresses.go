package types

const (
	// MemorySize is the size of the flat address space.
	MemorySize = 0x10000

	// IOPage is the base address of the fast I/O page addressed by
	// LDH (a8) and LD (C). The operand is added to it.
	IOPage uint16 = 0xFF00

	// StackTop is the stack pointer value left behind by the boot
	// sequence on real hardware. The core never assumes it, but the
	// machine uses it when no stack pointer is configured.
	StackTop uint16 = 0xFFFE
)
