package cpu

import "fmt"

// decodeBit decodes BIT b, n.
//
//	Opcode: 0xCB 0x40 - 0xCB 0x7F
func decodeBit(opcode uint8) (Instruction, bool) {
	if opcode < 0x40 || opcode >= 0x80 {
		return Instruction{}, false
	}
	b := (opcode >> 3) & 7
	operand := operandIndex(opcode)
	return Instruction{
		name:   fmt.Sprintf("BIT %d, %s", b, operand),
		kind:   kindBitTest,
		src:    operand,
		bit:    b,
		cycles: accessCycles(8, operand, 1),
	}, true
}
