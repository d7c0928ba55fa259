package cpu

// decodeControl decodes the CPU control instructions.
func decodeControl(opcode uint8) (Instruction, bool) {
	switch opcode {
	case 0x00:
		return Instruction{name: "NOP", kind: kindNop, cycles: 4}, true
	}
	return Instruction{}, false
}
