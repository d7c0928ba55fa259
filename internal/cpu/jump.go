package cpu

// decodeJump decodes the relative and absolute jumps.
//
//	Opcode: 0x18, 0x20, 0x28, 0x30, 0x38
//	Opcode: 0xC3, 0xC2, 0xCA, 0xD2, 0xDA, 0xE9
func decodeJump(opcode uint8) (Instruction, bool) {
	switch opcode {
	case 0x18:
		return Instruction{name: "JR r8", kind: kindJumpRelative, arg: Imm8(), cond: Always, cycles: 12}, true
	case 0x20, 0x28, 0x30, 0x38:
		cond := conditionIndex(opcode)
		return Instruction{
			name:   "JR " + cond.String() + ", r8",
			kind:   kindJumpRelative,
			arg:    Imm8(),
			cond:   cond,
			cycles: 8,
			taken:  12,
		}, true
	case 0xC3:
		return Instruction{name: "JP a16", kind: kindJumpAbsolute, src16: Imm16(), cond: Always, cycles: 16}, true
	case 0xC2, 0xCA, 0xD2, 0xDA:
		cond := conditionIndex(opcode)
		return Instruction{
			name:   "JP " + cond.String() + ", a16",
			kind:   kindJumpAbsolute,
			src16:  Imm16(),
			cond:   cond,
			cycles: 12,
			taken:  16,
		}, true
	case 0xE9:
		return Instruction{name: "JP HL", kind: kindJumpAbsolute, src16: Pair(HL), cond: Always, cycles: 4}, true
	}
	return Instruction{}, false
}
