package cpu

// accessCycles returns base plus 4 cycles for every memory access
// the operand makes.
func accessCycles(base uint8, o ByteOperand, accesses uint8) uint8 {
	if o.memory() {
		return base + 4*accesses
	}
	return base
}

// decodeALU decodes an 8-bit ALU family whose register forms occupy
// the 8 opcodes starting at base, and whose immediate form is
// immediate. The left operand and destination are always A.
func decodeALU(opcode, base, immediate uint8, op Operation, writeBack bool) (Instruction, bool) {
	var arg ByteOperand
	switch {
	case opcode >= base && opcode < base+8:
		arg = operandIndex(opcode - base)
	case opcode == immediate:
		arg = Imm8()
	default:
		return Instruction{}, false
	}

	instruction := Instruction{
		kind:   kindByteOp,
		op:     op,
		src:    Reg(A),
		arg:    arg,
		cycles: 4,
	}
	if arg.memory() || arg.length() > 0 {
		instruction.cycles = 8
	}
	if writeBack {
		instruction.dst = Reg(A)
	}
	if op == OpAdd {
		instruction.name = mnemonic(op.String(), Reg(A), arg)
	} else {
		instruction.name = mnemonic(op.String(), arg)
	}
	return instruction, true
}

// decodeAdd decodes ADD A, n.
//
//	Opcode: 0x80 - 0x87, 0xC6
func decodeAdd(opcode uint8) (Instruction, bool) {
	return decodeALU(opcode, 0x80, 0xC6, OpAdd, true)
}

// decodeSubtract decodes SUB n.
//
//	Opcode: 0x90 - 0x97, 0xD6
func decodeSubtract(opcode uint8) (Instruction, bool) {
	return decodeALU(opcode, 0x90, 0xD6, OpSubtract, true)
}

// decodeIncrement decodes INC n and INC nn. The 16-bit forms leave
// the flags untouched.
//
//	Opcode: 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C
//	Opcode: 0x03, 0x13, 0x23, 0x33
func decodeIncrement(opcode uint8) (Instruction, bool) {
	return decodeStep(opcode, 0x04, 0x03, OpIncrement)
}

// decodeDecrement decodes DEC n and DEC nn.
//
//	Opcode: 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D
//	Opcode: 0x0B, 0x1B, 0x2B, 0x3B
func decodeDecrement(opcode uint8) (Instruction, bool) {
	return decodeStep(opcode, 0x05, 0x0B, OpDecrement)
}

func decodeStep(opcode, byteForm, shortForm uint8, op Operation) (Instruction, bool) {
	switch {
	case opcode < 0x40 && opcode&0xC7 == byteForm:
		operand := operandIndex(opcode >> 3)
		return Instruction{
			name:   mnemonic(op.String(), operand),
			kind:   kindByteOp,
			op:     op,
			src:    operand,
			dst:    operand,
			cycles: accessCycles(4, operand, 2),
		}, true
	case opcode < 0x40 && opcode&0xCF == shortForm:
		operand := pairIndex(opcode)
		return Instruction{
			name:   mnemonic(op.String(), operand),
			kind:   kindShortOp,
			op:     op,
			src16:  operand,
			dst16:  operand,
			cycles: 8,
		}, true
	}
	return Instruction{}, false
}
