package cpu

// decodeRotateAccumulator decodes the unprefixed rotations of A.
// Unlike their CB-prefixed forms they always reset the zero flag.
//
//	Opcode: 0x07, 0x0F, 0x17, 0x1F
func decodeRotateAccumulator(opcode uint8) (Instruction, bool) {
	var op Operation
	switch opcode {
	case 0x07:
		op = OpRotateLeftCarryAccumulator
	case 0x17:
		op = OpRotateLeftAccumulatorThroughCarry
	case 0x0F:
		op = OpRotateRightCarryAccumulator
	case 0x1F:
		op = OpRotateRightAccumulatorThroughCarry
	default:
		return Instruction{}, false
	}
	return Instruction{
		name:   op.String(),
		kind:   kindByteOp,
		op:     op,
		src:    Reg(A),
		dst:    Reg(A),
		cycles: 4,
	}, true
}

// rotations in the order they are encoded by bits 3-4 of a
// CB-prefixed opcode.
var rotations = [4]Operation{
	OpRotateLeftCarry,
	OpRotateRightCarry,
	OpRotateLeftThroughCarry,
	OpRotateRightThroughCarry,
}

// decodeRotate decodes RLC n, RRC n, RL n and RR n.
//
//	Opcode: 0xCB 0x00 - 0xCB 0x1F
func decodeRotate(opcode uint8) (Instruction, bool) {
	if opcode >= 0x20 {
		return Instruction{}, false
	}
	op := rotations[opcode>>3]
	operand := operandIndex(opcode)
	return Instruction{
		name:   mnemonic(op.String(), operand),
		kind:   kindByteOp,
		op:     op,
		src:    operand,
		dst:    operand,
		cycles: accessCycles(8, operand, 2),
	}, true
}
