package cpu

// load returns a byte load of src into dst.
func load(dst, src ByteOperand, cycles uint8) Instruction {
	return Instruction{
		name:   mnemonic("LD", dst, src),
		kind:   kindByteOp,
		op:     OpNone,
		src:    src,
		dst:    dst,
		cycles: cycles,
	}
}

// loadShort returns a 16-bit load of src into dst.
func loadShort(dst, src ShortOperand, cycles uint8) Instruction {
	return Instruction{
		name:   mnemonic("LD", dst, src),
		kind:   kindShortOp,
		op:     OpNone,
		src16:  src,
		dst16:  dst,
		cycles: cycles,
	}
}

// decodeLoad decodes the 8-bit and 16-bit loads.
func decodeLoad(opcode uint8) (Instruction, bool) {
	switch {
	case opcode >= 0x40 && opcode < 0x80 && opcode != 0x76: // LD r, r'
		dst, src := operandIndex(opcode>>3), operandIndex(opcode)
		cycles := uint8(4)
		if dst.memory() || src.memory() {
			cycles = 8
		}
		return load(dst, src, cycles), true
	case opcode < 0x40 && opcode&0xC7 == 0x06: // LD r, d8
		dst := operandIndex(opcode >> 3)
		return load(dst, Imm8(), accessCycles(8, dst, 1)), true
	case opcode < 0x40 && opcode&0xCF == 0x01: // LD rr, d16
		return loadShort(pairIndex(opcode), Imm16(), 12), true
	}

	switch opcode {
	case 0x02:
		return load(At(BC), Reg(A), 8), true
	case 0x12:
		return load(At(DE), Reg(A), 8), true
	case 0x22:
		return load(AtThen(HL, PostIncrement), Reg(A), 8), true
	case 0x32:
		return load(AtThen(HL, PostDecrement), Reg(A), 8), true
	case 0x0A:
		return load(Reg(A), At(BC), 8), true
	case 0x1A:
		return load(Reg(A), At(DE), 8), true
	case 0x2A:
		return load(Reg(A), AtThen(HL, PostIncrement), 8), true
	case 0x3A:
		return load(Reg(A), AtThen(HL, PostDecrement), 8), true
	case 0xE0:
		instruction := load(HighImm8(), Reg(A), 12)
		instruction.name = mnemonic("LDH", HighImm8(), Reg(A))
		return instruction, true
	case 0xF0:
		instruction := load(Reg(A), HighImm8(), 12)
		instruction.name = mnemonic("LDH", Reg(A), HighImm8())
		return instruction, true
	case 0xE2:
		return load(High(C), Reg(A), 8), true
	case 0xF2:
		return load(Reg(A), High(C), 8), true
	case 0xEA:
		return load(AtImm16(), Reg(A), 16), true
	case 0xFA:
		return load(Reg(A), AtImm16(), 16), true
	case 0xF9:
		return loadShort(SP(), Pair(HL), 8), true
	}
	return Instruction{}, false
}
