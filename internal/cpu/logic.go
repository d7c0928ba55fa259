package cpu

// decodeXor decodes XOR n.
//
//	Opcode: 0xA8 - 0xAF, 0xEE
func decodeXor(opcode uint8) (Instruction, bool) {
	return decodeALU(opcode, 0xA8, 0xEE, OpXor, true)
}

// decodeCompare decodes CP n. The result is discarded and only the
// flags are kept.
//
//	Opcode: 0xB8 - 0xBF, 0xFE
func decodeCompare(opcode uint8) (Instruction, bool) {
	return decodeALU(opcode, 0xB8, 0xFE, OpCompare, false)
}
