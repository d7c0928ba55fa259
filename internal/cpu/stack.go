package cpu

import "github.com/thelolagemann/dmgcore/internal/mmu"

// Stack is a full-descending stack of 16-bit values in memory. The
// pointer must be set by the surrounding system before use; there is
// no overflow or underflow checking and the pointer wraps silently,
// as it does on hardware.
type Stack struct {
	pointer uint16
	mmu     *mmu.MMU
}

// Push decrements the pointer by 2 and writes value at the new pointer.
func (s *Stack) Push(value uint16) {
	s.pointer -= 2
	s.mmu.WriteShort(s.pointer, value)
}

// Pop reads the value at the pointer and increments the pointer by 2.
func (s *Stack) Pop() uint16 {
	value := s.mmu.ReadShort(s.pointer)
	s.pointer += 2
	return value
}

// Pointer returns the current stack pointer.
func (s *Stack) Pointer() uint16 {
	return s.pointer
}

// SetPointer sets the stack pointer.
func (s *Stack) SetPointer(pointer uint16) {
	s.pointer = pointer
}

// stackPairs in the order they are encoded by bits 4-5 of PUSH and
// POP, where AF takes the place of SP.
var stackPairs = [4]RegisterPair{BC, DE, HL, AF}

// decodeStack decodes PUSH, POP, CALL and RET.
//
//	Opcode: 0xC5, 0xD5, 0xE5, 0xF5 (PUSH)
//	Opcode: 0xC1, 0xD1, 0xE1, 0xF1 (POP)
//	Opcode: 0xCD, 0xC4, 0xCC, 0xD4, 0xDC (CALL)
//	Opcode: 0xC9, 0xC0, 0xC8, 0xD0, 0xD8 (RET)
func decodeStack(opcode uint8) (Instruction, bool) {
	switch opcode {
	case 0xC5, 0xD5, 0xE5, 0xF5:
		pair := Pair(stackPairs[(opcode>>4)&3])
		return Instruction{name: mnemonic("PUSH", pair), kind: kindPush, src16: pair, cycles: 16}, true
	case 0xC1, 0xD1, 0xE1, 0xF1:
		pair := Pair(stackPairs[(opcode>>4)&3])
		return Instruction{name: mnemonic("POP", pair), kind: kindPop, dst16: pair, cycles: 12}, true
	case 0xCD:
		return Instruction{name: "CALL a16", kind: kindCall, src16: Imm16(), cond: Always, cycles: 24}, true
	case 0xC4, 0xCC, 0xD4, 0xDC:
		cond := conditionIndex(opcode)
		return Instruction{
			name:   "CALL " + cond.String() + ", a16",
			kind:   kindCall,
			src16:  Imm16(),
			cond:   cond,
			cycles: 12,
			taken:  24,
		}, true
	case 0xC9:
		return Instruction{name: "RET", kind: kindReturn, cond: Always, cycles: 16}, true
	case 0xC0, 0xC8, 0xD0, 0xD8:
		cond := conditionIndex(opcode)
		return Instruction{name: "RET " + cond.String(), kind: kindReturn, cond: cond, cycles: 8, taken: 20}, true
	}
	return Instruction{}, false
}
