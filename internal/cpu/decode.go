package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/mmu"
)

// PrefixCB selects the extended instruction table for the byte that
// follows it.
const PrefixCB = 0xCB

// ErrUnknownInstruction is matched by every *UnknownInstructionError.
var ErrUnknownInstruction = errors.New("unknown instruction")

// UnknownInstructionError is returned when an opcode matches no
// instruction family.
type UnknownInstructionError struct {
	Opcode   uint8
	Prefixed bool
}

func (e *UnknownInstructionError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unknown instruction: CB %02X", e.Opcode)
	}
	return fmt.Sprintf("unknown instruction: %02X", e.Opcode)
}

func (e *UnknownInstructionError) Is(target error) bool {
	return target == ErrUnknownInstruction
}

// family decodes the opcodes of one instruction family, reporting
// false for any opcode outside of it.
type family func(opcode uint8) (Instruction, bool)

var (
	// standardFamilies are tried in order for unprefixed opcodes.
	standardFamilies = []family{
		decodeControl,
		decodeAdd,
		decodeSubtract,
		decodeXor,
		decodeCompare,
		decodeIncrement,
		decodeDecrement,
		decodeRotateAccumulator,
		decodeJump,
		decodeLoad,
		decodeStack,
	}
	// extendedFamilies are tried in order for opcodes following PrefixCB.
	extendedFamilies = []family{
		decodeRotate,
		decodeBit,
	}
)

// Decode fetches an opcode through pc and returns the instruction it
// encodes. Immediate operands are not fetched; that happens when the
// instruction is executed.
func Decode(pc *ProgramCounter) (Instruction, error) {
	opcode := pc.ReadNextByte()
	table, prefixed := standardFamilies, false
	if opcode == PrefixCB {
		opcode = pc.ReadNextByte()
		table, prefixed = extendedFamilies, true
	}

	for _, decode := range table {
		if instruction, ok := decode(opcode); ok {
			instruction.prefixed = prefixed
			return instruction, nil
		}
	}
	return Instruction{}, &UnknownInstructionError{Opcode: opcode, Prefixed: prefixed}
}

// Disassemble decodes the instruction at address without executing
// it, returning its mnemonic and encoded length.
func Disassemble(m *mmu.MMU, address uint16) (string, uint16, error) {
	pc := ProgramCounter{counter: address, mmu: m}
	instruction, err := Decode(&pc)
	if err != nil {
		return "", 0, err
	}
	return instruction.Name(), instruction.Length(), nil
}

// registerOrder is the operand encoding shared by the ALU, load and
// CB-prefixed instructions, where index 6 selects (HL).
var registerOrder = [8]Register{B, C, D, E, H, L, F, A} // F is never selected

// operandIndex returns the byte operand encoded by the 3-bit index i.
func operandIndex(i uint8) ByteOperand {
	if i&7 == 6 {
		return At(HL)
	}
	return Reg(registerOrder[i&7])
}

// pairIndex returns the register pair encoded by bits 4-5 of an
// opcode, where index 3 selects the stack pointer.
func pairIndex(opcode uint8) ShortOperand {
	switch (opcode >> 4) & 3 {
	case 0:
		return Pair(BC)
	case 1:
		return Pair(DE)
	case 2:
		return Pair(HL)
	}
	return SP()
}

// conditionIndex returns the condition encoded by bits 3-4 of a
// conditional jump, call or return.
func conditionIndex(opcode uint8) Condition {
	return [4]Condition{NotZero, Zero, NotCarry, Carry}[(opcode>>3)&3]
}
