package cpu

import "fmt"

// Operation is the function an instruction applies between reading
// its operands and writing its destination. Each operation recomputes
// the flags it affects from the operand values as they were read.
type Operation uint8

const (
	OpNone Operation = iota // copy the source unchanged
	OpAdd
	OpSubtract
	OpXor
	OpCompare
	OpIncrement
	OpDecrement
	OpRotateLeftCarry
	OpRotateLeftThroughCarry
	OpRotateRightCarry
	OpRotateRightThroughCarry
	OpRotateLeftCarryAccumulator
	OpRotateLeftAccumulatorThroughCarry
	OpRotateRightCarryAccumulator
	OpRotateRightAccumulatorThroughCarry
)

var operationNames = [...]string{
	OpNone:                               "LD",
	OpAdd:                                "ADD",
	OpSubtract:                           "SUB",
	OpXor:                                "XOR",
	OpCompare:                            "CP",
	OpIncrement:                          "INC",
	OpDecrement:                          "DEC",
	OpRotateLeftCarry:                    "RLC",
	OpRotateLeftThroughCarry:             "RL",
	OpRotateRightCarry:                   "RRC",
	OpRotateRightThroughCarry:            "RR",
	OpRotateLeftCarryAccumulator:         "RLCA",
	OpRotateLeftAccumulatorThroughCarry:  "RLA",
	OpRotateRightCarryAccumulator:        "RRCA",
	OpRotateRightAccumulatorThroughCarry: "RRA",
}

func (o Operation) String() string {
	if int(o) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", uint8(o))
	}
	return operationNames[o]
}

// binary reports whether the operation takes a second operand.
func (o Operation) binary() bool {
	switch o {
	case OpAdd, OpSubtract, OpXor, OpCompare:
		return true
	}
	return false
}

// apply performs the operation on left (and right, for binary
// operations) and returns the result.
func (o Operation) apply(r *Registers, left, right uint8) uint8 {
	switch o {
	case OpNone:
		return left
	case OpAdd:
		return add(r, left, right)
	case OpSubtract:
		return subtract(r, left, right)
	case OpXor:
		return xor(r, left, right)
	case OpCompare:
		subtract(r, left, right)
		return left
	case OpIncrement:
		return increment(r, left)
	case OpDecrement:
		return decrement(r, left)
	case OpRotateLeftCarry:
		return rotateLeftCarry(r, left, false)
	case OpRotateLeftThroughCarry:
		return rotateLeftThroughCarry(r, left, false)
	case OpRotateRightCarry:
		return rotateRightCarry(r, left, false)
	case OpRotateRightThroughCarry:
		return rotateRightThroughCarry(r, left, false)
	case OpRotateLeftCarryAccumulator:
		return rotateLeftCarry(r, left, true)
	case OpRotateLeftAccumulatorThroughCarry:
		return rotateLeftThroughCarry(r, left, true)
	case OpRotateRightCarryAccumulator:
		return rotateRightCarry(r, left, true)
	case OpRotateRightAccumulatorThroughCarry:
		return rotateRightThroughCarry(r, left, true)
	}
	panic(fmt.Sprintf("invalid byte operation: %d", uint8(o)))
}

// applyShort performs a 16-bit operation. No 16-bit operation
// touches the flags.
func (o Operation) applyShort(value uint16) uint16 {
	switch o {
	case OpNone:
		return value
	case OpIncrement:
		return value + 1
	case OpDecrement:
		return value - 1
	}
	panic(fmt.Sprintf("invalid short operation: %v", o))
}

// add returns left + right.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func add(r *Registers, left, right uint8) uint8 {
	sum := uint16(left) + uint16(right)
	r.setFlags(uint8(sum) == 0, false, (left&0xF)+(right&0xF) > 0xF, sum > 0xFF)
	return uint8(sum)
}

// subtract returns left - right.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func subtract(r *Registers, left, right uint8) uint8 {
	result := left - right
	r.setFlags(result == 0, true, right&0xF > left&0xF, right > left)
	return result
}

// xor returns left ^ right.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func xor(r *Registers, left, right uint8) uint8 {
	result := left ^ right
	r.setFlags(result == 0, false, false, false)
	return result
}

// increment returns n + 1.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func increment(r *Registers, n uint8) uint8 {
	incremented := n + 1
	r.setFlags(incremented == 0, false, n&0xF == 0xF, r.Flag(FlagCarry))
	return incremented
}

// decrement returns n - 1.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func decrement(r *Registers, n uint8) uint8 {
	decremented := n - 1
	r.setFlags(decremented == 0, true, n&0xF == 0, r.Flag(FlagCarry))
	return decremented
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit
// is copied to both the carry flag and the least significant bit.
// The accumulator form always resets Z.
func rotateLeftCarry(r *Registers, n uint8, accumulator bool) uint8 {
	computed := n<<1 | n>>7
	r.setFlags(!accumulator && computed == 0, false, false, n&0x80 != 0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is
// copied to the least significant bit, and the most significant bit
// is copied to the carry flag.
func rotateLeftThroughCarry(r *Registers, n uint8, accumulator bool) uint8 {
	computed := n << 1
	if r.Flag(FlagCarry) {
		computed |= 0x01
	}
	r.setFlags(!accumulator && computed == 0, false, false, n&0x80 != 0)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant
// bit is copied to both the carry flag and the most significant bit.
func rotateRightCarry(r *Registers, n uint8, accumulator bool) uint8 {
	computed := n>>1 | n<<7
	r.setFlags(!accumulator && computed == 0, false, false, n&0x01 != 0)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag
// is copied to the most significant bit, and the least significant
// bit is copied to the carry flag.
func rotateRightThroughCarry(r *Registers, n uint8, accumulator bool) uint8 {
	computed := n >> 1
	if r.Flag(FlagCarry) {
		computed |= 0x80
	}
	r.setFlags(!accumulator && computed == 0, false, false, n&0x01 != 0)
	return computed
}

// testBit tests bit b of value.
//
// Flags affected:
//
//	Z - Set if bit b of value is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func testBit(r *Registers, value uint8, b uint8) {
	r.setFlags(value&(1<<b) == 0, false, true, r.Flag(FlagCarry))
}
