package cpu

import (
	"fmt"
	"strings"
)

// kind selects how an Instruction executes.
type kind uint8

const (
	kindNop kind = iota
	kindByteOp
	kindShortOp
	kindBitTest
	kindJumpRelative
	kindJumpAbsolute
	kindCall
	kindReturn
	kindPush
	kindPop
)

// Instruction is a decoded opcode. It is built fresh by Decode for
// every fetch, executed once and discarded. Most instructions are a
// source, an Operation and a destination; the rest are control flow
// built from the same operands.
type Instruction struct {
	name string
	kind kind

	op    Operation
	src   ByteOperand  // left operand
	arg   ByteOperand  // right operand of binary operations, jump offset
	dst   ByteOperand  // absent for CP and BIT
	src16 ShortOperand // short source, jump target
	dst16 ShortOperand
	cond  Condition
	bit   uint8

	prefixed bool
	cycles   uint8 // cost when no branch is taken
	taken    uint8 // cost when a branch is taken, 0 if unconditional
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the cost of the instruction in clock cycles when
// no branch is taken.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// BranchCycles returns the cost of the instruction when its branch
// is taken. For instructions that never branch this is the same as
// Cycles.
func (i Instruction) BranchCycles() uint8 {
	if i.taken == 0 {
		return i.cycles
	}
	return i.taken
}

// Length returns the encoded length of the instruction in bytes,
// including the prefix and any immediate operands.
func (i Instruction) Length() uint16 {
	n := uint16(1)
	if i.prefixed {
		n++
	}
	n += i.src.length() + i.arg.length() + i.dst.length()
	return n + i.src16.length() + i.dst16.length()
}

func (i Instruction) String() string {
	return i.name
}

// Execute runs the instruction against c and returns the number of
// clock cycles it took. Side effects happen in operand order: the
// source is read before the argument, flags are computed from the
// values read, and the destination is written last.
func (i Instruction) Execute(c *Context) uint8 {
	switch i.kind {
	case kindNop:
	case kindByteOp:
		left := i.src.Read(c)
		var right uint8
		if i.op.binary() {
			right = i.arg.Read(c)
		}
		result := i.op.apply(&c.Registers, left, right)
		if !i.dst.IsZero() {
			i.dst.Assign(c, result)
		}
	case kindShortOp:
		i.dst16.Assign(c, i.op.applyShort(i.src16.Read(c)))
	case kindBitTest:
		testBit(&c.Registers, i.src.Read(c), i.bit)
	case kindJumpRelative:
		offset := int8(i.arg.Read(c))
		if i.cond.holds(&c.Registers) {
			c.PC.SetCounter(c.PC.Counter() + uint16(offset))
			return i.BranchCycles()
		}
	case kindJumpAbsolute:
		target := i.src16.Read(c)
		if i.cond.holds(&c.Registers) {
			c.PC.SetCounter(target)
			return i.BranchCycles()
		}
	case kindCall:
		target := i.src16.Read(c)
		if i.cond.holds(&c.Registers) {
			c.Stack.Push(c.PC.Counter())
			c.PC.SetCounter(target)
			return i.BranchCycles()
		}
	case kindReturn:
		if i.cond.holds(&c.Registers) {
			c.PC.SetCounter(c.Stack.Pop())
			return i.BranchCycles()
		}
	case kindPush:
		c.Stack.Push(i.src16.Read(c))
	case kindPop:
		i.dst16.Assign(c, c.Stack.Pop())
	default:
		panic(fmt.Sprintf("invalid instruction kind: %d", i.kind))
	}
	return i.cycles
}

// mnemonic joins an instruction name and its operands in the
// "OP X, Y" form.
func mnemonic(name string, operands ...fmt.Stringer) string {
	var parts []string
	for _, o := range operands {
		if s := o.String(); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return name
	}
	return name + " " + strings.Join(parts, ", ")
}
