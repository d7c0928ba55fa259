package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// byteMode is an addressing mode for 8-bit operands.
type byteMode uint8

const (
	byteNone                byteMode = iota
	byteRegister                     // r
	byteImmediate                    // d8, advances the program counter
	byteMemoryByPair                 // (rr), (HL+), (HL-)
	byteMemoryByImmediate            // (a16), advances the program counter
	byteMemoryByOffset               // (0xFF00+r)
	byteMemoryByOffsetImmed          // (0xFF00+a8), advances the program counter
)

// PostOp is applied to the addressing register pair after the memory
// access of a byteMemoryByPair operand.
type PostOp uint8

const (
	PostNone PostOp = iota
	PostIncrement
	PostDecrement
)

// ByteOperand is a source or destination of an 8-bit value. The zero
// value is an absent operand.
type ByteOperand struct {
	mode     byteMode
	register Register
	pair     RegisterPair
	post     PostOp
}

// Reg is the register r.
func Reg(r Register) ByteOperand {
	r.index()
	return ByteOperand{mode: byteRegister, register: r}
}

// Imm8 is the next byte in the instruction stream.
func Imm8() ByteOperand {
	return ByteOperand{mode: byteImmediate}
}

// At is the memory addressed by the pair.
func At(pair RegisterPair) ByteOperand {
	return AtThen(pair, PostNone)
}

// AtThen is the memory addressed by the pair, followed by post
// being applied to the pair once the access completes.
func AtThen(pair RegisterPair, post PostOp) ByteOperand {
	pair.halves()
	return ByteOperand{mode: byteMemoryByPair, pair: pair, post: post}
}

// AtImm16 is the memory addressed by the next short in the
// instruction stream.
func AtImm16() ByteOperand {
	return ByteOperand{mode: byteMemoryByImmediate}
}

// High is the memory at 0xFF00 plus the value of register r.
func High(r Register) ByteOperand {
	r.index()
	return ByteOperand{mode: byteMemoryByOffset, register: r}
}

// HighImm8 is the memory at 0xFF00 plus the next byte in the
// instruction stream.
func HighImm8() ByteOperand {
	return ByteOperand{mode: byteMemoryByOffsetImmed}
}

// IsZero reports whether the operand is absent.
func (o ByteOperand) IsZero() bool {
	return o.mode == byteNone
}

// address resolves a memory operand to its address. Immediate
// addresses are fetched here, so it must be called exactly once
// per access.
func (o ByteOperand) address(c *Context) uint16 {
	switch o.mode {
	case byteMemoryByPair:
		return c.Registers.GetPair(o.pair)
	case byteMemoryByImmediate:
		return c.PC.ReadNextShort()
	case byteMemoryByOffset:
		return types.IOPage + uint16(c.Registers.Get(o.register))
	case byteMemoryByOffsetImmed:
		return types.IOPage + uint16(c.PC.ReadNextByte())
	}
	panic(fmt.Sprintf("operand %v has no address", o))
}

// postOp applies the operand's post-access adjustment, if any.
func (o ByteOperand) postOp(c *Context) {
	switch o.post {
	case PostIncrement:
		c.Registers.SetPair(o.pair, c.Registers.GetPair(o.pair)+1)
	case PostDecrement:
		c.Registers.SetPair(o.pair, c.Registers.GetPair(o.pair)-1)
	}
}

// Read returns the operand's value.
func (o ByteOperand) Read(c *Context) uint8 {
	switch o.mode {
	case byteRegister:
		return c.Registers.Get(o.register)
	case byteImmediate:
		return c.PC.ReadNextByte()
	case byteMemoryByPair, byteMemoryByImmediate, byteMemoryByOffset, byteMemoryByOffsetImmed:
		value := c.MMU.Read(o.address(c))
		o.postOp(c)
		return value
	}
	panic(fmt.Sprintf("cannot read from operand %v", o))
}

// Assign writes value to the operand.
func (o ByteOperand) Assign(c *Context, value uint8) {
	switch o.mode {
	case byteRegister:
		c.Registers.Set(o.register, value)
		return
	case byteMemoryByPair, byteMemoryByImmediate, byteMemoryByOffset, byteMemoryByOffsetImmed:
		c.MMU.Write(o.address(c), value)
		o.postOp(c)
		return
	}
	panic(fmt.Sprintf("cannot assign to operand %v", o))
}

// length returns the number of instruction stream bytes the operand
// consumes.
func (o ByteOperand) length() uint16 {
	switch o.mode {
	case byteImmediate, byteMemoryByOffsetImmed:
		return 1
	case byteMemoryByImmediate:
		return 2
	}
	return 0
}

// memory reports whether the operand accesses memory.
func (o ByteOperand) memory() bool {
	return o.mode >= byteMemoryByPair
}

func (o ByteOperand) String() string {
	switch o.mode {
	case byteNone:
		return ""
	case byteRegister:
		return o.register.String()
	case byteImmediate:
		return "d8"
	case byteMemoryByPair:
		switch o.post {
		case PostIncrement:
			return "(" + o.pair.String() + "+)"
		case PostDecrement:
			return "(" + o.pair.String() + "-)"
		}
		return "(" + o.pair.String() + ")"
	case byteMemoryByImmediate:
		return "(a16)"
	case byteMemoryByOffset:
		return "(" + o.register.String() + ")"
	case byteMemoryByOffsetImmed:
		return "(a8)"
	}
	return fmt.Sprintf("byteMode(%d)", o.mode)
}

// shortMode is an addressing mode for 16-bit operands.
type shortMode uint8

const (
	shortNone shortMode = iota
	shortPair
	shortImmediate
	shortStackPointer
)

// ShortOperand is a source or destination of a 16-bit value. The
// zero value is an absent operand.
type ShortOperand struct {
	mode shortMode
	pair RegisterPair
}

// Pair is the register pair p.
func Pair(p RegisterPair) ShortOperand {
	p.halves()
	return ShortOperand{mode: shortPair, pair: p}
}

// Imm16 is the next short in the instruction stream.
func Imm16() ShortOperand {
	return ShortOperand{mode: shortImmediate}
}

// SP is the stack pointer.
func SP() ShortOperand {
	return ShortOperand{mode: shortStackPointer}
}

// Read returns the operand's value.
func (o ShortOperand) Read(c *Context) uint16 {
	switch o.mode {
	case shortPair:
		return c.Registers.GetPair(o.pair)
	case shortImmediate:
		return c.PC.ReadNextShort()
	case shortStackPointer:
		return c.Stack.Pointer()
	}
	panic(fmt.Sprintf("cannot read from operand %v", o))
}

// Assign writes value to the operand.
func (o ShortOperand) Assign(c *Context, value uint16) {
	switch o.mode {
	case shortPair:
		c.Registers.SetPair(o.pair, value)
		return
	case shortStackPointer:
		c.Stack.SetPointer(value)
		return
	}
	panic(fmt.Sprintf("cannot assign to operand %v", o))
}

func (o ShortOperand) length() uint16 {
	if o.mode == shortImmediate {
		return 2
	}
	return 0
}

func (o ShortOperand) String() string {
	switch o.mode {
	case shortNone:
		return ""
	case shortPair:
		return o.pair.String()
	case shortImmediate:
		return "d16"
	case shortStackPointer:
		return "SP"
	}
	return fmt.Sprintf("shortMode(%d)", o.mode)
}
