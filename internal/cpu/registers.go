package cpu

import "fmt"

// Register identifies one of the eight 8-bit registers. The
// register file stores all of them in one array indexed by
// Register, so every view of a register observes the same slot.
type Register uint8

const (
	A Register = iota
	B
	C
	D
	E
	F // flags
	H
	L
)

var registerNames = [...]string{"A", "B", "C", "D", "E", "F", "H", "L"}

func (r Register) String() string {
	return registerNames[r.index()]
}

// index returns r as an index into the register array, panicking
// if r is not one of the eight registers.
func (r Register) index() int {
	if r > L {
		panic(fmt.Sprintf("invalid register: %d", uint8(r)))
	}
	return int(r)
}

// RegisterPair identifies a 16-bit view over two registers.
type RegisterPair uint8

const (
	AF RegisterPair = iota
	BC
	DE
	HL
)

// pairs maps each RegisterPair to its high and low register.
var pairs = [...][2]Register{
	AF: {A, F},
	BC: {B, C},
	DE: {D, E},
	HL: {H, L},
}

var pairNames = [...]string{"AF", "BC", "DE", "HL"}

func (p RegisterPair) String() string {
	p.halves()
	return pairNames[p]
}

// halves returns the high and low register of the pair.
func (p RegisterPair) halves() (high, low Register) {
	if p > HL {
		panic(fmt.Sprintf("invalid register pair: %d", uint8(p)))
	}
	return pairs[p][0], pairs[p][1]
}

// Registers is the register file. It owns the single backing array
// for all eight registers; register pairs are computed from it on
// every access rather than stored, so writes through a pair are
// immediately visible through its halves and vice versa.
type Registers struct {
	raw [8]uint8
}

// Get returns the value of the register.
func (r *Registers) Get(reg Register) uint8 {
	return r.raw[reg.index()]
}

// Set sets the value of the register.
func (r *Registers) Set(reg Register, value uint8) {
	r.raw[reg.index()] = value
}

// GetPair returns the pair as (high<<8)|low.
func (r *Registers) GetPair(pair RegisterPair) uint16 {
	high, low := pair.halves()
	return uint16(r.raw[high])<<8 | uint16(r.raw[low])
}

// SetPair splits value into the high and low register of the pair.
func (r *Registers) SetPair(pair RegisterPair, value uint16) {
	high, low := pair.halves()
	r.raw[high] = uint8(value >> 8)
	r.raw[low] = uint8(value)
}

// String returns a one line dump of the register file.
func (r *Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X %s",
		r.raw[A], r.raw[F], r.raw[B], r.raw[C], r.raw[D], r.raw[E], r.raw[H], r.raw[L], r.flagString())
}
