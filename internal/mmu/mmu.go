// Package mmu provides the flat 64kB address space shared by the
// CPU, its stack and its program counter. Every address is backed
// by plain memory, so reads and writes never fail.
package mmu

import (
	"encoding/binary"

	"github.com/thelolagemann/dmgcore/internal/types"
)

// MMU is the memory of a single machine. It is owned by one
// execution context and must not be shared between goroutines.
type MMU struct {
	raw [types.MemorySize]uint8

	// order decides which of two consecutive bytes is the high byte
	// of a 16-bit value. Stack and immediate operands both go through
	// ReadShort and WriteShort, so they always agree.
	order binary.ByteOrder
}

// Opt is a function that modifies an MMU.
type Opt func(m *MMU)

// WithByteOrder sets the byte order used for 16-bit accesses. The
// default is binary.BigEndian, where the first byte is the high byte.
func WithByteOrder(order binary.ByteOrder) Opt {
	return func(m *MMU) {
		if order != nil {
			m.order = order
		}
	}
}

// NewMMU returns a new zeroed MMU.
func NewMMU(opts ...Opt) *MMU {
	m := &MMU{order: binary.BigEndian}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Bootstrap copies data into memory starting at address 0. Bytes
// beyond the end of the address space are ignored. It returns the
// number of bytes copied.
func (m *MMU) Bootstrap(data []byte) int {
	return copy(m.raw[:], data)
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the byte to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// ReadShort reads two consecutive bytes starting at address and
// composes them according to the byte order. The second address
// wraps around at 0xFFFF.
func (m *MMU) ReadShort(address uint16) uint16 {
	b := [2]byte{m.raw[address], m.raw[address+1]}
	return m.order.Uint16(b[:])
}

// WriteShort splits value into two bytes according to the byte
// order and writes them to address and address+1.
func (m *MMU) WriteShort(address uint16, value uint16) {
	var b [2]byte
	m.order.PutUint16(b[:], value)
	m.raw[address] = b[0]
	m.raw[address+1] = b[1]
}

// ByteOrder returns the byte order used for 16-bit accesses.
func (m *MMU) ByteOrder() binary.ByteOrder {
	return m.order
}

var _ types.Stater = (*MMU)(nil)

// Load restores the raw memory image.
func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

// Save stores the raw memory image.
func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
