package cpu

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgcore/internal/mmu"
)

func TestLoad_ExampleProgram(t *testing.T) {
	c := newTestCPU(0x3E, 0x05, 0x06, 0x03, 0x80) // LD A, 5; LD B, 3; ADD A, B
	for i := 0; i < 3; i++ {
		c.ExecuteNextInstruction()
	}

	assert.Equal(t, uint8(8), c.Registers.Get(A))
	assert.Equal(t, uint8(3), c.Registers.Get(B))
	assert.False(t, c.Registers.Flag(FlagZero))
	assert.Equal(t, uint16(5), c.PC.Counter())
}

func TestLoad_RegisterToRegister(t *testing.T) {
	for opcode := 0x40; opcode < 0x80; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst, src := operandIndex(uint8(opcode)>>3), operandIndex(uint8(opcode))
		c := newTestCPU(uint8(opcode))
		for _, r := range []Register{A, B, C, D, E} {
			c.Registers.Set(r, 0x10+uint8(r))
		}
		c.Registers.SetPair(HL, 0xC000)
		c.MMU.Write(0xC000, 0x99)

		want := uint8(0x99)
		if !src.memory() {
			want = c.Registers.Get(src.register)
		}
		cycles := step(t, c)

		var got uint8
		if dst.memory() {
			got = c.MMU.Read(0xC000)
		} else {
			got = c.Registers.Get(dst.register)
		}
		if got != want {
			t.Errorf("%02X %s: expected %02X, got %02X", opcode, mnemonic("LD", dst, src), want, got)
		}
		if (dst.memory() || src.memory()) != (cycles == 8) {
			t.Errorf("%02X: unexpected cycle count %d", opcode, cycles)
		}
	}
}

func TestLoad_Immediate(t *testing.T) {
	c := newTestCPU(
		0x0E, 0x42, // LD C, d8
		0x36, 0x77, // LD (HL), d8
		0x11, 0x12, 0x34, // LD DE, d16
		0x31, 0xFF, 0xF0, // LD SP, d16
	)
	c.Registers.SetPair(HL, 0xC010)

	assert.Equal(t, uint8(8), step(t, c))
	assert.Equal(t, uint8(0x42), c.Registers.Get(C))

	assert.Equal(t, uint8(12), step(t, c))
	assert.Equal(t, uint8(0x77), c.MMU.Read(0xC010))

	assert.Equal(t, uint8(12), step(t, c))
	assert.Equal(t, uint16(0x1234), c.Registers.GetPair(DE))

	assert.Equal(t, uint8(12), step(t, c))
	assert.Equal(t, uint16(0xFFF0), c.Stack.Pointer())
}

func TestLoad_Indirect(t *testing.T) {
	c := newTestCPU(
		0x02, // LD (BC), A
		0x1A, // LD A, (DE)
		0x22, // LD (HL+), A
		0x32, // LD (HL-), A
		0x2A, // LD A, (HL+)
		0x3A, // LD A, (HL-)
	)
	c.Registers.Set(A, 0x11)
	c.Registers.SetPair(BC, 0xC000)
	c.Registers.SetPair(DE, 0xC100)
	c.Registers.SetPair(HL, 0xC200)
	c.MMU.Write(0xC100, 0x22)

	step(t, c)
	assert.Equal(t, uint8(0x11), c.MMU.Read(0xC000))

	step(t, c)
	assert.Equal(t, uint8(0x22), c.Registers.Get(A))

	step(t, c)
	assert.Equal(t, uint8(0x22), c.MMU.Read(0xC200))
	assert.Equal(t, uint16(0xC201), c.Registers.GetPair(HL))

	c.Registers.Set(A, 0x33)
	step(t, c)
	assert.Equal(t, uint8(0x33), c.MMU.Read(0xC201))
	assert.Equal(t, uint16(0xC200), c.Registers.GetPair(HL))

	step(t, c)
	assert.Equal(t, uint8(0x22), c.Registers.Get(A), "read happens before the increment")
	assert.Equal(t, uint16(0xC201), c.Registers.GetPair(HL))

	step(t, c)
	assert.Equal(t, uint8(0x33), c.Registers.Get(A), "read happens before the decrement")
	assert.Equal(t, uint16(0xC200), c.Registers.GetPair(HL))
}

func TestLoad_AutoIndexWraps(t *testing.T) {
	c := newTestCPU(0x22) // LD (HL+), A
	c.Registers.SetPair(HL, 0xFFFF)
	c.Registers.Set(A, 0x5A)

	step(t, c)
	assert.Equal(t, uint8(0x5A), c.MMU.Read(0xFFFF))
	assert.Equal(t, uint16(0x0000), c.Registers.GetPair(HL))
}

func TestLoad_HighPage(t *testing.T) {
	c := newTestCPU(
		0xE0, 0x80, // LDH (a8), A
		0xF0, 0x81, // LDH A, (a8)
		0xE2, // LD (C), A
		0xF2, // LD A, (C)
	)
	c.Registers.Set(A, 0x07)
	c.Registers.Set(C, 0x10)
	c.MMU.Write(0xFF81, 0x99)
	c.MMU.Write(0xFF10, 0x44)

	assert.Equal(t, uint8(12), step(t, c))
	assert.Equal(t, uint8(0x07), c.MMU.Read(0xFF80))

	assert.Equal(t, uint8(12), step(t, c))
	assert.Equal(t, uint8(0x99), c.Registers.Get(A))

	assert.Equal(t, uint8(8), step(t, c))
	assert.Equal(t, uint8(0x99), c.MMU.Read(0xFF10))

	c.MMU.Write(0xFF10, 0x44)
	assert.Equal(t, uint8(8), step(t, c))
	assert.Equal(t, uint8(0x44), c.Registers.Get(A))
}

func TestLoad_Absolute(t *testing.T) {
	c := newTestCPU(
		0xEA, 0xC0, 0x12, // LD (a16), A
		0xFA, 0xC0, 0x34, // LD A, (a16)
		0xF9, // LD SP, HL
	)
	c.Registers.Set(A, 0xAB)
	c.MMU.Write(0xC034, 0xCD)
	c.Registers.SetPair(HL, 0xDFF0)

	assert.Equal(t, uint8(16), step(t, c))
	assert.Equal(t, uint8(0xAB), c.MMU.Read(0xC012))

	assert.Equal(t, uint8(16), step(t, c))
	assert.Equal(t, uint8(0xCD), c.Registers.Get(A))

	assert.Equal(t, uint8(8), step(t, c))
	assert.Equal(t, uint16(0xDFF0), c.Stack.Pointer())
	assert.Equal(t, uint16(7), c.PC.Counter())
}

func TestLoad_LittleEndian(t *testing.T) {
	m := mmu.NewMMU(mmu.WithByteOrder(binary.LittleEndian))
	m.Bootstrap([]byte{0x01, 0x34, 0x12}) // LD BC, d16
	c := NewCPU(m, nil)

	c.ExecuteNextInstruction()
	assert.Equal(t, uint16(0x1234), c.Registers.GetPair(BC))
}
