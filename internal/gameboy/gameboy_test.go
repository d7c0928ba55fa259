package gameboy

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/ppu/lcd"
	"github.com/thelolagemann/dmgcore/internal/types"
)

var exampleProgram = []byte{0x3E, 0x05, 0x06, 0x03, 0x80} // LD A, 5; LD B, 3; ADD A, B

func TestGameBoy_ExampleProgram(t *testing.T) {
	gb, err := NewGameBoy(WithBootstrap(exampleProgram))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		gb.CPU.ExecuteNextInstruction()
	}
	assert.Equal(t, uint8(8), gb.CPU.Registers.Get(cpu.A))
	assert.False(t, gb.CPU.Registers.Flag(cpu.FlagZero))
}

func TestGameBoy_StepTicksPPU(t *testing.T) {
	gb, err := NewGameBoy(WithBootstrap(exampleProgram))
	require.NoError(t, err)

	n, err := gb.Run(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint64(8+8+4), gb.Cycles())
	assert.Equal(t, lcd.OAM, gb.PPU.Mode())
	assert.Equal(t, uint16(80-20), gb.PPU.CyclesLeft())
}

func TestGameBoy_Defaults(t *testing.T) {
	gb, err := NewGameBoy()
	require.NoError(t, err)

	assert.Equal(t, types.StackTop, gb.CPU.Stack.Pointer())
	assert.Equal(t, uint16(0), gb.CPU.PC.Counter())
	assert.Equal(t, binary.BigEndian, gb.MMU.ByteOrder())
	assert.Equal(t, lcd.OAM, gb.PPU.Mode())
}

func TestGameBoy_Options(t *testing.T) {
	gb, err := NewGameBoy(
		WithBootstrap([]byte{0x00, 0x01, 0x34, 0x12}), // NOP; LD BC, d16
		WithProgramCounter(0x0001),
		WithStackPointer(0xD000),
		WithByteOrder(binary.LittleEndian),
	)
	require.NoError(t, err)

	_, err = gb.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), gb.CPU.Registers.GetPair(cpu.BC))
	assert.Equal(t, uint16(0xD000), gb.CPU.Stack.Pointer())
}

func TestGameBoy_UnknownInstruction(t *testing.T) {
	logger, hook := test.NewNullLogger()
	gb, err := NewGameBoy(WithBootstrap([]byte{0x00, 0xD3}), WithLogger(logger))
	require.NoError(t, err)

	n, err := gb.Run(5)
	assert.Equal(t, 1, n)
	assert.True(t, errors.Is(err, cpu.ErrUnknownInstruction))

	var unknown *cpu.UnknownInstructionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, uint8(0xD3), unknown.Opcode)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestGameBoy_Trace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	gb, err := NewGameBoy(WithBootstrap(exampleProgram), WithLogger(logger), Trace())
	require.NoError(t, err)
	hook.Reset()

	_, err = gb.Run(3)
	require.NoError(t, err)

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"0000\tLD A, d8", "0002\tLD B, d8", "0004\tADD A, B"}, messages)
}

func TestGameBoy_State(t *testing.T) {
	gb, err := NewGameBoy(WithBootstrap(exampleProgram))
	require.NoError(t, err)
	_, err = gb.Run(2)
	require.NoError(t, err)

	snapshot := gb.Save().Bytes()
	digest := gb.Digest()

	restored, err := NewGameBoy(WithState(snapshot))
	require.NoError(t, err)
	assert.Equal(t, digest, restored.Digest())
	assert.Equal(t, gb.PPU.CyclesLeft(), restored.PPU.CyclesLeft())
	assert.Equal(t, gb.Cycles(), restored.Cycles())
	assert.Equal(t, uint64(8+8), restored.Cycles())

	_, err = gb.Step()
	require.NoError(t, err)
	_, err = restored.Step()
	require.NoError(t, err)
	assert.Equal(t, gb.Digest(), restored.Digest())
	assert.Equal(t, uint8(8), restored.CPU.Registers.Get(cpu.A))
}

func TestGameBoy_Digest(t *testing.T) {
	a, err := NewGameBoy(WithBootstrap(exampleProgram))
	require.NoError(t, err)
	b, err := NewGameBoy(WithBootstrap(exampleProgram))
	require.NoError(t, err)

	assert.Equal(t, a.Digest(), b.Digest())
	_, err = a.Step()
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), b.Digest())
}

func TestGameBoy_InvalidState(t *testing.T) {
	_, err := NewGameBoy(WithState([]byte{1, 2, 3}))
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.True(t, errors.Is(err, types.ErrShortState))

	ppuAt := cpu.StateSize()
	tests := []struct {
		name    string
		corrupt func(raw []byte)
	}{
		{"unknown mode", func(raw []byte) { raw[ppuAt] = 9 }},
		{"no cycles left", func(raw []byte) { binary.LittleEndian.PutUint16(raw[ppuAt+1:], 0) }},
		{"cycles above budget", func(raw []byte) { binary.LittleEndian.PutUint16(raw[ppuAt+1:], 500) }},
		{"line outside frame", func(raw []byte) { raw[ppuAt+3] = 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donor, err := NewGameBoy()
			require.NoError(t, err)
			raw := donor.Save().Bytes()
			tt.corrupt(raw)

			gb, err := NewGameBoy(WithBootstrap(exampleProgram))
			require.NoError(t, err)
			_, err = gb.Run(3)
			require.NoError(t, err)
			before := gb.Digest()
			sp := gb.CPU.Stack.Pointer()
			mode, cyclesLeft := gb.PPU.Mode(), gb.PPU.CyclesLeft()

			err = gb.Load(types.StateFromBytes(raw))
			assert.True(t, errors.Is(err, ErrInvalidState))

			assert.Equal(t, uint8(8), gb.CPU.Registers.Get(cpu.A))
			assert.Equal(t, uint8(3), gb.CPU.Registers.Get(cpu.B))
			assert.Equal(t, uint16(5), gb.CPU.PC.Counter())
			assert.Equal(t, sp, gb.CPU.Stack.Pointer())
			assert.Equal(t, mode, gb.PPU.Mode())
			assert.Equal(t, cyclesLeft, gb.PPU.CyclesLeft())
			assert.Equal(t, uint64(8+8+4), gb.Cycles())
			assert.Equal(t, before, gb.Digest())
			assert.NotPanics(t, func() { gb.PPU.Tick(CyclesPerFrame) })
		})
	}
}

type frameCounter struct{ lines, frames int }

func (f *frameCounter) RenderScanline(uint8) { f.lines++ }
func (f *frameCounter) RenderFrame()         { f.frames++ }

func TestGameBoy_Frame(t *testing.T) {
	r := &frameCounter{}
	program := []byte{0x18, 0xFE} // JR -2
	gb, err := NewGameBoy(WithBootstrap(program), WithRenderer(r))
	require.NoError(t, err)

	require.NoError(t, gb.Frame())
	assert.Equal(t, 1, r.frames)
	assert.Equal(t, 144, r.lines)
	assert.GreaterOrEqual(t, gb.Cycles(), uint64(CyclesPerFrame))
}
