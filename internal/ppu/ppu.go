// Package ppu implements the video timing of the picture processing
// unit: a four-mode state machine driven by the clock cycles the CPU
// spends. Pixel output is left to a Renderer.
package ppu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/ppu/lcd"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// LinesPerFrame is the number of scanlines in a frame, including
	// the lines spent in VBlank.
	LinesPerFrame = 154
)

// Renderer is notified as the PPU finishes drawing. Implementations
// own the framebuffer.
type Renderer interface {
	// RenderScanline is called when pixel transfer for line completes.
	RenderScanline(line uint8)
	// RenderFrame is called when the last visible line has been drawn
	// and VBlank begins.
	RenderFrame()
}

// PPU is the video timing state machine. Every mode has a fixed cycle
// budget; when a budget runs out the mode exits and decides the next
// mode, and any cycles left over are spent in it.
//
//	OAM (80) -> VRAM (170) -> HBlank (206) -> OAM ... x144
//	HBlank on line 143 -> VBlank (456) x10 -> OAM on line 0
type PPU struct {
	mode       lcd.Mode
	cyclesLeft uint16
	line       uint8

	renderer Renderer
}

// New returns a new PPU at the start of a frame. r may be nil.
func New(r Renderer) *PPU {
	p := &PPU{renderer: r}
	p.Initialize()
	return p
}

// Initialize resets the PPU to the start of a frame.
func (p *PPU) Initialize() {
	p.line = 0
	p.enter(lcd.OAM)
}

// Mode returns the current mode.
func (p *PPU) Mode() lcd.Mode {
	return p.mode
}

// CyclesLeft returns the number of cycles until the current mode
// exits.
func (p *PPU) CyclesLeft() uint16 {
	return p.cyclesLeft
}

// Line returns the current scanline.
func (p *PPU) Line() uint8 {
	return p.line
}

// Tick advances the PPU by cycles clock cycles, moving through as
// many modes as the cycles cover.
func (p *PPU) Tick(cycles uint16) {
	for {
		cycles = p.spin(cycles)
		if p.cyclesLeft != 0 {
			return
		}
		p.enter(p.exit())
	}
}

// spin spends up to cycles of the current budget, returning the
// cycles that did not fit.
func (p *PPU) spin(cycles uint16) uint16 {
	if cycles > p.cyclesLeft {
		remaining := cycles - p.cyclesLeft
		p.cyclesLeft = 0
		return remaining
	}
	p.cyclesLeft -= cycles
	return 0
}

func (p *PPU) enter(mode lcd.Mode) {
	p.cyclesLeft = mode.Cycles()
	p.mode = mode
}

// exit runs the exit action of the current mode and returns the mode
// to enter next.
func (p *PPU) exit() lcd.Mode {
	switch p.mode {
	case lcd.OAM:
		return lcd.VRAM
	case lcd.VRAM:
		if p.renderer != nil {
			p.renderer.RenderScanline(p.line)
		}
		return lcd.HBlank
	case lcd.HBlank:
		p.line++
		if p.line == ScreenHeight {
			if p.renderer != nil {
				p.renderer.RenderFrame()
			}
			return lcd.VBlank
		}
		return lcd.OAM
	case lcd.VBlank:
		p.line++
		if p.line == LinesPerFrame {
			p.line = 0
			return lcd.OAM
		}
		return lcd.VBlank
	}
	panic(fmt.Sprintf("unknown mode: %d", uint8(p.mode)))
}

// Validate reports whether the PPU is in a state Tick can continue
// from: a known mode, a budget that has not run out and does not
// exceed the mode's, and a line within the frame.
func (p *PPU) Validate() error {
	if !p.mode.Valid() {
		return fmt.Errorf("unknown mode %d", uint8(p.mode))
	}
	if p.cyclesLeft == 0 || p.cyclesLeft > p.mode.Cycles() {
		return fmt.Errorf("%d cycles left is outside the %s budget of %d", p.cyclesLeft, p.mode, p.mode.Cycles())
	}
	if p.line >= LinesPerFrame {
		return fmt.Errorf("line %d is outside the frame", p.line)
	}
	return nil
}

var _ types.Stater = (*PPU)(nil)

// Load restores the mode, remaining budget and scanline.
func (p *PPU) Load(s *types.State) {
	p.mode = lcd.Mode(s.Read8())
	p.cyclesLeft = s.Read16()
	p.line = s.Read8()
}

// Save stores the mode, remaining budget and scanline.
func (p *PPU) Save(s *types.State) {
	s.Write8(uint8(p.mode))
	s.Write16(p.cyclesLeft)
	s.Write8(p.line)
}

// StateSize returns the number of bytes the PPU occupies in a State.
func StateSize() int {
	return 4
}
