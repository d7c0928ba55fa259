package lcd

import "fmt"

// Mode represents a mode of the LCD. The values match the mode bits
// of the STAT register.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM mode. The CPU can access OAM but not the display RAM.
	OAM
	// VRAM is the VRAM mode. The CPU can access the display RAM but not OAM.
	VRAM
)

// cycles holds the number of clock cycles spent in each mode.
var cycles = [...]uint16{
	HBlank: 206,
	VBlank: 456,
	OAM:    80,
	VRAM:   170,
}

var names = [...]string{
	HBlank: "HBlank",
	VBlank: "VBlank",
	OAM:    "OAM",
	VRAM:   "VRAM",
}

// Cycles returns the number of clock cycles spent in the mode before
// it exits.
func (m Mode) Cycles() uint16 {
	if !m.Valid() {
		panic(fmt.Sprintf("unknown mode: %d", uint8(m)))
	}
	return cycles[m]
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return names[m]
}

// Valid reports whether m is one of the four modes.
func (m Mode) Valid() bool {
	return m <= VRAM
}
