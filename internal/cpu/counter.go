package cpu

import "github.com/thelolagemann/dmgcore/internal/mmu"

// ProgramCounter is a 16-bit cursor into memory. Fetches advance it;
// jumps, calls and returns overwrite it.
type ProgramCounter struct {
	counter uint16
	mmu     *mmu.MMU
}

// ReadNextByte returns the byte at the counter and advances it by 1.
func (p *ProgramCounter) ReadNextByte() uint8 {
	value := p.mmu.Read(p.counter)
	p.counter++
	return value
}

// ReadNextShort returns the short at the counter, composed in the
// memory's byte order, and advances the counter by 2.
func (p *ProgramCounter) ReadNextShort() uint16 {
	value := p.mmu.ReadShort(p.counter)
	p.counter += 2
	return value
}

// Counter returns the address of the next byte to be fetched.
func (p *ProgramCounter) Counter() uint16 {
	return p.counter
}

// SetCounter transfers control to address.
func (p *ProgramCounter) SetCounter(address uint16) {
	p.counter = address
}
