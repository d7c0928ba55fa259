package cpu

// Flag is the mask of a flag bit in the F register. The low nibble
// of F is unused.
type Flag = uint8

const (
	FlagCarry     Flag = 0x10
	FlagHalfCarry Flag = 0x20
	FlagSubtract  Flag = 0x40
	FlagZero      Flag = 0x80
)

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.raw[F]&flag != 0
}

// SetFlag sets the given flag to value.
func (r *Registers) SetFlag(flag Flag, value bool) {
	if value {
		r.ActivateFlag(flag)
	} else {
		r.ResetFlag(flag)
	}
}

// ActivateFlag sets the given flag.
func (r *Registers) ActivateFlag(flag Flag) {
	r.raw[F] |= flag
}

// ResetFlag clears the given flag.
func (r *Registers) ResetFlag(flag Flag) {
	r.raw[F] &^= flag
}

// setFlags sets all four flags at once. Every arithmetic/logic
// operation recomputes the flags through here.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.SetFlag(FlagZero, zero)
	r.SetFlag(FlagSubtract, subtract)
	r.SetFlag(FlagHalfCarry, halfCarry)
	r.SetFlag(FlagCarry, carry)
}

// flagString renders the flags in ZNHC order, with a dash for
// each flag that is clear.
func (r *Registers) flagString() string {
	s := []byte("----")
	for i, f := range []struct {
		flag Flag
		name byte
	}{{FlagZero, 'Z'}, {FlagSubtract, 'N'}, {FlagHalfCarry, 'H'}, {FlagCarry, 'C'}} {
		if r.Flag(f.flag) {
			s[i] = f.name
		}
	}
	return string(s)
}
