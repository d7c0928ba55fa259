package cpu

import "fmt"

// Condition is a predicate over the flags that decides whether a
// jump, call or return transfers control.
type Condition uint8

const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

var conditionNames = [...]string{"", "NZ", "Z", "NC", "C"}

func (c Condition) String() string {
	if int(c) >= len(conditionNames) {
		return fmt.Sprintf("Condition(%d)", uint8(c))
	}
	return conditionNames[c]
}

// holds evaluates the condition against the current flags.
func (c Condition) holds(r *Registers) bool {
	switch c {
	case Always:
		return true
	case NotZero:
		return !r.Flag(FlagZero)
	case Zero:
		return r.Flag(FlagZero)
	case NotCarry:
		return !r.Flag(FlagCarry)
	case Carry:
		return r.Flag(FlagCarry)
	}
	panic(fmt.Sprintf("invalid condition: %d", uint8(c)))
}
