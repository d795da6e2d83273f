package rutkit

import (
	"errors"
	"fmt"
)

// Failure conditions surfaced by the package. Every fallible entry point
// returns exactly one of them; the conditions are mutually exclusive.
var (
	// ErrInvalidFormat is returned when input text does not match the
	// recognized RUT shape.
	ErrInvalidFormat = errors.New("invalid RUT format")

	// ErrOutOfRange is returned when a number falls outside the accepted
	// interval. The bounds in the message use the same thousands grouping
	// as the DOTS rendering.
	ErrOutOfRange = fmt.Errorf("number must be between %s and %s", groupThousands(MinNumber), groupThousands(MaxNumber))

	// ErrInvalidDV matches check digit mismatches via errors.Is. The
	// concrete error is always a *DVError carrying both characters.
	ErrInvalidDV = errors.New("invalid check digit")
)

// DVError reports that the check digit claimed by the input does not match
// the one computed from the number.
type DVError struct {
	Expected rune // computed from the number
	Actual   rune // claimed by the input
}

func (e *DVError) Error() string {
	return fmt.Sprintf("invalid DV: must be %c, instead %c", e.Expected, e.Actual)
}

// Is reports ErrInvalidDV as a match target, so callers can detect the
// mismatch class without unpacking the characters.
func (e *DVError) Is(target error) bool {
	return target == ErrInvalidDV
}
