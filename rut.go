package rutkit

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// maskVisibleDigits is how many trailing digits of the number stay readable
// in the masked rendering.
const maskVisibleDigits = 3

// Rut is a validated Chilean RUT: a number in the accepted range paired with
// the check digit computed from it. Values are immutable and every
// construction path verifies the pair, so a Rut never holds a mismatched
// check digit. The zero value is not a valid Rut; use Parse, MustParse,
// FromNumber, or Randomize.
type Rut struct {
	number uint32
	dv     byte
}

// Parse validates input text and returns the Rut it denotes.
//
// It returns ErrInvalidFormat when the text does not match the recognized
// shape, ErrOutOfRange when the numeric body falls outside the accepted
// interval, and a *DVError (matching ErrInvalidDV) when the claimed check
// digit differs from the computed one.
func Parse(input string) (Rut, error) {
	u, err := extract(input)
	if err != nil {
		return Rut{}, err
	}

	rut, err := FromNumber(u.number)
	if err != nil {
		return Rut{}, err
	}

	if rut.dv != u.dv {
		return Rut{}, &DVError{Expected: rune(rut.dv), Actual: rune(u.dv)}
	}

	return rut, nil
}

// MustParse is like Parse but panics when input is not a valid RUT.
// It simplifies fixtures and package-level variable initialization.
func MustParse(input string) Rut {
	rut, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("rutkit: MustParse(%q): %v", input, err))
	}
	return rut
}

// FromNumber builds a Rut from a bare number, computing its check digit.
// It returns ErrOutOfRange unless InRange accepts the number.
func FromNumber(number uint32) (Rut, error) {
	if !InRange(number) {
		return Rut{}, ErrOutOfRange
	}
	return Rut{number: number, dv: byte(CheckDigit(number))}, nil
}

// IsValid reports whether input parses as a valid RUT.
func IsValid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// RandomOption configures Randomize.
type RandomOption func(*randomConfig)

type randomConfig struct {
	src *rand.Rand
}

// WithRand substitutes the random source used to draw the number, which
// makes generation deterministic in tests. Nil sources are ignored.
func WithRand(src *rand.Rand) RandomOption {
	return func(c *randomConfig) {
		if src != nil {
			c.src = src
		}
	}
}

// Randomize returns a Rut with a uniformly drawn in-range number and its
// computed check digit. It never fails; the sampler only produces accepted
// numbers.
func Randomize(opts ...RandomOption) Rut {
	var cfg randomConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	number := randomNumber(cfg.src)
	return Rut{number: number, dv: byte(CheckDigit(number))}
}

// Number returns the numeric part.
func (r Rut) Number() uint32 {
	return r.number
}

// DV returns the check digit character, '0'-'9' or 'K'.
func (r Rut) DV() rune {
	return rune(r.dv)
}

// String renders the default display form, Render(FormatDash).
func (r Rut) String() string {
	return r.Render(FormatDash)
}

// Mask hides all but the last three digits of the number while keeping the
// check digit visible: 17951585-7 becomes *****585-7.
func (r Rut) Mask() string {
	digits := strconv.FormatUint(uint64(r.number), 10)
	if len(digits) <= maskVisibleDigits {
		return fmt.Sprintf("%s-%c", strings.Repeat("*", len(digits)), r.dv)
	}

	masked := strings.Repeat("*", len(digits)-maskVisibleDigits) + digits[len(digits)-maskVisibleDigits:]
	return fmt.Sprintf("%s-%c", masked, r.dv)
}

// MarshalText implements encoding.TextMarshaler using the default display
// form, so Rut fields serialize as "17951585-7" in JSON and other
// text-based codecs.
func (r Rut) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It runs the full
// parse-and-verify pipeline, so decoding can never produce a Rut with an
// unverified check digit.
func (r *Rut) UnmarshalText(text []byte) error {
	rut, err := Parse(string(text))
	if err != nil {
		return err
	}

	*r = rut
	return nil
}
