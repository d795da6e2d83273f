package rutkit

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format selects the textual rendering of a Rut.
type Format string

const (
	// FormatDots groups the number in thousands with dots: 17.951.585-7.
	FormatDots Format = "dots"

	// FormatDash renders plain digits, a dash, and the check digit:
	// 17951585-7. This is the default display rendering.
	FormatDash Format = "dash"

	// FormatNone renders the digits immediately followed by the check
	// digit, with no separator: 179515857.
	FormatNone Format = "none"
)

// clPrinter renders numbers with Chilean Spanish grouping, which is how RUTs
// are displayed in the wild: a dot every three digits.
var clPrinter = message.NewPrinter(language.MustParse("es-CL"))

// groupThousands renders number with the display grouping shared by the
// DOTS rendering and the out-of-range error message.
func groupThousands(number uint32) string {
	return clPrinter.Sprintf("%d", number)
}

// ParseFormat converts a user-supplied string into a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDots, FormatDash, FormatNone:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be %q, %q or %q", s, FormatDots, FormatDash, FormatNone)
	}
}

// Render returns the textual representation of r in the requested format.
// Unknown formats render as FormatDash.
func (r Rut) Render(f Format) string {
	switch f {
	case FormatDots:
		return fmt.Sprintf("%s-%c", groupThousands(r.number), r.dv)
	case FormatNone:
		return fmt.Sprintf("%d%c", r.number, r.dv)
	default:
		return fmt.Sprintf("%d-%c", r.number, r.dv)
	}
}
