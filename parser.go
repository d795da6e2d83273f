package rutkit

import (
	"regexp"
	"strconv"
	"strings"
)

// rutRegex recognizes the accepted textual shape: a body of 7 or 8 digits
// whose two rightmost thousand groups may be separated by dots, an optional
// dash, and a single check character (digit or K, case-insensitive).
var rutRegex = regexp.MustCompile(`^(\d{1,2}\.?\d{3}\.?\d{3})-?([0-9Kk])$`)

// unverified carries the split of a textual RUT before its check digit has
// been proven correct. It never leaves the package.
type unverified struct {
	number uint32
	dv     byte
}

// extract splits input into its numeric body and claimed check character.
// It validates shape only; checksum and range verification happen in Parse.
func extract(input string) (unverified, error) {
	m := rutRegex.FindStringSubmatch(input)
	if m == nil {
		return unverified{}, ErrInvalidFormat
	}

	body := strings.ReplaceAll(m[1], ".", "")
	number, err := strconv.ParseUint(body, 10, 32)
	if err != nil {
		return unverified{}, ErrInvalidFormat
	}

	dv := m[2][0]
	if dv == 'k' {
		dv = 'K'
	}

	return unverified{number: uint32(number), dv: dv}, nil
}
