// Package rutkit parses, validates, formats, and generates Chilean national
// identification numbers (RUT).
//
// A RUT consists of a number between 1.000.000 and 99.999.999 and a single
// check digit (DV, "dígito verificador") computed from the number with a
// weighted modulo-11 checksum. The package accepts the textual forms in
// common use ("17.951.585-7", "17951585-7", "179515857"), verifies the check
// digit on every construction path, and renders validated values back into
// any of those forms.
//
// # Features
//
//   - Parse and verify textual RUTs with or without thousands dots and dash
//   - Build a RUT from a bare number, computing its check digit
//   - Generate random valid RUTs for fixtures and test data
//   - Render in three formats: dots (17.951.585-7), dash (17951585-7),
//     and none (179515857)
//   - Privacy masking that keeps only the trailing digits readable
//   - Text marshaling so Rut fields round-trip through encoding/json
//   - Standalone CheckDigit function for callers that only need the DV
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/rutkit"
//
// Parse and validate user input:
//
//	rut, err := rutkit.Parse("17.951.585-7")
//	if err != nil {
//		// errors.Is(err, rutkit.ErrInvalidFormat), rutkit.ErrInvalidDV,
//		// or rutkit.ErrOutOfRange tells the three cases apart
//	}
//	fmt.Println(rut.Number()) // 17951585
//	fmt.Println(rut)          // 17951585-7
//
// Build from a number when no check digit is known yet:
//
//	rut, err := rutkit.FromNumber(24136773)
//	fmt.Println(rut) // 24136773-8
//
// Generate test data:
//
//	rut := rutkit.Randomize()
//	fmt.Println(rut.Render(rutkit.FormatDots))
//
// # Validity
//
// A Rut value always satisfies its invariant: the check digit equals the
// modulo-11 checksum of the number, and the number lies in the half-open
// interval [MinNumber, MaxNumber). There is no way to construct a Rut with
// a mismatched pair; parsing, decoding, and number-based construction all
// verify before returning.
//
// # Error Handling
//
// Fallible entry points return one of three mutually exclusive errors:
// ErrInvalidFormat (the text does not look like a RUT), ErrOutOfRange (the
// number falls outside the accepted interval), or a *DVError carrying the
// expected and claimed check digits, which matches ErrInvalidDV under
// errors.Is. Nothing in the package panics except MustParse, by contract.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Validation and formatting are
// pure; Randomize draws from a mutex-guarded package source unless the
// caller injects one with WithRand.
package rutkit
