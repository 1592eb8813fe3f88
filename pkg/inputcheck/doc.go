// Package inputcheck is the validation engine behind user-input checks: it
// classifies raw text, verifies digit strings against a numeral base, checks
// numbers against closed intervals, enforces Latin or Cyrillic alphabet and
// casing policies, and matches strings against full-string regular
// expressions.
//
// Every exported function is pure. The only package-level state is the set
// of alphabet and pattern tables which are built once during package
// initialisation and never mutated afterwards, so the package is safe for
// concurrent use without locking.
//
// # Architecture
//
// Each file covers one concern:
//
//   - alphabet.go – the four fixed alphabets (lower/upper Latin, lower/upper Cyrillic)
//   - content.go  – Classify, returning Number, Text or TextWithNumbers
//   - base.go     – IsBinary, IsOctal, IsDecimal, IsHexadecimal and CheckNumber
//   - range.go    – CheckRange over the generic Numeric constraint
//   - casing.go   – CheckCasing for the eight script/casing modes
//   - pattern.go  – the named pattern table and full-match helpers
//   - result.go   – Result, the valid/value pair returned by the checkers
//
// # Usage
//
//	res, err := inputcheck.CheckCasing("Привет", inputcheck.CyrillicTitle)
//	if err != nil {
//	    // contract violation: empty input or unknown mode
//	}
//	if v, ok := res.Value(); ok {
//	    fmt.Println("accepted", v)
//	}
//
//	if inputcheck.InRange(age, 18, 99).IsValid() {
//	    // ...
//	}
//
// # Error Handling
//
// Errors are reserved for contract violations (ErrEmptyInput,
// ErrUnsupportedType, ErrUnknownCasingMode, ErrUnknownBase, ErrUnknownPattern,
// ErrInvalidPattern) and can be matched with errors.Is. Input that is merely
// wrong is reported through an invalid Result or a false return value, never
// through an error.
package inputcheck
