// Package validator turns the checks of package inputcheck into composable,
// field-aware rules whose failures aggregate into a single error carrying
// translation metadata.
//
// Every exported constructor returns a Rule: a Check function plus the
// ValidationError reported when the check fails. Rules are evaluated with
// Apply which collects failures into ValidationErrors, a slice type that
// satisfies the error interface.
//
// # Architecture
//
// Each source file groups the rules for one family of checks
// (`number_rules.go`, `numeric_rules.go`, `casing_rules.go`, etc.). The
// package keeps no state of its own; the only shared data are the read-only
// alphabet and pattern tables of inputcheck.
//
// Core building blocks:
//   - Rule              – Check func and error metadata
//   - ValidationError   – a single failure with an i18n key and values
//   - ValidationErrors  – slice type that implements the error interface
//   - Numeric           – generic constraint used by the range rules
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Casing("first_name", form.FirstName, inputcheck.CyrillicTitle),
//	    validator.NumberString("pin", form.PIN, 4, inputcheck.Decimal),
//	    validator.InRange("age", form.Age, 18, 120),
//	    validator.MatchesPattern("email", form.Email, inputcheck.PatternEmail),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // field-level messages, or translate with verrs[i].TranslationKey
//	} else if err != nil {
//	    // contract violation, e.g. inputcheck.ErrEmptyInput
//	}
//
// # Error Handling
//
// Two kinds of error leave Apply. ValidationErrors means the input was
// wrong; it matches ErrValidationFailed with errors.Is. Any other error is a
// contract violation raised by inputcheck (ErrEmptyInput, ErrUnknownBase,
// ErrUnknownCasingMode, ErrUnknownPattern, ErrInvalidPattern), wrapped with
// the field name. Apply stops at the first contract violation and never
// returns collected failures alongside it.
package validator
