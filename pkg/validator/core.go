package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// Numeric is the constraint shared with the core range checker.
type Numeric = inputcheck.Numeric

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Args flattens TranslationValues into sorted key, value pairs suitable for
// i18n.Translator.T.
func (e ValidationError) Args() []string {
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
	}
	return args
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) detect validation failures.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the failed fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule. Check reports whether the value
// is valid; a non-nil error means the rule itself was misused (empty input,
// unknown mode) and is never collected as a validation failure.
type Rule struct {
	Check func() (bool, error)
	Error ValidationError
}

// Apply executes the rules in order. The first contract error aborts and is
// returned as is; otherwise all failures are collected into ValidationErrors.
func Apply(rules ...Rule) error {
	var failures ValidationErrors

	for _, rule := range rules {
		ok, err := rule.Check()
		if err != nil {
			return fmt.Errorf("%s: %w", rule.Error.Field, err)
		}
		if !ok {
			failures = append(failures, rule.Error)
		}
	}

	if failures.IsEmpty() {
		return nil
	}
	return failures
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

func check(ok bool) func() (bool, error) {
	return func() (bool, error) { return ok, nil }
}
