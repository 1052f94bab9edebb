package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure. Kinds are stable identifiers that
// callers can branch on without parsing messages.
type Kind string

const (
	KindRequired       Kind = "required"
	KindTooShort       Kind = "too_short"
	KindTooLong        Kind = "too_long"
	KindTooSmall       Kind = "too_small"
	KindTooLarge       Kind = "too_large"
	KindInvalidFormat  Kind = "invalid_format"
	KindLengthMismatch Kind = "length_mismatch"
	KindNotInList      Kind = "not_in_list"

	// Strict-password sub-kinds, one per unmet complexity rule.
	KindPasswordTooShort Kind = "password_too_short"
	KindPasswordTooLong  Kind = "password_too_long"
	KindMissingUppercase Kind = "missing_uppercase"
	KindMissingLowercase Kind = "missing_lowercase"
	KindMissingDigit     Kind = "missing_digit"
	KindMissingSymbol    Kind = "missing_symbol"

	// KindMisconfigured reports a programmer error: a terminal Validate*
	// method was called for a value type that was never set, or the
	// configured bounds are inverted. It is never caused by input data.
	KindMisconfigured Kind = "misconfigured"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Kind              Kind
	Field             string
	Detail            string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
// A nil or empty collection means the value is valid.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
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

// HasKind reports whether any error in the collection carries the given kind.
func (ve ValidationErrors) HasKind(kind Kind) bool {
	for _, err := range ve {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

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
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

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

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes every rule and accumulates all failures. This is the
// evaluation mode of the strict password validator, where the caller needs
// the complete list of unmet rules at once.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First executes rules in order and stops at the first failure. All
// single-error evaluators short-circuit through this helper.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return ValidationErrors{rule.Error}
		}
	}
	return nil
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
