package validator

import (
	"strings"
	"unicode/utf8"
)

type valueKind uint8

const (
	valueNone valueKind = iota
	valueString
	valueInt32
	valueInt64
	valueFloat32
	valueFloat64
)

func (k valueKind) String() string {
	switch k {
	case valueString:
		return "string"
	case valueInt32:
		return "int32"
	case valueInt64:
		return "int64"
	case valueFloat32:
		return "float32"
	case valueFloat64:
		return "float64"
	default:
		return "none"
	}
}

// Builder accumulates constraints for a single field and evaluates them
// through one terminal Validate* call. A Builder is created fresh per
// validation, mutated only through setters, and read-only during evaluation,
// so calling the same terminal method twice yields identical results.
//
// Setters never validate; everything is deferred to the terminal call.
// Calling a setter twice overwrites the previous value.
type Builder struct {
	field         string
	parent        string
	min           *int
	max           *int
	fmin          *float64
	fmax          *float64
	length        *int
	options       []string
	optionsLower  bool
	caseSensitive bool
	required      bool
	nullable      bool
	policy        PasswordPolicy

	kind    valueKind
	present bool
	str     string
	i64     int64
	f64     float64
}

// New creates a Builder for the named field. The field name appears in every
// error the builder produces.
func New(field string) *Builder {
	return &Builder{
		field:         field,
		caseSensitive: true,
		policy:        DefaultPasswordPolicy(),
	}
}

// SetAsRequired marks the field as mandatory. A required field with an
// absent or blank value fails with KindRequired before any other check runs.
func (b *Builder) SetAsRequired(required bool) *Builder {
	b.required = required
	return b
}

// SetAsNullable allows an absent value even when the field is required.
// Nullable wins over required when both are set and the value is absent.
func (b *Builder) SetAsNullable(nullable bool) *Builder {
	b.nullable = nullable
	return b
}

// SetAsCaseSensitive controls option-list membership comparison. Default is
// case-sensitive; a pre-lowercased option list overrides this flag.
func (b *Builder) SetAsCaseSensitive(caseSensitive bool) *Builder {
	b.caseSensitive = caseSensitive
	return b
}

// SetMin sets the lower bound: minimum character count for string
// evaluators, minimum value for integer evaluators.
func (b *Builder) SetMin(min int) *Builder {
	b.min = &min
	return b
}

// SetMax sets the upper bound: maximum character count for string
// evaluators, maximum value for integer evaluators.
func (b *Builder) SetMax(max int) *Builder {
	b.max = &max
	return b
}

// SetFMin sets the minimum value for float evaluators.
func (b *Builder) SetFMin(fmin float64) *Builder {
	b.fmin = &fmin
	return b
}

// SetFMax sets the maximum value for float evaluators.
func (b *Builder) SetFMax(fmax float64) *Builder {
	b.fmax = &fmax
	return b
}

// SetLen sets an exact length constraint. The Base64 evaluator matches it
// against the decoded byte count, not the encoded string length.
func (b *Builder) SetLen(length int) *Builder {
	b.length = &length
	return b
}

// SetParentLabel contextualizes option-list error messages, e.g. a parent
// label of "user management" yields "… within user management".
func (b *Builder) SetParentLabel(parent string) *Builder {
	b.parent = parent
	return b
}

// SetOptionList sets the allowed values for the list evaluators, preserving
// their case. Membership comparison honors SetAsCaseSensitive.
func (b *Builder) SetOptionList(options []string) *Builder {
	b.options = make([]string, len(options))
	copy(b.options, options)
	b.optionsLower = false
	return b
}

// SetOptionListLower sets the allowed values converted to lowercase. The
// input is always folded before comparison, regardless of the
// case-sensitivity flag.
func (b *Builder) SetOptionListLower(options []string) *Builder {
	b.options = make([]string, len(options))
	for i, option := range options {
		b.options[i] = strings.ToLower(option)
	}
	b.optionsLower = true
	return b
}

// SetPasswordPolicy overrides the default password length policy used by the
// password evaluators.
func (b *Builder) SetPasswordPolicy(policy PasswordPolicy) *Builder {
	b.policy = policy
	return b
}

// SetStringValue sets the subject value as a present string.
func (b *Builder) SetStringValue(value string) *Builder {
	b.kind = valueString
	b.present = true
	b.str = value
	return b
}

// SetStringValueLower sets the subject value lowercased before any
// evaluation, for callers that normalize input at the boundary.
func (b *Builder) SetStringValueLower(value string) *Builder {
	return b.SetStringValue(strings.ToLower(value))
}

// SetNullableStringValue sets the subject from an optional source; nil marks
// the value absent, which is distinct from an empty string.
func (b *Builder) SetNullableStringValue(value *string) *Builder {
	b.kind = valueString
	if value == nil {
		b.present = false
		b.str = ""
		return b
	}
	return b.SetStringValue(*value)
}

// SetInt32Value sets the subject value as a present int32.
func (b *Builder) SetInt32Value(value int32) *Builder {
	b.kind = valueInt32
	b.present = true
	b.i64 = int64(value)
	return b
}

// SetNullableInt32Value sets the subject from an optional int32; nil marks
// the value absent.
func (b *Builder) SetNullableInt32Value(value *int32) *Builder {
	b.kind = valueInt32
	if value == nil {
		b.present = false
		b.i64 = 0
		return b
	}
	return b.SetInt32Value(*value)
}

// SetInt64Value sets the subject value as a present int64.
func (b *Builder) SetInt64Value(value int64) *Builder {
	b.kind = valueInt64
	b.present = true
	b.i64 = value
	return b
}

// SetNullableInt64Value sets the subject from an optional int64; nil marks
// the value absent.
func (b *Builder) SetNullableInt64Value(value *int64) *Builder {
	b.kind = valueInt64
	if value == nil {
		b.present = false
		b.i64 = 0
		return b
	}
	return b.SetInt64Value(*value)
}

// SetFloat32Value sets the subject value as a present float32.
func (b *Builder) SetFloat32Value(value float32) *Builder {
	b.kind = valueFloat32
	b.present = true
	b.f64 = float64(value)
	return b
}

// SetNullableFloat32Value sets the subject from an optional float32; nil
// marks the value absent.
func (b *Builder) SetNullableFloat32Value(value *float32) *Builder {
	b.kind = valueFloat32
	if value == nil {
		b.present = false
		b.f64 = 0
		return b
	}
	return b.SetFloat32Value(*value)
}

// SetFloat64Value sets the subject value as a present float64.
func (b *Builder) SetFloat64Value(value float64) *Builder {
	b.kind = valueFloat64
	b.present = true
	b.f64 = value
	return b
}

// SetNullableFloat64Value sets the subject from an optional float64; nil
// marks the value absent.
func (b *Builder) SetNullableFloat64Value(value *float64) *Builder {
	b.kind = valueFloat64
	if value == nil {
		b.present = false
		b.f64 = 0
		return b
	}
	return b.SetFloat64Value(*value)
}

// runeLen measures string length in Unicode scalar count, not bytes.
func (b *Builder) runeLen() int {
	return utf8.RuneCountInString(b.str)
}

// configError rejects programmer errors before evaluation: calling a
// terminal method whose value setter was never invoked, or inverted bounds.
func (b *Builder) configError(want valueKind) error {
	if b.kind != want {
		return ValidationErrors{b.misconfigured("no " + want.String() + " value set, got " + b.kind.String())}
	}
	if b.min != nil && b.max != nil && *b.min > *b.max {
		return ValidationErrors{b.misconfigured("min bound greater than max bound")}
	}
	if b.fmin != nil && b.fmax != nil && *b.fmin > *b.fmax {
		return ValidationErrors{b.misconfigured("fmin bound greater than fmax bound")}
	}
	return nil
}

func (b *Builder) misconfigured(detail string) ValidationError {
	return ValidationError{
		Kind:           KindMisconfigured,
		Field:          b.field,
		Detail:         detail,
		Message:        "validator misconfigured: " + detail,
		TranslationKey: "validation.misconfigured",
		TranslationValues: map[string]any{
			"field":  b.field,
			"detail": detail,
		},
	}
}

// checkRequired handles the absent-value tie-breaks shared by every
// evaluator. The returned skip flag means evaluation is finished: either the
// value is absent and optional (valid), or the required error is returned.
// Blank strings count as absent for the required decision only; a present
// blank value on an optional field still runs the remaining rules, so length
// bounds reject empty and whitespace-only input.
func (b *Builder) checkRequired() (skip bool, err error) {
	blank := !b.present
	if b.kind == valueString && strings.TrimSpace(b.str) == "" {
		blank = true
	}

	if blank && b.required && !b.nullable {
		return true, ValidationErrors{b.requiredError()}
	}
	if !b.present {
		return true, nil
	}
	return false, nil
}

func (b *Builder) requiredError() ValidationError {
	return ValidationError{
		Kind:           KindRequired,
		Field:          b.field,
		Message:        "field is required",
		TranslationKey: "validation.required",
		TranslationValues: map[string]any{
			"field": b.field,
		},
	}
}
