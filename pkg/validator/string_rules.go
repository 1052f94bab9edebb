package validator

import (
	"fmt"
	"regexp"
)

// nameRegex allows letters of any script, spaces, hyphens, apostrophes and
// the katakana middle dot.
var nameRegex = regexp.MustCompile(`^[\p{L} \-・']+$`)

// ValidateString checks the required flag and the configured length bounds,
// in that order, stopping at the first failure. Length is measured in
// Unicode scalar count, not bytes.
func (b *Builder) ValidateString() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	return First(
		b.minLenRule(),
		b.maxLenRule(),
	)
}

// ValidateName is ValidateString plus a format check restricting the value
// to name characters: letters, spaces, hyphens and apostrophes. Length
// checks run first.
func (b *Builder) ValidateName() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	return First(
		b.minLenRule(),
		b.maxLenRule(),
		Rule{
			Check: func() bool {
				return nameRegex.MatchString(b.str)
			},
			Error: ValidationError{
				Kind:           KindInvalidFormat,
				Field:          b.field,
				Message:        "must contain only letters, spaces, hyphens and apostrophes",
				TranslationKey: "validation.name",
				TranslationValues: map[string]any{
					"field": b.field,
				},
			},
		},
	)
}

func (b *Builder) minLenRule() Rule {
	return Rule{
		Check: func() bool {
			return b.min == nil || b.runeLen() >= *b.min
		},
		Error: ValidationError{
			Kind:           KindTooShort,
			Field:          b.field,
			Message:        fmt.Sprintf("must be at least %d characters long", deref(b.min)),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": b.field,
				"min":   deref(b.min),
			},
		},
	}
}

func (b *Builder) maxLenRule() Rule {
	return Rule{
		Check: func() bool {
			return b.max == nil || b.runeLen() <= *b.max
		},
		Error: ValidationError{
			Kind:           KindTooLong,
			Field:          b.field,
			Message:        fmt.Sprintf("must be at most %d characters long", deref(b.max)),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": b.field,
				"max":   deref(b.max),
			},
		},
	}
}

// deref avoids nil checks when building error metadata for rules whose
// Check already passes on an unset bound.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
