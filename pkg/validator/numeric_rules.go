package validator

import "fmt"

// Numeric is the generic constraint shared by the integer and float
// evaluators; both are the same bounds check over an ordered numeric type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidateInt32 checks the required flag and the min/max bounds against the
// int32 value.
func (b *Builder) ValidateInt32() error {
	return b.validateIntBounds(valueInt32)
}

// ValidateInt64 checks the required flag and the min/max bounds against the
// int64 value.
func (b *Builder) ValidateInt64() error {
	return b.validateIntBounds(valueInt64)
}

// ValidateFloat32 checks the required flag and the fmin/fmax bounds against
// the float32 value.
func (b *Builder) ValidateFloat32() error {
	return b.validateFloatBounds(valueFloat32)
}

// ValidateFloat64 checks the required flag and the fmin/fmax bounds against
// the float64 value.
func (b *Builder) ValidateFloat64() error {
	return b.validateFloatBounds(valueFloat64)
}

func (b *Builder) validateIntBounds(kind valueKind) error {
	if err := b.configError(kind); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	var min, max *int64
	if b.min != nil {
		v := int64(*b.min)
		min = &v
	}
	if b.max != nil {
		v := int64(*b.max)
		max = &v
	}
	return checkRange(b.field, b.i64, min, max)
}

func (b *Builder) validateFloatBounds(kind valueKind) error {
	if err := b.configError(kind); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}
	return checkRange(b.field, b.f64, b.fmin, b.fmax)
}

// checkRange applies the ordered min/max checks shared by every numeric
// evaluator. Unset bounds pass.
func checkRange[T Numeric](field string, value T, min, max *T) error {
	return First(
		Rule{
			Check: func() bool {
				return min == nil || value >= *min
			},
			Error: ValidationError{
				Kind:           KindTooSmall,
				Field:          field,
				Message:        fmt.Sprintf("must be at least %v", deref(min)),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"field": field,
					"min":   deref(min),
				},
			},
		},
		Rule{
			Check: func() bool {
				return max == nil || value <= *max
			},
			Error: ValidationError{
				Kind:           KindTooLarge,
				Field:          field,
				Message:        fmt.Sprintf("must be at most %v", deref(max)),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"field": field,
					"max":   deref(max),
				},
			},
		},
	)
}
