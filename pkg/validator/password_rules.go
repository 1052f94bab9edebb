package validator

import (
	"fmt"
	"regexp"

	"github.com/enigs/go-mod-validators/pkg/config"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// PasswordPolicy holds the length bounds applied by the password evaluators.
// The env tags allow deployments to tune the policy through pkg/config
// without code changes.
type PasswordPolicy struct {
	MinLength int `env:"VALIDATOR_PASSWORD_MIN_LENGTH" envDefault:"8"`
	MaxLength int `env:"VALIDATOR_PASSWORD_MAX_LENGTH" envDefault:"64"`
}

// DefaultPasswordPolicy returns the built-in policy: 8-64 characters.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 8,
		MaxLength: 64,
	}
}

// LoadPasswordPolicy loads the policy from the environment through the
// config loader. Unset variables fall back to the env tag defaults; on a
// parse failure the built-in defaults are returned alongside the error.
//
//	policy, err := validator.LoadPasswordPolicy()
//	if err != nil {
//	    // handle error
//	}
//	err = validator.New("password").
//	    SetStringValue(input).
//	    SetPasswordPolicy(policy).
//	    ValidatePasswordStrict()
func LoadPasswordPolicy() (PasswordPolicy, error) {
	var policy PasswordPolicy
	if err := config.Load(&policy); err != nil {
		return DefaultPasswordPolicy(), err
	}
	return policy, nil
}

// ValidatePasswordSimple checks the required flag, then the minimum length.
// SetMin overrides the policy default. Single-error, short-circuit.
func (b *Builder) ValidatePasswordSimple() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	min := b.policy.MinLength
	if b.min != nil {
		min = *b.min
	}

	return First(Rule{
		Check: func() bool {
			return b.runeLen() >= min
		},
		Error: ValidationError{
			Kind:           KindTooShort,
			Field:          b.field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": b.field,
				"min":   min,
			},
		},
	})
}

// ValidatePasswordStrict checks the required flag, short-circuiting on
// failure, then runs every complexity rule independently and accumulates
// each unmet one: length bounds, uppercase, lowercase, digit and symbol
// presence. This is the one evaluator that reports multiple errors so a
// caller can surface every deficiency at once.
func (b *Builder) ValidatePasswordStrict() error {
	if err := b.configError(valueString); err != nil {
		return err
	}
	if skip, err := b.checkRequired(); skip {
		return err
	}

	min := b.policy.MinLength
	if b.min != nil {
		min = *b.min
	}
	max := b.policy.MaxLength
	if b.max != nil {
		max = *b.max
	}

	return Apply(
		Rule{
			Check: func() bool {
				return b.runeLen() >= min
			},
			Error: ValidationError{
				Kind:           KindPasswordTooShort,
				Field:          b.field,
				Message:        fmt.Sprintf("must be at least %d characters long", min),
				TranslationKey: "validation.password_min_length",
				TranslationValues: map[string]any{
					"field": b.field,
					"min":   min,
				},
			},
		},
		Rule{
			Check: func() bool {
				return b.runeLen() <= max
			},
			Error: ValidationError{
				Kind:           KindPasswordTooLong,
				Field:          b.field,
				Message:        fmt.Sprintf("must be at most %d characters long", max),
				TranslationKey: "validation.password_max_length",
				TranslationValues: map[string]any{
					"field": b.field,
					"max":   max,
				},
			},
		},
		Rule{
			Check: func() bool {
				return uppercaseRegex.MatchString(b.str)
			},
			Error: ValidationError{
				Kind:           KindMissingUppercase,
				Field:          b.field,
				Message:        "must contain at least one uppercase letter",
				TranslationKey: "validation.password_uppercase",
				TranslationValues: map[string]any{
					"field": b.field,
				},
			},
		},
		Rule{
			Check: func() bool {
				return lowercaseRegex.MatchString(b.str)
			},
			Error: ValidationError{
				Kind:           KindMissingLowercase,
				Field:          b.field,
				Message:        "must contain at least one lowercase letter",
				TranslationKey: "validation.password_lowercase",
				TranslationValues: map[string]any{
					"field": b.field,
				},
			},
		},
		Rule{
			Check: func() bool {
				return digitRegex.MatchString(b.str)
			},
			Error: ValidationError{
				Kind:           KindMissingDigit,
				Field:          b.field,
				Message:        "must contain at least one digit",
				TranslationKey: "validation.password_digit",
				TranslationValues: map[string]any{
					"field": b.field,
				},
			},
		},
		Rule{
			Check: func() bool {
				return specialCharRegex.MatchString(b.str)
			},
			Error: ValidationError{
				Kind:           KindMissingSymbol,
				Field:          b.field,
				Message:        "must contain at least one special character",
				TranslationKey: "validation.password_special",
				TranslationValues: map[string]any{
					"field": b.field,
				},
			},
		},
	)
}
