package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigs/go-mod-validators/pkg/validator"
)

func requireKind(t *testing.T, err error, kind validator.Kind) validator.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	require.True(t, verrs.HasKind(kind), "expected kind %s, got %v", kind, verrs)
	return verrs
}

func TestBuilderMisconfiguration(t *testing.T) {
	t.Run("terminal call without any value setter", func(t *testing.T) {
		err := validator.New("username").ValidateString()
		verrs := requireKind(t, err, validator.KindMisconfigured)
		assert.Equal(t, "username", verrs[0].Field)
	})

	t.Run("terminal call for the wrong value type", func(t *testing.T) {
		err := validator.New("age").SetStringValue("18").ValidateInt32()
		requireKind(t, err, validator.KindMisconfigured)
	})

	t.Run("int32 and int64 setters are distinct types", func(t *testing.T) {
		err := validator.New("age").SetInt64Value(18).ValidateInt32()
		requireKind(t, err, validator.KindMisconfigured)
	})

	t.Run("inverted length bounds rejected at terminal call", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("abc").
			SetMin(10).
			SetMax(3).
			ValidateString()
		requireKind(t, err, validator.KindMisconfigured)
	})

	t.Run("inverted float bounds rejected at terminal call", func(t *testing.T) {
		err := validator.New("price").
			SetFloat64Value(1).
			SetFMin(9.5).
			SetFMax(0.5).
			ValidateFloat64()
		requireKind(t, err, validator.KindMisconfigured)
	})

	t.Run("misconfiguration outranks required", func(t *testing.T) {
		err := validator.New("username").SetAsRequired(true).ValidateString()
		verrs := requireKind(t, err, validator.KindMisconfigured)
		assert.False(t, verrs.HasKind(validator.KindRequired))
	})
}

func TestBuilderSetters(t *testing.T) {
	t.Run("setters overwrite with last write wins", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("abcdef").
			SetMin(10).
			SetMin(2).
			ValidateString()
		assert.NoError(t, err)
	})

	t.Run("value setters overwrite prior values", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("x").
			SetStringValue("abcdef").
			SetMin(3).
			ValidateString()
		assert.NoError(t, err)
	})

	t.Run("nullable setter with nil marks value absent", func(t *testing.T) {
		err := validator.New("nickname").
			SetNullableStringValue(nil).
			SetMin(3).
			ValidateString()
		assert.NoError(t, err)
	})

	t.Run("nullable setter with value behaves like plain setter", func(t *testing.T) {
		value := "ab"
		err := validator.New("nickname").
			SetNullableStringValue(&value).
			SetMin(3).
			ValidateString()
		requireKind(t, err, validator.KindTooShort)
	})

	t.Run("SetStringValueLower folds before evaluation", func(t *testing.T) {
		err := validator.New("role").
			SetStringValueLower("ADMIN").
			SetOptionList([]string{"admin", "user"}).
			ValidateListString()
		assert.NoError(t, err)
	})
}

func TestRequiredNullableTieBreaks(t *testing.T) {
	t.Run("absent and not required is valid for every evaluator", func(t *testing.T) {
		checks := map[string]func() error{
			"string": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetMin(3).ValidateString()
			},
			"name": func() error {
				return validator.New("f").SetNullableStringValue(nil).ValidateName()
			},
			"email": func() error {
				return validator.New("f").SetNullableStringValue(nil).ValidateEmail()
			},
			"base64": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetLen(64).ValidateBase64Bytes()
			},
			"int32": func() error {
				return validator.New("f").SetNullableInt32Value(nil).SetMin(1).ValidateInt32()
			},
			"int64": func() error {
				return validator.New("f").SetNullableInt64Value(nil).SetMax(1).ValidateInt64()
			},
			"float32": func() error {
				return validator.New("f").SetNullableFloat32Value(nil).SetFMin(0.5).ValidateFloat32()
			},
			"float64": func() error {
				return validator.New("f").SetNullableFloat64Value(nil).SetFMax(0.5).ValidateFloat64()
			},
			"password simple": func() error {
				return validator.New("f").SetNullableStringValue(nil).ValidatePasswordSimple()
			},
			"password strict": func() error {
				return validator.New("f").SetNullableStringValue(nil).ValidatePasswordStrict()
			},
			"list string": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetOptionList([]string{"a"}).ValidateListString()
			},
			"list options": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetOptionList([]string{"a"}).ValidateListOptions()
			},
		}

		for name, check := range checks {
			t.Run(name, func(t *testing.T) {
				assert.NoError(t, check())
			})
		}
	})

	t.Run("absent and required yields exactly Required", func(t *testing.T) {
		checks := map[string]func() error{
			"string": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetAsRequired(true).SetMin(3).ValidateString()
			},
			"email": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetAsRequired(true).ValidateEmail()
			},
			"base64": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetAsRequired(true).SetLen(64).ValidateBase64Bytes()
			},
			"int32": func() error {
				return validator.New("f").SetNullableInt32Value(nil).SetAsRequired(true).SetMin(1).ValidateInt32()
			},
			"float64": func() error {
				return validator.New("f").SetNullableFloat64Value(nil).SetAsRequired(true).SetFMin(1).ValidateFloat64()
			},
			"password strict": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetAsRequired(true).ValidatePasswordStrict()
			},
			"list string": func() error {
				return validator.New("f").SetNullableStringValue(nil).SetAsRequired(true).SetOptionList([]string{"a"}).ValidateListString()
			},
		}

		for name, check := range checks {
			t.Run(name, func(t *testing.T) {
				verrs := requireKind(t, check(), validator.KindRequired)
				assert.Len(t, verrs, 1, "required must short-circuit all other checks")
			})
		}
	})

	t.Run("nullable wins over required for absent values", func(t *testing.T) {
		err := validator.New("middle_name").
			SetNullableStringValue(nil).
			SetAsRequired(true).
			SetAsNullable(true).
			ValidateString()
		assert.NoError(t, err)
	})

	t.Run("blank string counts as absent for the required check", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("   ").
			SetAsRequired(true).
			ValidateString()
		requireKind(t, err, validator.KindRequired)
	})
}

func TestTerminalCallIdempotence(t *testing.T) {
	t.Run("repeated terminal calls yield identical results", func(t *testing.T) {
		b := validator.New("password").
			SetStringValue("abc").
			SetAsRequired(true)

		first := b.ValidatePasswordStrict()
		second := b.ValidatePasswordStrict()

		require.Error(t, first)
		require.Error(t, second)
		assert.Equal(t,
			validator.ExtractValidationErrors(first),
			validator.ExtractValidationErrors(second))
	})

	t.Run("success stays success", func(t *testing.T) {
		b := validator.New("username").
			SetStringValue("hello").
			SetMin(3).
			SetMax(5)

		assert.NoError(t, b.ValidateString())
		assert.NoError(t, b.ValidateString())
	})
}
