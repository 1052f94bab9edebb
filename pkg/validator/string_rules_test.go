package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigs/go-mod-validators/pkg/validator"
)

func TestValidateString(t *testing.T) {
	t.Run("passes within bounds", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("abcd").
			SetMin(3).
			SetMax(5).
			ValidateString()
		assert.NoError(t, err)
	})

	t.Run("bounds are inclusive on both ends", func(t *testing.T) {
		for _, value := range []string{"abc", "abcde"} {
			err := validator.New("username").
				SetStringValue(value).
				SetMin(3).
				SetMax(5).
				ValidateString()
			assert.NoError(t, err, "value %q", value)
		}
	})

	t.Run("fails below minimum", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("ab").
			SetMin(3).
			SetMax(5).
			ValidateString()

		verrs := requireKind(t, err, validator.KindTooShort)
		require.Len(t, verrs, 1)
		assert.Equal(t, "username", verrs[0].Field)
		assert.Equal(t, "must be at least 3 characters long", verrs[0].Message)
		assert.Equal(t, "validation.min_length", verrs[0].TranslationKey)
		assert.Equal(t, map[string]any{"field": "username", "min": 3}, verrs[0].TranslationValues)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("abcdef").
			SetMin(3).
			SetMax(5).
			ValidateString()

		verrs := requireKind(t, err, validator.KindTooLong)
		assert.Equal(t, "validation.max_length", verrs[0].TranslationKey)
	})

	t.Run("min check runs before max check", func(t *testing.T) {
		// Only one bound can fail at a time, but ordering must be stable:
		// a too-short value against both bounds reports TooShort.
		err := validator.New("code").
			SetStringValue("a").
			SetMin(2).
			SetMax(4).
			ValidateString()
		requireKind(t, err, validator.KindTooShort)
	})

	t.Run("length is measured in characters, not bytes", func(t *testing.T) {
		// Five runes, fifteen bytes.
		err := validator.New("name").
			SetStringValue("日本語のあ").
			SetMin(5).
			SetMax(5).
			ValidateString()
		assert.NoError(t, err)
	})

	t.Run("present empty string fails the minimum bound", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("").
			SetMin(3).
			SetMax(5).
			ValidateString()
		requireKind(t, err, validator.KindTooShort)
	})

	t.Run("whitespace runes count toward the bounds untrimmed", func(t *testing.T) {
		err := validator.New("username").
			SetStringValue("   ").
			SetMin(4).
			ValidateString()
		requireKind(t, err, validator.KindTooShort)

		assert.NoError(t, validator.New("username").
			SetStringValue("   ").
			SetMin(3).
			ValidateString())
	})

	t.Run("no bounds configured passes any present value", func(t *testing.T) {
		err := validator.New("bio").SetStringValue("anything at all").ValidateString()
		assert.NoError(t, err)
	})

	t.Run("property: succeeds iff rune count within bounds", func(t *testing.T) {
		for runes := 0; runes <= 8; runes++ {
			value := ""
			for i := 0; i < runes; i++ {
				value += "ü"
			}

			err := validator.New("field").
				SetStringValue(value).
				SetMin(3).
				SetMax(5).
				ValidateString()

			if runes >= 3 && runes <= 5 {
				assert.NoError(t, err, "%d runes", runes)
			} else {
				assert.Error(t, err, fmt.Sprintf("%d runes", runes))
			}
		}
	})
}

func TestValidateName(t *testing.T) {
	t.Run("accepts letters, spaces, hyphens and apostrophes", func(t *testing.T) {
		for _, name := range []string{
			"John",
			"Mary Jane",
			"Jean-Luc",
			"O'Brien",
			"José García",
			"Åsa Öberg",
		} {
			err := validator.New("name").SetStringValue(name).ValidateName()
			assert.NoError(t, err, "name %q", name)
		}
	})

	t.Run("rejects digits and punctuation", func(t *testing.T) {
		for _, name := range []string{
			"John123",
			"jane.doe",
			"a@b",
			"semi;colon",
		} {
			err := validator.New("name").SetStringValue(name).ValidateName()
			verrs := requireKind(t, err, validator.KindInvalidFormat)
			assert.Equal(t, "validation.name", verrs[0].TranslationKey)
		}
	})

	t.Run("length checks run before the format check", func(t *testing.T) {
		err := validator.New("name").
			SetStringValue("1").
			SetMin(2).
			ValidateName()
		verrs := requireKind(t, err, validator.KindTooShort)
		assert.False(t, verrs.HasKind(validator.KindInvalidFormat))
	})

	t.Run("required and absent", func(t *testing.T) {
		err := validator.New("name").
			SetNullableStringValue(nil).
			SetAsRequired(true).
			ValidateName()
		requireKind(t, err, validator.KindRequired)
	})
}
