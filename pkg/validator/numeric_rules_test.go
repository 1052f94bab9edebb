package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigs/go-mod-validators/pkg/validator"
)

func TestValidateInt32(t *testing.T) {
	t.Run("passes within bounds", func(t *testing.T) {
		err := validator.New("age").
			SetInt32Value(21).
			SetMin(18).
			SetMax(120).
			ValidateInt32()
		assert.NoError(t, err)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, value := range []int32{18, 120} {
			err := validator.New("age").
				SetInt32Value(value).
				SetMin(18).
				SetMax(120).
				ValidateInt32()
			assert.NoError(t, err, "value %d", value)
		}
	})

	t.Run("fails below minimum", func(t *testing.T) {
		err := validator.New("age").
			SetInt32Value(15).
			SetMin(18).
			ValidateInt32()

		verrs := requireKind(t, err, validator.KindTooSmall)
		require.Len(t, verrs, 1)
		assert.Equal(t, "must be at least 18", verrs[0].Message)
		assert.Equal(t, "validation.min", verrs[0].TranslationKey)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		err := validator.New("age").
			SetInt32Value(200).
			SetMax(120).
			ValidateInt32()

		verrs := requireKind(t, err, validator.KindTooLarge)
		assert.Equal(t, "validation.max", verrs[0].TranslationKey)
	})

	t.Run("zero is a present value, not absent", func(t *testing.T) {
		err := validator.New("count").
			SetInt32Value(0).
			SetMin(1).
			ValidateInt32()
		requireKind(t, err, validator.KindTooSmall)
	})

	t.Run("negative bounds work", func(t *testing.T) {
		err := validator.New("offset").
			SetInt32Value(-5).
			SetMin(-10).
			SetMax(-1).
			ValidateInt32()
		assert.NoError(t, err)
	})

	t.Run("bounds apply even when not required", func(t *testing.T) {
		err := validator.New("age").
			SetInt32Value(15).
			SetAsRequired(false).
			SetMin(18).
			ValidateInt32()
		requireKind(t, err, validator.KindTooSmall)
	})
}

func TestValidateInt64(t *testing.T) {
	t.Run("passes within bounds", func(t *testing.T) {
		err := validator.New("size").
			SetInt64Value(1 << 33).
			SetMin(0).
			ValidateInt64()
		assert.NoError(t, err)
	})

	t.Run("fails above maximum", func(t *testing.T) {
		err := validator.New("size").
			SetInt64Value(101).
			SetMax(100).
			ValidateInt64()
		requireKind(t, err, validator.KindTooLarge)
	})
}

func TestValidateFloat32(t *testing.T) {
	t.Run("uses fmin and fmax bounds", func(t *testing.T) {
		err := validator.New("ratio").
			SetFloat32Value(0.5).
			SetFMin(0).
			SetFMax(1).
			ValidateFloat32()
		assert.NoError(t, err)
	})

	t.Run("fails below fmin", func(t *testing.T) {
		err := validator.New("ratio").
			SetFloat32Value(-0.1).
			SetFMin(0).
			ValidateFloat32()
		requireKind(t, err, validator.KindTooSmall)
	})
}

func TestValidateFloat64(t *testing.T) {
	t.Run("passes within bounds", func(t *testing.T) {
		err := validator.New("price").
			SetFloat64Value(19.99).
			SetFMin(0.01).
			SetFMax(999.99).
			ValidateFloat64()
		assert.NoError(t, err)
	})

	t.Run("fails above fmax", func(t *testing.T) {
		err := validator.New("price").
			SetFloat64Value(1000).
			SetFMax(999.99).
			ValidateFloat64()

		verrs := requireKind(t, err, validator.KindTooLarge)
		assert.Equal(t, map[string]any{"field": "price", "max": 999.99}, verrs[0].TranslationValues)
	})

	t.Run("integer bounds do not leak into float evaluation", func(t *testing.T) {
		// SetMin/SetMax configure string-length and integer bounds only.
		err := validator.New("price").
			SetFloat64Value(5).
			SetMin(10).
			ValidateFloat64()
		assert.NoError(t, err)
	})
}
