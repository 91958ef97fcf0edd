package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("WithDetails", func(t *testing.T) {
		err := NewAppError(CodeNotFound, "Recipe not found", "id 42")

		assert.Equal(t, "NOT_FOUND: Recipe not found (id 42)", err.Error())
	})

	t.Run("WithoutDetails", func(t *testing.T) {
		err := NewAppError(CodeInternal, "Boom", "")

		assert.Equal(t, "INTERNAL_ERROR: Boom", err.Error())
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewExternalServiceError("spoonacular", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeExternalServiceError, err.Code)
}

func TestAppError_WithMetadata(t *testing.T) {
	err := NewDeliveryUnavailableError("QuickCart")

	require.NotNil(t, err.Metadata)
	assert.Equal(t, "QuickCart", err.Metadata["provider"])
}

func TestWrap(t *testing.T) {
	t.Run("NilError_ReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "ignored"))
	})

	t.Run("AppError_ReturnedUnchanged", func(t *testing.T) {
		original := NewNotFoundError("recipe")

		assert.Same(t, original, Wrap(original, "ignored"))
	})

	t.Run("PlainError_WrappedAsInternal", func(t *testing.T) {
		cause := stderrors.New("oops")

		wrapped := Wrap(cause, "something failed")

		assert.Equal(t, CodeInternal, wrapped.Code)
		assert.ErrorIs(t, wrapped, cause)
	})
}

func TestIsAndGetCode(t *testing.T) {
	err := NewRecipeSourceError("fetch", stderrors.New("timeout"))

	assert.True(t, Is(err, CodeRecipeSourceError))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(stderrors.New("plain"), CodeNotFound))

	assert.Equal(t, CodeRecipeSourceError, GetCode(err))
	assert.Equal(t, CodeInternal, GetCode(stderrors.New("plain")))
}
