package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"vegfeedback/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("register: %w", apperrors.Conflict("Email already registered"))

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.False(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "Email already registered", apperrors.Message(err, "fallback"))
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", apperrors.Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", apperrors.Message(apperrors.ErrNotFound, "fallback"))
}
