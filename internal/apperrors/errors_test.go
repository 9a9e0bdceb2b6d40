package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("%w: company c-1", apperrors.ErrNotFound)
	err := apperrors.NewAppError(404, "failed to load company", cause)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "failed to load company: resource not found: company c-1", err.Error())

	var appErr *apperrors.AppError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, 404, appErr.Code)
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(500, "boom", nil)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
