package apperrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkim-dev/budget_tracker_app/internal/apperrors"
)

func TestAppError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewAppError(500, "failed to begin transaction", cause)

	assert.Equal(t, "failed to begin transaction: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
}

func TestAppError_NoCause(t *testing.T) {
	err := apperrors.NewAppError(503, "storage unavailable", nil)

	assert.Equal(t, "storage unavailable", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestAppError_AsThroughWrapping(t *testing.T) {
	inner := apperrors.NewAppError(500, "failed to commit transaction", errors.New("broken pipe"))
	wrapped := errors.Join(errors.New("failed to delete user"), inner)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 500, appErr.Code)
}
