package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrNotFound))
	assert.True(t, IsAppError(NewBadRequestError("bad input")))
	assert.True(t, IsAppError(fmt.Errorf("wrapped: %w", ErrForbidden)))
	assert.False(t, IsAppError(errors.New("plain error")))
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(NewNotFoundError("Bill"))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Bill not found", appErr.Message)

	// Wrapped errors unwrap to the original AppError.
	appErr = GetAppError(fmt.Errorf("context: %w", ErrConflict))
	assert.Equal(t, http.StatusConflict, appErr.Code)

	// Unknown errors become internal server errors.
	appErr = GetAppError(errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "database exploded", appErr.Message)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError([]FieldError{{Field: "phone", Message: "required"}})
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Len(t, err.Errors, 1)
	assert.Equal(t, "phone", err.Errors[0].Field)
}
