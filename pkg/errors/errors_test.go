package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		errType    ErrorType
		httpStatus int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("user"), ErrorTypeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError(""), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.True(t, IsType(tt.err, tt.errType))
		})
	}
}

func TestWrapPreservesAppError(t *testing.T) {
	err := Wrap(NewValidationError("self connection"), "connect users")

	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "connect users")
	assert.Contains(t, err.Error(), "self connection")
}

func TestWrapPlainError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, "write snapshot")

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "anything"))
}
