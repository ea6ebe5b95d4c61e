package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_TypeAndStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		errType    ErrorType
		httpStatus int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("analysis"), ErrorTypeNotFound, http.StatusNotFound},
		{"unauthorized", NewUnauthorizedError("no token"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"rate limit", NewRateLimitError(100, "minute"), ErrorTypeRateLimit, http.StatusTooManyRequests},
		{"unavailable", NewUnavailableError("auth"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errType, tt.err.Type)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.StackTrace)
		})
	}
}

func TestNewNotFoundError_MessageFormat(t *testing.T) {
	err := NewNotFoundError("analysis")
	assert.Equal(t, "analysis not found", err.Message)
}

func TestNewUnauthorizedError_DefaultMessage(t *testing.T) {
	assert.Equal(t, "unauthorized", NewUnauthorizedError("").Message)
	assert.Equal(t, "token expired", NewUnauthorizedError("token expired").Message)
}

func TestAppError_ErrorString(t *testing.T) {
	plain := NewValidationError("day is required")
	assert.Equal(t, "VALIDATION: day is required", plain.Error())

	caused := NewInternalError("load failed").WithCause(errors.New("disk gone"))
	assert.Equal(t, "INTERNAL: load failed (caused by: disk gone)", caused.Error())
}

func TestAppError_BuilderChain(t *testing.T) {
	cause := errors.New("root")

	err := NewValidationError("invalid change records").
		WithCode("INVALID_RECORDS").
		WithDetails(map[string]interface{}{"records[0]": "day is required"}).
		WithCause(cause)

	assert.Equal(t, "INVALID_RECORDS", err.Code)
	assert.Equal(t, "day is required", err.Details["records[0]"])
	assert.Same(t, cause, err.Unwrap())
}

func TestTypePredicates_ThroughWrappedChains(t *testing.T) {
	// Predicates must see through fmt.Errorf %w wrapping
	base := NewNotFoundError("analysis")
	wrapped := fmt.Errorf("query failed: %w", base)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.True(t, IsAppError(wrapped))

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Same(t, base, got)
}

func TestGetAppError_PlainError(t *testing.T) {
	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
	})

	t.Run("app error keeps type, gains context", func(t *testing.T) {
		err := Wrap(NewValidationError("day is required"), "analyze records")

		appErr := GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrorTypeValidation, appErr.Type)
		assert.Equal(t, "analyze records: day is required", appErr.Message)
	})

	t.Run("plain error becomes internal with cause", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := Wrap(cause, "load records")

		appErr := GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrorTypeInternal, appErr.Type)
		assert.Equal(t, "load records", appErr.Message)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errors.New("no such file"), "open %s", "records.json")

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "open records.json", appErr.Message)
}
