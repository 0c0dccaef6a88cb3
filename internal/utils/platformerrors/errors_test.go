package platformerrors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorGeneratesUUIDAndCapturesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	err := NewError(ctx, LayerDomain, ErrorTypeNotFound, "model missing", nil, "")
	assert.NotEmpty(t, err.GetUUID())
	assert.Equal(t, "req-123", err.GetRequestID())
	assert.Equal(t, ErrorTypeNotFound, err.GetErrorType())

	custom := NewError(ctx, LayerDomain, ErrorTypeInternal, "boom", nil, "fixed-uuid")
	assert.Equal(t, "fixed-uuid", custom.GetUUID())
}

func TestAsErrorPreservesPlatformErrorIdentity(t *testing.T) {
	ctx := context.Background()
	inner := NewError(ctx, LayerDomain, ErrorTypeValidation, "bad seed", nil, "inner-uuid")

	wrapped := AsError(ctx, LayerHandler, inner, "handle request")
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorTypeValidation, wrapped.Type, "wrapping keeps the original type")
	assert.Equal(t, "inner-uuid", wrapped.UUID)
	assert.True(t, errors.Is(wrapped, inner))

	plain := AsError(ctx, LayerHandler, errors.New("plain"), "handle request")
	assert.Equal(t, ErrorTypeInternal, plain.Type)

	assert.Nil(t, AsError(ctx, LayerHandler, nil, "nothing"))
}

func TestIsErrorTypeAndExtraction(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("not found in registry")
	err := NewError(ctx, LayerDomain, ErrorTypeNotFound, "missing", sentinel, "")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeNotFound))
	assert.False(t, IsErrorType(nil, ErrorTypeNotFound))

	assert.True(t, errors.Is(err, sentinel), "wrapped sentinel stays reachable")
	assert.NotNil(t, GetPlatformError(err))
	assert.Nil(t, GetPlatformError(errors.New("plain")))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrorTypeToHTTPStatus(ErrorTypeNotFound))
	assert.Equal(t, http.StatusBadRequest, ErrorTypeToHTTPStatus(ErrorTypeValidation))
	assert.Equal(t, http.StatusGatewayTimeout, ErrorTypeToHTTPStatus(ErrorTypeTimeout))
	assert.Equal(t, http.StatusBadGateway, ErrorTypeToHTTPStatus(ErrorTypeExternal))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorTypeInternal))
	assert.Equal(t, http.StatusInternalServerError, ErrorTypeToHTTPStatus(ErrorType("unknown")))
}
