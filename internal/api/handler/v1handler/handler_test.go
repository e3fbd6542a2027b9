package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"ipconv/internal/api/handler/v1handler"
	"ipconv/pkg/ipbin"
	"os"
	"testing"

	"ipconv/pkg/logger"
	"ipconv/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid noisy nil checks during tests
	logger.Setup(logger.DevelopmentEnvironment, "")
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_AdvisoryKinds(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{
			name:    "address format",
			err:     ipbin.ValidateAddress("1.2.3"),
			code:    "INVALID_ADDRESS_FORMAT",
			message: ipbin.AddressErrorMessage,
		},
		{
			name:    "binary length wrapped",
			err:     fmt.Errorf("could not convert binary: %w", ipbin.ValidateBinary("1")),
			code:    "INVALID_BINARY_LENGTH",
			message: ipbin.BinaryErrorMessage,
		},
		{
			name:    "binary chars sentinel",
			err:     ipbin.ErrInvalidBinaryChars,
			code:    "INVALID_BINARY_CHARS",
			message: ipbin.BinaryErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, 400, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing address")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing address", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_Timeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrTimeout))
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, "request timed out", res.Response.Message)
}

func TestNewError_UnknownKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.With(serrors.NewKind("SURPRISE"), "hidden detail"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}
