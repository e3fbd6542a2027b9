package serrors_test

import (
	"errors"
	"fmt"
	"ipconv/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
		serrors.ErrTimeout,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("unexpected EOF")

	e1 := serrors.With(serrors.ErrBadRequest, "unknown field %q", "mask")
	require.Equal(t, `unknown field "mask"`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrBadRequest, base, "invalid body")
	require.Equal(t, "invalid body: unexpected EOF", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrInternal)
	require.Equal(t, "INTERNAL", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "decoding")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "decoding")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrBadRequest, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	custom := serrors.NewKind("CUSTOM")

	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{name: "semantic error", err: serrors.With(custom, "x"), want: custom},
		{name: "bare sentinel", err: serrors.ErrTimeout, want: serrors.ErrTimeout},
		{name: "wrapped with fmt", err: fmt.Errorf("outer: %w", serrors.KindOnly(custom)), want: custom},
		{name: "plain error", err: errors.New("plain"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "visible", serrors.MessageOf(serrors.With(serrors.ErrBadRequest, "visible"), "fallback"))
	require.Equal(t, "visible",
		serrors.MessageOf(fmt.Errorf("wrapped: %w", serrors.With(serrors.ErrBadRequest, "visible")), "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(serrors.KindOnly(serrors.ErrBadRequest), "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(errors.New("plain"), "fallback"))
}
