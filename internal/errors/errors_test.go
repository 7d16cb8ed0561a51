package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

func TestWrapf(t *testing.T) {
	t.Run("wraps with context", func(t *testing.T) {
		err := apperrors.Wrapf(apperrors.ErrInvalidOrExpiredCode, "exchanging code %q", "abc")
		require.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredCode)
		require.Equal(t, `exchanging code "abc": invalid or expired code`, err.Error())
	})

	t.Run("nil passes through", func(t *testing.T) {
		require.NoError(t, apperrors.Wrapf(nil, "context"))
	})

	t.Run("double wrap keeps the sentinel", func(t *testing.T) {
		err := apperrors.Wrapf(apperrors.ErrNetwork, "inner")
		err = apperrors.Wrapf(err, "outer")
		require.ErrorIs(t, err, apperrors.ErrNetwork)
		require.Equal(t, "outer: inner: network error", err.Error())
	})
}

func TestIs(t *testing.T) {
	err := apperrors.Wrapf(apperrors.ErrPasswordTooShort, "validation")
	require.True(t, apperrors.Is(err, apperrors.ErrPasswordTooShort))
	require.False(t, apperrors.Is(err, apperrors.ErrPasswordMismatch))
	require.False(t, apperrors.Is(stderrors.New("other"), apperrors.ErrPasswordTooShort))
}
