package authflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xhil-io/autolens-web/authflow"
	"github.com/xhil-io/autolens-web/authflow/identityfakes"
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("password mismatch fails before any backend call", func(t *testing.T) {
		client := identityfakes.New()
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "hunter22",
			ConfirmPassword: "hunter23",
			Code:            "code-1",
		})
		require.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
		require.Zero(t, client.TotalCalls())
	})

	t.Run("five characters is too short, six passes", func(t *testing.T) {
		client := identityfakes.New()
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "12345",
			ConfirmPassword: "12345",
			Code:            "code-1",
		})
		require.ErrorIs(t, err, apperrors.ErrPasswordTooShort)
		require.Zero(t, client.TotalCalls())

		err = submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "123456",
			ConfirmPassword: "123456",
			Code:            "code-1",
		})
		require.NoError(t, err)
	})

	t.Run("token pair updates through the installed session", func(t *testing.T) {
		client := identityfakes.New()
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "new-password",
			ConfirmPassword: "new-password",
			AccessToken:     "AAA",
			RefreshToken:    "BBB",
		})
		require.NoError(t, err)
		require.Equal(t, []identityfakes.UpdateCall{{AccessToken: "AAA", Password: "new-password"}}, client.UpdateCalls)
		require.Empty(t, client.ExchangeCalls)
		require.Empty(t, client.VerifyCalls)
	})

	t.Run("code establishes a session before updating", func(t *testing.T) {
		client := identityfakes.New()
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "new-password",
			ConfirmPassword: "new-password",
			Code:            "reset-code",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"reset-code"}, client.ExchangeCalls)
		require.Equal(t, []identityfakes.UpdateCall{{AccessToken: "fake-access-token", Password: "new-password"}}, client.UpdateCalls)
	})

	t.Run("expired code falls back once then surfaces the failure", func(t *testing.T) {
		client := identityfakes.New()
		client.ExchangeErr = errors.New("code consumed")
		client.VerifyErr = errors.New("token invalid")
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "new-password",
			ConfirmPassword: "new-password",
			Code:            "dead-code",
		})
		require.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredCode)
		require.Len(t, client.ExchangeCalls, 1)
		require.Len(t, client.VerifyCalls, 1)
		require.Empty(t, client.UpdateCalls)
	})

	t.Run("neither code nor token pair", func(t *testing.T) {
		client := identityfakes.New()
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "new-password",
			ConfirmPassword: "new-password",
		})
		require.ErrorIs(t, err, apperrors.ErrNoSessionAvailable)
		require.Zero(t, client.TotalCalls())
	})

	t.Run("backend update failure is returned as-is", func(t *testing.T) {
		client := identityfakes.New()
		client.UpdateErr = errors.New("password update rejected")
		submitter := authflow.NewSubmitter(client)

		err := submitter.Submit(ctx, authflow.ResetRequest{
			Password:        "new-password",
			ConfirmPassword: "new-password",
			AccessToken:     "AAA",
			RefreshToken:    "BBB",
		})
		require.EqualError(t, err, "password update rejected")
	})
}

func TestResetDelays(t *testing.T) {
	require.Equal(t, 3*time.Second, authflow.ResetSuccessRedirectDelay)
	require.Equal(t, 5*time.Second, authflow.ResetSuccessHomeDelay)
}
