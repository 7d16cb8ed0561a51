package authflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xhil-io/autolens-web/authflow"
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		params authflow.RedirectParams
		want   authflow.Flow
	}{
		{name: "recovery type", params: authflow.RedirectParams{Type: "recovery", AccessToken: "a", RefreshToken: "r"}, want: authflow.FlowPasswordRecovery},
		{name: "signup type", params: authflow.RedirectParams{Type: "signup", AccessToken: "a", RefreshToken: "r"}, want: authflow.FlowSignupConfirmation},
		{name: "email type counts as signup", params: authflow.RedirectParams{Type: "email", Code: "c"}, want: authflow.FlowSignupConfirmation},
		{name: "magiclink type", params: authflow.RedirectParams{Type: "magiclink", Code: "c"}, want: authflow.FlowMagicLink},
		{name: "bare code is a generic oauth login", params: authflow.RedirectParams{Code: "c"}, want: authflow.FlowOAuthGeneric},
		{name: "bare token pair is a generic oauth login", params: authflow.RedirectParams{AccessToken: "a", RefreshToken: "r"}, want: authflow.FlowOAuthGeneric},
		{name: "type wins over token shape", params: authflow.RedirectParams{Type: "recovery", Code: "c"}, want: authflow.FlowPasswordRecovery},
		{name: "nothing recognisable", params: authflow.RedirectParams{}, want: authflow.FlowUnknown},
		{name: "unrecognised type with no tokens", params: authflow.RedirectParams{Type: "invite"}, want: authflow.FlowUnknown},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flow, err := authflow.Classify(test.params)
			require.NoError(t, err)
			require.Equal(t, test.want, flow)
		})
	}

	t.Run("provider error is terminal", func(t *testing.T) {
		flow, err := authflow.Classify(authflow.RedirectParams{
			Error:            "access_denied",
			ErrorDescription: "User denied",
			Code:             "c",
			Type:             "recovery",
		})
		require.ErrorIs(t, err, apperrors.ErrVerificationFailed)
		require.Contains(t, err.Error(), "access_denied")
		require.Contains(t, err.Error(), "User denied")
		require.Equal(t, authflow.FlowUnknown, flow)
	})

	t.Run("provider error without description reuses the code", func(t *testing.T) {
		_, err := authflow.Classify(authflow.RedirectParams{Error: "server_error"})
		require.ErrorIs(t, err, apperrors.ErrVerificationFailed)
		require.Contains(t, err.Error(), "server_error")
	})
}

func TestFlowString(t *testing.T) {
	require.Equal(t, "recovery", authflow.FlowPasswordRecovery.String())
	require.Equal(t, "signup", authflow.FlowSignupConfirmation.String())
	require.Equal(t, "magiclink", authflow.FlowMagicLink.String())
	require.Equal(t, "oauth", authflow.FlowOAuthGeneric.String())
	require.Equal(t, "unknown", authflow.FlowUnknown.String())
}
