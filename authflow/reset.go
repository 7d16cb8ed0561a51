package authflow

import (
	"context"
	"time"

	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

// MinPasswordLength matches the identity backend's own minimum so local
// validation never accepts something the backend would reject.
const MinPasswordLength = 6

// Post-reset redirect timings: form -> success page -> home.
const (
	ResetSuccessRedirectDelay = 3 * time.Second
	ResetSuccessHomeDelay     = 5 * time.Second
)

// ResetRequest carries one password-reset submission. Either the token pair
// (session already established by the callback) or the code is set; the code
// path runs the exchange server-side because the code may need privileged
// verification or may already be half-consumed.
type ResetRequest struct {
	Password        string
	ConfirmPassword string
	Code            string
	AccessToken     string
	RefreshToken    string
}

// Submitter completes password-recovery flows against the identity backend.
type Submitter struct {
	client      IdentityClient
	establisher *Establisher
}

func NewSubmitter(client IdentityClient) *Submitter {
	return &Submitter{
		client:      client,
		establisher: NewEstablisher(client),
	}
}

// Submit validates and performs one password reset.
//
// Local validation runs first and never touches the network: a mismatch or a
// short password fails immediately. With a token pair the password update is
// a single backend call; with only a code the submitter establishes a session
// first (exchange, then the one documented verification fallback) and updates
// through the resulting session. Backend failures are returned as-is so the
// caller can surface the message verbatim; there is no automatic retry.
func (s *Submitter) Submit(ctx context.Context, req ResetRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}
	if len(req.Password) < MinPasswordLength {
		return apperrors.Wrapf(apperrors.ErrPasswordTooShort, "password must be at least %d characters", MinPasswordLength)
	}

	if req.AccessToken != "" && req.RefreshToken != "" {
		session := InstallTokenPair(req.AccessToken, req.RefreshToken)
		return s.client.UpdatePassword(ctx, session.AccessToken, req.Password)
	}

	if req.Code == "" {
		return apperrors.ErrNoSessionAvailable
	}

	session, err := s.establisher.Establish(ctx, FlowPasswordRecovery, RedirectParams{Code: req.Code, Type: typeRecovery})
	if err != nil {
		return err
	}

	return s.client.UpdatePassword(ctx, session.AccessToken, req.Password)
}
