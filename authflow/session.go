package authflow

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

// Session is an established identity-backend session. It lives only for the
// duration of one request; persistence is the backend's responsibility.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
}

// IdentityClient is the surface of the hosted identity backend the auth flow
// needs. Implemented by the identity package; faked in tests.
type IdentityClient interface {
	// ExchangeCode exchanges a one-shot authorization code for a session.
	ExchangeCode(ctx context.Context, code string) (*Session, error)
	// VerifyToken verifies a one-time token hash of the given type and
	// returns the resulting session.
	VerifyToken(ctx context.Context, tokenHash, otpType string) (*Session, error)
	// UpdatePassword sets a new password for the user owning accessToken.
	UpdatePassword(ctx context.Context, accessToken, password string) error
}

// establishStrategy is one attempt at turning redirect parameters into a
// session. Strategies run in order and establishment stops at the first
// success; keeping them as values means another fallback is one append away.
type establishStrategy struct {
	name    string
	attempt func(ctx context.Context, p RedirectParams) (*Session, error)
}

// Establisher turns classified redirect parameters into a session.
type Establisher struct {
	client IdentityClient
}

func NewEstablisher(client IdentityClient) *Establisher {
	return &Establisher{client: client}
}

// Establish produces a session for the classified flow.
//
// A fragment token pair is the fast path: it installs directly with no
// network round trip. A bare code is exchanged, with exactly one fallback
// (verify the code as a one-time token of the flow's type). With neither
// shape present it fails immediately without touching the backend.
//
// Establishment is not idempotent: retrying an already-consumed code fails
// with ErrInvalidOrExpiredCode, which is a normal outcome surfaced to the
// user as "link expired, request a new one".
func (e *Establisher) Establish(ctx context.Context, flow Flow, p RedirectParams) (*Session, error) {
	if p.HasTokenPair() {
		return InstallTokenPair(p.AccessToken, p.RefreshToken), nil
	}

	if p.Code == "" && p.TokenHash == "" {
		return nil, apperrors.ErrNoSessionAvailable
	}

	if p.Code == "" && p.TokenHash != "" {
		// Verification links carry only a token hash, never a code.
		session, err := e.client.VerifyToken(ctx, p.TokenHash, flow.otpType())
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrVerificationFailed, "token verification: %v", err)
		}
		return session, nil
	}

	strategies := []establishStrategy{
		{
			name: "code exchange",
			attempt: func(ctx context.Context, p RedirectParams) (*Session, error) {
				return e.client.ExchangeCode(ctx, p.Code)
			},
		},
		{
			name: "token verification",
			attempt: func(ctx context.Context, p RedirectParams) (*Session, error) {
				return e.client.VerifyToken(ctx, p.Code, flow.otpType())
			},
		},
	}

	var attemptErrs []error
	for _, strategy := range strategies {
		session, err := strategy.attempt(ctx, p)
		if err == nil {
			return session, nil
		}
		attemptErrs = append(attemptErrs, err)
	}

	// Both underlying messages are kept for diagnostics.
	return nil, apperrors.Wrapf(apperrors.ErrInvalidOrExpiredCode,
		"code exchange failed (%v); fallback verification failed (%v)",
		attemptErrs[0], attemptErrs[1])
}

// InstallTokenPair installs an already-issued access/refresh token pair as
// the active session. No verification round trip: the tokens were minted by
// the backend and any tampering surfaces on first use. The user identity is
// read best-effort from the access token's claims.
func InstallTokenPair(accessToken, refreshToken string) *Session {
	session := &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil {
			session.UserID = sub
		}
		if email, ok := claims["email"].(string); ok {
			session.Email = email
		}
	}

	return session
}
