package authflow

import (
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

// Flow is the classified intent of an identity-backend redirect.
type Flow int

const (
	FlowUnknown Flow = iota
	FlowPasswordRecovery
	FlowSignupConfirmation
	FlowMagicLink
	FlowOAuthGeneric
)

func (f Flow) String() string {
	switch f {
	case FlowPasswordRecovery:
		return "recovery"
	case FlowSignupConfirmation:
		return "signup"
	case FlowMagicLink:
		return "magiclink"
	case FlowOAuthGeneric:
		return "oauth"
	default:
		return "unknown"
	}
}

// Redirect `type` values recognised from the identity backend's email links.
const (
	typeRecovery  = "recovery"
	typeSignup    = "signup"
	typeEmail     = "email"
	typeMagicLink = "magiclink"
)

// Classify maps redirect parameters to a Flow.
//
// A provider-reported error is terminal: classification stops before any
// flow inference and no session establishment must be attempted. An explicit
// `type` always wins over inferring the flow from the token shape.
func Classify(p RedirectParams) (Flow, error) {
	if p.Error != "" {
		desc := p.ErrorDescription
		if desc == "" {
			desc = p.Error
		}
		return FlowUnknown, apperrors.Wrapf(apperrors.ErrVerificationFailed, "provider error %q: %s", p.Error, desc)
	}

	switch p.Type {
	case typeRecovery:
		return FlowPasswordRecovery, nil
	case typeSignup, typeEmail:
		return FlowSignupConfirmation, nil
	case typeMagicLink:
		return FlowMagicLink, nil
	}

	if p.Code != "" {
		return FlowOAuthGeneric, nil
	}
	if p.HasTokenPair() {
		// Already-issued tokens without a type: treat as a generic login.
		return FlowOAuthGeneric, nil
	}

	return FlowUnknown, nil
}

// otpType returns the one-time-token type the identity backend expects when
// a code is re-verified as a token hash for this flow.
func (f Flow) otpType() string {
	switch f {
	case FlowPasswordRecovery:
		return typeRecovery
	case FlowSignupConfirmation:
		return typeSignup
	case FlowMagicLink:
		return typeMagicLink
	default:
		return typeEmail
	}
}
