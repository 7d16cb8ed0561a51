package authflow

import (
	"fmt"
	"time"

	"github.com/xhil-io/autolens-web/device"
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

// Redirect timings. The deep-link attempt delay and the store fallback are a
// best-effort heuristic: web code cannot observe whether the app actually
// opened, so the fallback always fires.
const (
	DeepLinkAttemptDelay = 2 * time.Second
	StoreFallbackDelay   = 1500 * time.Millisecond
	UnknownFlowHomeDelay = 3 * time.Second
	ErrorHomeDelay       = 5 * time.Second
)

// OutcomeKind says what the browser should do after the callback resolved.
type OutcomeKind int

const (
	// OutcomeError renders the failure state with a support contact link.
	OutcomeError OutcomeKind = iota
	// OutcomeResetForm sends the user to the web password-reset form.
	OutcomeResetForm
	// OutcomeOpenApp attempts the native deep link, then the store fallback.
	OutcomeOpenApp
	// OutcomeHome redirects to the home page after a short delay.
	OutcomeHome
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeResetForm:
		return "reset-form"
	case OutcomeOpenApp:
		return "open-app"
	case OutcomeHome:
		return "home"
	default:
		return "error"
	}
}

// Outcome is the dispatcher's decision for one callback. The server decides,
// the page script executes: deep link first, store fallback after the fixed
// delay, or a plain redirect.
type Outcome struct {
	Kind        OutcomeKind
	Flow        Flow
	Message     string
	DeepLink    string
	StoreURL    string
	RedirectURL string
	// PreserveFragment tells the page script to carry the URL fragment over
	// to RedirectURL, so recovery tokens survive the hop to the reset form.
	PreserveFragment bool
	DeepLinkDelay    time.Duration
	FallbackDelay    time.Duration
}

// Dispatcher maps a flow plus session result to an Outcome.
type Dispatcher struct {
	scheme       string
	appStoreURL  string
	playStoreURL string
	homeURL      string
	resetFormURL string
}

func NewDispatcher(scheme, appStoreURL, playStoreURL, homeURL, resetFormURL string) *Dispatcher {
	return &Dispatcher{
		scheme:       scheme,
		appStoreURL:  appStoreURL,
		playStoreURL: playStoreURL,
		homeURL:      homeURL,
		resetFormURL: resetFormURL,
	}
}

// Dispatch decides the outcome for an established (or failed) session.
func (d *Dispatcher) Dispatch(flow Flow, session *Session, establishErr error, platform device.Platform) Outcome {
	if establishErr != nil {
		if flow == FlowUnknown && apperrors.Is(establishErr, apperrors.ErrNoSessionAvailable) {
			// A bare callback with no tokens at all is noise, not a failure
			// worth a support prompt; send the visitor home.
			return Outcome{
				Kind:          OutcomeHome,
				Flow:          flow,
				Message:       "No authentication data found. Redirecting to home...",
				RedirectURL:   d.homeURL,
				FallbackDelay: UnknownFlowHomeDelay,
			}
		}
		return Outcome{
			Kind:    OutcomeError,
			Flow:    flow,
			Message: UserMessage(establishErr),
		}
	}

	switch flow {
	case FlowPasswordRecovery:
		// Recovery completes on web; never hand off to the app here.
		return Outcome{
			Kind:             OutcomeResetForm,
			Flow:             flow,
			Message:          "Processing password reset...",
			RedirectURL:      d.resetFormURL,
			PreserveFragment: true,
		}
	case FlowSignupConfirmation:
		return d.openApp(flow, "Email confirmed successfully! Opening the AutoLens app...", "auth/confirmed", platform)
	case FlowMagicLink:
		return d.openApp(flow, "Login successful! Opening the AutoLens app...", "auth/login", platform)
	case FlowOAuthGeneric:
		return d.openApp(flow, "Login successful! Opening the AutoLens app...", "auth/login", platform)
	default:
		return Outcome{
			Kind:          OutcomeHome,
			Flow:          flow,
			Message:       "Unknown authentication type. Redirecting to home...",
			RedirectURL:   d.homeURL,
			FallbackDelay: UnknownFlowHomeDelay,
		}
	}
}

func (d *Dispatcher) openApp(flow Flow, message, path string, platform device.Platform) Outcome {
	return Outcome{
		Kind:          OutcomeOpenApp,
		Flow:          flow,
		Message:       message,
		DeepLink:      fmt.Sprintf("%s://%s", d.scheme, path),
		StoreURL:      d.storeURL(platform),
		DeepLinkDelay: DeepLinkAttemptDelay,
		FallbackDelay: StoreFallbackDelay,
	}
}

func (d *Dispatcher) storeURL(platform device.Platform) string {
	if platform == device.PlatformIOS {
		return d.appStoreURL
	}
	return d.playStoreURL
}

// DeepLinkFor builds a resource deep link such as autolens://location/42.
// The id is taken verbatim from the caller.
func (d *Dispatcher) DeepLinkFor(resource, id string) string {
	return fmt.Sprintf("%s://%s/%s", d.scheme, resource, id)
}

// UserMessage translates an establishment failure into the plain-language
// message rendered to the user. Raw backend errors never surface here.
func UserMessage(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidOrExpiredCode):
		return "This link has expired. Please request a new one."
	case apperrors.Is(err, apperrors.ErrVerificationFailed):
		return "Authentication failed. Please try again or contact support."
	case apperrors.Is(err, apperrors.ErrNoSessionAvailable):
		return "No authentication data found. Please use the link from your email."
	case apperrors.Is(err, apperrors.ErrNetwork):
		return "Network error. Please check your connection and try again."
	default:
		return "Something went wrong. Please try again or contact support."
	}
}
