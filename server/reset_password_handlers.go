package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xhil-io/autolens-web/authflow"
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

// ResetPasswordPageData feeds the reset form template.
type ResetPasswordPageData struct {
	PageData
	SubmitPath           string
	MinPasswordLength    int
	SuccessPath          string
	SuccessRedirectDelay int // milliseconds
}

// ResetPasswordPageHandler renders the password-reset form. The page script
// accepts either delivery shape (query code or fragment token pair), blocks
// double submission while a call is in flight, and posts to the submit API.
func (s *Server) ResetPasswordPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("reset_password.html")
	if err != nil {
		panic("Failed to parse reset password template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := ResetPasswordPageData{
			PageData:             s.pageData(),
			SubmitPath:           RouteAPIResetPassword,
			MinPasswordLength:    authflow.MinPasswordLength,
			SuccessPath:          RouteResetSuccess,
			SuccessRedirectDelay: int(authflow.ResetSuccessRedirectDelay.Milliseconds()),
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render reset password page")
		}
	}
}

type resetPasswordRequest struct {
	Code            string `json:"code"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
}

type resetPasswordError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ResetPasswordSubmitHandler completes a password reset. With a token pair
// the update is direct; with only a code the whole
// exchange-then-update sequence runs here, server-side, because the code may
// already be consumed client-side or may need privileged verification.
func (s *Server) ResetPasswordSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, resetPasswordError{Error: "Malformed request body"})
			return
		}

		if req.Password == "" || (req.Code == "" && req.AccessToken == "") {
			writeJSON(w, http.StatusBadRequest, resetPasswordError{Error: "Code and password are required"})
			return
		}

		// The form sends both fields; API callers may omit the confirmation.
		if req.ConfirmPassword == "" {
			req.ConfirmPassword = req.Password
		}

		err := s.submitter.Submit(r.Context(), authflow.ResetRequest{
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Code:            req.Code,
			AccessToken:     req.AccessToken,
			RefreshToken:    req.RefreshToken,
		})
		if err != nil {
			status, resp := resetErrorResponse(err)
			log.Warn().Err(err).Int("status", status).Msg("Password reset failed")
			writeJSON(w, status, resp)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated successfully"})
	}
}

// resetErrorResponse maps a submit failure onto the API contract. The
// details field carries the underlying message for diagnosis; backend
// secrets never travel through these errors.
func resetErrorResponse(err error) (int, resetPasswordError) {
	switch {
	case apperrors.Is(err, apperrors.ErrPasswordMismatch):
		return http.StatusBadRequest, resetPasswordError{Error: "Passwords do not match"}
	case apperrors.Is(err, apperrors.ErrPasswordTooShort):
		return http.StatusBadRequest, resetPasswordError{
			Error:   "Password too short",
			Details: err.Error(),
		}
	case apperrors.Is(err, apperrors.ErrInvalidOrExpiredCode):
		return http.StatusBadRequest, resetPasswordError{
			Error:   "Invalid or expired reset code",
			Details: err.Error(),
		}
	case apperrors.Is(err, apperrors.ErrNoSessionAvailable):
		return http.StatusBadRequest, resetPasswordError{Error: "No valid reset parameters found"}
	case apperrors.Is(err, apperrors.ErrNetwork):
		return http.StatusInternalServerError, resetPasswordError{
			Error:   "Internal server error",
			Details: err.Error(),
		}
	default:
		// Backend rejected the update; surface its message verbatim.
		return http.StatusBadRequest, resetPasswordError{
			Error:   "Failed to update password",
			Details: err.Error(),
		}
	}
}
