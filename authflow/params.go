// Package authflow implements the reconciliation of identity-backend
// redirects: parsing the redirect parameters, classifying the intended flow,
// establishing a session and deciding the outcome (native-app handoff,
// password-reset form or error state).
package authflow

import (
	"net/url"
	"strings"
)

// RedirectParams is the set of fields extractable from an incoming redirect
// URL. All fields are optional; constructed once per request and immutable
// thereafter.
type RedirectParams struct {
	Code             string
	AccessToken      string
	RefreshToken     string
	TokenHash        string
	Type             string
	Error            string
	ErrorDescription string
}

// HasTokenPair reports whether the fragment delivered a directly installable
// access/refresh token pair.
func (p RedirectParams) HasTokenPair() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}

// ParseRedirect extracts redirect parameters from a raw query string and a
// raw fragment. Both locations are searched independently since providers
// place tokens in either; the fragment wins when a field appears in both.
// Missing or malformed input never fails, it just yields empty fields.
func ParseRedirect(rawQuery, rawFragment string) RedirectParams {
	query, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	fragment, _ := url.ParseQuery(strings.TrimPrefix(rawFragment, "#"))

	pick := func(key string) string {
		if v := fragment.Get(key); v != "" {
			return v
		}
		return query.Get(key)
	}

	tokenHash := pick("token_hash")
	if tokenHash == "" {
		tokenHash = pick("token")
	}

	return RedirectParams{
		// Authorization codes only ever arrive via the query string.
		Code:             query.Get("code"),
		AccessToken:      pick("access_token"),
		RefreshToken:     pick("refresh_token"),
		TokenHash:        tokenHash,
		Type:             pick("type"),
		Error:            pick("error"),
		ErrorDescription: pick("error_description"),
	}
}

// ParseRedirectURL is a convenience wrapper for callers holding a full URL.
func ParseRedirectURL(raw string) RedirectParams {
	rawFragment := ""
	if idx := strings.Index(raw, "#"); idx != -1 {
		rawFragment = raw[idx+1:]
		raw = raw[:idx]
	}
	rawQuery := ""
	if idx := strings.Index(raw, "?"); idx != -1 {
		rawQuery = raw[idx+1:]
	}
	return ParseRedirect(rawQuery, rawFragment)
}
