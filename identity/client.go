// Package identity is the HTTP client for the hosted identity backend. It
// covers only what the auth bridge needs: exchanging authorization codes,
// verifying one-time tokens and updating passwords. Session issuance and
// storage stay on the backend's side.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xhil-io/autolens-web/authflow"
	apperrors "github.com/xhil-io/autolens-web/internal/errors"
)

const defaultTimeout = 10 * time.Second

var _ authflow.IdentityClient = (*Client)(nil)

type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// New creates a client for the backend at baseURL. The anon key
// authenticates ordinary calls; the service key is only sent on privileged
// token verification.
func New(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// sessionResponse is the backend's token payload shape.
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// errorResponse covers the two error shapes the backend emits.
type errorResponse struct {
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e errorResponse) message() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Error != "":
		return e.Error
	default:
		return "request rejected"
	}
}

// ExchangeCode exchanges an authorization code for a session. The code is
// one-shot: a second exchange fails on the backend's side.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*authflow.Session, error) {
	body := map[string]string{"auth_code": code}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=pkce", c.anonKey, "", body, &resp); err != nil {
		return nil, err
	}
	return sessionFromResponse(resp), nil
}

// VerifyToken verifies a one-time token hash of the given type. Runs with
// the service key since link tokens may require elevated verification.
func (c *Client) VerifyToken(ctx context.Context, tokenHash, otpType string) (*authflow.Session, error) {
	body := map[string]string{
		"token_hash": tokenHash,
		"type":       otpType,
	}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/verify", c.serviceKey, "", body, &resp); err != nil {
		return nil, err
	}
	return sessionFromResponse(resp), nil
}

// UpdatePassword sets a new password for the user owning accessToken.
func (c *Client) UpdatePassword(ctx context.Context, accessToken, password string) error {
	body := map[string]string{"password": password}
	return c.do(ctx, http.MethodPut, "/auth/v1/user", c.anonKey, accessToken, body, nil)
}

func (c *Client) do(ctx context.Context, method, path, apiKey, bearer string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("identity: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("identity: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", apiKey)
	if bearer == "" {
		bearer = apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrNetwork, "identity: %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrNetwork, "identity: read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		_ = json.Unmarshal(data, &errResp)
		return fmt.Errorf("identity backend rejected request: %s", errResp.message())
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("identity: decode response: %w", err)
		}
	}
	return nil
}

func sessionFromResponse(resp sessionResponse) *authflow.Session {
	return &authflow.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
	}
}
