package identityfakes

import (
	"context"
	"errors"
	"sync"

	"github.com/xhil-io/autolens-web/authflow"
)

var _ authflow.IdentityClient = (*FakeIdentityClient)(nil)

// FakeIdentityClient is a scriptable in-memory identity backend for tests.
// It records every call so tests can assert exactly which backend
// operations ran and how often.
type FakeIdentityClient struct {
	lock sync.Mutex

	ExchangeErr error
	VerifyErr   error
	UpdateErr   error
	Session     *authflow.Session

	ExchangeCalls []string
	VerifyCalls   []VerifyCall
	UpdateCalls   []UpdateCall
}

type VerifyCall struct {
	TokenHash string
	OTPType   string
}

type UpdateCall struct {
	AccessToken string
	Password    string
}

func New() *FakeIdentityClient {
	return &FakeIdentityClient{
		Session: &authflow.Session{
			AccessToken:  "fake-access-token",
			RefreshToken: "fake-refresh-token",
			UserID:       "fake-user-id",
		},
	}
}

func (f *FakeIdentityClient) ExchangeCode(_ context.Context, code string) (*authflow.Session, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.ExchangeCalls = append(f.ExchangeCalls, code)
	if f.ExchangeErr != nil {
		return nil, f.ExchangeErr
	}
	if f.Session == nil {
		return nil, errors.New("no session configured")
	}
	return f.Session, nil
}

func (f *FakeIdentityClient) VerifyToken(_ context.Context, tokenHash, otpType string) (*authflow.Session, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.VerifyCalls = append(f.VerifyCalls, VerifyCall{TokenHash: tokenHash, OTPType: otpType})
	if f.VerifyErr != nil {
		return nil, f.VerifyErr
	}
	if f.Session == nil {
		return nil, errors.New("no session configured")
	}
	return f.Session, nil
}

func (f *FakeIdentityClient) UpdatePassword(_ context.Context, accessToken, password string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.UpdateCalls = append(f.UpdateCalls, UpdateCall{AccessToken: accessToken, Password: password})
	return f.UpdateErr
}

// TotalCalls reports how many backend operations ran in total. Handy for
// asserting that local validation failures never reach the network.
func (f *FakeIdentityClient) TotalCalls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.ExchangeCalls) + len(f.VerifyCalls) + len(f.UpdateCalls)
}
