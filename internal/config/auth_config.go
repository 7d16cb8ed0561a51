package config

type Auth struct{}

var _ AuthConfig = Auth{}

func (Auth) GetAuthBaseURL() string {
	return GetEnv("AUTH_BASE_URL", "")
}

func (Auth) GetAuthAnonKey() string {
	return GetEnv("AUTH_ANON_KEY", "")
}

// GetAuthServiceKey returns the privileged backend key. Falls back to the
// anon key so local setups still work, at the cost of admin operations.
func (Auth) GetAuthServiceKey() string {
	key := GetEnv("AUTH_SERVICE_KEY", "")
	if key == "" {
		return Auth{}.GetAuthAnonKey()
	}
	return key
}
