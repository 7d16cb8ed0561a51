package config

type Config interface {
	EnvConfig
	CorsConfig
	AuthConfig
	MailConfig
	AppLinkConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

// AuthConfig exposes the hosted identity backend settings. The keys are
// opaque here: the anon key is safe to use from public pages, the service
// key is privileged and must only be used server-side.
type AuthConfig interface {
	GetAuthBaseURL() string
	GetAuthAnonKey() string
	GetAuthServiceKey() string
}

type MailConfig interface {
	GetAWSRegion() string
	GetSupportSender() string
	GetSupportRecipient() string
}

// AppLinkConfig covers the native-app handoff: the custom URI scheme and the
// store listings used when the app does not open.
type AppLinkConfig interface {
	GetDeepLinkScheme() string
	GetAppStoreURL() string
	GetPlayStoreURL() string
}

type mainConfig struct {
	EnvVars
	Cors
	Auth
	Mail
	AppLinks
}

func New() Config {
	return mainConfig{}
}
