package config

type AppLinks struct{}

var _ AppLinkConfig = AppLinks{}

func (AppLinks) GetDeepLinkScheme() string {
	return GetEnv("DEEPLINK_SCHEME", "autolens")
}

func (AppLinks) GetAppStoreURL() string {
	return GetEnv("APP_STORE_URL", "https://apps.apple.com/app/autolens/id6511214314")
}

func (AppLinks) GetPlayStoreURL() string {
	return GetEnv("PLAY_STORE_URL", "https://play.google.com/store/apps/details?id=com.autolens.app")
}
