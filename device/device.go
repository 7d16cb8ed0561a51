// Package device sniffs the requesting platform from the User-Agent header.
// Coarse on purpose: the only decision riding on it is which app-store
// listing to fall back to when the native app does not open.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

type Platform int

const (
	PlatformOther Platform = iota
	PlatformIOS
	PlatformAndroid
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	default:
		return "other"
	}
}

// Detect classifies a User-Agent string. Unknown or empty agents come back
// as PlatformOther, which callers treat like Android for store fallbacks.
func Detect(userAgentString string) Platform {
	if userAgentString == "" {
		return PlatformOther
	}

	ua := useragent.New(userAgentString)
	os := strings.ToLower(ua.OSInfo().FullName)

	switch {
	case strings.Contains(os, "iphone"), strings.Contains(os, "ipad"),
		strings.Contains(os, "ios"), strings.Contains(os, "cpu os"):
		return PlatformIOS
	case strings.Contains(os, "android"):
		return PlatformAndroid
	default:
		return PlatformOther
	}
}
