package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xhil-io/autolens-web/device"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      device.Platform
	}{
		{
			name:      "iphone safari",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
			want:      device.PlatformIOS,
		},
		{
			name:      "ipad safari",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1",
			want:      device.PlatformIOS,
		},
		{
			name:      "android chrome",
			userAgent: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
			want:      device.PlatformAndroid,
		},
		{
			name:      "desktop chrome",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			want:      device.PlatformOther,
		},
		{
			name:      "windows firefox",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:126.0) Gecko/20100101 Firefox/126.0",
			want:      device.PlatformOther,
		},
		{
			name:      "empty agent",
			userAgent: "",
			want:      device.PlatformOther,
		},
		{
			name:      "garbage agent",
			userAgent: "definitely-not-a-browser/1.0",
			want:      device.PlatformOther,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, device.Detect(test.userAgent))
		})
	}
}

func TestPlatformString(t *testing.T) {
	require.Equal(t, "ios", device.PlatformIOS.String())
	require.Equal(t, "android", device.PlatformAndroid.String())
	require.Equal(t, "other", device.PlatformOther.String())
}
