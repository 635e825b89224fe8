package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		assertion func(t *testing.T, info Info)
	}{
		{
			name:      "empty user agent",
			userAgent: "",
			assertion: func(t *testing.T, info Info) {
				assert.Equal(t, "unknown unknown on unknown (desktop)", info.String())
			},
		},
		{
			name:      "chrome on desktop",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			assertion: func(t *testing.T, info Info) {
				assert.Equal(t, "Chrome", info.Browser)
				assert.Equal(t, "120", info.MajorVersion)
				assert.False(t, info.Mobile)
				assert.Equal(t, "desktop", info.Platform())
			},
		},
		{
			name:      "safari on iphone",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			assertion: func(t *testing.T, info Info) {
				assert.True(t, info.Mobile)
				assert.Contains(t, info.OS, "iPhone")
				assert.Contains(t, info.String(), "(mobile)")
			},
		},
		{
			name:      "firefox on linux",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			assertion: func(t *testing.T, info Info) {
				assert.Equal(t, "Firefox", info.Browser)
				assert.Equal(t, "121", info.MajorVersion)
				assert.Contains(t, info.OS, "Linux")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assertion(t, Describe(tt.userAgent))
		})
	}
}
