// Package device summarizes the browser behind a login for audit logs.
package device

import (
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

// Info is a coarse, non-identifying description of a client device.
type Info struct {
	Browser      string
	MajorVersion string
	OS           string
	Mobile       bool
}

// Describe parses a User-Agent header. Unknown parts are reported as "unknown".
func Describe(userAgent string) Info {
	if strings.TrimSpace(userAgent) == "" {
		return Info{Browser: "unknown", MajorVersion: "unknown", OS: "unknown"}
	}

	ua := useragent.New(userAgent)
	browser, version := ua.Browser()
	major, _, _ := strings.Cut(version, ".")

	info := Info{
		Browser:      orUnknown(browser),
		MajorVersion: orUnknown(major),
		OS:           orUnknown(ua.OS()),
		Mobile:       ua.Mobile(),
	}
	if info.Mobile && ua.Platform() != "" {
		info.OS = ua.Platform()
	}
	return info
}

// Platform returns "mobile" or "desktop".
func (i Info) Platform() string {
	if i.Mobile {
		return "mobile"
	}
	return "desktop"
}

// String renders e.g. "Chrome 120 on Intel Mac OS X 10_15_7 (desktop)".
func (i Info) String() string {
	return fmt.Sprintf("%s %s on %s (%s)", i.Browser, i.MajorVersion, i.OS, i.Platform())
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
