package host

import (
	"net/url"
	"strings"
)

// SanitizeURL validates an externally sourced URL before it is embedded as a
// link target. Returns the cleaned absolute URL, or "" when the value does
// not parse or carries a non-web scheme (javascript:, data:, and friends).
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ""
	}
	if u.Host == "" {
		return ""
	}

	return u.String()
}
