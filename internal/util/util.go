package util

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// GetClientIPAddress prefers the first X-Forwarded-For hop, falling back to
// the host part of RemoteAddr.
func GetClientIPAddress(r *http.Request) string {
	if forwardedIP := r.Header.Get("X-Forwarded-For"); forwardedIP != "" {
		first, _, _ := strings.Cut(forwardedIP, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// IsValidURL accepts only absolute http and https URLs with a host.
func IsValidURL(input string) bool {
	if strings.TrimSpace(input) != input || input == "" {
		return false
	}

	u, err := url.Parse(input)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	if u.Hostname() == "" {
		return false
	}

	return true
}
