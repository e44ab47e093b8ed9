package util

import (
	"net/http/httptest"
	"testing"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com", true},
		{"http://example.com:8080/path?q=1", true},
		{"http://127.0.0.1:54321", true},
		{"example.com", false},
		{"ftp://example.com/file", false},
		{"https://", false},
		{"", false},
		{" https://example.com", false},
		{"/relative/path", false},
		{"javascript:alert(1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidURL(tt.input); got != tt.expected {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGetClientIPAddress(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{name: "remote addr with port", remoteAddr: "10.0.0.7:51234", expected: "10.0.0.7"},
		{name: "single forwarded hop", forwarded: "203.0.113.9", remoteAddr: "10.0.0.7:51234", expected: "203.0.113.9"},
		{name: "multiple forwarded hops", forwarded: "203.0.113.9, 10.0.0.1", remoteAddr: "10.0.0.7:51234", expected: "203.0.113.9"},
		{name: "remote addr without port", remoteAddr: "pipe", expected: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := GetClientIPAddress(r); got != tt.expected {
				t.Errorf("GetClientIPAddress() = %q, want %q", got, tt.expected)
			}
		})
	}
}
