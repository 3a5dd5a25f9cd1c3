package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform_LinkedIn(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.linkedin.com/in/some-person", PlatformLinkedIn},
		{"https://linkedin.com/in/some-person/", PlatformLinkedIn},
		{"https://lnkd.in/abc123", PlatformLinkedIn},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_GitHub(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://github.com/some-user", PlatformGitHub},
		{"https://some-user.github.io", PlatformGitHub},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_GitLab(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://gitlab.com/some-user", PlatformGitLab},
		{"https://some-user.gitlab.io/portfolio", PlatformGitLab},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_Unknown(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://example.com/about-me", PlatformUnknown},
		{"https://medium.com/@writer", PlatformUnknown},
		{"https://stackoverflow.com/users/1", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPlatformContentSelectors_LinkedIn(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformLinkedIn)
	assert.Contains(t, selectors, ".core-section-container")
	assert.Contains(t, selectors, ".profile-section")
}

func TestPlatformContentSelectors_Unknown(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)
	// Should fallback to generic ProfilePageSelectors
	assert.Contains(t, selectors, ".profile-content")
	assert.Contains(t, selectors, "main")
}

func TestPlatformNoiseSelectors_LinkedIn(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformLinkedIn)
	// Common selectors
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".cookie-banner")
	// LinkedIn-specific
	assert.Contains(t, selectors, ".authwall")
	assert.Contains(t, selectors, ".join-now")
}

func TestPlatformNoiseSelectors_Unknown(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformUnknown)
	// Should have common noise selectors
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".premium-upsell")
	assert.Contains(t, selectors, ".cookie-banner")
}
