// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known professional profile platform.
type Platform string

const (
	// PlatformLinkedIn is the LinkedIn profile platform
	PlatformLinkedIn Platform = "linkedin"
	// PlatformGitHub is the GitHub profile platform
	PlatformGitHub Platform = "github"
	// PlatformGitLab is the GitLab profile platform
	PlatformGitLab Platform = "gitlab"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the profile platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	// LinkedIn patterns
	if strings.Contains(host, "linkedin.com") ||
		strings.Contains(host, "lnkd.in") {
		return PlatformLinkedIn
	}

	// GitHub patterns
	if strings.Contains(host, "github.com") ||
		strings.Contains(host, "github.io") {
		return PlatformGitHub
	}

	// GitLab patterns
	if strings.Contains(host, "gitlab.com") ||
		strings.Contains(host, "gitlab.io") {
		return PlatformGitLab
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".core-section-container", // Primary public-profile selector
			".profile-section",        // Fallback
			".pv-about-section",       // About block
			".scaffold-layout__main",  // Logged-in layout
			"main",                    // Generic fallback
		}
	case PlatformGitHub:
		return []string{
			".user-profile-bio",
			"[itemprop='description']",
			".markdown-body",
			".Layout-main",
			"main",
		}
	case PlatformGitLab:
		return []string{
			".user-profile",
			".profile-header",
			".user-info",
			"main",
		}
	default:
		return ProfilePageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Sign-in and signup prompts
		"form",
		"#signup-form",
		".signup-form",
		".sign-in-modal",
		".join-form",
		"[data-testid='signup-form']",

		// Promotional and legal
		".premium-upsell",
		".ad-banner",
		".legal-disclosure",
		".terms-notice",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".join-now",
			".authwall",
			".contextual-sign-in-modal",
			".top-card-layout__cta-container",
		)
	case PlatformGitHub:
		return append(common,
			".js-header-wrapper",
			".footer",
			".signup-prompt",
		)
	case PlatformGitLab:
		return append(common,
			".navbar",
			".broadcast-message",
		)
	default:
		return common
	}
}
