package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig sets the limit for one route. A Path ending in "/" matches
// by prefix. Burst defaults to Limit when zero.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig builds the limiter configuration from the environment.
// RATE_LIMIT_ENABLED (default true) turns throttling off entirely;
// RATE_LIMIT_PER_MINUTE (default 60) sets the fallback per-client limit.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_PER_MINUTE", 60),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs tiers the API routes by cost. Resume uploads and
// account creation are throttled hardest; reads fall through to the default
// limit and the health check is exempted by the matcher.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze/resume", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/register", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		{Path: "/analyze/text", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/predict/career", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/predict/skill-gaps/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/roadmaps", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/roadmaps/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/users/profile", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/users/profile", Method: "DELETE", Limit: 10, Window: time.Minute, Burst: 3},
	}
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
