package ratelimit

import "strings"

// MatchEndpoint resolves the rate limit configuration for a request path and
// method. Patterns ending in "/" match by prefix, which covers parameterized
// routes like "/predict/skill-gaps/{title}". Exact matches win over prefix
// matches. Returns nil when no configured pattern applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes are never throttled.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && c.Path == path {
			return c
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
