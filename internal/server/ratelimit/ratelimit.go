// Package ratelimit provides per-client, per-endpoint request throttling
// using the token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket throttles one client+endpoint pair. Tokens refill continuously
// at refillRate per second up to capacity.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	now := time.Now()
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

// refillLocked credits tokens for the elapsed time. Caller holds mu.
func (tb *TokenBucket) refillLocked(now time.Time) {
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now
}

// allow consumes a token if one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refillLocked(now)
	tb.lastAccess = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// getStatus reports remaining tokens and when the bucket refills completely,
// without consuming a token.
func (tb *TokenBucket) getStatus() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.refillLocked(now)

	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		deficit := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(deficit / tb.refillRate * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

func (tb *TokenBucket) idleSince(cutoff time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.lastAccess.Before(cutoff)
}

// Info describes the rate limit decision for one request. The server
// translates it into X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks token buckets keyed by client, endpoint and method.
type Limiter struct {
	mu          sync.RWMutex
	buckets     map[string]*TokenBucket
	config      *Config
	cleanupTick *time.Ticker
	cleanupStop chan struct{}
}

// NewLimiter creates a limiter. A nil config yields a permissive default
// of 1000 requests per minute per client.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*TokenBucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTick = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID to endpoint may proceed.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Limit <= 0 means the endpoint is unthrottled.
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.getBucket(clientID+":"+endpoint+":"+method, ec.Limit, ec.Window, ec.Burst)

	allowed := bucket.allow()
	remaining, resetTime := bucket.getStatus()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(resetTime); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      ec.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(key string, limit int, window time.Duration, burst int) *TokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	capacity := burst
	if capacity <= 0 {
		capacity = limit
	}
	bucket = newTokenBucket(capacity, float64(limit)/window.Seconds())

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	l.buckets[key] = bucket
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTick.C:
			l.cleanupBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets drops buckets idle for over an hour so clients that stop
// calling do not leak memory.
func (l *Limiter) cleanupBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, bucket := range l.buckets {
		if bucket.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTick != nil {
		l.cleanupTick.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
