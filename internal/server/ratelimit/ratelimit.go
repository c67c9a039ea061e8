// Package ratelimit provides per-client request limiting for the HTTP server.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMinute = 600
	defaultBurst             = 60
	defaultCleanupInterval   = 5 * time.Minute
	defaultIdleTTL           = time.Hour
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
	IdleTTL           time.Duration
	EndpointConfigs   []EndpointConfig
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client, endpoint and method.
// Buckets idle for longer than IdleTTL are evicted.
type Limiter struct {
	config  *Config
	clients map[string]*client
	mu      sync.Mutex
	now     func() time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:           true,
			RequestsPerMinute: defaultRequestsPerMinute,
			Burst:             defaultBurst,
			EndpointConfigs:   DefaultEndpointConfigs(),
		}
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaultCleanupInterval
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = defaultIdleTTL
	}

	l := &Limiter{
		config:  config,
		clients: make(map[string]*client),
		now:     time.Now,
	}

	if config.Enabled {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.RequestsPerMinute,
			Window: time.Minute,
			Burst:  l.config.Burst,
		}
	}

	// unlimited endpoint
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := l.now()
	lim := l.get(clientID+":"+endpoint+":"+method, ec, now)

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)
	perSecond := float64(lim.Limit())

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: int(math.Max(0, math.Floor(tokens))),
		ResetTime: now.Add(secondsToDuration((float64(lim.Burst()) - tokens) / perSecond)),
	}
	if !allowed {
		info.RetryAfter = secondsToDuration((1 - tokens) / perSecond)
	}

	return allowed, info
}

func (l *Limiter) get(key string, ec *EndpointConfig, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		burst := ec.Burst
		if burst <= 0 {
			burst = ec.Limit
		}
		perSecond := rate.Limit(float64(ec.Limit) / ec.Window.Seconds())
		c = &client{limiter: rate.NewLimiter(perSecond, burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// evictIdle drops buckets not used within IdleTTL.
func (l *Limiter) evictIdle() {
	cutoff := l.now().Add(-l.config.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// Len reports the number of tracked buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
