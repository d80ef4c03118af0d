// Package caching holds the process-wide in-memory TTL cache. It backs the
// session-audit geolocation lookups so repeat sign-ins from the same address
// do not hit the lookup endpoints again.
package caching

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 6 * time.Hour
	cleanupInterval   = 30 * time.Minute
)

var memoryCache = cache.New(defaultExpiration, cleanupInterval)

// Get returns the cached string for key, with a hit flag.
func Get(key string) (string, bool) {
	if v, ok := memoryCache.Get(key); ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// Set stores value under key with the default expiration.
func Set(key, value string) {
	memoryCache.Set(key, value, cache.DefaultExpiration)
}

// Flush drops everything. Used by tests.
func Flush() {
	memoryCache.Flush()
}
