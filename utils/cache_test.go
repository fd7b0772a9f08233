package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheBestEffortWhenRedisUnavailable(t *testing.T) {
	// Redis points at a closed port (see TestMain). Every helper must
	// degrade to a no-op instead of failing the request path.
	CacheSetJSON("cache:prueba:detail:1", map[string]any{"ok": true}, time.Minute)

	_, ok := CacheGetBytes("cache:prueba:detail:1")
	assert.False(t, ok)

	CacheDelete("cache:prueba:detail:1")
	InvalidateByPrefix("cache:prueba:")
}

func TestCacheSetJSONUnmarshalableValueIgnored(t *testing.T) {
	CacheSetJSON("cache:prueba:bad", make(chan int), time.Minute)
}
