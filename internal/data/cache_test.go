package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResultCacheExpiry(t *testing.T) {
	c := NewResultCache[string](time.Minute, 0)
	defer c.Close()

	now := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put("a", "alpha")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok, "expired entries are not returned")
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 0, c.Len())
}

func TestResultCacheNilSafe(t *testing.T) {
	var c *ResultCache[int]
	c.Put("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestResultCacheCloseTwice(t *testing.T) {
	c := NewResultCache[int](time.Minute, time.Millisecond)
	c.Close()
	c.Close()
}
