package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetAs(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("rate", 83.5, DefaultExpiration)
	c.Set("name", "session", DefaultExpiration)

	rate, ok := GetAs[float64](c, "rate")
	assert.True(t, ok)
	assert.Equal(t, 83.5, rate)

	_, ok = GetAs[float64](c, "name")
	assert.False(t, ok, "wrong type")

	_, ok = GetAs[float64](c, "missing")
	assert.False(t, ok)

	c.Delete("rate")
	_, ok = GetAs[float64](c, "rate")
	assert.False(t, ok)
}

func TestExpiration(t *testing.T) {
	c := NewCache(10*time.Millisecond, time.Millisecond)
	c.Set("short", 1, DefaultExpiration)
	c.Set("forever", 2, NoExpiration)

	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)
	v, ok := c.Get("forever")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
