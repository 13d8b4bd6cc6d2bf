package goglob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGet(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	p1 := c.Get("*.txt", true)
	p2 := c.Get("*.txt", true)
	assert.Same(t, p1, p2, "repeated Get should return the cached pattern")

	// The case mode is part of the key.
	p3 := c.Get("*.txt", false)
	assert.NotSame(t, p1, p3)
	assert.Equal(t, 2, c.Len())
}

func TestCacheMatch(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	assert.True(t, c.Match("{cat,dog}.txt", "dog.txt", true))
	assert.False(t, c.Match("{cat,dog}.txt", "bird.txt", true))
	assert.True(t, c.Match("*.TXT", "notes.txt", false))
	assert.Equal(t, 2, c.Len())
}

func TestCacheEviction(t *testing.T) {
	c, err := NewCache(1)
	require.NoError(t, err)

	first := c.Get("*.a", true)
	c.Get("*.b", true)
	assert.Equal(t, 1, c.Len())

	// Recompiled after eviction, still correct.
	again := c.Get("*.a", true)
	assert.NotSame(t, first, again)
	assert.True(t, again.Match("x.a"))
}

func TestCacheInvalidSize(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}
