package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/namesake/internal/types"
)

func names(forms ...string) []*types.Name {
	out := make([]*types.Name, len(forms))
	for i, f := range forms {
		out[i] = types.NewName(f, []string{f}, types.NameTypePerson)
	}
	return out
}

func TestKeyIsDelimited(t *testing.T) {
	assert.Equal(t, Key("PER", "john"), Key("PER", "john"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.NotEqual(t, Key("PER", "john"), Key("ORG", "john"))
}

func TestNameCacheGetSet(t *testing.T) {
	c := NewNameCache(2)

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, names("a"))
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "a", got[0].Form)

	c.Set(1, names("b"))
	got, _ = c.Get(1)
	assert.Equal(t, "b", got[0].Form)
	assert.Equal(t, 1, c.Size())

	stats := c.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestNameCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewNameCache(2)
	c.Set(1, names("a"))
	c.Set(2, names("b"))

	// Touch 1 so 2 becomes the oldest
	_, _ = c.Get(1)
	c.Set(3, names("c"))

	_, ok := c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestNameCacheClearAndDefaults(t *testing.T) {
	c := NewNameCache(0)
	assert.Equal(t, DefaultMaxEntries, c.maxSize)

	c.Set(1, names("a"))
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestNameCacheConcurrentAccess(t *testing.T) {
	c := NewNameCache(16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				k := Key(fmt.Sprint(i), fmt.Sprint(j%20))
				if _, ok := c.Get(k); !ok {
					c.Set(k, names("x"))
				}
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Size(), 16)
}
