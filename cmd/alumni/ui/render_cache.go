// Package ui provides rendering cache for preview cards.
package ui

import (
	"hash/fnv"
	"strconv"
)

// RenderCache maps a hash of render inputs to rendered output. Once full it
// is cleared wholesale; card renders are cheap to rebuild.
type RenderCache struct {
	entries map[uint64]string
	maxSize int
	hits    int
	misses  int
}

// NewRenderCache creates a new render cache with the specified max size.
func NewRenderCache(maxSize int) *RenderCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &RenderCache{
		entries: make(map[uint64]string, maxSize),
		maxSize: maxSize,
	}
}

// ComputeKey generates a cache key from multiple inputs. Only string, int
// and bool inputs contribute.
func ComputeKey(inputs ...any) uint64 {
	h := fnv.New64a()
	var buf []byte
	for _, input := range inputs {
		buf = buf[:0]
		switch v := input.(type) {
		case string:
			buf = append(buf, v...)
		case int:
			buf = strconv.AppendInt(buf, int64(v), 10)
		case bool:
			buf = strconv.AppendBool(buf, v)
		}
		// Separator keeps ("ab","c") and ("a","bc") apart
		buf = append(buf, 0)
		h.Write(buf)
	}
	return h.Sum64()
}

// GetOrCompute retrieves from cache or computes if missing.
func (rc *RenderCache) GetOrCompute(key uint64, compute func() string) string {
	if content, ok := rc.entries[key]; ok {
		rc.hits++
		return content
	}
	rc.misses++
	content := compute()
	if len(rc.entries) >= rc.maxSize {
		rc.Clear()
	}
	rc.entries[key] = content
	return content
}

// Clear empties the cache.
func (rc *RenderCache) Clear() {
	rc.entries = make(map[uint64]string, rc.maxSize)
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	return len(rc.entries)
}

// Stats returns hit and miss counts since creation.
func (rc *RenderCache) Stats() (hits, misses int) {
	return rc.hits, rc.misses
}
