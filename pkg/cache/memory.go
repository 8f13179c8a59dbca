// memory.go: an in-memory, mutex-guarded transclusion content cache.
//

package cache

import (
	"sync"
	"time"

	"github.com/kestrelmd/transclude/pkg/transclude"
)

// maxEntrySize caps what Memory will hold per key; larger content is
// silently not cached, matching the engine's "entries larger than the
// per-entry cap are silently not cached" policy.
const maxEntrySize = 1 << 20

// Memory is a sync.RWMutex-guarded in-process cache, suitable for one
// Engine invocation or reused across several against the same base
// directory. It implements transclude.Cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]transclude.CachedContent
	hits    int64
	misses  int64
}

// NewMemory constructs an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]transclude.CachedContent),
	}
}

// Get implements transclude.Cache. It takes the write lock rather than a
// read lock because every call also updates the hit/miss counters.
func (m *Memory) Get(path string) (transclude.CachedContent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content, ok := m.entries[path]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return content, ok
}

// Set implements transclude.Cache. Content exceeding maxEntrySize is
// silently dropped.
func (m *Memory) Set(path string, content transclude.CachedContent) {
	if content.Size > maxEntrySize {
		return
	}
	if content.Timestamp == 0 {
		content.Timestamp = time.Now().UnixNano()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = content
}

// Clear implements transclude.Cache.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]transclude.CachedContent)
	m.hits = 0
	m.misses = 0
}

// Stats implements transclude.Cache.
func (m *Memory) Stats() transclude.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return transclude.CacheStats{
		Hits:    m.hits,
		Misses:  m.misses,
		Entries: len(m.entries),
	}
}
