// cache.go: the cache capability the engine consults for already-read
// file bodies. Re-expressed from the source's dynamically-dispatched
// cache implementations as a small interface with concrete no-op and
// in-memory implementations living in the cache subpackage.
//

package transclude

// CachedContent is a memoised file body, keyed externally by absolute path.
type CachedContent struct {
	Content   string
	Size      int64
	Timestamp int64
}

// CacheStats reports point-in-time cache counters.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Cache is the abstract key-value store of absolute path to CachedContent
// the engine consults whenever Options.Cache is non-nil, whatever the
// max depth and including validate-only runs.
// Implementations need only be safe for the engine's single caller task;
// see cache.Memory and cache.Noop for concrete implementations.
type Cache interface {
	Get(path string) (CachedContent, bool)
	Set(path string, content CachedContent)
	Clear()
	Stats() CacheStats
}
