// noop.go: a zero-overhead cache that never retains content, for
// validate-only runs and single-pass CLI invocations where a content
// cache would only waste memory.
//

package cache

import "github.com/kestrelmd/transclude/pkg/transclude"

// Noop implements transclude.Cache by doing nothing.
type Noop struct{}

// Get always misses.
func (Noop) Get(string) (transclude.CachedContent, bool) {
	return transclude.CachedContent{}, false
}

// Set is a no-op.
func (Noop) Set(string, transclude.CachedContent) {}

// Clear is a no-op.
func (Noop) Clear() {}

// Stats always reports zero.
func (Noop) Stats() transclude.CacheStats {
	return transclude.CacheStats{}
}
