// chain.go: the expansion chain, an ordered set of absolute paths
// currently being expanded on one recursion branch. Cloned, never
// shared, when descending into a nested expansion so sibling tokens do
// not observe each other's descendants.
//

package transclude

import "strings"

// expansionChain is an ordered set of absolute paths. Membership test and
// append are its only operations; it is small (bounded by max_depth) so a
// slice plus linear scan is simpler and faster than a map.
type expansionChain struct {
	paths []string
}

func newExpansionChain() expansionChain {
	return expansionChain{}
}

// contains reports whether path is already on the chain.
func (c expansionChain) contains(path string) bool {
	for _, p := range c.paths {
		if p == path {
			return true
		}
	}
	return false
}

// extend returns a new chain with path appended, leaving c untouched so
// sibling branches keep their own view.
func (c expansionChain) extend(path string) expansionChain {
	next := make([]string, len(c.paths), len(c.paths)+1)
	copy(next, c.paths)
	next = append(next, path)
	return expansionChain{paths: next}
}

// render formats the chain plus a repeated path as "A → B → A", the
// human-readable form used in CIRCULAR_REFERENCE messages.
func (c expansionChain) render(repeated string) string {
	parts := make([]string, 0, len(c.paths)+1)
	parts = append(parts, c.paths...)
	parts = append(parts, repeated)
	return strings.Join(parts, " → ")
}
