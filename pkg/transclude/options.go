// options.go: engine configuration, grounded on the teacher framework's
// plain-struct option records (no builder, no functional options — the
// engine is a value constructed once per invocation).
//

package transclude

// Options configures one Engine. The zero value is not ready to use;
// call DefaultOptions and override fields, or construct explicitly.
type Options struct {
	// BasePath is the root of containment. Every opened file must resolve
	// lexically inside it.
	BasePath string

	// Extensions is the ordered candidate extension list tried by the
	// resolver when a reference has no extension of its own. Entries may
	// be given with or without a leading dot; the resolver canonicalises.
	Extensions []string

	// Variables is the substitution mapping consulted by the variable
	// substituter.
	Variables map[string]string

	// Strict treats undefined variables as errors and instructs the
	// driver to treat any recorded error as fatal on process exit.
	Strict bool

	// ValidateOnly suppresses successful content in composed output;
	// markers and errors still flow.
	ValidateOnly bool

	// MaxDepth is the recursion ceiling. Zero means DefaultMaxDepth.
	MaxDepth int

	// Cache is an optional content cache. A nil Cache disables caching.
	Cache Cache

	// StripFrontmatter strips a leading YAML/TOML block from each loaded
	// file, before heading extraction ever sees the content.
	StripFrontmatter bool

	// InitialFilePath is the parent path used for relative-to-parent
	// resolution on the first line of the top-level document.
	InitialFilePath string

	// Observer receives typed notifications as the engine runs. A nil
	// Observer disables notification emission entirely.
	Observer Observer
}

// DefaultMaxDepth is the recursion ceiling applied when Options.MaxDepth
// is zero.
const DefaultMaxDepth = 10

// DefaultExtensions is the candidate extension list applied when
// Options.Extensions is nil.
var DefaultExtensions = []string{"md", "markdown"}

// DefaultOptions returns an Options value with every field at its
// specification-mandated default, rooted at base.
func DefaultOptions(base string) Options {
	return Options{
		BasePath:   base,
		Extensions: append([]string(nil), DefaultExtensions...),
		MaxDepth:   DefaultMaxDepth,
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}
