// resolver.go: turns a (post-substitution) reference into an absolute,
// contained, existing file path by trying candidate extensions across
// an ordered list of search bases.
//

package transclude

import (
	"os"
	"path/filepath"
)

// Resolution is the outcome of resolving a single reference path.
type Resolution struct {
	AbsolutePath       string
	Exists             bool
	OriginalReference  string
	Err                *TransclusionError
}

// resolvePath tries the reference as-is and with each candidate extension
// appended, across the parent directory (if ref is relative and parent is
// non-empty) then the base directory, in that order. The first existing,
// contained, regular-file candidate wins.
func resolvePath(ref, baseDir, parentDir string, extensions []string) Resolution {
	candidates := candidatePaths(ref, extensions)

	searchBases := make([]string, 0, 2)
	if parentDir != "" && !filepath.IsAbs(ref) {
		searchBases = append(searchBases, parentDir)
	}
	searchBases = append(searchBases, baseDir)

	var rememberedSecurityErr *TransclusionError
	var primaryCandidate string

	for i, searchBase := range searchBases {
		for j, candidate := range candidates {
			abs := filepath.Join(searchBase, candidate)
			abs = filepath.Clean(abs)

			if i == 0 && j == 0 {
				primaryCandidate = abs
			}

			if secErr := checkContainment(abs, baseDir); secErr != nil {
				if rememberedSecurityErr == nil {
					rememberedSecurityErr = secErr
				}
				continue
			}

			info, err := os.Stat(abs)
			if err != nil || info.IsDir() {
				continue
			}

			return Resolution{
				AbsolutePath:      abs,
				Exists:            true,
				OriginalReference: ref,
			}
		}
	}

	if rememberedSecurityErr != nil {
		return Resolution{
			OriginalReference: ref,
			Err:               rememberedSecurityErr,
		}
	}

	if primaryCandidate == "" {
		primaryCandidate = filepath.Clean(filepath.Join(baseDir, ref))
	}

	return Resolution{
		AbsolutePath:      primaryCandidate,
		OriginalReference: ref,
		Err:               ResolutionError(ref, "referenced file not found: "+primaryCandidate),
	}
}

// candidatePaths returns the list of path strings to try, in order: the
// reference as-is, then the reference with each extension appended — but
// only the exact reference if it already carries an extension.
func candidatePaths(ref string, extensions []string) []string {
	if filepath.Ext(ref) != "" {
		return []string{ref}
	}

	candidates := make([]string, 0, len(extensions)+1)
	candidates = append(candidates, ref)
	for _, ext := range extensions {
		ext = canonicalExtension(ext)
		candidates = append(candidates, ref+ext)
	}
	return candidates
}

// canonicalExtension normalises a configured extension (which may be
// stored with or without its leading dot, per the two forms seen in the
// source material) into the dotted form the resolver needs.
func canonicalExtension(ext string) string {
	if ext == "" {
		return ext
	}
	if ext[0] == '.' {
		return ext
	}
	return "." + ext
}
