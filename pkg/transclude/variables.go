// variables.go: {{NAME}} placeholder substitution for reference paths
//

package transclude

import (
	"regexp"
	"strings"
)

var variablePattern = regexp.MustCompile(`\{\{([A-Za-z0-9_-]+)\}\}`)

// substituteVariables expands "{{NAME}}" placeholders in ref using values.
// In lenient mode an unknown name is left as the literal placeholder. In
// strict mode the first unknown name fails the whole substitution.
//
// Substitution is single-pass: the replacement text is never re-scanned
// for further placeholders.
func substituteVariables(ref string, values map[string]string, strict bool) (string, *TransclusionError) {
	if !strings.Contains(ref, "{{") {
		return ref, nil
	}

	var firstUndefined string
	result := variablePattern.ReplaceAllStringFunc(ref, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := values[name]; ok {
			return value
		}
		if firstUndefined == "" {
			firstUndefined = name
		}
		return match
	})

	if strict && firstUndefined != "" {
		return "", SubstitutionError(ref, "undefined variable: "+firstUndefined)
	}

	return result, nil
}
