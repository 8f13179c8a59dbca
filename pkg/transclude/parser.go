// parser.go: scans a single line for transclusion reference tokens,
// masking inline code spans and HTML comments first so that references
// appearing inside them are never surfaced.
//

package transclude

import "strings"

// Token is one parsed "![[...]]" occurrence on a line.
type Token struct {
	// Original is the verbatim slice of the line, "![[...]]" included.
	Original string
	// Path is the trimmed path portion, before variable substitution.
	Path string
	// Heading is the trimmed heading portion, or "" if none was given.
	Heading string
	// HasHeading distinguishes an absent heading from an empty one (the
	// empty form is meaningful in the H1:H2 range syntax).
	HasHeading bool
	// Start, End are the half-open byte offsets of Original within the line.
	Start, End int
}

const (
	refOpen  = "![["
	refClose = "]]"
)

// parseLine returns the surviving reference tokens on line, left to
// right, non-overlapping. Occurrences inside masked regions (inline
// code spans, HTML comments) are skipped. Empty-path or whitespace-only
// occurrences yield no token.
func parseLine(line string) []Token {
	masked := buildMask(line)

	var tokens []Token
	pos := 0
	for {
		openIdx := strings.Index(line[pos:], refOpen)
		if openIdx == -1 {
			break
		}
		openIdx += pos

		closeIdx := strings.Index(line[openIdx+len(refOpen):], refClose)
		if closeIdx == -1 {
			break
		}
		closeIdx += openIdx + len(refOpen)

		end := closeIdx + len(refClose)

		if masked[openIdx] {
			pos = openIdx + 1
			continue
		}

		body := line[openIdx+len(refOpen) : closeIdx]
		if tok, ok := buildToken(line[openIdx:end], body, openIdx, end); ok {
			tokens = append(tokens, tok)
		}

		pos = end
	}

	return tokens
}

func buildToken(original, body string, start, end int) (Token, bool) {
	path := body
	heading := ""
	hasHeading := false

	if idx := strings.IndexByte(body, '#'); idx != -1 {
		path = body[:idx]
		heading = strings.TrimSpace(body[idx+1:])
		hasHeading = true
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return Token{}, false
	}

	return Token{
		Original:   original,
		Path:       path,
		Heading:    heading,
		HasHeading: hasHeading,
		Start:      start,
		End:        end,
	}, true
}

// buildMask returns a boolean slice the length of line where true marks a
// byte offset that falls inside an inline code span or an HTML comment.
func buildMask(line string) []bool {
	masked := make([]bool, len(line))

	maskRanges(masked, line, "`", "`")
	maskHTMLComments(masked, line)

	return masked
}

// maskRanges masks every span between successive occurrences of open and
// close (open == close is supported, toggling on each occurrence, as
// needed for backtick code spans).
func maskRanges(masked []bool, line, open, close string) {
	pos := 0
	for {
		start := strings.Index(line[pos:], open)
		if start == -1 {
			return
		}
		start += pos

		searchFrom := start + len(open)
		end := strings.Index(line[searchFrom:], close)
		if end == -1 {
			return
		}
		end += searchFrom

		for i := start; i < end+len(close) && i < len(masked); i++ {
			masked[i] = true
		}
		pos = end + len(close)
	}
}

func maskHTMLComments(masked []bool, line string) {
	maskRanges(masked, line, "<!--", "-->")
}
