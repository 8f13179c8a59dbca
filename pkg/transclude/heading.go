// heading.go: extracts a named heading's section (or an H1:H2 range)
// from loaded file content.
//

package transclude

import (
	"regexp"
	"strings"
)

var headingLinePattern = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*$`)

// extractHeading returns the section of content identified by heading H,
// or a ":"-separated range "H1:H2". An empty H1 in range form means
// "document start"; an empty or non-matching H2 means "end of file".
func extractHeading(content, heading string) (string, *TransclusionError) {
	if idx := strings.IndexByte(heading, ':'); idx != -1 {
		return extractHeadingRange(content, strings.TrimSpace(heading[:idx]), strings.TrimSpace(heading[idx+1:]))
	}
	return extractSingleHeading(content, heading)
}

func extractSingleHeading(content, heading string) (string, *TransclusionError) {
	lines := splitLinesKeepEnds(content)

	startIdx, level := findHeadingLine(lines, 0, heading)
	if startIdx == -1 {
		return "", ExpansionError(CodeHeadingNotFound, "", "heading not found: "+heading)
	}

	endIdx := findNextHeadingAtOrAbove(lines, startIdx+1, level)

	section := strings.Join(lines[startIdx:endIdx], "")
	return strings.TrimRight(section, "\r\n"), nil
}

func extractHeadingRange(content, h1, h2 string) (string, *TransclusionError) {
	lines := splitLinesKeepEnds(content)

	startIdx := 0
	if h1 != "" {
		idx, _ := findHeadingLine(lines, 0, h1)
		if idx == -1 {
			return "", ExpansionError(CodeHeadingNotFound, "", "heading not found: "+h1)
		}
		startIdx = idx
	}

	endIdx := len(lines)
	if h2 != "" {
		if idx, _ := findHeadingLine(lines, startIdx, h2); idx != -1 {
			endIdx = idx
		}
	}

	section := strings.Join(lines[startIdx:endIdx], "")
	return trimTrailingBlankLines(section), nil
}

// findHeadingLine scans lines from start for a line of the form
// "#{1..6} text" whose trimmed text case-insensitively matches heading.
// Returns the line index and heading level, or (-1, 0) if not found.
func findHeadingLine(lines []string, start int, heading string) (int, int) {
	target := strings.ToLower(heading)
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimRight(lines[i], "\r\n")
		m := headingLinePattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if strings.ToLower(m[2]) == target {
			return i, len(m[1])
		}
	}
	return -1, 0
}

// findNextHeadingAtOrAbove returns the index of the next heading line at
// level <= level starting from start, or len(lines) if none exists.
func findNextHeadingAtOrAbove(lines []string, start, level int) int {
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimRight(lines[i], "\r\n")
		m := headingLinePattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if len(m[1]) <= level {
			return i
		}
	}
	return len(lines)
}

func trimTrailingBlankLines(s string) string {
	lines := splitLinesKeepEnds(s)
	end := len(lines)
	for end > 0 && strings.TrimSpace(strings.TrimRight(lines[end-1], "\r\n")) == "" {
		end--
	}
	return strings.TrimRight(strings.Join(lines[:end], ""), "\r\n")
}
