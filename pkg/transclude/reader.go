// reader.go: whole-file reads with the size cap, BOM stripping, binary
// detection, and optional frontmatter stripping required before content
// is handed to the heading extractor or spliced into output.
//

package transclude

import (
	"os"
	"strings"
)

// maxFileSize is the per-file cap from the specification: files larger
// than this fail with FILE_TOO_LARGE before any content is examined.
const maxFileSize = 1 << 20 // 1 MiB

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// readFile loads path into memory, applying the directory check, size
// cap, BOM stripping, binary detection, and — if stripFrontmatter is
// set — frontmatter removal, in that order. Frontmatter is stripped
// before the content is returned, so heading extraction never sees its
// delimiters.
func readFile(path string, stripFrontmatter bool) (string, *TransclusionError) {
	info, err := os.Stat(path)
	if err != nil {
		return "", ReadError(CodeReadError, path, "cannot stat file: "+err.Error())
	}
	if info.IsDir() {
		return "", ReadError(CodeNotAFile, path, "not a regular file")
	}
	if info.Size() > maxFileSize {
		return "", ReadError(CodeFileTooLarge, path, "file exceeds the 1 MiB transclusion size cap")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", ReadError(CodeReadError, path, "cannot read file: "+err.Error())
	}

	raw = stripBOM(raw)

	if idx := indexNulByte(raw); idx != -1 {
		return "", ReadError(CodeBinaryFile, path, "file contains binary data")
	}

	content := string(raw)
	if stripFrontmatter {
		content = stripFrontmatterBlock(content)
	}

	return content, nil
}

func indexNulByte(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}

func stripBOM(b []byte) []byte {
	switch {
	case hasPrefixBytes(b, bomUTF8):
		return b[len(bomUTF8):]
	case hasPrefixBytes(b, bomUTF16BE):
		return b[len(bomUTF16BE):]
	case hasPrefixBytes(b, bomUTF16LE):
		return b[len(bomUTF16LE):]
	default:
		return b
	}
}

func hasPrefixBytes(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// stripFrontmatterBlock removes a single leading YAML (---/---) or TOML
// (+++/+++) block when it begins on the first line and has a proper
// closing delimiter. Malformed frontmatter (no closing delimiter) is
// left intact.
func stripFrontmatterBlock(content string) string {
	for _, delim := range []string{"---", "+++"} {
		if body, ok := stripDelimitedBlock(content, delim); ok {
			return body
		}
	}
	return content
}

func stripDelimitedBlock(content, delim string) (string, bool) {
	lines := splitLinesKeepEnds(content)
	if len(lines) == 0 {
		return content, false
	}
	if strings.TrimRight(lines[0], "\r\n") != delim {
		return content, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") == delim {
			rest := strings.Join(lines[i+1:], "")
			return rest, true
		}
	}
	return content, false
}

// splitLinesKeepEnds splits content into lines, each retaining its
// trailing "\n" or "\r\n" (the final line keeps whatever it has, even
// none).
func splitLinesKeepEnds(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i+1])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
