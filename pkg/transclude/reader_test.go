// reader_test.go: file reader tests
//

package transclude

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileBasic(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.md", "hello world")

	content, err := readFile(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "hello world" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestReadFileStripsUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.md")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	content, err := readFile(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "hi" {
		t.Errorf("expected BOM stripped, got %q", content)
	}
}

func TestReadFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := readFile(sub, false)
	if err == nil || err.Code != CodeNotAFile {
		t.Fatalf("expected NOT_A_FILE, got %v", err)
	}
}

func TestReadFileRejectsTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.md")
	big := strings.Repeat("a", maxFileSize+1)
	if err := os.WriteFile(path, []byte(big), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := readFile(path, false)
	if err == nil || err.Code != CodeFileTooLarge {
		t.Fatalf("expected FILE_TOO_LARGE, got %v", err)
	}
}

func TestReadFileRejectsBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bin.md")
	if err := os.WriteFile(path, []byte("hello\x00world"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := readFile(path, false)
	if err == nil || err.Code != CodeBinaryFile {
		t.Fatalf("expected BINARY_FILE, got %v", err)
	}
}

func TestReadFileStripsYAMLFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "fm.md", "---\ntitle: x\n---\n# Heading\nbody\n")

	content, err := readFile(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "# Heading\nbody\n" {
		t.Errorf("unexpected content after frontmatter strip: %q", content)
	}
}

func TestReadFileStripsTOMLFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "fm.md", "+++\ntitle = \"x\"\n+++\nbody\n")

	content, err := readFile(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "body\n" {
		t.Errorf("unexpected content after frontmatter strip: %q", content)
	}
}

func TestReadFileLeavesMalformedFrontmatterIntact(t *testing.T) {
	dir := t.TempDir()
	original := "---\ntitle: x\nbody without closing delimiter\n"
	path := writeTestFile(t, dir, "fm.md", original)

	content, err := readFile(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != original {
		t.Errorf("expected malformed frontmatter left intact, got %q", content)
	}
}

func TestReadFileNoStripWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	original := "---\ntitle: x\n---\nbody\n"
	path := writeTestFile(t, dir, "fm.md", original)

	content, err := readFile(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != original {
		t.Errorf("expected content unchanged when stripFrontmatter is false, got %q", content)
	}
}
