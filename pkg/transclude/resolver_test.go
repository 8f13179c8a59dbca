// resolver_test.go: path resolver tests
//

package transclude

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestResolvePathExactExtension(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "note.md", "hello")

	res := resolvePath("note.md", dir, "", []string{"md", "markdown"})
	if !res.Exists || res.Err != nil {
		t.Fatalf("expected resolution to succeed, got %+v", res)
	}
	if res.AbsolutePath != filepath.Join(dir, "note.md") {
		t.Errorf("unexpected absolute path: %s", res.AbsolutePath)
	}
}

func TestResolvePathTriesExtensionsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "note.markdown", "hello")

	res := resolvePath("note", dir, "", []string{"md", "markdown"})
	if !res.Exists {
		t.Fatalf("expected resolution to find note.markdown, got %+v", res)
	}
	if res.AbsolutePath != filepath.Join(dir, "note.markdown") {
		t.Errorf("unexpected absolute path: %s", res.AbsolutePath)
	}
}

func TestResolvePathCanonicalizesDotlessExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "note.md", "hello")

	res := resolvePath("note", dir, "", []string{"md"})
	if !res.Exists {
		t.Fatalf("expected resolution to succeed with dotless extension config, got %+v", res)
	}
}

func TestResolvePathNotFound(t *testing.T) {
	dir := t.TempDir()

	res := resolvePath("missing", dir, "", []string{"md"})
	if res.Exists {
		t.Fatalf("expected resolution to fail")
	}
	if res.Err == nil || res.Err.Code != CodeFileNotFound {
		t.Fatalf("expected FILE_NOT_FOUND, got %v", res.Err)
	}
}

func TestResolvePathParentDirSearchedFirst(t *testing.T) {
	base := t.TempDir()
	parent := filepath.Join(base, "sub")
	writeTestFile(t, parent, "sibling.md", "from parent")
	writeTestFile(t, base, "sibling.md", "from base")

	res := resolvePath("sibling", base, parent, []string{"md"})
	if !res.Exists {
		t.Fatalf("expected resolution to succeed, got %+v", res)
	}
	if res.AbsolutePath != filepath.Join(parent, "sibling.md") {
		t.Errorf("expected parent-dir candidate to win, got %s", res.AbsolutePath)
	}
}

func TestResolvePathOutsideBaseRemembersSecurityError(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()
	writeTestFile(t, outside, "secret.md", "nope")

	res := resolvePath("../"+filepath.Base(outside)+"/secret", base, "", []string{"md"})
	if res.Exists {
		t.Fatalf("must never resolve outside the base directory")
	}
	if res.Err == nil || res.Err.Code != CodeOutsideBase {
		t.Fatalf("expected OUTSIDE_BASE error, got %v", res.Err)
	}
}

func TestResolvePathRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "note.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	res := resolvePath("note.md", dir, "", []string{"md"})
	if res.Exists {
		t.Fatalf("directories must not count as existing candidates")
	}
}
