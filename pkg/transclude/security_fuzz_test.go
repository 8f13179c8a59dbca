// security_fuzz_test.go: adversarial fuzzing for the path-security
// validator and reference parser, following the seed-corpus-plus-
// panic-recovery pattern of the teacher's plugin path fuzzer.
//

package transclude

import (
	"strings"
	"testing"
)

// FuzzCheckReferenceString hammers the path-security validator with
// traversal, encoding, and null-byte attack strings. It never asserts a
// specific error code (the taxonomy is exercised exhaustively in
// security_test.go); it only asserts the validator never panics and
// never reports a clean result for an input containing a NUL byte.
func FuzzCheckReferenceString(f *testing.F) {
	seeds := []string{
		"../../../etc/passwd",
		`..\..\..\windows\system32\config\sam`,
		"/../../etc/passwd",
		`\\server\share\file`,
		"//server/share",
		`C:\Windows\System32`,
		"D:/data/file.md",
		"safe.md\x00../../etc/passwd",
		"%2Fetc%2Fpasswd",
		"%252Fetc%252Fpasswd",
		"notes/today",
		"notes/../today",
		strings.Repeat("../", 200) + "etc/passwd",
		strings.Repeat("a", 2000),
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, ref string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("checkReferenceString panicked on %q: %v", ref, r)
			}
		}()

		err := checkReferenceString(ref)

		if strings.IndexByte(ref, 0) != -1 && (err == nil || err.Code != CodeNullByte) {
			t.Errorf("ref %q: NUL byte present but got %v", ref, err)
		}
	})
}

// FuzzParseLine exercises the reference parser's masking and scanning
// against adversarial line content, asserting only that it never panics
// and that every returned token's offsets are a valid, non-overlapping,
// left-to-right slice of the line.
func FuzzParseLine(f *testing.F) {
	seeds := []string{
		"![[target]]",
		"![[target#Heading]]",
		"text ![[a]] more ![[b#H1:H2]] end",
		"`![[masked]]` not masked ![[real]]",
		"<!-- ![[masked]] --> ![[real]]",
		"![[]]",
		"![[   ]]",
		"![[" + strings.Repeat("a", 5000) + "]]",
		"![[unterminated",
		"```\n![[inside fence]]\n```",
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, line string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("parseLine panicked on %q: %v", line, r)
			}
		}()

		tokens := parseLine(line)

		cursor := 0
		for _, tok := range tokens {
			if tok.Start < cursor || tok.End > len(line) || tok.Start > tok.End {
				t.Fatalf("line %q: token %+v has invalid offsets (cursor=%d, len=%d)", line, tok, cursor, len(line))
			}
			cursor = tok.End
		}
	})
}
