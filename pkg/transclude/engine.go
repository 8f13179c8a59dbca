// engine.go: the line transcluder — orchestrates the path-security
// validator, variable substituter, path resolver, file reader, and
// reference parser to expand "![[...]]" references, recursively, with
// cycle and depth tracking, and to compose output lines carrying inline
// failure markers.
//

package transclude

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Engine is a single-invocation transclusion processor. It is a plain
// value: construct one with New per top-level document, do not share it
// across unrelated runs.
type Engine struct {
	opts Options

	errors         []*TransclusionError
	processedFiles map[string]struct{}
}

// New constructs an Engine from opts. BasePath is made absolute and
// cleaned so every containment check downstream compares like with
// like.
func New(opts Options) *Engine {
	base := opts.BasePath
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	opts.BasePath = filepath.Clean(base)

	return &Engine{
		opts:           opts,
		processedFiles: make(map[string]struct{}),
	}
}

// Errors returns the accumulated error records for this invocation, in
// document-traversal order (depth-first, left-to-right per line).
func (e *Engine) Errors() []*TransclusionError {
	return e.errors
}

// ProcessedFiles returns the absolute paths whose full (possibly
// recursive) expansion succeeded without a fatal error, sorted.
func (e *Engine) ProcessedFiles() []string {
	out := make([]string, 0, len(e.processedFiles))
	for p := range e.processedFiles {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ProcessLine expands every reference on line and returns the composed
// line plus any errors recorded while doing so. chain is the ordered set
// of absolute paths already being expanded on this branch; contextPath
// is the absolute path of the file line came from, used as the parent
// directory for relative-to-parent resolution ("" for the top-level
// document unless InitialFilePath is configured).
func (e *Engine) ProcessLine(ctx context.Context, line string, depth int, chain expansionChain, contextPath string) (string, []*TransclusionError) {
	var lineErrors []*TransclusionError

	tokens := parseLine(line)
	if len(tokens) == 0 {
		return line, nil
	}

	type resolved struct {
		tok     Token
		content string
		failed  bool
		err     *TransclusionError
	}
	results := make([]resolved, len(tokens))

	parentDir := ""
	if contextPath != "" {
		parentDir = filepath.Dir(contextPath)
	}

	for i, tok := range tokens {
		if ctx != nil && ctx.Err() != nil {
			results[i] = resolved{tok: tok, failed: true, err: ReadError(CodeReadError, tok.Path, "processing cancelled")}
			continue
		}

		if depth >= e.opts.maxDepth() {
			name := contextPath
			if name == "" {
				name = "unknown"
			}
			err := ExpansionError(CodeMaxDepthExceeded, name,
				fmt.Sprintf("Maximum transclusion depth (%d) exceeded", e.opts.maxDepth()))
			results[i] = resolved{tok: tok, failed: true, err: err}
			e.record(err)
			lineErrors = append(lineErrors, err)
			notify(e.opts.Observer, Event{Kind: EventDepthExceeded, Path: name, Depth: depth, Err: err})
			continue
		}

		path, subErr := substituteVariables(tok.Path, e.opts.Variables, e.opts.Strict)
		if subErr != nil {
			results[i] = resolved{tok: tok, failed: true, err: subErr}
			e.record(subErr)
			lineErrors = append(lineErrors, subErr)
			continue
		}

		if secErr := checkReferenceString(path); secErr != nil {
			results[i] = resolved{tok: tok, failed: true, err: secErr}
			e.record(secErr)
			lineErrors = append(lineErrors, secErr)
			continue
		}

		res := resolvePath(path, e.opts.BasePath, parentDir, e.opts.extensions())
		if !res.Exists {
			results[i] = resolved{tok: tok, failed: true, err: res.Err}
			e.record(res.Err)
			lineErrors = append(lineErrors, res.Err)
			continue
		}

		if chain.contains(res.AbsolutePath) {
			err := ExpansionError(CodeCircularReference, res.AbsolutePath,
				"Circular reference detected: "+chain.render(res.AbsolutePath))
			results[i] = resolved{tok: tok, failed: true, err: err}
			e.record(err)
			lineErrors = append(lineErrors, err)
			notify(e.opts.Observer, Event{Kind: EventCircularReference, Path: res.AbsolutePath, Depth: depth, Err: err})
			continue
		}

		content, readErr := e.loadContent(res.AbsolutePath)
		if readErr != nil {
			results[i] = resolved{tok: tok, failed: true, err: readErr}
			e.record(readErr)
			lineErrors = append(lineErrors, readErr)
			continue
		}
		notify(e.opts.Observer, Event{Kind: EventFileOpened, Path: res.AbsolutePath, Depth: depth})

		if tok.HasHeading {
			section, headErr := extractHeading(content, tok.Heading)
			if headErr != nil {
				headErr.Path = res.AbsolutePath
				results[i] = resolved{tok: tok, failed: true, err: headErr}
				e.record(headErr)
				lineErrors = append(lineErrors, headErr)
				notify(e.opts.Observer, Event{Kind: EventHeadingNotFound, Path: res.AbsolutePath, Depth: depth, Err: headErr})
				continue
			}
			content = section
		}

		if strings.Contains(content, refOpen) {
			nextChain := chain.extend(res.AbsolutePath)
			var nested []string
			for _, sub := range splitContentLines(content) {
				composed, subErrs := e.ProcessLine(ctx, sub, depth+1, nextChain, res.AbsolutePath)
				nested = append(nested, composed)
				lineErrors = append(lineErrors, subErrs...)
			}
			content = strings.Join(nested, "\n")
		}

		content = strings.TrimSpace(content)

		e.processedFiles[res.AbsolutePath] = struct{}{}
		results[i] = resolved{tok: tok, content: content}
	}

	var out strings.Builder
	cursor := 0
	for _, r := range results {
		out.WriteString(line[cursor:r.tok.Start])
		switch {
		case !r.failed:
			if !e.opts.ValidateOnly {
				out.WriteString(r.content)
			}
		case r.err != nil && (r.err.Code == CodeFileNotFound || r.err.Code == CodeNullByte ||
			r.err.Code == CodeAbsolutePath || r.err.Code == CodePathTraversal || r.err.Code == CodeOutsideBase):
			out.WriteString("<!-- Missing: " + r.tok.Path + " -->")
		default:
			msg := "unknown error"
			if r.err != nil {
				msg = r.err.Message
			}
			out.WriteString("<!-- Error: " + msg + " -->")
		}
		cursor = r.tok.End
	}
	out.WriteString(line[cursor:])

	return out.String(), lineErrors
}

func (e *Engine) loadContent(absPath string) (string, *TransclusionError) {
	if e.opts.Cache != nil {
		if cached, ok := e.opts.Cache.Get(absPath); ok {
			return cached.Content, nil
		}
	}

	content, err := readFile(absPath, e.opts.StripFrontmatter)
	if err != nil {
		return "", err
	}

	if e.opts.Cache != nil {
		e.opts.Cache.Set(absPath, CachedContent{Content: content, Size: int64(len(content))})
	}

	return content, nil
}

func (e *Engine) record(err *TransclusionError) {
	if err == nil {
		return
	}
	e.errors = append(e.errors, err)
}

// splitContentLines splits content on \r?\n boundaries, accepting both
// line-ending styles, with no trailing empty element for a final
// newline.
func splitContentLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Run drives a whole document: it splits in from \r?\n boundaries,
// expands each line through ProcessLine at depth 0 with a fresh
// expansion chain, and writes the composed line followed by "\n" to
// out. It returns after in is exhausted, ctx is cancelled, or a write
// fails.
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFileSize)

	chain := newExpansionChain()
	if e.opts.InitialFilePath != "" {
		chain = chain.extend(filepath.Clean(e.opts.InitialFilePath))
	}

	for scanner.Scan() {
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}

		composed, _ := e.ProcessLine(ctx, scanner.Text(), 0, chain, e.opts.InitialFilePath)

		if _, err := out.Write([]byte(composed)); err != nil {
			return err
		}
		if _, err := out.Write([]byte{'\n'}); err != nil {
			return err
		}
	}

	notify(e.opts.Observer, Event{Kind: EventProcessingComplete})

	return scanner.Err()
}

// Process is a convenience wrapper around Run for in-memory strings.
func (e *Engine) Process(ctx context.Context, input string) (string, error) {
	var buf bytes.Buffer
	if err := e.Run(ctx, strings.NewReader(input), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
