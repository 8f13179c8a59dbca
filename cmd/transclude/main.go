// main.go: the transclude CLI front-end, built on internal/cliapp the way
// the teacher's own example commands are built on its framework.
//
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kestrelmd/transclude/internal/cliapp"
	"github.com/kestrelmd/transclude/pkg/cache"
	"github.com/kestrelmd/transclude/pkg/transclude"
)

func main() {
	app := cliapp.New("transclude").
		SetDescription("Resolves Obsidian-style ![[target]] transclusion references in Markdown documents").
		SetVersion("0.1.0").
		SetLogger(newLineLogger(os.Stderr))

	app.AddOperation(renderOperation())
	app.AddOperation(checkOperation())
	app.AddOperation(statsOperation())
	app.AddCompletionCommand()

	if err := app.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	if cliErr, ok := err.(*cliapp.CLIError); ok {
		return cliErr.ExitCode()
	}
	return 1
}

func renderOperation() *cliapp.Operation {
	op := cliapp.NewOperation("render", "Expand transclusion references and write the flattened document").
		SetHandler(runRender)
	addEngineFlags(op)
	op.AddFlag("output", "o", "", "Output file (default: stdout)")
	return op
}

func checkOperation() *cliapp.Operation {
	op := cliapp.NewOperation("check", "Validate transclusion references without emitting content (render --validate-only)").
		SetHandler(runCheck)
	addEngineFlags(op)
	return op
}

func statsOperation() *cliapp.Operation {
	op := cliapp.NewOperation("stats", "Run a dry expansion and report cache hit/miss/entry counters").
		SetHandler(runStats)
	addEngineFlags(op)
	return op
}

func addEngineFlags(op *cliapp.Operation) {
	op.AddFlag("base", "b", ".", "Base directory containment root")
	op.AddStringSliceFlag("var", "", nil, "Variable substitution NAME=VALUE (repeatable)")
	op.AddBoolFlag("strict", "", false, "Treat undefined variables and recorded errors as fatal")
	op.AddIntFlag("max-depth", "", transclude.DefaultMaxDepth, "Maximum recursion depth")
	op.AddBoolFlag("strip-frontmatter", "", false, "Strip a leading YAML/TOML frontmatter block from each loaded file")
	op.AddStringSliceFlag("ext", "", transclude.DefaultExtensions, "Candidate extensions tried when a reference has none (repeatable)")
	op.AddBoolFlag("cache", "", true, "Cache loaded file content across the run")
	op.AddBoolFlag("validate-only", "", false, "Suppress successful content; markers and errors still flow")
}

func runRender(inv *cliapp.Invocation) error {
	return render(inv, false)
}

func runCheck(inv *cliapp.Invocation) error {
	return render(inv, true)
}

func render(inv *cliapp.Invocation, forceValidateOnly bool) error {
	ctx := context.Background()
	logger := inv.Logger()

	opts, err := optionsFromContext(inv)
	if err != nil {
		return err
	}
	if forceValidateOnly {
		opts.ValidateOnly = true
	}

	input, inputPath, err := openInput(inv)
	if err != nil {
		return err
	}
	defer input.Close()
	opts.InitialFilePath = inputPath

	out, closeOut, err := outputFor(inv, forceValidateOnly)
	if err != nil {
		return err
	}
	defer closeOut()

	if logger != nil {
		logger.Info(ctx, "starting "+inv.Op.Name(), cliapp.StringField("path", displayPath(inputPath)))
	}

	engine := transclude.New(opts)
	if err := engine.Run(ctx, input, out); err != nil {
		return cliapp.ExecutionError(inv.Op.Name(), "processing failed: "+err.Error())
	}

	logRunSummary(ctx, logger, inv.Op.Name(), engine)
	return exitForErrors(inv, engine, opts.Strict)
}

// outputFor returns io.Discard for the check command (no --output flag is
// registered on it) and the render command's configured sink otherwise.
func outputFor(inv *cliapp.Invocation, validateOnly bool) (io.Writer, func(), error) {
	if validateOnly {
		return io.Discard, func() {}, nil
	}
	return openOutput(inv)
}

func runStats(inv *cliapp.Invocation) error {
	ctx := context.Background()

	opts, err := optionsFromContext(inv)
	if err != nil {
		return err
	}
	opts.ValidateOnly = true

	memCache := cache.NewMemory()
	opts.Cache = memCache

	input, inputPath, err := openInput(inv)
	if err != nil {
		return err
	}
	defer input.Close()
	opts.InitialFilePath = inputPath

	engine := transclude.New(opts)
	if err := engine.Run(ctx, input, io.Discard); err != nil {
		return cliapp.ExecutionError("stats", "processing failed: "+err.Error())
	}

	stats := memCache.Stats()
	fmt.Printf("hits:    %d\n", stats.Hits)
	fmt.Printf("misses:  %d\n", stats.Misses)
	fmt.Printf("entries: %d\n", stats.Entries)
	fmt.Printf("files:   %d\n", len(engine.ProcessedFiles()))
	fmt.Printf("errors:  %d\n", len(engine.Errors()))

	logRunSummary(ctx, inv.Logger(), "stats", engine)
	return exitForErrors(inv, engine, opts.Strict)
}

// logRunSummary reports how many files were touched and how many
// reference errors were recorded, once a run finishes.
func logRunSummary(ctx context.Context, logger cliapp.Logger, operation string, engine *transclude.Engine) {
	if logger == nil {
		return
	}
	logger.Info(ctx, operation+" complete",
		cliapp.IntField("files", len(engine.ProcessedFiles())),
		cliapp.IntField("errors", len(engine.Errors())))
}

func optionsFromContext(inv *cliapp.Invocation) (transclude.Options, error) {
	base := inv.GetFlagString("base")
	opts := transclude.DefaultOptions(base)

	if inv.FlagChanged("ext") {
		opts.Extensions = inv.GetFlagStringSlice("ext")
	}
	if inv.FlagChanged("max-depth") {
		opts.MaxDepth = inv.GetFlagInt("max-depth")
	}
	opts.Strict = inv.GetFlagBool("strict")
	opts.ValidateOnly = inv.GetFlagBool("validate-only")
	opts.StripFrontmatter = inv.GetFlagBool("strip-frontmatter")

	vars, err := parseVariables(inv.GetFlagStringSlice("var"))
	if err != nil {
		return transclude.Options{}, err
	}
	opts.Variables = vars

	if inv.GetFlagBool("cache") {
		opts.Cache = cache.NewMemory()
	} else {
		opts.Cache = cache.Noop{}
	}

	return opts, nil
}

func parseVariables(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, cliapp.ValidationError("render", fmt.Sprintf("--var %q: expected NAME=VALUE", pair))
		}
		vars[name] = value
	}
	return vars, nil
}

func openInput(inv *cliapp.Invocation) (*os.File, string, error) {
	path := inv.GetArg(0)
	if path == "" || path == "-" {
		return os.Stdin, "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", cliapp.NotFoundError("render", "cannot open input: "+err.Error())
	}

	abs := path
	if resolved, err := filepath.Abs(path); err == nil {
		abs = resolved
	}
	return f, abs, nil
}

func openOutput(inv *cliapp.Invocation) (io.Writer, func(), error) {
	output := inv.GetFlagString("output")
	if output == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(output)
	if err != nil {
		return nil, nil, cliapp.ExecutionError("render", "cannot open output: "+err.Error())
	}
	return f, func() { f.Close() }, nil
}

// displayPath returns path, or "stdin" when the input came from standard
// input (openInput leaves the path empty in that case).
func displayPath(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

// exitForErrors prints every recorded reference error and, in strict
// mode, turns the run into a failure — classified as denied rather than
// a plain execution error when any recorded error was security-related.
func exitForErrors(inv *cliapp.Invocation, engine *transclude.Engine, strict bool) error {
	errs := engine.Errors()
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	if !strict {
		return nil
	}

	operation := inv.Op.Name()
	if anySecurityCoded(errs) {
		return cliapp.DeniedError(operation, fmt.Sprintf("%d reference error(s) recorded, including a security refusal", len(errs)))
	}
	return cliapp.ExecutionError(operation, fmt.Sprintf("%d reference error(s) recorded", len(errs)))
}

func anySecurityCoded(errs []*transclude.TransclusionError) bool {
	for _, e := range errs {
		switch e.Code {
		case transclude.CodeNullByte, transclude.CodeAbsolutePath, transclude.CodePathTraversal, transclude.CodeOutsideBase:
			return true
		}
	}
	return false
}
