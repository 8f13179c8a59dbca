package cliapp

import (
	"context"
	"testing"
)

func testInvocation(t *testing.T) *Invocation {
	t.Helper()
	op := NewOperation("render", "x")
	op.AddFlag("base", "b", ".", "base dir")
	op.AddBoolFlag("strict", "", false, "strict mode")
	op.AddIntFlag("max-depth", "", 5, "max depth")
	op.AddStringSliceFlag("var", "", nil, "variables")

	if err := op.Flags().Parse([]string{"--base", "/docs", "--strict", "--max-depth", "7", "--var", "lang=es"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	return &Invocation{Op: op, Flags: op.Flags(), Args: []string{"doc.md"}}
}

func TestInvocationArgAccessors(t *testing.T) {
	inv := testInvocation(t)
	if got := inv.GetArg(0); got != "doc.md" {
		t.Errorf("got %q", got)
	}
	if got := inv.GetArg(1); got != "" {
		t.Errorf("expected empty string past the end, got %q", got)
	}
	if got := inv.ArgCount(); got != 1 {
		t.Errorf("got %d", got)
	}
}

func TestInvocationFlagAccessors(t *testing.T) {
	inv := testInvocation(t)

	if got := inv.GetFlagString("base"); got != "/docs" {
		t.Errorf("got %q", got)
	}
	if got := inv.GetFlagBool("strict"); !got {
		t.Error("expected strict to be true")
	}
	if got := inv.GetFlagInt("max-depth"); got != 7 {
		t.Errorf("got %d", got)
	}
	if got := inv.GetFlagStringSlice("var"); len(got) != 1 || got[0] != "lang=es" {
		t.Errorf("got %v", got)
	}
	if !inv.FlagChanged("base") {
		t.Error("expected base to be recorded as changed")
	}
}

func TestInvocationFlagAccessorsWithoutFlagsAreZeroValued(t *testing.T) {
	inv := &Invocation{}
	if got := inv.GetFlagString("base"); got != "" {
		t.Errorf("got %q", got)
	}
	if inv.GetFlagBool("strict") {
		t.Error("expected false")
	}
	if inv.FlagChanged("base") {
		t.Error("expected false")
	}
}

func TestInvocationSharedFlagAccessors(t *testing.T) {
	c := New("transclude")
	c.AddSharedBoolFlag("verbose", "", false, "verbose")
	if err := c.sharedFlags.Parse([]string{"--verbose"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	inv := &Invocation{CLI: c, SharedFlags: c.sharedFlags}
	if !inv.GetSharedFlagBool("verbose") {
		t.Error("expected verbose to be true")
	}
	if !inv.SharedFlagChanged("verbose") {
		t.Error("expected verbose to be recorded as changed")
	}
}

func TestInvocationObservabilityAccessorsReadFromCLI(t *testing.T) {
	logger := newLineLoggerStub()
	c := New("transclude").SetLogger(logger)
	inv := &Invocation{CLI: c}

	if inv.Logger() != logger {
		t.Error("expected Logger() to return the CLI's configured logger")
	}
	if (&Invocation{}).Logger() != nil {
		t.Error("expected a nil CLI to yield a nil logger")
	}
}

// lineLoggerStub is a trivial Logger used only to prove wiring; the real
// rendering logic lives in cmd/transclude's lineLogger.
type lineLoggerStub struct{}

func newLineLoggerStub() Logger { return lineLoggerStub{} }

func (lineLoggerStub) Trace(ctx context.Context, msg string, fields ...Field) {}
func (lineLoggerStub) Debug(ctx context.Context, msg string, fields ...Field) {}
func (lineLoggerStub) Info(ctx context.Context, msg string, fields ...Field)  {}
func (lineLoggerStub) Warn(ctx context.Context, msg string, fields ...Field)  {}
func (lineLoggerStub) Error(ctx context.Context, msg string, fields ...Field) {}
func (lineLoggerStub) WithFields(fields ...Field) Logger                     { return lineLoggerStub{} }
