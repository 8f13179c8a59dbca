package cliapp

import "testing"

func TestRenderOverviewListsOperationsAndFlags(t *testing.T) {
	c := New("transclude").SetDescription("Resolves transclusion references").SetVersion("0.1.0")
	c.Operation("render", "Expand references", func(*Invocation) error { return nil })

	out := NewHelpGenerator(c).RenderOverview()
	if !containsAll(out, "Resolves transclusion references", "Usage: transclude <operation>", "render", "Expand references", "--version") {
		t.Errorf("unexpected overview help: %q", out)
	}
}

func TestPrintOperationHelpIncludesFlagsAndExamples(t *testing.T) {
	op := NewOperation("render", "Expand references")
	op.AddFlag("base", "b", ".", "base directory")
	op.SetLongDescription("Expands every ![[target]] reference in a document.")
	op.AddExample("transclude render notes.md")

	c := New("transclude").AddOperation(op)
	out := captureStdout(t, func() {
		if err := NewHelpGenerator(c).PrintOperationHelp(op); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	if !containsAll(out, "Usage: transclude render", "Expands every", "transclude render notes.md", "--base", "Shared Flags:") {
		t.Errorf("unexpected operation help: %q", out)
	}
}

func TestPrintOperationHelpOmitsFlagsSectionWhenEmpty(t *testing.T) {
	op := NewOperation("stats", "Report cache statistics")
	c := New("transclude").AddOperation(op)

	out := captureStdout(t, func() {
		if err := NewHelpGenerator(c).PrintOperationHelp(op); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if containsAll(out, "\nFlags:\n") {
		t.Errorf("expected no operation-flags section, got %q", out)
	}
}
