package cliapp

import "testing"

func newCompletionCLI() *CLI {
	c := New("transclude").SetVersion("0.1.0")
	c.Operation("render", "Expand references", func(*Invocation) error { return nil })
	c.Operation("check", "Validate references", func(*Invocation) error { return nil })
	return c
}

func TestCompleteFirstPositionListsOperations(t *testing.T) {
	c := newCompletionCLI()
	result := c.Complete([]string{"r"}, 1)

	found := false
	for _, s := range result.Suggestions {
		if s == "render" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected render among suggestions, got %v", result.Suggestions)
	}
}

func TestCompleteUnknownOperationYieldsNoSuggestions(t *testing.T) {
	c := newCompletionCLI()
	result := c.Complete([]string{"bogus", "x"}, 1)
	if len(result.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", result.Suggestions)
	}
}

func TestCompleteFlagPrefixListsFlags(t *testing.T) {
	c := New("transclude")
	op := NewOperation("render", "x")
	op.AddFlag("base", "b", ".", "base dir")
	c.AddOperation(op)

	result := c.Complete([]string{"render", "--b"}, 2)
	found := false
	for _, s := range result.Suggestions {
		if s == "--base" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected --base among suggestions, got %v", result.Suggestions)
	}
}

func TestGenerateCompletionProducesAllThreeShells(t *testing.T) {
	c := newCompletionCLI()
	for _, shell := range []string{"bash", "zsh", "fish", "unknown"} {
		if script := c.GenerateCompletion(shell); script == "" {
			t.Errorf("expected a non-empty script for %q", shell)
		}
	}
}

func TestAddCompletionCommandRejectsUnknownShell(t *testing.T) {
	c := newCompletionCLI().AddCompletionCommand()
	err := c.Run([]string{"completion", "powershell"})
	cliErr, ok := err.(*CLIError)
	if !ok || !cliErr.IsValidationError() {
		t.Errorf("expected a validation CLIError, got %v (%T)", err, err)
	}
}

func TestAddCompletionCommandDefaultsToBash(t *testing.T) {
	c := newCompletionCLI().AddCompletionCommand()
	out := captureStdout(t, func() {
		if err := c.Run([]string{"completion"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if !containsAll(out, "bash completion for transclude") {
		t.Errorf("expected a bash completion script, got %q", out)
	}
}
