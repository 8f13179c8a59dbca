package cliapp

import "testing"

func TestOperationExecuteRunsHandler(t *testing.T) {
	ran := false
	op := NewOperation("check", "Validate references").
		SetHandler(func(inv *Invocation) error {
			ran = true
			return nil
		})

	inv := &Invocation{Op: op, Args: []string{}}
	if err := op.Execute(inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("expected handler to run")
	}
}

func TestOperationExecuteStripsLeadingOperationName(t *testing.T) {
	var gotArg string
	op := NewOperation("check", "Validate references").
		SetHandler(func(inv *Invocation) error {
			gotArg = inv.GetArg(0)
			return nil
		})

	inv := &Invocation{Op: op, Args: []string{"check", "doc.md"}}
	if err := op.Execute(inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotArg != "doc.md" {
		t.Errorf("expected doc.md, got %q", gotArg)
	}
}

func TestOperationExecuteWithoutHandlerFails(t *testing.T) {
	op := NewOperation("check", "Validate references")
	err := op.Execute(&Invocation{Op: op})
	cliErr, ok := err.(*CLIError)
	if !ok || !cliErr.IsExecutionError() {
		t.Errorf("expected an execution CLIError, got %v (%T)", err, err)
	}
}

func TestOperationExecuteHelpFlagShortCircuits(t *testing.T) {
	ran := false
	op := NewOperation("check", "Validate references").
		SetHandler(func(inv *Invocation) error {
			ran = true
			return nil
		})

	out := captureStdout(t, func() {
		err := op.Execute(&Invocation{Op: op, CLI: New("transclude"), Args: []string{"--help"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	if ran {
		t.Error("expected the handler to be skipped when --help is present")
	}
	if !containsAll(out, "Usage: transclude check") {
		t.Errorf("expected operation help, got %q", out)
	}
}

func TestOperationFlagParsingFailureIsValidationError(t *testing.T) {
	op := NewOperation("render", "Expand references").
		SetHandler(func(*Invocation) error { return nil })
	op.AddIntFlag("max-depth", "", 5, "max depth")

	inv := &Invocation{Op: op, Args: []string{"--max-depth", "not-a-number"}}
	err := op.Execute(inv)
	cliErr, ok := err.(*CLIError)
	if !ok || !cliErr.IsValidationError() {
		t.Errorf("expected a validation CLIError, got %v (%T)", err, err)
	}
}

func TestOperationUsageDefaultsToNameAndFlags(t *testing.T) {
	op := NewOperation("render", "Expand references")
	if got, want := op.Usage(), "render [document] [flags]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	op.SetUsage("render <path>")
	if got, want := op.Usage(), "render <path>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOperationAddFlagVariantsRegisterShorthand(t *testing.T) {
	op := NewOperation("render", "x")
	op.AddFlag("base", "b", ".", "base dir")
	op.AddBoolFlag("strict", "s", false, "strict mode")
	op.AddIntFlag("max-depth", "d", 5, "max depth")
	op.AddStringSliceFlag("var", "", nil, "variables")

	for _, name := range []string{"base", "strict", "max-depth", "var"} {
		if op.Flags().Lookup(name) == nil {
			t.Errorf("expected flag %q to be registered", name)
		}
	}
}
