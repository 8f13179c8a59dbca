// operation.go: a single dispatchable unit of work — render, check, stats,
// or completion — together with its flags and its shell-completion hook.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	flashflags "github.com/agilira/flash-flags"
)

// OperationFunc is the signature every operation handler implements.
type OperationFunc func(inv *Invocation) error

// CompletionKind distinguishes what a shell is asking to complete.
type CompletionKind int

const (
	// CompletionOperations suggests operation names (render, check, ...).
	CompletionOperations CompletionKind = iota
	// CompletionFlags suggests flag names for an operation.
	CompletionFlags
	// CompletionArgs suggests positional arguments for an operation.
	CompletionArgs
)

// CompletionRequest describes what a shell is asking to complete.
type CompletionRequest struct {
	Kind        CompletionKind
	CurrentWord string
	Operation   string
	Args        []string
	Position    int
}

// CompletionResult is the answer to a CompletionRequest.
type CompletionResult struct {
	Suggestions []string
	Directive   CompletionDirective
}

// CompletionDirective hints to the shell how to treat the suggestions.
type CompletionDirective int

const (
	// CompletionDefault leaves normal shell completion behavior in place.
	CompletionDefault CompletionDirective = iota
	// CompletionNoSpace suppresses the trailing space after a completion.
	CompletionNoSpace
	// CompletionNoFiles disables the shell's own filename completion.
	CompletionNoFiles
)

// CompletionFunc supplies custom completions for one operation's
// positional arguments. An operation without one gets no argument
// suggestions from Complete.
type CompletionFunc func(req *CompletionRequest) *CompletionResult

// Operation is one thing the transclude binary can be asked to do:
// render a document, check its references, or report cache statistics.
// Each carries its own flag set, since render/check/stats share a flag
// shape (addEngineFlags in cmd/transclude) but stats and check omit
// --output.
type Operation struct {
	name            string
	description     string
	longDescription string
	usage           string
	examples        []string
	flags           *flashflags.FlagSet
	handler         OperationFunc
	completion      CompletionFunc
}

// NewOperation creates an operation named name.
func NewOperation(name, description string) *Operation {
	return &Operation{
		name:        name,
		description: description,
		flags:       flashflags.New(name),
	}
}

// Name returns the operation's name, as typed on the command line.
func (op *Operation) Name() string {
	return op.name
}

// Description returns the one-line summary shown in the operation list.
func (op *Operation) Description() string {
	return op.description
}

// Usage returns the usage string shown in help output.
func (op *Operation) Usage() string {
	if op.usage != "" {
		return op.usage
	}
	return op.name + " [document] [flags]"
}

// SetUsage overrides the default "name [document] [flags]" usage string.
func (op *Operation) SetUsage(usage string) *Operation {
	op.usage = usage
	return op
}

// SetHandler attaches the function that runs when this operation is
// dispatched.
func (op *Operation) SetHandler(handler OperationFunc) *Operation {
	op.handler = handler
	return op
}

// SetCompletionHandler attaches a custom shell-completion hook.
func (op *Operation) SetCompletionHandler(handler CompletionFunc) *Operation {
	op.completion = handler
	return op
}

// AddFlag registers a string flag on this operation.
func (op *Operation) AddFlag(name, shorthand, defaultValue, description string) *Operation {
	if shorthand != "" {
		op.flags.StringVar(name, shorthand, defaultValue, description)
	} else {
		op.flags.String(name, defaultValue, description)
	}
	return op
}

// AddBoolFlag registers a boolean flag on this operation.
func (op *Operation) AddBoolFlag(name, shorthand string, defaultValue bool, description string) *Operation {
	if shorthand != "" {
		op.flags.BoolVar(name, shorthand, defaultValue, description)
	} else {
		op.flags.Bool(name, defaultValue, description)
	}
	return op
}

// AddIntFlag registers an integer flag on this operation — used for
// --max-depth.
func (op *Operation) AddIntFlag(name, shorthand string, defaultValue int, description string) *Operation {
	if shorthand != "" {
		op.flags.IntVar(name, shorthand, defaultValue, description)
	} else {
		op.flags.Int(name, defaultValue, description)
	}
	return op
}

// AddStringSliceFlag registers a repeatable string flag — used for --var
// and --ext.
func (op *Operation) AddStringSliceFlag(name, shorthand string, defaultValue []string, description string) *Operation {
	if shorthand != "" {
		op.flags.StringSlice(name, defaultValue, description)
	} else {
		op.flags.StringSlice(name, defaultValue, description)
	}
	return op
}

// Execute parses args against this operation's flags and, unless a help
// flag was present, runs its handler.
func (op *Operation) Execute(inv *Invocation) error {
	args := stripOperationName(inv.Args, op.name)

	if hasHelpFlag(args) {
		return op.showHelp(inv)
	}

	if op.handler == nil {
		return ExecutionError(op.name, "no handler registered for operation")
	}

	if err := op.flags.Parse(args); err != nil {
		return ValidationError(op.name, "flag parsing failed: "+err.Error())
	}

	inv.Args = args
	inv.Flags = op.flags
	inv.Op = op
	return op.handler(inv)
}

// stripOperationName drops a leading arg equal to name, left over from
// callers that pass the full argument vector including the dispatched
// operation's own name.
func stripOperationName(args []string, name string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// Flags returns the operation's flag set for introspection (used by
// completion and help generation).
func (op *Operation) Flags() *flashflags.FlagSet {
	return op.flags
}

// SetLongDescription attaches a paragraph of detail shown in per-
// operation help, below the one-line description.
func (op *Operation) SetLongDescription(description string) *Operation {
	op.longDescription = description
	return op
}

// AddExample appends a usage example shown in per-operation help.
func (op *Operation) AddExample(example string) *Operation {
	op.examples = append(op.examples, example)
	return op
}

// showHelp prints this operation's help text to stdout.
func (op *Operation) showHelp(inv *Invocation) error {
	generator := NewHelpGenerator(inv.CLI)
	return generator.PrintOperationHelp(op)
}
