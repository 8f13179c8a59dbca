// Package cliapp is the command-line front-end framework transclude is
// built on: a small registry of named operations (render, check, stats,
// completion), each with its own flags, dispatched from a single shared
// argument vector.
//
// Basic usage:
//
//	app := cliapp.New("transclude").
//		SetDescription("Resolves ![[target]] references").
//		SetVersion("0.1.0")
//
//	app.AddOperation(cliapp.NewOperation("render", "Expand a document").
//		SetHandler(runRender))
//
//	return app.Run(os.Args[1:])
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package cliapp

import (
	"fmt"
	"strings"

	flashflags "github.com/agilira/flash-flags"
)

// CLI is the transclude command-line front-end: a name, a version, a set
// of flags shared across every operation, and the registered operations
// themselves.
type CLI struct {
	name             string
	description      string
	version          string
	operations       map[string]*Operation
	sharedFlags      *flashflags.FlagSet
	fallbackOp       string
	logger           Logger
	auditLogger      AuditLogger
	tracer           Tracer
	metricsCollector MetricsCollector
}

// New creates a CLI named name with no operations registered. The
// built-in "help" operation is handled by dispatch and does not appear
// in Operations.
func New(name string) *CLI {
	return &CLI{
		name:        name,
		operations:  make(map[string]*Operation),
		sharedFlags: flashflags.New(name),
	}
}

// SetDescription sets the one-line summary shown at the top of --help.
func (c *CLI) SetDescription(description string) *CLI {
	c.description = description
	return c
}

// SetVersion sets the string reported by --version.
func (c *CLI) SetVersion(version string) *CLI {
	c.version = version
	return c
}

// SetLogger attaches a structured logger operations can read via
// Invocation.Logger.
func (c *CLI) SetLogger(logger Logger) *CLI {
	c.logger = logger
	return c
}

// SetAuditLogger attaches an audit logger operations can read via
// Invocation.AuditLogger.
func (c *CLI) SetAuditLogger(auditLogger AuditLogger) *CLI {
	c.auditLogger = auditLogger
	return c
}

// SetTracer attaches a tracer operations can read via Invocation.Tracer.
func (c *CLI) SetTracer(tracer Tracer) *CLI {
	c.tracer = tracer
	return c
}

// SetMetricsCollector attaches a metrics collector operations can read
// via Invocation.MetricsCollector.
func (c *CLI) SetMetricsCollector(collector MetricsCollector) *CLI {
	c.metricsCollector = collector
	return c
}

// Logger returns the configured logger, or nil.
func (c *CLI) Logger() Logger { return c.logger }

// AuditLogger returns the configured audit logger, or nil.
func (c *CLI) AuditLogger() AuditLogger { return c.auditLogger }

// Tracer returns the configured tracer, or nil.
func (c *CLI) Tracer() Tracer { return c.tracer }

// MetricsCollector returns the configured metrics collector, or nil.
func (c *CLI) MetricsCollector() MetricsCollector { return c.metricsCollector }

// AddSharedFlag registers a string flag recognized before the operation
// name, shared across every operation.
func (c *CLI) AddSharedFlag(name, shorthand, defaultValue, description string) *CLI {
	if shorthand != "" {
		c.sharedFlags.StringVar(name, shorthand, defaultValue, description)
	} else {
		c.sharedFlags.String(name, defaultValue, description)
	}
	return c
}

// AddSharedBoolFlag registers a boolean shared flag.
func (c *CLI) AddSharedBoolFlag(name, shorthand string, defaultValue bool, description string) *CLI {
	if shorthand != "" {
		c.sharedFlags.BoolVar(name, shorthand, defaultValue, description)
	} else {
		c.sharedFlags.Bool(name, defaultValue, description)
	}
	return c
}

// Operation registers an operation built from a bare handler function —
// a shorthand for AddOperation(NewOperation(name, description).SetHandler(handler)).
func (c *CLI) Operation(name, description string, handler OperationFunc) *CLI {
	c.operations[name] = NewOperation(name, description).SetHandler(handler)
	return c
}

// AddOperation registers a fully-configured operation.
func (c *CLI) AddOperation(op *Operation) *CLI {
	c.operations[op.Name()] = op
	return c
}

// SetFallbackOperation names the operation to run when no operation name
// is given on the command line.
func (c *CLI) SetFallbackOperation(name string) *CLI {
	c.fallbackOp = name
	return c
}

// Run parses args, dispatches to the named operation, and returns
// whatever error it produced (already wrapped as a *CLIError, in the
// common case, by the operation's own handler or by dispatch itself).
func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		return c.runFallback()
	}

	if handled, err := c.handleTopLevelFlag(args[0]); handled {
		return err
	}

	sharedArgs, opArgs := c.splitSharedArgs(args)
	if err := c.sharedFlags.Parse(sharedArgs); err != nil {
		return ValidationError("", "shared flag parsing failed: "+err.Error())
	}

	return c.dispatch(opArgs)
}

// runFallback handles an empty argument vector: run the configured
// fallback operation if one was set, otherwise show top-level help.
func (c *CLI) runFallback() error {
	if c.fallbackOp != "" {
		return c.invoke(c.fallbackOp, nil)
	}
	return c.printHelp()
}

// handleTopLevelFlag intercepts --help/-h and --version/-v before any
// operation dispatch happens.
func (c *CLI) handleTopLevelFlag(arg string) (handled bool, err error) {
	switch arg {
	case "--help", "-h":
		return true, c.printHelp()
	case "--version", "-v":
		c.printVersion()
		return true, nil
	default:
		return false, nil
	}
}

func (c *CLI) printVersion() {
	if c.version != "" {
		fmt.Printf("%s version %s\n", c.name, c.version)
	} else {
		fmt.Printf("%s (no version set)\n", c.name)
	}
}

// dispatch routes the first remaining argument to its operation, or to
// the built-in help operation.
func (c *CLI) dispatch(opArgs []string) error {
	if len(opArgs) == 0 {
		return c.runFallback()
	}

	name, rest := opArgs[0], opArgs[1:]
	if name == "help" {
		return c.dispatchHelp(rest)
	}
	return c.invoke(name, rest)
}

func (c *CLI) dispatchHelp(rest []string) error {
	if len(rest) > 0 {
		return c.printOperationHelp(rest[0])
	}
	return c.printHelp()
}

// invoke runs a single registered operation by name.
func (c *CLI) invoke(name string, args []string) error {
	op, ok := c.operations[name]
	if !ok {
		return NotFoundError(name, fmt.Sprintf("operation '%s' not found", name))
	}

	inv := &Invocation{
		CLI:         c,
		Op:          op,
		Args:        args,
		SharedFlags: c.sharedFlags,
	}
	return op.Execute(inv)
}

// splitSharedArgs separates leading shared flags from the operation name
// and its own arguments: it stops at the first token that isn't a flag.
func (c *CLI) splitSharedArgs(args []string) (sharedArgs, opArgs []string) {
	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			break
		}

		consumed, tookValue := c.consumeSharedFlag(args, i)
		sharedArgs = append(sharedArgs, consumed...)
		if tookValue {
			i++
		}
	}
	return sharedArgs, args[i:]
}

// consumeSharedFlag decides whether arg (at position i) needs the
// following token as its value.
func (c *CLI) consumeSharedFlag(args []string, i int) (consumed []string, tookValue bool) {
	arg := args[i]

	if c.isBooleanSharedFlag(arg) || strings.Contains(arg, "=") {
		return []string{arg}, false
	}

	if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
		return []string{arg, args[i+1]}, true
	}
	return []string{arg}, false
}

func (c *CLI) isBooleanSharedFlag(arg string) bool {
	name, ok := strings.CutPrefix(arg, "--")
	if ok {
		if eq := strings.IndexByte(name, '='); eq != -1 {
			name = name[:eq]
		}
		flag := c.sharedFlags.Lookup(name)
		return flag != nil && flag.Type() == "bool"
	}

	if len(arg) == 2 && arg[0] == '-' {
		switch arg[1] {
		case 'v', 'h', 'd':
			return true
		}
	}
	return false
}

func (c *CLI) printHelp() error {
	fmt.Print(NewHelpGenerator(c).RenderOverview())
	return nil
}

func (c *CLI) printOperationHelp(name string) error {
	op, ok := c.operations[name]
	if !ok {
		return NotFoundError(name, fmt.Sprintf("operation '%s' not found", name))
	}
	return NewHelpGenerator(c).PrintOperationHelp(op)
}

// Operations returns a defensive copy of the registered operations,
// keyed by name.
func (c *CLI) Operations() map[string]*Operation {
	out := make(map[string]*Operation, len(c.operations))
	for name, op := range c.operations {
		out[name] = op
	}
	return out
}

// Name returns the CLI's program name.
func (c *CLI) Name() string { return c.name }

// Version returns the configured version string.
func (c *CLI) Version() string { return c.version }

// Description returns the configured top-level description.
func (c *CLI) Description() string { return c.description }
