// invocation.go: the state threaded into a running render/check/stats
// operation — its positional argument (the input path, or "-"/absent for
// stdin), its parsed flags, and the shared flag set every operation sees
// regardless of which one was dispatched.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	flashflags "github.com/agilira/flash-flags"
)

// Invocation carries everything an OperationFunc needs to do its work:
// the CLI it was dispatched from, the Operation being run, the remaining
// positional arguments, and two flag sets — the operation's own and the
// ones registered on the CLI itself.
type Invocation struct {
	// CLI is the application the operation was dispatched from.
	CLI *CLI

	// Op is the operation currently executing.
	Op *Operation

	// Args holds the arguments that followed the operation name, as
	// given: flags and their values are not removed, only parsed into
	// Flags. GetArg(0) is the input document path when the document is
	// written before any flag, as in the default usage line.
	Args []string

	// Flags is the operation's own parsed flag set (--base, --var,
	// --strict, and so on).
	Flags *flashflags.FlagSet

	// SharedFlags is the flag set registered directly on the CLI,
	// parsed before the operation name was read.
	SharedFlags *flashflags.FlagSet
}

// GetArg returns the positional argument at index, or "" past the end.
func (inv *Invocation) GetArg(index int) string {
	if index < 0 || index >= len(inv.Args) {
		return ""
	}
	return inv.Args[index]
}

// ArgCount returns the number of positional arguments left for the
// operation.
func (inv *Invocation) ArgCount() int {
	return len(inv.Args)
}

// GetFlag returns an operation flag's raw value, or nil if unset.
func (inv *Invocation) GetFlag(name string) interface{} {
	if inv.Flags != nil {
		if flag := inv.Flags.Lookup(name); flag != nil {
			return flag.Value()
		}
	}
	return nil
}

// GetFlagString returns an operation flag's value as a string.
func (inv *Invocation) GetFlagString(name string) string {
	if inv.Flags != nil {
		return inv.Flags.GetString(name)
	}
	return ""
}

// GetFlagBool returns an operation flag's value as a bool.
func (inv *Invocation) GetFlagBool(name string) bool {
	if inv.Flags != nil {
		return inv.Flags.GetBool(name)
	}
	return false
}

// GetFlagInt returns an operation flag's value as an int.
func (inv *Invocation) GetFlagInt(name string) int {
	if inv.Flags != nil {
		return inv.Flags.GetInt(name)
	}
	return 0
}

// GetFlagFloat64 returns an operation flag's value as a float64.
func (inv *Invocation) GetFlagFloat64(name string) float64 {
	if inv.Flags != nil {
		return inv.Flags.GetFloat64(name)
	}
	return 0.0
}

// GetFlagStringSlice returns an operation flag's value as a []string —
// used for --var and --ext, both repeatable.
func (inv *Invocation) GetFlagStringSlice(name string) []string {
	if inv.Flags != nil {
		return inv.Flags.GetStringSlice(name)
	}
	return []string{}
}

// FlagChanged reports whether the caller set name explicitly, as opposed
// to it carrying its registered default.
func (inv *Invocation) FlagChanged(name string) bool {
	if inv.Flags != nil {
		return inv.Flags.Changed(name)
	}
	return false
}

// GetSharedFlag returns a CLI-level flag's raw value, or nil if unset.
func (inv *Invocation) GetSharedFlag(name string) interface{} {
	if inv.SharedFlags != nil {
		if flag := inv.SharedFlags.Lookup(name); flag != nil {
			return flag.Value()
		}
	}
	return nil
}

// GetSharedFlagString returns a CLI-level flag's value as a string.
func (inv *Invocation) GetSharedFlagString(name string) string {
	if inv.SharedFlags != nil {
		return inv.SharedFlags.GetString(name)
	}
	return ""
}

// GetSharedFlagBool returns a CLI-level flag's value as a bool.
func (inv *Invocation) GetSharedFlagBool(name string) bool {
	if inv.SharedFlags != nil {
		return inv.SharedFlags.GetBool(name)
	}
	return false
}

// GetSharedFlagInt returns a CLI-level flag's value as an int.
func (inv *Invocation) GetSharedFlagInt(name string) int {
	if inv.SharedFlags != nil {
		return inv.SharedFlags.GetInt(name)
	}
	return 0
}

// SharedFlagChanged reports whether a CLI-level flag was set explicitly.
func (inv *Invocation) SharedFlagChanged(name string) bool {
	if inv.SharedFlags != nil {
		return inv.SharedFlags.Changed(name)
	}
	return false
}

// Logger returns the CLI's configured logger, or nil if none was set.
func (inv *Invocation) Logger() Logger {
	if inv.CLI != nil {
		return inv.CLI.logger
	}
	return nil
}

// AuditLogger returns the CLI's configured audit logger, or nil.
func (inv *Invocation) AuditLogger() AuditLogger {
	if inv.CLI != nil {
		return inv.CLI.auditLogger
	}
	return nil
}

// Tracer returns the CLI's configured tracer, or nil.
func (inv *Invocation) Tracer() Tracer {
	if inv.CLI != nil {
		return inv.CLI.tracer
	}
	return nil
}

// MetricsCollector returns the CLI's configured metrics collector, or
// nil.
func (inv *Invocation) MetricsCollector() MetricsCollector {
	if inv.CLI != nil {
		return inv.CLI.metricsCollector
	}
	return nil
}
