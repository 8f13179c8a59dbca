// help.go: renders --help text for the CLI as a whole and for a single
// operation, reading flag metadata straight out of flash-flags.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	"fmt"
	"sort"
	"strings"

	flashflags "github.com/agilira/flash-flags"
)

// HelpGenerator renders help text for a CLI and its operations.
type HelpGenerator struct {
	cli *CLI
}

// NewHelpGenerator builds a generator bound to cli.
func NewHelpGenerator(cli *CLI) *HelpGenerator {
	return &HelpGenerator{cli: cli}
}

// RenderOverview renders the top-level help: description, usage line,
// the operation list, and the shared flags.
func (h *HelpGenerator) RenderOverview() string {
	var sb strings.Builder

	if h.cli.description != "" {
		fmt.Fprintf(&sb, "%s\n\n", h.cli.description)
	}
	fmt.Fprintf(&sb, "Usage: %s <operation> [flags]\n\n", h.cli.name)

	h.writeOperationList(&sb)

	sb.WriteString("Shared Flags:\n")
	sb.WriteString(h.renderSharedFlags())
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Use \"%s help <operation>\" for more information about an operation.\n", h.cli.name)
	return sb.String()
}

// writeOperationList writes the sorted, aligned list of registered
// operations plus the built-in "help" entry.
func (h *HelpGenerator) writeOperationList(sb *strings.Builder) {
	if len(h.cli.operations) == 0 {
		return
	}

	names := make([]string, 0, len(h.cli.operations))
	for name := range h.cli.operations {
		names = append(names, name)
	}
	sort.Strings(names)

	width := len("help")
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	sb.WriteString("Operations:\n")
	for _, name := range names {
		op := h.cli.operations[name]
		fmt.Fprintf(sb, "  %-*s  %s\n", width, name, op.Description())
	}
	fmt.Fprintf(sb, "  %-*s  %s\n\n", width, "help", "Show help for an operation")
}

// PrintOperationHelp prints detailed help for a single operation:
// usage, description, examples, its own flags, then the shared flags.
func (h *HelpGenerator) PrintOperationHelp(op *Operation) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Usage: %s %s\n\n", h.cli.name, op.Usage())

	if op.Description() != "" {
		fmt.Fprintf(&sb, "%s\n\n", op.Description())
	}
	if op.longDescription != "" {
		fmt.Fprintf(&sb, "%s\n\n", op.longDescription)
	}

	if len(op.examples) > 0 {
		sb.WriteString("Examples:\n")
		for _, example := range op.examples {
			fmt.Fprintf(&sb, "  %s\n", example)
		}
		sb.WriteString("\n")
	}

	if h.hasFlags(op) {
		sb.WriteString("Flags:\n")
		sb.WriteString(h.renderOperationFlags(op))
		sb.WriteString("\n")
	}

	sb.WriteString("Shared Flags:\n")
	sb.WriteString(h.renderSharedFlags())

	fmt.Print(sb.String())
	return nil
}

// renderSharedFlags renders the built-in --help/--version lines plus any
// flag registered directly on the CLI.
func (h *HelpGenerator) renderSharedFlags() string {
	var sb strings.Builder
	sb.WriteString("  -h, --help      Show help\n")
	if h.cli.version != "" {
		sb.WriteString("  -v, --version   Show version\n")
	}
	if h.cli.sharedFlags != nil {
		h.cli.sharedFlags.VisitAll(func(flag *flashflags.Flag) {
			sb.WriteString(h.renderFlagLine(flag))
		})
	}
	return sb.String()
}

// renderOperationFlags renders op's own flags, plus its help flag line.
func (h *HelpGenerator) renderOperationFlags(op *Operation) string {
	var sb strings.Builder
	if op.Flags() != nil {
		op.Flags().VisitAll(func(flag *flashflags.Flag) {
			sb.WriteString(h.renderFlagLine(flag))
		})
	}
	sb.WriteString("  -h, --help      Show help for this operation\n")
	return sb.String()
}

// hasFlags reports whether op registered at least one flag.
func (h *HelpGenerator) hasFlags(op *Operation) bool {
	if op.Flags() == nil {
		return false
	}
	found := false
	op.Flags().VisitAll(func(*flashflags.Flag) { found = true })
	return found
}

// renderFlagLine formats one flash-flags Flag as a help line: name,
// type (for non-bool flags), description, and default value.
func (h *HelpGenerator) renderFlagLine(flag *flashflags.Flag) string {
	var line strings.Builder

	line.WriteString("  --")
	line.WriteString(flag.Name())
	if flag.Type() != "bool" {
		line.WriteString(" ")
		line.WriteString(strings.ToUpper(flag.Type()))
	}

	for line.Len() < 30 {
		line.WriteString(" ")
	}
	line.WriteString(flag.Usage())

	if flag.Type() != "bool" && flag.Value() != nil {
		fmt.Fprintf(&line, " (default: %v)", flag.Value())
	}
	line.WriteString("\n")
	return line.String()
}

// GetHelpGenerator returns a help generator bound to this CLI.
func (c *CLI) GetHelpGenerator() *HelpGenerator {
	return NewHelpGenerator(c)
}
