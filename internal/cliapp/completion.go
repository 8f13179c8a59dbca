// completion.go: shell completion scripts for render/check/stats and
// their flags, generated for bash, zsh, and fish.
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

// GenerateCompletion renders a completion script for the named shell,
// defaulting to bash for anything unrecognized.
func (c *CLI) GenerateCompletion(shell string) string {
	switch shell {
	case "zsh":
		return c.generateZshCompletion()
	case "fish":
		return c.generateFishCompletion()
	default:
		return c.generateBashCompletion()
	}
}

// Complete answers a single completion request for the given argument
// vector and cursor position. Position 1 completes the operation name
// (args[0]); a position equal to len(args) completes the last word. The
// "completion" operation does not call it; it prints a whole script via
// GenerateCompletion.
func (c *CLI) Complete(args []string, position int) *CompletionResult {
	if len(args) == 0 || position == 0 {
		return c.completeOperationNames("")
	}

	if position == 1 {
		return c.completeOperationNames(args[0])
	}

	opName := args[0]
	op, ok := c.operations[opName]
	if !ok {
		return &CompletionResult{Suggestions: []string{}}
	}

	currentWord := ""
	if position < len(args) {
		currentWord = args[position]
	} else if position == len(args) && len(args) > 1 {
		currentWord = args[len(args)-1]
	}

	if strings.HasPrefix(currentWord, "-") {
		return c.completeFlags(op, currentWord)
	}

	if op.completion == nil {
		return &CompletionResult{Suggestions: []string{}}
	}
	return op.completion(&CompletionRequest{
		Kind:        CompletionArgs,
		CurrentWord: currentWord,
		Operation:   opName,
		Args:        args[1:],
		Position:    position - 1,
	})
}

// completeOperationNames lists operation names (plus the built-in
// "help") matching partial.
func (c *CLI) completeOperationNames(partial string) *CompletionResult {
	var suggestions []string
	for name := range c.operations {
		if strings.HasPrefix(name, partial) {
			suggestions = append(suggestions, name)
		}
	}
	if strings.HasPrefix("help", partial) {
		suggestions = append(suggestions, "help")
	}

	sort.Strings(suggestions)
	return &CompletionResult{Suggestions: suggestions}
}

// completeFlags lists --flag names (shared and operation-specific)
// matching partial.
func (c *CLI) completeFlags(op *Operation, partial string) *CompletionResult {
	seen := make(map[string]bool)
	var suggestions []string

	add := func(name string) {
		if strings.HasPrefix(name, partial) && !seen[name] {
			suggestions = append(suggestions, name)
			seen[name] = true
		}
	}

	add("--help")
	add("-h")
	if c.version != "" {
		add("--version")
		add("-v")
	}
	if c.sharedFlags != nil {
		c.sharedFlags.VisitAll(func(flag *flashflags.Flag) { add("--" + flag.Name()) })
	}
	if op.Flags() != nil {
		op.Flags().VisitAll(func(flag *flashflags.Flag) { add("--" + flag.Name()) })
	}

	sort.Strings(suggestions)
	return &CompletionResult{Suggestions: suggestions, Directive: CompletionNoFiles}
}

// generateBashCompletion writes a bash completion function offering
// operation names first, then "--help"/"-h" once one is recognized
// (flag-level completion of --base and friends is left to the shell's
// own globbing for the document argument).
func (c *CLI) generateBashCompletion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# bash completion for %s\n_%s_completion() {\n", c.name, c.name)
	sb.WriteString("    local cur prev words cword\n    _init_completion || return\n\n")
	fmt.Fprintf(&sb, "    case $cword in\n        1)\n            COMPREPLY=($(compgen -W \"%s help\" -- \"$cur\"))\n            return 0\n            ;;\n        *)\n            case ${words[1]} in\n", c.operationNames())

	for name := range c.operations {
		fmt.Fprintf(&sb, "                %s)\n                    COMPREPLY=($(compgen -W \"--help -h\" -- \"$cur\"))\n                    return 0\n                    ;;\n", name)
	}
	fmt.Fprintf(&sb, "                help)\n                    COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n                    return 0\n                    ;;\n            esac\n            ;;\n    esac\n}\n\ncomplete -F _%s_completion %s\n", c.operationNames(), c.name, c.name)

	return sb.String()
}

// generateZshCompletion writes a zsh _arguments-based completion
// function describing each operation's one-line summary.
func (c *CLI) generateZshCompletion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "#compdef %s\n\n_%s() {\n    local context curcontext=\"$curcontext\" state line\n    typeset -A opt_args\n\n    _arguments \\\n        '1: :->operations' \\\n        '*: :->args'\n\n    case $state in\n        operations)\n            _describe 'operations' '(\n", c.name, c.name)

	for name, op := range c.operations {
		fmt.Fprintf(&sb, "                %s:'%s'\n", name, op.Description())
	}
	sb.WriteString("                help:'Show help for an operation'\n            )'\n            ;;\n        args)\n            case $words[2] in\n                help)\n                    _describe 'operations' '(\n")

	for name, op := range c.operations {
		fmt.Fprintf(&sb, "                        %s:'%s'\n", name, op.Description())
	}
	fmt.Fprintf(&sb, "                    )'\n                    ;;\n                *)\n                    _arguments \\\n                        '--help[Show help]' \\\n                        '-h[Show help]'\n                    ;;\n            esac\n            ;;\n    esac\n}\n\n_%s \"$@\"\n", c.name)

	return sb.String()
}

// generateFishCompletion writes fish `complete` directives, one set per
// operation plus the built-in --help/--version flags. Flags registered
// with AddSharedFlag or on an operation are not emitted.
func (c *CLI) generateFishCompletion() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# fish completion for %s\n\ncomplete -c %s -f\n", c.name, c.name)

	for name, op := range c.operations {
		fmt.Fprintf(&sb, "complete -c %s -n '__fish_use_subcommand' -a %s -d '%s'\n", c.name, name, op.Description())
	}
	fmt.Fprintf(&sb, "complete -c %s -n '__fish_use_subcommand' -a help -d 'Show help for an operation'\n", c.name)
	fmt.Fprintf(&sb, "complete -c %s -s h -l help -d 'Show help'\n", c.name)
	if c.version != "" {
		fmt.Fprintf(&sb, "complete -c %s -s v -l version -d 'Show version'\n", c.name)
	}
	for name := range c.operations {
		fmt.Fprintf(&sb, "complete -c %s -n '__fish_seen_subcommand_from help' -a %s\n", c.name, name)
	}

	return sb.String()
}

// operationNames returns a sorted, space-joined list of operation names.
func (c *CLI) operationNames() string {
	names := make([]string, 0, len(c.operations))
	for name := range c.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// AddCompletionCommand registers a "completion" operation that prints a
// shell script for bash (default), zsh, or fish to stdout.
func (c *CLI) AddCompletionCommand() *CLI {
	c.Operation("completion", "Generate a shell completion script", func(inv *Invocation) error {
		shell := "bash"
		if inv.ArgCount() > 0 {
			shell = inv.GetArg(0)
		}

		switch shell {
		case "bash", "zsh", "fish":
		default:
			return ValidationError("completion", fmt.Sprintf("unsupported shell: %s (supported: bash, zsh, fish)", shell))
		}

		fmt.Print(c.GenerateCompletion(shell))
		return nil
	})
	return c
}
