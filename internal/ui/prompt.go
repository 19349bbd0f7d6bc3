// Package ui provides the terminal-facing pieces of the pipeline: the status
// spinner and interactive prompts. All prompt text goes to the error stream.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// TerminalPrompter reads interactive answers from stdin. Secrets are masked
// when stdin is a terminal and read as a plain line otherwise (pipes, tests).
type TerminalPrompter struct {
	Stdin     io.Reader
	ErrWriter io.Writer
}

func (p *TerminalPrompter) stdin() io.Reader {
	if p.Stdin == nil {
		return os.Stdin
	}
	return p.Stdin
}

func (p *TerminalPrompter) errWriter() io.Writer {
	if p.ErrWriter == nil {
		return os.Stderr
	}
	return p.ErrWriter
}

// ReadSecret prompts for a secret value. The entered value is never echoed.
func (p *TerminalPrompter) ReadSecret(label string) (string, error) {
	fmt.Fprintf(p.errWriter(), "%s: ", label)

	if f, ok := p.stdin().(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			value, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(p.errWriter())
			if err != nil {
				return "", fmt.Errorf("failed to read secret input: %w", err)
			}
			return strings.TrimSpace(string(value)), nil
		}
	}

	line, err := bufio.NewReader(p.stdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read secret input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and defaults to no on empty or unrecognized
// input.
func (p *TerminalPrompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.errWriter(), "\n%s [y/N]: ", question)

	line, err := bufio.NewReader(p.stdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
