// Package git wraps the git CLI with the boolean/sentinel contract the
// pipeline needs: each operation reports success or failure, and an empty
// staged diff is the "no changes" sentinel rather than an error.
package git

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Options configure a Client.
type Options struct {
	// Dir overrides the working directory for git commands. Empty means the
	// process working directory.
	Dir string

	// Verbose echoes captured git stderr to the Stderr writer.
	Verbose bool
	Stderr  io.Writer
}

// Client executes git commands in a fixed directory.
type Client struct {
	dir     string
	verbose bool
	stderr  io.Writer
}

// NewClient creates a git client.
func NewClient(opts Options) *Client {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Client{
		dir:     opts.Dir,
		verbose: opts.Verbose,
		stderr:  stderr,
	}
}

// IsRepository reports whether the working directory is inside a git work
// tree. It has no side effects.
func (c *Client) IsRepository() bool {
	out, ok := c.run("rev-parse", "--is-inside-work-tree")
	return ok && strings.TrimSpace(out) == "true"
}

// StageAll stages all tracked and untracked modifications. It returns false
// on any underlying failure.
func (c *Client) StageAll() bool {
	_, ok := c.run("add", "-A")
	return ok
}

// StagedDiff returns the textual diff of staged content. An empty string
// means there is nothing to diff; failures also yield an empty string since
// the caller treats both as the same terminal condition.
func (c *Client) StagedDiff() string {
	out, ok := c.run("diff", "--cached")
	if !ok {
		return ""
	}
	return out
}

// Commit commits the currently staged content with the given message. It
// returns false on failure, e.g. an empty staging area or a hook rejection.
func (c *Client) Commit(message string) bool {
	if strings.TrimSpace(message) == "" {
		return false
	}
	_, ok := c.run("commit", "-m", message)
	return ok
}

func (c *Client) run(args ...string) (string, bool) {
	cmd := exec.Command("git", args...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if c.verbose && errBuf.Len() > 0 {
		fmt.Fprint(c.stderr, errBuf.String())
	}

	return out.String(), err == nil
}
