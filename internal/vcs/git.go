// Package vcs answers version-control questions about the project by running git.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vvka-141/bbgen/pkg/bbgen"
)

// Runner executes a command in dir and returns its combined output.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// CommandError reports a git command that failed.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command `%s` failed: %v", e.Command, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

// Unwrap lets errors.Is match both bbgen.ErrVCSCommandFailed and the cause.
func (e *CommandError) Unwrap() []error {
	return []error{bbgen.ErrVCSCommandFailed, e.Err}
}

// Git implements bbgen.Repository for a working tree.
type Git struct {
	dir    string
	runner Runner
	logger bbgen.Logger
}

// NewGit creates a Git repository rooted at dir. A nil runner uses ExecRunner.
func NewGit(dir string, runner Runner, logger bbgen.Logger) *Git {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Git{dir: dir, runner: runner, logger: logger}
}

// RemoteURL returns the URL of the origin remote.
func (g *Git) RemoteURL(ctx context.Context) (string, error) {
	return g.output(ctx, "config", "--get", "remote.origin.url")
}

// Revision returns the full hash of HEAD.
func (g *Git) Revision(ctx context.Context) (string, error) {
	return g.output(ctx, "rev-parse", "HEAD")
}

// Branch returns the checked-out branch name.
func (g *Git) Branch(ctx context.Context) (string, error) {
	branch, err := g.output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if branch == "HEAD" {
		return "", fmt.Errorf("HEAD is detached; set the branch setting or BBGEN_BRANCH: %w", bbgen.ErrInvalidConfig)
	}
	return branch, nil
}

func (g *Git) output(ctx context.Context, args ...string) (string, error) {
	command := "git " + strings.Join(args, " ")
	g.logger.Verbose("Running %s", command)

	out, err := g.runner.Run(ctx, g.dir, "git", args...)
	trimmed := strings.TrimSpace(string(bytes.TrimRight(out, "\r\n")))
	if err != nil {
		return "", &CommandError{Command: command, Output: trimmed, Err: err}
	}
	if trimmed == "" {
		return "", &CommandError{Command: command, Err: fmt.Errorf("no output")}
	}
	return trimmed, nil
}
