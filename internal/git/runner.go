// Package git provides a thin wrapper around the git command line tool:
// it runs git commands against a repository working directory and parses
// branch listings and commit logs into typed values.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	gserrors "gitshell.dev/gitshell/internal/errors"
)

// Result holds the outcome of a single git invocation. Stdout and Stderr
// are captured verbatim; downstream parsers depend on exact line structure,
// so the runner never trims or reformats them.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a git command line in a working directory. The command
// string is the portion after the program name, e.g. "status -s".
//
// A non-zero exit code is not an error at this layer; it is returned as
// data in the Result. The error return is reserved for hard execution
// failures: an empty command string or a process that could not be spawned.
type Runner interface {
	Run(ctx context.Context, dir string, command string) (*Result, error)
}

// CommandRunner is the standard Runner implementation backed by os/exec.
// Env, when non-empty, is appended to the inherited process environment.
type CommandRunner struct {
	Env []string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Run executes "git <command>" with dir as the working directory and waits
// for it to finish. The command string is split with shell quoting rules,
// so arguments may be quoted: `commit -m "two words"`.
func (r *CommandRunner) Run(ctx context.Context, dir string, command string) (*Result, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid command string %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, gserrors.ErrEmptyCommand
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running git command", slog.String("dir", dir), slog.String("command", command))

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never ran: missing binary, permission denied,
			// invalid working directory, or cancelled context.
			return nil, gserrors.NewSpawnError(dir, args, err)
		}
		return &Result{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}, nil
	}

	return &Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
