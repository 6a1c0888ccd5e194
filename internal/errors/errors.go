// Package errors provides sentinel errors and custom error types for gitshell.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrGitNotFound indicates that no git binary could be located on PATH
	ErrGitNotFound = errors.New("git binary not found")

	// ErrNotARepository indicates that a directory is not a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrSpawnFailed indicates that a git process could not be started at all
	ErrSpawnFailed = errors.New("failed to spawn git process")

	// ErrEmptyCommand indicates that an empty command string was given to the runner
	ErrEmptyCommand = errors.New("empty git command")
)

// NotARepositoryError represents an error when a path does not contain a git repository
type NotARepositoryError struct {
	Path string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("%s is not a git repository", e.Path)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(path string) *NotARepositoryError {
	return &NotARepositoryError{Path: path}
}

// SpawnError represents a hard execution failure: the git process could not
// be started (missing executable, permission denied, invalid working
// directory). It is distinct from a command that ran and exited non-zero.
type SpawnError struct {
	Dir  string
	Args []string
	Err  error
}

func (e *SpawnError) Error() string {
	msg := fmt.Sprintf("failed to spawn git %s", strings.Join(e.Args, " "))
	if e.Dir != "" {
		msg += fmt.Sprintf(" in %s", e.Dir)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrSpawnFailed
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailed
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(dir string, args []string, err error) *SpawnError {
	return &SpawnError{Dir: dir, Args: args, Err: err}
}

// CommandError represents a git command that ran but exited non-zero where a
// derived query needed it to succeed (e.g. an invalid revision range passed
// to the log command).
type CommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", strings.TrimSpace(e.Stderr))
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", strings.TrimSpace(e.Stdout))
	}
	return msg
}

// NewCommandError creates a new CommandError
func NewCommandError(args []string, exitCode int, stdout, stderr string) *CommandError {
	return &CommandError{
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// ParseError represents command output that did not match the expected
// delimited shape. Chunk carries the offending raw record so a format
// mismatch between the query and the parser can be diagnosed.
type ParseError struct {
	Chunk  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse git output: %s\nchunk: %q", e.Reason, e.Chunk)
}

// NewParseError creates a new ParseError
func NewParseError(chunk, reason string) *ParseError {
	return &ParseError{Chunk: chunk, Reason: reason}
}

// PatternError represents an invalid include/exclude filter pattern. It is
// reported before any git process is spawned.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// NewPatternError creates a new PatternError
func NewPatternError(pattern string, err error) *PatternError {
	return &PatternError{Pattern: pattern, Err: err}
}
