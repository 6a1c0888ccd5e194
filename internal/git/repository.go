package git

import (
	"context"
	"os/exec"
	"path/filepath"

	gserrors "gitshell.dev/gitshell/internal/errors"
)

// Repository is a handle to a git checkout on disk. It holds read-only
// configuration (a path and an optional extra environment) and owns no
// subprocess state; every operation spawns its own short-lived git process,
// so a Repository is safe for concurrent use.
type Repository struct {
	path   string
	runner Runner
}

// Option configures a Repository during Open
type Option func(*Repository)

// WithRunner replaces the default command runner. Used by tests to feed
// canned output through the parsers without spawning processes.
func WithRunner(r Runner) Option {
	return func(repo *Repository) {
		repo.runner = r
	}
}

// WithEnv appends extra environment variables (KEY=value) to every git
// process spawned for this repository.
func WithEnv(env ...string) Option {
	return func(repo *Repository) {
		if cr, ok := repo.runner.(*CommandRunner); ok {
			cr.Env = append(cr.Env, env...)
		}
	}
}

// Open creates a Repository for the checkout at path. It verifies that a
// git binary is reachable and that path is inside a git repository; the
// latter is delegated to git itself via rev-parse.
func Open(path string, opts ...Option) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	repo := &Repository{
		path:   abs,
		runner: NewCommandRunner(),
	}
	for _, opt := range opts {
		opt(repo)
	}

	// Only probe the environment when running against the real binary.
	if _, ok := repo.runner.(*CommandRunner); ok {
		if _, err := exec.LookPath("git"); err != nil {
			return nil, gserrors.ErrGitNotFound
		}
		result, err := repo.runner.Run(context.Background(), abs, "rev-parse --git-dir")
		if err != nil {
			return nil, err
		}
		if result.ExitCode != 0 {
			return nil, gserrors.NewNotARepositoryError(abs)
		}
	}

	return repo, nil
}

// Path returns the repository working directory
func (r *Repository) Path() string {
	return r.path
}

// Run executes an arbitrary git command line against the repository and
// returns the raw result. The command string is everything after "git",
// e.g. "status -s". A non-zero exit code is returned as data, not an
// error; callers inspect ExitCode and Stderr themselves.
func (r *Repository) Run(ctx context.Context, command string) (*Result, error) {
	return r.runner.Run(ctx, r.path, command)
}
