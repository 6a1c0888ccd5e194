package git

import (
	"context"
	"regexp"
	"strings"

	gserrors "gitshell.dev/gitshell/internal/errors"
)

// branchListCommand lists local and remote-tracking branches one per line,
// with a "*" marker prefix on the currently checked-out branch.
const branchListCommand = "branch --all"

// BranchOptions filters the branch listing. Include and Exclude are regular
// expressions with search semantics (unanchored). When both are given a
// branch must match Include and must not match Exclude.
type BranchOptions struct {
	Include string
	Exclude string
}

// Branches returns the branch names of the repository, local and
// remote-tracking, in the order git reports them. The current-branch marker
// and surrounding whitespace are stripped; symref entries such as
// "remotes/origin/HEAD -> origin/main" are skipped.
//
// An empty repository yields an empty slice, not an error. An invalid
// filter pattern is reported before any process is spawned.
func (r *Repository) Branches(ctx context.Context, opts BranchOptions) ([]string, error) {
	var include, exclude *regexp.Regexp
	var err error

	if opts.Include != "" {
		include, err = regexp.Compile(opts.Include)
		if err != nil {
			return nil, gserrors.NewPatternError(opts.Include, err)
		}
	}
	if opts.Exclude != "" {
		exclude, err = regexp.Compile(opts.Exclude)
		if err != nil {
			return nil, gserrors.NewPatternError(opts.Exclude, err)
		}
	}

	result, err := r.Run(ctx, branchListCommand)
	if err != nil {
		return nil, err
	}
	if result.ExitCode != 0 {
		return nil, gserrors.NewCommandError(strings.Fields(branchListCommand), result.ExitCode, result.Stdout, result.Stderr)
	}

	branches := parseBranchList(result.Stdout)

	if include == nil && exclude == nil {
		return branches, nil
	}
	filtered := make([]string, 0, len(branches))
	for _, branch := range branches {
		if include != nil && !include.MatchString(branch) {
			continue
		}
		if exclude != nil && exclude.MatchString(branch) {
			continue
		}
		filtered = append(filtered, branch)
	}
	return filtered, nil
}

// parseBranchList turns raw "git branch --all" output into clean branch
// names, preserving git's output order.
func parseBranchList(stdout string) []string {
	branches := []string{}
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		// "*" marks the checked-out branch, "+" a branch checked out in
		// another worktree.
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimPrefix(line, "+ ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Symref lines carry no branch of their own.
		if strings.Contains(line, " -> ") {
			continue
		}
		branches = append(branches, line)
	}
	return branches
}
