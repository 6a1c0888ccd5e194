package output_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitshell.dev/gitshell/internal/git"
	"gitshell.dev/gitshell/internal/output"
)

// Tests run without a TTY, so rendering exercises the plain-text path.

func TestFormatBranches(t *testing.T) {
	t.Run("marks the current branch", func(t *testing.T) {
		got := output.FormatBranches([]string{"main", "feature"}, "main")
		require.Equal(t, "* main\n  feature\n", got)
	})

	t.Run("no marker when current is unknown", func(t *testing.T) {
		got := output.FormatBranches([]string{"main"}, "")
		require.Equal(t, "  main\n", got)
	})
}

func TestFormatCommit(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("short hash, subject, author, date", func(t *testing.T) {
		line := output.FormatCommit(git.Commit{
			Hash:    "0123456789abcdef",
			Parents: []string{"aaaa"},
			Author:  git.Signature{Name: "Alice", Email: "alice@example.com", When: when},
			Subject: "add login flow",
		})
		require.Equal(t, "0123456 add login flow <alice@example.com> 2024-03-01", line)
	})

	t.Run("merge commits carry a parent-count marker", func(t *testing.T) {
		line := output.FormatCommit(git.Commit{
			Hash:    "0123456789abcdef",
			Parents: []string{"aaaa", "bbbb"},
			Author:  git.Signature{Email: "alice@example.com", When: when},
			Subject: "merge feature",
		})
		require.Contains(t, line, "(merge of 2)")
	})
}
