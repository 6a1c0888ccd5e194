package cli

import (
	"github.com/spf13/cobra"

	"gitshell.dev/gitshell/internal/output"
)

// newLogCmd creates the log command
func newLogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [revision-range]",
		Short: "List commits as structured one-line records",
		Long: `Log queries the commit history and renders one line per commit: short
hash, subject, author, and a merge marker for commits with more than one
parent. The optional revision range is passed to git verbatim, e.g.
"HEAD^..HEAD" or "main..feature".`,
		Aliases: []string{"l"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.openRepository()
			if err != nil {
				return err
			}

			revisionRange := ""
			if len(args) > 0 {
				revisionRange = args[0]
			}

			commits, err := repo.Commits(cmd.Context(), revisionRange)
			if err != nil {
				return err
			}

			for _, commit := range commits {
				opts.splog.Info("%s", output.FormatCommit(commit))
			}
			return nil
		},
	}

	return cmd
}
