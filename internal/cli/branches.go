package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gitshell.dev/gitshell/internal/git"
	"gitshell.dev/gitshell/internal/output"
)

// newBranchesCmd creates the branches command
func newBranchesCmd(opts *rootOptions) *cobra.Command {
	var (
		include string
		exclude string
	)

	cmd := &cobra.Command{
		Use:     "branches",
		Short:   "List local and remote-tracking branches",
		Aliases: []string{"br"},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.openRepository()
			if err != nil {
				return err
			}

			branches, err := repo.Branches(cmd.Context(), git.BranchOptions{
				Include: include,
				Exclude: exclude,
			})
			if err != nil {
				return err
			}

			current := ""
			if result, err := repo.Run(cmd.Context(), "branch --show-current"); err == nil && result.ExitCode == 0 {
				current = strings.TrimSpace(result.Stdout)
			}

			opts.splog.Page(output.FormatBranches(branches, current))
			return nil
		},
	}

	cmd.Flags().StringVar(&include, "include", "", "only list branches matching this regular expression")
	cmd.Flags().StringVar(&exclude, "exclude", "", "drop branches matching this regular expression")

	return cmd
}
