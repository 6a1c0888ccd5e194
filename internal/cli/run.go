package cli

import (
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

// newRunCmd creates the run command, the general pass-through entry point
func newRunCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run -- <git arguments>",
		Short: "Run an arbitrary git command and print its output verbatim",
		Long: `Run executes git with the given arguments in the repository directory
and prints captured stdout and stderr unchanged. The process exit code is
propagated, so scripts can inspect it the same way they would with git.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := opts.openRepository()
			if err != nil {
				return err
			}

			// Re-quote so arguments with spaces survive the round trip
			// through the runner's command-string contract.
			result, err := repo.Run(cmd.Context(), shellquote.Join(args...))
			if err != nil {
				return err
			}

			opts.splog.Page(result.Stdout)
			if result.Stderr != "" {
				_, _ = os.Stderr.WriteString(result.Stderr)
			}
			if result.ExitCode != 0 {
				os.Exit(result.ExitCode)
			}
			return nil
		},
	}

	return cmd
}
