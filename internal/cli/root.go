// Package cli wires the gitshell commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitshell.dev/gitshell/internal/git"
	"gitshell.dev/gitshell/internal/output"
)

// rootOptions holds flags shared by every subcommand
type rootOptions struct {
	dir     string
	logFile string

	splog *output.Splog
}

// openRepository opens the repository selected by the persistent flags
func (o *rootOptions) openRepository() (*git.Repository, error) {
	repo, err := git.Open(o.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gitshell",
		Short: "Gitshell runs git commands and turns their output into structured data",
		Long: `Gitshell is a thin command line façade over git: it runs commands
against a repository, captures their output verbatim, and renders branch
listings and commit logs from structured records.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			splog, err := output.NewSplogWithFile(opts.logFile)
			if err != nil {
				return err
			}
			splog.InstallDefault()
			opts.splog = splog
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.splog != nil {
				_ = opts.splog.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "path to the git repository")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also log to this file (rotated)")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newBranchesCmd(opts))
	rootCmd.AddCommand(newLogCmd(opts))

	return rootCmd
}
