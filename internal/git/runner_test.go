package git_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gserrors "gitshell.dev/gitshell/internal/errors"
	"gitshell.dev/gitshell/internal/git"
	"gitshell.dev/gitshell/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Run("clean working tree returns exit 0 and empty stdout", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		result, err := repo.Run(context.Background(), "status -s")
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)
		require.Empty(t, result.Stdout)
	})

	t.Run("untracked file shows up in status output", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		err = scene.Repo.CreateChange("untracked content", "untracked")
		require.NoError(t, err)

		result, err := repo.Run(context.Background(), "status -s")
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)
		require.Contains(t, result.Stdout, "untracked_test.txt")
	})

	t.Run("non-zero exit is returned as data, not an error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		result, err := repo.Run(context.Background(), "rev-parse --verify no-such-revision")
		require.NoError(t, err)
		require.NotEqual(t, 0, result.ExitCode)
		require.NotEmpty(t, result.Stderr)
	})

	t.Run("stdout is captured verbatim with line structure intact", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("first", "a"); err != nil {
				return err
			}
			return s.Repo.CreateChangeAndCommit("second", "b")
		})

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		result, err := repo.Run(context.Background(), "log --pretty=format:%s")
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)
		require.Equal(t, []string{"second", "first"}, strings.Split(strings.TrimRight(result.Stdout, "\n"), "\n"))
	})

	t.Run("quoted arguments are split with shell rules", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		err = scene.Repo.CreateChange("more", "more")
		require.NoError(t, err)
		result, err := repo.Run(context.Background(), "add .")
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)

		result, err = repo.Run(context.Background(), `commit -m "subject with spaces"`)
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)

		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--pretty=format:%s")
		require.NoError(t, err)
		require.Equal(t, "subject with spaces", subject)
	})

	t.Run("empty command string is rejected before spawning", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		_, err = repo.Run(context.Background(), "   ")
		require.ErrorIs(t, err, gserrors.ErrEmptyCommand)
	})

	t.Run("unterminated quote is a command string error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		_, err = repo.Run(context.Background(), `log "unterminated`)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid command string")
	})

	t.Run("extra environment reaches the spawned process", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		repo, err := git.Open(scene.Dir, git.WithEnv(
			"GIT_AUTHOR_NAME=Env Author",
			"GIT_AUTHOR_EMAIL=env@example.com",
		))
		require.NoError(t, err)

		result, err := repo.Run(context.Background(), "commit --allow-empty -m env-commit")
		require.NoError(t, err)
		require.Equal(t, 0, result.ExitCode)

		author, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--pretty=format:%an")
		require.NoError(t, err)
		require.Equal(t, "Env Author", author)
	})

	t.Run("missing working directory is a spawn failure", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		runner := git.NewCommandRunner()
		_, err := runner.Run(context.Background(), filepath.Join(scene.Dir, "does-not-exist"), "status -s")
		require.Error(t, err)
		require.ErrorIs(t, err, gserrors.ErrSpawnFailed)

		var spawnErr *gserrors.SpawnError
		require.ErrorAs(t, err, &spawnErr)
	})
}
