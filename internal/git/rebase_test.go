package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/testhelpers"
)

func TestRebase(t *testing.T) {
	ctx := context.Background()

	t.Run("replays commits onto base", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		ops, err := repo.Rebase(ctx, "develop", "master", git.RebaseOptions{})
		require.NoError(t, err)
		require.Len(t, ops, 1)
		require.Equal(t, "pick", ops[0].Kind)
		require.Equal(t, "develop work", ops[0].Subject)

		require.True(t, scene.Repo.IsAncestor("master", "develop"))
		testhelpers.ExpectCurrentBranch(t, scene.Repo, "develop")
	})

	t.Run("conflict leaves rebase in progress", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.ConflictSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		_, err = repo.Rebase(ctx, "develop", "master", git.RebaseOptions{})
		require.ErrorIs(t, err, flowerrors.ErrRebaseConflict)
		require.True(t, repo.RebaseInProgress(ctx))

		require.NoError(t, repo.RebaseAbort(ctx))
		require.False(t, repo.RebaseInProgress(ctx))
	})
}

func TestDiff(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)

	diff, err := repo.Diff(context.Background(), "master", "develop")
	require.NoError(t, err)
	require.Contains(t, diff, "develop.txt")
	require.NotContains(t, diff, "master.txt")
}
