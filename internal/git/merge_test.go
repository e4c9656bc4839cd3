package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/testhelpers"
)

func TestMergeAnalysis(t *testing.T) {
	t.Run("unborn target", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		analysis, err := repo.MergeAnalysis("develop", "master")
		require.NoError(t, err)
		require.Equal(t, git.AnalysisUnborn, analysis)
	})

	t.Run("fast-forward", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateBranch("develop"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		analysis, err := repo.MergeAnalysis("develop", "master")
		require.NoError(t, err)
		require.Equal(t, git.AnalysisFastForward, analysis)

		analysis, err = repo.MergeAnalysis("master", "develop")
		require.NoError(t, err)
		require.Equal(t, git.AnalysisUpToDate, analysis)
	})

	t.Run("diverged", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		analysis, err := repo.MergeAnalysis("master", "develop")
		require.NoError(t, err)
		require.Equal(t, git.AnalysisNormal, analysis)
	})

	t.Run("unrelated histories", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "--orphan", "other"))
		require.NoError(t, scene.Repo.CommitFile("other.txt", "other", "other root"))
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		analysis, err := repo.MergeAnalysis("master", "other")
		require.NoError(t, err)
		require.Equal(t, git.AnalysisNone, analysis)
	})
}

func TestMergeTrees(t *testing.T) {
	ctx := context.Background()

	t.Run("clean merge writes a tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		base, ok, err := repo.MergeBase("master", "develop")
		require.NoError(t, err)
		require.True(t, ok)

		result, err := repo.MergeTrees(ctx, base, "master", "develop")
		require.NoError(t, err)
		require.False(t, result.Conflicted)
		require.Empty(t, result.Paths)
		require.Len(t, result.Tree, 40)

		files, err := scene.Repo.RunGitCommandAndGetOutput("ls-tree", "--name-only", result.Tree)
		require.NoError(t, err)
		require.Equal(t, "base.txt\ndevelop.txt\nmaster.txt", files)
	})

	t.Run("conflict reports paths", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.ConflictSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)

		base, _, err := repo.MergeBase("master", "develop")
		require.NoError(t, err)

		result, err := repo.MergeTrees(ctx, base, "master", "develop")
		require.NoError(t, err)
		require.True(t, result.Conflicted)
		require.Equal(t, []string{"shared.txt"}, result.Paths)
	})
}

// gitWithoutMergeBaseOption puts a git on PATH that rejects --merge-base the
// way git 2.38 and 2.39 do
func gitWithoutMergeBaseOption(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell shim")
	}
	realGit, err := exec.LookPath("git")
	require.NoError(t, err)

	dir := t.TempDir()
	script := "#!/bin/sh\n" +
		"for a in \"$@\"; do case \"$a\" in --merge-base=*) echo \"error: unknown option \\`$a'\" >&2; exit 129;; esac; done\n" +
		"exec " + realGit + " \"$@\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "git"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestMergeTreesWithoutMergeBaseOption(t *testing.T) {
	ctx := context.Background()

	t.Run("clean merge", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)
		base, _, err := repo.MergeBase("master", "develop")
		require.NoError(t, err)
		gitWithoutMergeBaseOption(t)

		result, err := repo.MergeTrees(ctx, base, "master", "develop")
		require.NoError(t, err)
		require.False(t, result.Conflicted)
		require.Len(t, result.Tree, 40)
	})

	t.Run("conflict", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.ConflictSceneSetup)
		repo, err := git.Open(scene.Dir)
		require.NoError(t, err)
		base, _, err := repo.MergeBase("master", "develop")
		require.NoError(t, err)
		gitWithoutMergeBaseOption(t)

		result, err := repo.MergeTrees(ctx, base, "master", "develop")
		require.NoError(t, err)
		require.True(t, result.Conflicted)
		require.Equal(t, []string{"shared.txt"}, result.Paths)
	})
}

func TestCheckoutConflicts(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.ConflictSceneSetup)
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)
	before := testhelpers.Must(scene.Repo.GetRevision("master"))
	develop := testhelpers.Must(scene.Repo.GetRevision("develop"))

	paths, err := repo.CheckoutConflicts(context.Background(), "master", develop, "Merge develop")
	require.NoError(t, err)
	require.Equal(t, []string{"shared.txt"}, paths)

	require.True(t, scene.Repo.MergeInProgress())
	require.Equal(t, before, testhelpers.Must(scene.Repo.GetRevision("master")), "no commit is made")
	require.Equal(t, []string{"shared.txt"}, testhelpers.Must(scene.Repo.UnmergedPaths()))
}

func TestCommitParentOrder(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.DivergedSceneSetup)
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)
	ctx := context.Background()

	master := testhelpers.Must(scene.Repo.GetRevision("master"))
	develop := testhelpers.Must(scene.Repo.GetRevision("develop"))
	base, _, err := repo.MergeBase(master, develop)
	require.NoError(t, err)

	result, err := repo.MergeTrees(ctx, base, master, develop)
	require.NoError(t, err)

	commit, err := repo.Commit([]string{master, develop}, result.Tree, "Merge develop into master")
	require.NoError(t, err)

	parents, err := repo.CommitParents(commit)
	require.NoError(t, err)
	require.Equal(t, []string{master, develop}, parents)

	message, err := repo.CommitMessage(commit)
	require.NoError(t, err)
	require.Equal(t, "Merge develop into master", message)
}

func TestEmptyTreeRootCommit(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)

	tree, err := repo.EmptyTree()
	require.NoError(t, err)
	require.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", tree)

	commit, err := repo.Commit(nil, tree, "Initial commit")
	require.NoError(t, err)

	parents, err := repo.CommitParents(commit)
	require.NoError(t, err)
	require.Empty(t, parents)
}

func TestTag(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)
	head := testhelpers.Must(scene.Repo.GetRevision("HEAD"))

	require.NoError(t, repo.Tag(head, "v1.0", "Release 1.0"))
	target, err := repo.TagTarget("v1.0")
	require.NoError(t, err)
	require.Equal(t, head, target)

	require.NoError(t, repo.Tag(head, "light", ""))
	target, err = repo.TagTarget("light")
	require.NoError(t, err)
	require.Equal(t, head, target)

	err = repo.Tag(head, "v1.0", "again")
	require.Error(t, err)
}
