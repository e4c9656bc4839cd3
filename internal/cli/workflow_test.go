package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/testhelpers"
)

func TestFeatureCommands(t *testing.T) {
	scene := initScene(t)

	out, err := runGitFlow(t, scene.Dir, "feature", "start", "login")
	require.NoError(t, err, out)
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "feature/login")
	require.NoError(t, scene.Repo.CommitFile("login.txt", "login\n", "add login"))

	out, err = runGitFlow(t, scene.Dir, "feature", "list")
	require.NoError(t, err, out)
	require.Contains(t, out, "* login")

	// finish without a name uses the current branch
	out, err = runGitFlow(t, scene.Dir, "feature", "finish", "-m", "merge login")
	require.NoError(t, err, out)
	require.Contains(t, out, "Finished feature/login")

	testhelpers.ExpectBranches(t, scene.Repo, []string{"develop", "master"})
	testhelpers.ExpectCommits(t, scene.Repo, "develop", []string{"add login"})

	out, err = runGitFlow(t, scene.Dir, "feature")
	require.NoError(t, err, out)
	require.Contains(t, out, "No feature branches exist.")
}

func TestReleaseFinishCommand(t *testing.T) {
	scene := initScene(t)

	out, err := runGitFlow(t, scene.Dir, "release", "start", "1.0")
	require.NoError(t, err, out)
	require.NoError(t, scene.Repo.CommitFile("VERSION", "1.0\n", "bump"))

	out, err = runGitFlow(t, scene.Dir, "release", "finish", "1.0", "-t", "v1.0", "--tag-message", "ship it")
	require.NoError(t, err, out)
	require.Contains(t, out, "tagged v1.0")

	master := testhelpers.Must(scene.Repo.GetRevision("master"))
	require.Equal(t, master, testhelpers.Must(scene.Repo.GetRevision("v1.0^{commit}")))
	require.True(t, scene.Repo.IsAncestor("master", "develop"))
	testhelpers.ExpectBranches(t, scene.Repo, []string{"develop", "master"})
}

func TestHotfixKeep(t *testing.T) {
	scene := initScene(t)

	out, err := runGitFlow(t, scene.Dir, "hotfix", "start", "1.0.1")
	require.NoError(t, err, out)
	require.NoError(t, scene.Repo.CommitFile("fix.txt", "fix\n", "fix"))

	out, err = runGitFlow(t, scene.Dir, "hotfix", "finish", "1.0.1", "--no-tag", "--keep")
	require.NoError(t, err, out)
	testhelpers.ExpectBranches(t, scene.Repo, []string{"develop", "hotfix/1.0.1", "master"})
}

func TestSupportStartNeedsBase(t *testing.T) {
	scene := initScene(t)

	_, err := runGitFlow(t, scene.Dir, "support", "start", "1.x")
	require.Error(t, err)

	out, err := runGitFlow(t, scene.Dir, "support", "start", "1.x", "master")
	require.NoError(t, err, out)
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "support/1.x")
}

func TestCommandsRequireInit(t *testing.T) {
	scene := newCLIScene(t, testhelpers.BasicSceneSetup)

	_, err := runGitFlow(t, scene.Dir, "feature", "start", "x")
	require.ErrorIs(t, err, flowerrors.ErrNotInitialized)
	require.Equal(t, flowerrors.ExitWorkflow, flowerrors.ExitCode(err))
}

func TestCheckoutAndDelete(t *testing.T) {
	scene := initScene(t)

	out, err := runGitFlow(t, scene.Dir, "bugfix", "start", "crash")
	require.NoError(t, err, out)
	require.NoError(t, scene.Repo.CommitFile("crash.txt", "fixed\n", "fix crash"))
	require.NoError(t, scene.Repo.CheckoutBranch("develop"))

	out, err = runGitFlow(t, scene.Dir, "bugfix", "checkout", "crash")
	require.NoError(t, err, out)
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "bugfix/crash")

	_, err = runGitFlow(t, scene.Dir, "bugfix", "delete", "crash")
	require.ErrorIs(t, err, flowerrors.ErrBranchNotMerged)

	out, err = runGitFlow(t, scene.Dir, "bugfix", "delete", "-f", "crash")
	require.NoError(t, err, out)
	testhelpers.ExpectBranches(t, scene.Repo, []string{"develop", "master"})
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "develop")
}

func TestFinishConflictExitCode(t *testing.T) {
	scene := newCLIScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("shared.txt", "base\n", "base")
	})
	out, err := runGitFlow(t, scene.Dir, "init", "-d")
	require.NoError(t, err, out)

	out, err = runGitFlow(t, scene.Dir, "feature", "start", "clash")
	require.NoError(t, err, out)
	require.NoError(t, scene.Repo.CommitFile("shared.txt", "feature\n", "feature edit"))
	require.NoError(t, scene.Repo.CheckoutBranch("develop"))
	require.NoError(t, scene.Repo.CommitFile("shared.txt", "develop\n", "develop edit"))

	out, err = runGitFlow(t, scene.Dir, "feature", "finish", "clash")
	require.ErrorIs(t, err, flowerrors.ErrMergeConflict)
	require.Contains(t, out, "git-flow feature finish --abort")
	require.Equal(t, flowerrors.ExitWorkflow, flowerrors.ExitCode(err))
	require.True(t, scene.Repo.MergeInProgress())
	testhelpers.ExpectBranches(t, scene.Repo, []string{"develop", "feature/clash", "master"})

	out, err = runGitFlow(t, scene.Dir, "feature", "finish", "--abort")
	require.NoError(t, err, out)
	require.False(t, scene.Repo.MergeInProgress())
	testhelpers.ExpectCurrentBranch(t, scene.Repo, "develop")

	_, err = runGitFlow(t, scene.Dir, "feature", "finish", "--abort")
	require.ErrorIs(t, err, flowerrors.ErrState)
}

func TestDiffAndRebase(t *testing.T) {
	scene := initScene(t)

	out, err := runGitFlow(t, scene.Dir, "feature", "start", "docs")
	require.NoError(t, err, out)
	require.NoError(t, scene.Repo.CommitFile("docs.txt", "docs\n", "docs"))

	out, err = runGitFlow(t, scene.Dir, "feature", "diff")
	require.NoError(t, err, out)
	require.Contains(t, out, "+docs")

	require.NoError(t, scene.Repo.CheckoutBranch("develop"))
	require.NoError(t, scene.Repo.CommitFile("other.txt", "other\n", "other"))
	develop := testhelpers.Must(scene.Repo.GetRevision("develop"))

	out, err = runGitFlow(t, scene.Dir, "feature", "rebase", "docs")
	require.NoError(t, err, out)
	require.True(t, scene.Repo.IsAncestor(develop, "feature/docs"))
}
