package testhelpers

import (
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene in a temporary directory.
// The repository starts with an unborn master branch unless setup commits.
// Cleanup is handled by t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	tmpDir := t.TempDir()

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// DivergedSceneSetup commits on master, branches develop, then commits on both
// so that merging develop into master needs a three-way merge.
func DivergedSceneSetup(scene *Scene) error {
	if err := scene.Repo.CommitFile("base.txt", "base\n", "base"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("develop"); err != nil {
		return err
	}
	if err := scene.Repo.CommitFile("develop.txt", "develop\n", "develop work"); err != nil {
		return err
	}
	if err := scene.Repo.CheckoutBranch("master"); err != nil {
		return err
	}
	return scene.Repo.CommitFile("master.txt", "master\n", "master work")
}

// ConflictSceneSetup is like DivergedSceneSetup but both sides edit shared.txt.
func ConflictSceneSetup(scene *Scene) error {
	if err := scene.Repo.CommitFile("shared.txt", "base\n", "base"); err != nil {
		return err
	}
	if err := scene.Repo.CreateAndCheckoutBranch("develop"); err != nil {
		return err
	}
	if err := scene.Repo.CommitFile("shared.txt", "develop\n", "develop edit"); err != nil {
		return err
	}
	if err := scene.Repo.CheckoutBranch("master"); err != nil {
		return err
	}
	return scene.Repo.CommitFile("shared.txt", "master\n", "master edit")
}
