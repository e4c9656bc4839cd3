// Package scenario provides a high-level test scenario that combines a Scene
// and a workflow Engine to provide a terse API for integration tests.
package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/testhelpers"
)

// Scenario represents a high-level test scenario that combines a Scene
// and an Engine opened on it.
type Scenario struct {
	T      *testing.T
	Scene  *testhelpers.Scene
	Repo   *git.Repo
	Engine *engine.Engine
	// LastFinish is the result of the most recent Finish
	LastFinish *engine.FinishResult
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)
	repo, err := git.Open(scene.Dir)
	require.NoError(t, err)

	return &Scenario{
		T:      t,
		Scene:  scene,
		Repo:   repo,
		Engine: engine.New(repo, engine.Options{}),
	}
}

// Init initializes git-flow with every default answer
func (s *Scenario) Init() *Scenario {
	s.T.Helper()
	err := s.Engine.Init(context.Background(), engine.InitOptions{Prompter: defaults{}})
	require.NoError(s.T, err)
	return s
}

// WithVersionTagPrefix sets gitflow.prefix.versiontag
func (s *Scenario) WithVersionTagPrefix(prefix string) *Scenario {
	return s.RunGit("config", config.KeyVersionTag, prefix)
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.RunGitCommand(args...)
	require.NoError(s.T, err)
	return s
}

// Checkout checks out a branch.
func (s *Scenario) Checkout(branch string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CheckoutBranch(branch)
	require.NoError(s.T, err)
	return s
}

// CommitFile writes a file and commits it.
func (s *Scenario) CommitFile(name, contents, message string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.CommitFile(name, contents, message)
	require.NoError(s.T, err)
	return s
}

// Start starts a branch of kind from HEAD.
func (s *Scenario) Start(kind config.BranchKind, name string) *Scenario {
	s.T.Helper()
	_, err := s.Engine.Start(context.Background(), kind, name, engine.StartOptions{})
	require.NoError(s.T, err)
	return s
}

// Finish finishes a branch of kind and records the result.
func (s *Scenario) Finish(kind config.BranchKind, name string, opts engine.FinishOptions) *Scenario {
	s.T.Helper()
	result, err := s.Engine.Finish(context.Background(), kind, name, opts)
	require.NoError(s.T, err)
	s.LastFinish = result
	return s
}

// FinishExpectError finishes a branch and asserts the error matches target.
func (s *Scenario) FinishExpectError(kind config.BranchKind, name string, opts engine.FinishOptions, target error) *Scenario {
	s.T.Helper()
	result, err := s.Engine.Finish(context.Background(), kind, name, opts)
	require.ErrorIs(s.T, err, target)
	s.LastFinish = result
	return s
}

// ExpectBranch asserts that the current branch is as expected.
func (s *Scenario) ExpectBranch(expected string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectCurrentBranch(s.T, s.Scene.Repo, expected)
	return s
}

// ExpectBranches asserts the exact set of local branches.
func (s *Scenario) ExpectBranches(expected ...string) *Scenario {
	s.T.Helper()
	testhelpers.ExpectBranches(s.T, s.Scene.Repo, expected)
	return s
}

// ExpectTagOn asserts that tag points at the tip of branch.
func (s *Scenario) ExpectTagOn(tag, branch string) *Scenario {
	s.T.Helper()
	target, err := s.Repo.TagTarget(tag)
	require.NoError(s.T, err)
	require.Equal(s.T, testhelpers.Must(s.Scene.Repo.GetRevision(branch)), target, "tag %s", tag)
	return s
}

// ExpectContains asserts that branch contains the tip of other.
func (s *Scenario) ExpectContains(branch, other string) *Scenario {
	s.T.Helper()
	require.True(s.T, s.Scene.Repo.IsAncestor(other, branch), "%s should contain %s", branch, other)
	return s
}

type defaults struct{}

func (defaults) Prompt(_, defaultValue string) (string, error) {
	return defaultValue, nil
}
