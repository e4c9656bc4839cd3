package engine_test

import (
	"testing"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/testhelpers"
	"gitflow.dev/gitflow/testhelpers/scenario"
)

func TestReleaseCycle(t *testing.T) {
	scenario.NewScenario(t, testhelpers.BasicSceneSetup).
		Init().
		WithVersionTagPrefix("v").
		Start(config.Feature, "search").
		CommitFile("search.txt", "search\n", "search").
		Finish(config.Feature, "search", engine.FinishOptions{}).
		Start(config.Release, "1.1").
		CommitFile("VERSION", "1.1\n", "bump to 1.1").
		Finish(config.Release, "1.1", engine.FinishOptions{Message: "release 1.1"}).
		ExpectTagOn("v1.1", "master").
		ExpectContains("develop", "master").
		ExpectBranch("develop").
		ExpectBranches("develop", "master")
}

func TestHotfixWhileDevelopMovedOn(t *testing.T) {
	s := scenario.NewScenario(t, testhelpers.BasicSceneSetup).
		Init().
		CommitFile("next.txt", "next\n", "next release work").
		Checkout("master").
		Start(config.Hotfix, "1.0.1").
		CommitFile("fix.txt", "fix\n", "urgent fix").
		Finish(config.Hotfix, "1.0.1", engine.FinishOptions{Tag: "1.0.1", BackMergeMessage: "back-merge 1.0.1"}).
		ExpectTagOn("1.0.1", "master").
		ExpectContains("develop", "master").
		ExpectBranches("develop", "master")

	testhelpers.ExpectCommits(t, s.Scene.Repo, "develop", []string{"back-merge 1.0.1"})
}

func TestBackMergeConflictKeepsTag(t *testing.T) {
	scenario.NewScenario(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("CHANGELOG", "1.0\n", "changelog")
	}).
		Init().
		CommitFile("CHANGELOG", "1.0\nnext\n", "develop changelog").
		Checkout("master").
		Start(config.Hotfix, "1.0.1").
		CommitFile("CHANGELOG", "1.0\n1.0.1\n", "hotfix changelog").
		FinishExpectError(config.Hotfix, "1.0.1", engine.FinishOptions{Tag: "1.0.1"}, flowerrors.ErrMergeConflict).
		ExpectTagOn("1.0.1", "master").
		ExpectBranches("develop", "hotfix/1.0.1", "master")
}
