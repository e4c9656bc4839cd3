// Package merge decides how a source commit is integrated into a target
// branch and carries it out: fast-forward, three-way merge commit, or
// a conflicted merge left in the worktree for the user.
package merge

import (
	"context"
	"fmt"

	"gitflow.dev/gitflow/internal/git"
)

// Backend is the repository capability the coordinator needs
type Backend interface {
	MergeAnalysis(target, source string) (git.MergeAnalysis, error)
	MergeBase(a, b string) (string, bool, error)
	MergeTrees(ctx context.Context, base, ours, theirs string) (git.MergeTreeResult, error)
	Commit(parents []string, tree, message string) (string, error)
	CreateBranch(name, commit string) (git.Branch, error)
	SetBranchTarget(ctx context.Context, name, commit, reason string) error
	FindBranch(name string) (git.Branch, error)
	Checkout(ctx context.Context, name string, force bool) error
	CheckoutConflicts(ctx context.Context, target, source, message string) ([]string, error)
}

// Logger receives debug output
type Logger interface {
	Debug(format string, args ...interface{})
}

// OutcomeKind is the result category of a merge
type OutcomeKind int

const (
	// NoOp means the target already contains the source, or the histories are unrelated
	NoOp OutcomeKind = iota
	// FastForwarded means the target ref moved to the source without a new commit
	FastForwarded
	// Merged means a merge commit was created
	Merged
	// Conflict means the merge stopped with unresolved paths in the worktree
	Conflict
)

func (k OutcomeKind) String() string {
	switch k {
	case FastForwarded:
		return "fast-forwarded"
	case Merged:
		return "merged"
	case Conflict:
		return "conflict"
	default:
		return "no-op"
	}
}

// Outcome describes what a merge did
type Outcome struct {
	Kind OutcomeKind
	// Commit is the new target tip for FastForwarded and Merged
	Commit string
	// Paths lists the conflicting paths for Conflict
	Paths []string
}

// Coordinator merges commits into branches
type Coordinator struct {
	backend Backend
	log     Logger
}

// NewCoordinator creates a Coordinator. log may be nil.
func NewCoordinator(backend Backend, log Logger) *Coordinator {
	return &Coordinator{backend: backend, log: log}
}

func (c *Coordinator) debug(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Debug(format, args...)
	}
}

// Merge integrates source into the target branch and leaves target checked out.
// A fast-forward is always preferred when the target tip is an ancestor of source.
func (c *Coordinator) Merge(ctx context.Context, target, source, message string) (Outcome, error) {
	analysis, err := c.backend.MergeAnalysis(target, source)
	if err != nil {
		return Outcome{}, err
	}
	c.debug("merge %s into %s: %s", shortSHA(source), target, analysis)

	var outcome Outcome
	switch analysis {
	case git.AnalysisUnborn:
		outcome, err = c.createTarget(ctx, target, source)
	case git.AnalysisFastForward:
		outcome, err = c.fastForward(ctx, target, source)
	case git.AnalysisNormal:
		outcome, err = c.threeWay(ctx, target, source, message)
	default:
		outcome = Outcome{Kind: NoOp}
	}
	if err != nil {
		return Outcome{}, err
	}

	c.debug("merge %s into %s: %s %s", shortSHA(source), target, outcome.Kind, shortSHA(outcome.Commit))
	return outcome, nil
}

func (c *Coordinator) createTarget(ctx context.Context, target, source string) (Outcome, error) {
	if _, err := c.backend.CreateBranch(target, source); err != nil {
		return Outcome{}, err
	}
	if err := c.backend.Checkout(ctx, target, true); err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: FastForwarded, Commit: source}, nil
}

func (c *Coordinator) fastForward(ctx context.Context, target, source string) (Outcome, error) {
	reason := fmt.Sprintf("fast-forward %s to %s", target, source)
	if err := c.backend.SetBranchTarget(ctx, target, source, reason); err != nil {
		return Outcome{}, err
	}
	if err := c.backend.Checkout(ctx, target, true); err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: FastForwarded, Commit: source}, nil
}

func (c *Coordinator) threeWay(ctx context.Context, target, source, message string) (Outcome, error) {
	tip, err := c.backend.FindBranch(target)
	if err != nil {
		return Outcome{}, err
	}

	base, related, err := c.backend.MergeBase(tip.Commit, source)
	if err != nil {
		return Outcome{}, err
	}
	if !related {
		return Outcome{Kind: NoOp}, nil
	}

	result, err := c.backend.MergeTrees(ctx, base, tip.Commit, source)
	if err != nil {
		return Outcome{}, err
	}

	if result.Conflicted {
		paths, err := c.backend.CheckoutConflicts(ctx, target, source, message)
		if err != nil {
			return Outcome{}, err
		}
		if len(paths) == 0 {
			paths = result.Paths
		}
		return Outcome{Kind: Conflict, Paths: paths}, nil
	}

	commit, err := c.backend.Commit([]string{tip.Commit, source}, result.Tree, message)
	if err != nil {
		return Outcome{}, err
	}
	if err := c.backend.SetBranchTarget(ctx, target, commit, fmt.Sprintf("merge %s: %s", source, firstLine(message))); err != nil {
		return Outcome{}, err
	}
	if err := c.backend.Checkout(ctx, target, true); err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: Merged, Commit: commit}, nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
