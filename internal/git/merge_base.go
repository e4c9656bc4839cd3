package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// MergeBase returns the best common ancestor of two commits.
// The boolean is false when the histories are unrelated.
func (r *Repo) MergeBase(a, b string) (string, bool, error) {
	hashA, err := r.resolveCommit(a)
	if err != nil {
		return "", false, err
	}
	hashB, err := r.resolveCommit(b)
	if err != nil {
		return "", false, err
	}

	commitA, err := r.repo.CommitObject(hashA)
	if err != nil {
		return "", false, flowerrors.NewBackendError("load commit", err)
	}
	commitB, err := r.repo.CommitObject(hashB)
	if err != nil {
		return "", false, flowerrors.NewBackendError("load commit", err)
	}

	bases, err := commitA.MergeBase(commitB)
	if err != nil {
		return "", false, flowerrors.NewBackendError("merge base", err)
	}
	if len(bases) == 0 {
		return "", false, nil
	}
	return bases[0].Hash.String(), true, nil
}

// MergeAnalysis classifies merging source into the target branch
func (r *Repo) MergeAnalysis(target, source string) (MergeAnalysis, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(target), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return AnalysisUnborn, nil
	}
	if err != nil {
		return AnalysisNone, flowerrors.NewBackendError(fmt.Sprintf("resolve %s", target), err)
	}
	tip := ref.Hash().String()

	upToDate, err := r.IsAncestor(source, tip)
	if err != nil {
		return AnalysisNone, err
	}
	if upToDate {
		return AnalysisUpToDate, nil
	}

	fastForward, err := r.IsAncestor(tip, source)
	if err != nil {
		return AnalysisNone, err
	}
	if fastForward {
		return AnalysisFastForward, nil
	}

	_, related, err := r.MergeBase(tip, source)
	if err != nil {
		return AnalysisNone, err
	}
	if !related {
		return AnalysisNone, nil
	}
	return AnalysisNormal, nil
}
