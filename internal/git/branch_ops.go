package git

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// FindBranch looks up a local branch by name
func (r *Repo) FindBranch(name string) (Branch, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Branch{}, flowerrors.NewBranchNotFoundError(name)
	}
	if err != nil {
		return Branch{}, flowerrors.NewBackendError(fmt.Sprintf("find branch %s", name), err)
	}
	return Branch{Name: name, Commit: ref.Hash().String()}, nil
}

// Branches returns all local branches sorted by name
func (r *Repo) Branches() ([]Branch, error) {
	refs, err := r.repo.Branches()
	if err != nil {
		return nil, flowerrors.NewBackendError("list branches", err)
	}
	defer refs.Close()

	var branches []Branch
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, Branch{
			Name:   ref.Name().Short(),
			Commit: ref.Hash().String(),
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, flowerrors.NewBackendError("list branches", err)
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}

// CreateBranch creates refs/heads/<name> at the given commit without checking it out
func (r *Repo) CreateBranch(name, commit string) (Branch, error) {
	refName := plumbing.NewBranchReferenceName(name)
	if err := refName.Validate(); err != nil {
		return Branch{}, flowerrors.NewBackendError(fmt.Sprintf("create branch %s", name), err)
	}

	if _, err := r.repo.Reference(refName, false); err == nil {
		return Branch{}, flowerrors.NewBranchExistsError(name)
	}

	hash, err := r.resolveCommit(commit)
	if err != nil {
		return Branch{}, err
	}

	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(refName, hash)); err != nil {
		return Branch{}, flowerrors.NewBackendError(fmt.Sprintf("create branch %s", name), err)
	}
	return Branch{Name: name, Commit: hash.String()}, nil
}

// SetBranchTarget moves a branch to a new commit, recording reason in the reflog
func (r *Repo) SetBranchTarget(ctx context.Context, name, commit, reason string) error {
	args := []string{"update-ref"}
	if reason != "" {
		args = append(args, "-m", reason)
	}
	args = append(args, plumbing.NewBranchReferenceName(name).String(), commit)
	if _, err := r.runner.Run(ctx, args...); err != nil {
		return flowerrors.NewBackendError(fmt.Sprintf("move branch %s", name), err)
	}
	return nil
}

// DeleteBranch deletes a local branch
func (r *Repo) DeleteBranch(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "branch", "-D", name); err != nil {
		return flowerrors.NewBackendError(fmt.Sprintf("delete branch %s", name), err)
	}
	return nil
}

// Checkout checks out a branch. With force, local modifications are discarded.
func (r *Repo) Checkout(ctx context.Context, name string, force bool) error {
	args := []string{"checkout"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, name, "--")
	if _, err := r.runner.Run(ctx, args...); err != nil {
		return flowerrors.NewBackendError(fmt.Sprintf("checkout %s", name), err)
	}
	return nil
}

// IsAncestor reports whether ancestor is reachable from descendant
func (r *Repo) IsAncestor(ancestor, descendant string) (bool, error) {
	ancestorHash, err := r.resolveCommit(ancestor)
	if err != nil {
		return false, err
	}
	descendantHash, err := r.resolveCommit(descendant)
	if err != nil {
		return false, err
	}
	if ancestorHash == descendantHash {
		return true, nil
	}

	ancestorCommit, err := r.repo.CommitObject(ancestorHash)
	if err != nil {
		return false, flowerrors.NewBackendError("load commit", err)
	}
	descendantCommit, err := r.repo.CommitObject(descendantHash)
	if err != nil {
		return false, flowerrors.NewBackendError("load commit", err)
	}

	ok, err := ancestorCommit.IsAncestor(descendantCommit)
	if err != nil {
		return false, flowerrors.NewBackendError("ancestry check", err)
	}
	return ok, nil
}
