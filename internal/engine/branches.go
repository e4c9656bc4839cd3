package engine

import (
	"context"
	"fmt"
	"strings"

	"gitflow.dev/gitflow/internal/config"
	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// List returns the branches of kind, sorted by name
func (e *Engine) List(kind config.BranchKind) ([]ListedBranch, error) {
	if err := e.requireReady(); err != nil {
		return nil, err
	}
	prefix, err := e.config.Prefix(kind)
	if err != nil {
		return nil, err
	}
	branches, err := e.backend.Branches()
	if err != nil {
		return nil, err
	}
	current, _ := e.backend.CurrentBranch()

	var listed []ListedBranch
	for _, b := range branches {
		if !strings.HasPrefix(b.Name, prefix) {
			continue
		}
		listed = append(listed, ListedBranch{
			Name:    b.Name,
			Short:   strings.TrimPrefix(b.Name, prefix),
			Commit:  b.Commit,
			Current: b.Name == current,
		})
	}
	return listed, nil
}

// Checkout switches to <prefix><name>
func (e *Engine) Checkout(ctx context.Context, kind config.BranchKind, name string) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	branch, err := e.branchName(kind, name)
	if err != nil {
		return err
	}
	if _, err := e.backend.FindBranch(branch); err != nil {
		return err
	}
	return e.backend.Checkout(ctx, branch, false)
}

// Delete removes <prefix><name>. Branches with commits their base lacks are
// refused unless opts.Force is set. When the branch is checked out the base
// is checked out first.
func (e *Engine) Delete(ctx context.Context, kind config.BranchKind, name string, opts DeleteOptions) error {
	if err := e.requireReady(); err != nil {
		return err
	}
	branch, err := e.branchName(kind, name)
	if err != nil {
		return err
	}
	tip, err := e.backend.FindBranch(branch)
	if err != nil {
		return err
	}
	baseName, err := e.config.Base(kind)
	if err != nil {
		return err
	}
	base, err := e.backend.FindBranch(baseName)
	if err != nil {
		return err
	}

	if !opts.Force {
		merged, err := e.backend.IsAncestor(tip.Commit, base.Commit)
		if err != nil {
			return err
		}
		if !merged {
			return fmt.Errorf("%w: %s is not merged into %s, use --force to delete it anyway", flowerrors.ErrBranchNotMerged, branch, baseName)
		}
	}

	if current, _ := e.backend.CurrentBranch(); current == branch {
		if err := e.backend.Checkout(ctx, baseName, false); err != nil {
			return err
		}
	}
	if err := e.backend.DeleteBranch(ctx, branch); err != nil {
		return err
	}
	e.info("Deleted branch %s", branch)
	return nil
}
