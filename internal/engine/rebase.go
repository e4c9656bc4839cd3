package engine

import (
	"context"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// Diff returns the changes on <prefix><name> since it forked from its base
func (e *Engine) Diff(ctx context.Context, kind config.BranchKind, name string) (string, error) {
	if err := e.requireReady(); err != nil {
		return "", err
	}
	branch, err := e.branchName(kind, name)
	if err != nil {
		return "", err
	}
	base, err := e.config.Base(kind)
	if err != nil {
		return "", err
	}
	return e.backend.Diff(ctx, base, branch)
}

// Rebase replays <prefix><name> onto its base
func (e *Engine) Rebase(ctx context.Context, kind config.BranchKind, name string, opts git.RebaseOptions) ([]git.RebaseOperation, error) {
	if err := e.requireReady(); err != nil {
		return nil, err
	}
	branch, err := e.branchName(kind, name)
	if err != nil {
		return nil, err
	}
	if _, err := e.backend.FindBranch(branch); err != nil {
		return nil, err
	}
	base, err := e.config.Base(kind)
	if err != nil {
		return nil, err
	}
	ops, err := e.backend.Rebase(ctx, branch, base, opts)
	if err != nil {
		return nil, err
	}
	e.info("Rebased %s onto %s (%d commits)", branch, base, len(ops))
	return ops, nil
}
