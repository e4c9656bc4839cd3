package engine

import (
	"context"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// Publish pushes <prefix><name> to the remote and sets it as upstream
func (e *Engine) Publish(ctx context.Context, kind config.BranchKind, name string) error {
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

	url, err := e.backend.RemoteURL(e.remote)
	if err != nil {
		return err
	}
	method, err := e.auth.AuthMethod(ctx, url)
	if err != nil {
		return err
	}

	if err := e.backend.Push(ctx, e.remote, branch, method, e.progress); err != nil {
		return err
	}
	e.info("Published %s to %s", branch, e.remote)
	return nil
}

// Track fetches <prefix><name> from the remote, creates a local branch
// tracking it, and checks it out
func (e *Engine) Track(ctx context.Context, kind config.BranchKind, name string) (git.Branch, error) {
	if err := e.requireReady(); err != nil {
		return git.Branch{}, err
	}
	branch, err := e.branchName(kind, name)
	if err != nil {
		return git.Branch{}, err
	}

	url, err := e.backend.RemoteURL(e.remote)
	if err != nil {
		return git.Branch{}, err
	}
	method, err := e.auth.AuthMethod(ctx, url)
	if err != nil {
		return git.Branch{}, err
	}
	if err := e.backend.Fetch(ctx, e.remote, branch, method, e.progress); err != nil {
		return git.Branch{}, err
	}

	remoteBranch, err := e.backend.RemoteBranch(e.remote, branch)
	if err != nil {
		return git.Branch{}, err
	}
	local, err := e.backend.CreateBranch(branch, remoteBranch.Commit)
	if err != nil {
		return git.Branch{}, err
	}
	if err := e.backend.SetUpstream(branch, e.remote); err != nil {
		return git.Branch{}, err
	}
	if err := e.backend.Checkout(ctx, branch, false); err != nil {
		return git.Branch{}, err
	}
	e.info("Tracking %s/%s as %s", e.remote, branch, local.Name)
	return local, nil
}
