package engine

import (
	"context"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
)

// Start creates the branch <prefix><name> and checks it out. The branch
// starts at opts.Base when given, otherwise at HEAD.
func (e *Engine) Start(ctx context.Context, kind config.BranchKind, name string, opts StartOptions) (git.Branch, error) {
	if err := e.requireReady(); err != nil {
		return git.Branch{}, err
	}
	target, err := e.branchName(kind, name)
	if err != nil {
		return git.Branch{}, err
	}

	var base string
	if opts.Base != "" {
		b, err := e.backend.FindBranch(opts.Base)
		if err != nil {
			return git.Branch{}, err
		}
		base = b.Commit
	} else {
		base, err = e.backend.Head()
		if err != nil {
			return git.Branch{}, err
		}
	}

	branch, err := e.backend.CreateBranch(target, base)
	if err != nil {
		return git.Branch{}, err
	}
	if err := e.backend.Checkout(ctx, branch.Name, false); err != nil {
		return git.Branch{}, err
	}
	e.info("Switched to a new branch %s", branch.Name)
	return branch, nil
}
