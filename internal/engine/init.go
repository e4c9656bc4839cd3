package engine

import (
	"context"
	"errors"
	"fmt"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// InitialCommitMessage is the message of the root commit created by Init
const InitialCommitMessage = "Initial commit"

// Init prepares the repository for the workflow: a root commit when the
// repository is unborn, the gitflow.* configuration, and both integration
// branches. develop is checked out on return.
func (e *Engine) Init(ctx context.Context, opts InitOptions) error {
	head, err := e.ensureRootCommit()
	if err != nil {
		return err
	}

	state, err := e.State()
	if err != nil {
		return err
	}
	if state == Uninitialized || opts.Force {
		if opts.Prompter == nil {
			return fmt.Errorf("%w: no prompter configured", flowerrors.ErrState)
		}
		if err := e.config.Initialize(opts.Prompter, e.backend.HooksDir()); err != nil {
			return err
		}
	}

	master, err := e.config.Master()
	if err != nil {
		return err
	}
	develop, err := e.config.Develop()
	if err != nil {
		return err
	}

	if err := e.ensureBranch(master, head); err != nil {
		return err
	}

	// develop starts from whatever is checked out now
	tip, err := e.backend.Head()
	if err != nil {
		return err
	}
	if err := e.ensureBranch(develop, tip); err != nil {
		return err
	}

	if err := e.backend.Checkout(ctx, develop, false); err != nil {
		return err
	}
	e.info("Initialized git-flow: %s and %s", master, develop)
	return nil
}

// ensureRootCommit creates the root commit on an unborn HEAD and returns the HEAD commit
func (e *Engine) ensureRootCommit() (string, error) {
	head, err := e.backend.Head()
	if err == nil {
		return head, nil
	}
	if !errors.Is(err, flowerrors.ErrNoHead) {
		return "", err
	}

	tree, err := e.backend.EmptyTree()
	if err != nil {
		return "", err
	}
	commit, err := e.backend.Commit(nil, tree, InitialCommitMessage)
	if err != nil {
		return "", err
	}
	branch, err := e.backend.HeadBranch()
	if err != nil {
		return "", err
	}
	if _, err := e.backend.CreateBranch(branch, commit); err != nil {
		return "", err
	}
	e.debug("created root commit %s on %s", commit, branch)
	return commit, nil
}

func (e *Engine) ensureBranch(name, commit string) error {
	_, err := e.backend.CreateBranch(name, commit)
	if err != nil && !isBranchExists(err) {
		return err
	}
	return nil
}
