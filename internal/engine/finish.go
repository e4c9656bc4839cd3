package engine

import (
	"context"
	"fmt"

	"gitflow.dev/gitflow/internal/config"
	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/merge"
)

// Finish integrates <prefix><name> back into the integration branches.
//
// Release and hotfix branches merge into master, get tagged, and master is
// merged back into develop. Every other kind merges into develop. A merge
// conflict stops the sequence with the conflict left in the worktree; nothing
// after it runs and the branch is kept. A branch whose history is unrelated to
// its target is kept as well.
func (e *Engine) Finish(ctx context.Context, kind config.BranchKind, name string, opts FinishOptions) (*FinishResult, error) {
	if err := e.requireReady(); err != nil {
		return nil, err
	}
	source, err := e.branchName(kind, name)
	if err != nil {
		return nil, err
	}
	if _, err := e.backend.FindBranch(source); err != nil {
		return nil, err
	}

	dirty, err := e.backend.HasUncommittedChanges(ctx)
	if err != nil {
		return nil, err
	}
	if dirty {
		return nil, flowerrors.ErrDirtyWorktree
	}

	develop, err := e.config.Develop()
	if err != nil {
		return nil, err
	}

	result := &FinishResult{Branch: source}

	if kind.FinishesIntoMaster() {
		master, err := e.config.Master()
		if err != nil {
			return nil, err
		}

		if err := e.mergeInto(ctx, result, master, source, opts.Message); err != nil {
			return result, err
		}

		if !opts.NoTag {
			tag, err := e.tag(master, name, opts)
			if err != nil {
				return result, err
			}
			result.Tag = tag
		}

		if err := e.mergeInto(ctx, result, develop, master, opts.BackMergeMessage); err != nil {
			return result, err
		}
	} else {
		if err := e.mergeInto(ctx, result, develop, source, opts.Message); err != nil {
			return result, err
		}
	}

	if !opts.KeepBranch {
		merged, err := e.sourceMerged(result)
		if err != nil {
			return result, err
		}
		if !merged {
			e.info("Kept %s: its history is unrelated to %s", source, result.Merges[0].Target)
			return result, nil
		}
		if err := e.backend.DeleteBranch(ctx, source); err != nil {
			return result, err
		}
		result.Deleted = true
		e.info("Deleted branch %s", source)
	}
	return result, nil
}

// sourceMerged reports whether the first merge left the source reachable from
// its target. Only a no-op merge of unrelated histories leaves it unreachable.
func (e *Engine) sourceMerged(result *FinishResult) (bool, error) {
	step := result.Merges[0]
	if step.Outcome.Kind != merge.NoOp {
		return true, nil
	}
	source, err := e.backend.FindBranch(step.Source)
	if err != nil {
		return false, err
	}
	target, err := e.backend.FindBranch(step.Target)
	if err != nil {
		return false, err
	}
	return e.backend.IsAncestor(source.Commit, target.Commit)
}

// AbortFinish abandons the merge a conflicted Finish left in the worktree.
// The branches are left as they were before that merge.
func (e *Engine) AbortFinish(ctx context.Context) error {
	if !e.backend.MergeInProgress(ctx) {
		return fmt.Errorf("%w: no merge in progress", flowerrors.ErrState)
	}
	if err := e.backend.MergeAbort(ctx); err != nil {
		return err
	}
	e.info("Aborted merge")
	return nil
}

func (e *Engine) mergeInto(ctx context.Context, result *FinishResult, target, source, message string) error {
	if err := e.backend.Checkout(ctx, target, false); err != nil {
		return err
	}
	step, err := e.merge(ctx, target, source, message)
	result.Merges = append(result.Merges, step)
	return err
}

// tag tags the tip of master. An empty tag name from the MessageProvider skips tagging.
func (e *Engine) tag(master, name string, opts FinishOptions) (string, error) {
	tag := opts.Tag
	if tag == "" {
		prefix, err := e.config.VersionTagPrefix()
		if err != nil {
			return "", err
		}
		tag, err = e.messages.TagName(prefix + name)
		if err != nil {
			return "", err
		}
		if tag == "" {
			return "", nil
		}
	}

	message := opts.TagMessage
	if message == "" {
		var err error
		message, err = e.messages.TagMessage(tag)
		if err != nil {
			return "", err
		}
	}

	tip, err := e.backend.FindBranch(master)
	if err != nil {
		return "", err
	}
	if err := e.backend.Tag(tip.Commit, tag, message); err != nil {
		return "", err
	}
	e.info("Tagged %s as %s", master, tag)
	return tag, nil
}
