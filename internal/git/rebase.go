package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// RebaseOperations lists the commits a rebase of branch onto onto would replay, oldest first
func (r *Repo) RebaseOperations(ctx context.Context, branch, onto string, opts RebaseOptions) ([]RebaseOperation, error) {
	args := []string{"log", "--reverse", "--format=%H%x00%P%x00%s"}
	if !opts.PreserveMerges {
		args = append(args, "--no-merges")
	}
	args = append(args, onto+".."+branch)

	lines, err := r.runner.RunLines(ctx, args...)
	if err != nil {
		return nil, flowerrors.NewBackendError(fmt.Sprintf("list commits of %s", branch), err)
	}

	ops := make([]RebaseOperation, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\x00", 3)
		if len(parts) != 3 {
			continue
		}
		kind := "pick"
		if len(strings.Fields(parts[1])) > 1 {
			kind = "merge"
		}
		ops = append(ops, RebaseOperation{Kind: kind, Commit: parts[0], Subject: parts[2]})
	}
	return ops, nil
}

// Rebase replays branch onto onto and leaves branch checked out.
// A conflict leaves the rebase in progress for the user to resolve.
func (r *Repo) Rebase(ctx context.Context, branch, onto string, opts RebaseOptions) ([]RebaseOperation, error) {
	ops, err := r.RebaseOperations(ctx, branch, onto, opts)
	if err != nil {
		return nil, err
	}

	args := []string{"rebase"}
	if opts.PreserveMerges {
		args = append(args, "--rebase-merges")
	}
	if opts.Interactive {
		args = append(args, "-i", onto, branch)
		err = r.runner.RunInteractive(args...)
	} else {
		args = append(args, onto, branch)
		_, err = r.runner.Run(ctx, args...)
	}
	if err != nil {
		if r.RebaseInProgress(ctx) {
			return ops, flowerrors.NewRebaseConflictError(branch, "resolve conflicts and run 'git rebase --continue'")
		}
		_ = r.RebaseAbort(ctx)
		return nil, flowerrors.NewBackendError(fmt.Sprintf("rebase %s onto %s", branch, onto), err)
	}
	return ops, nil
}

// RebaseInProgress checks for a rebase-merge or rebase-apply directory
func (r *Repo) RebaseInProgress(ctx context.Context) bool {
	gitDir, err := r.runner.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return false
	}
	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		if _, err := os.Stat(filepath.Join(gitDir, dir)); err == nil {
			return true
		}
	}
	return false
}

// RebaseAbort aborts an in-progress rebase
func (r *Repo) RebaseAbort(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "rebase", "--abort"); err != nil {
		return flowerrors.NewBackendError("rebase abort", err)
	}
	return nil
}
