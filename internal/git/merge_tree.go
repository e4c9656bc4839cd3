package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// MergeTrees performs a three-way merge of ours and theirs against base without
// touching the index or worktree. On a clean merge the resulting tree is written
// to the object database. Requires git 2.38 or later.
func (r *Repo) MergeTrees(ctx context.Context, base, ours, theirs string) (MergeTreeResult, error) {
	args := []string{"merge-tree", "--write-tree", "--name-only", "--no-messages"}
	output, err := r.runner.Run(ctx, append(args, "--merge-base="+base, ours, theirs)...)
	if err != nil && unknownOption(err, "merge-base") {
		// git before 2.40 computes the merge base itself, which is the base we were given
		output, err = r.runner.Run(ctx, append(args, ours, theirs)...)
	}
	if err != nil && exitCode(err) == 129 {
		return MergeTreeResult{}, flowerrors.NewBackendError("merge trees", errors.New("git 2.38 or later is required"))
	}
	conflicted := false
	if err != nil {
		// merge-tree exits 1 for a conflicted merge and still prints the tree
		if exitCode(err) != 1 {
			return MergeTreeResult{}, flowerrors.NewBackendError("merge trees", err)
		}
		conflicted = true
		output = strings.TrimSpace(commandStdout(err))
	}

	lines := strings.Split(output, "\n")
	if len(lines) == 0 || lines[0] == "" {
		return MergeTreeResult{}, flowerrors.NewBackendError("merge trees", fmt.Errorf("no tree in merge-tree output"))
	}

	result := MergeTreeResult{Tree: strings.TrimSpace(lines[0]), Conflicted: conflicted}
	if conflicted {
		seen := make(map[string]bool)
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				break
			}
			if !seen[line] {
				seen[line] = true
				result.Paths = append(result.Paths, line)
			}
		}
	}
	return result, nil
}

// CheckoutConflicts checks out target and starts a merge of source that stops
// with the conflicts written to the index and worktree. MERGE_HEAD is left set
// so the user can resolve and commit. Returns the unmerged paths.
func (r *Repo) CheckoutConflicts(ctx context.Context, target, source, message string) ([]string, error) {
	if err := r.Checkout(ctx, target, true); err != nil {
		return nil, err
	}

	_, err := r.runner.Run(ctx, "merge", "--no-ff", "--no-commit", "-m", message, source)
	if err == nil {
		return nil, flowerrors.NewBackendError("checkout conflicts", fmt.Errorf("merge of %s into %s did not conflict", source, target))
	}
	if exitCode(err) != 1 {
		return nil, flowerrors.NewBackendError("checkout conflicts", err)
	}

	paths, err := r.runner.RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, flowerrors.NewBackendError("list conflicts", err)
	}
	return paths, nil
}

// MergeInProgress reports whether MERGE_HEAD is set
func (r *Repo) MergeInProgress(ctx context.Context) bool {
	_, err := r.runner.Run(ctx, "rev-parse", "-q", "--verify", "MERGE_HEAD")
	return err == nil
}

// MergeAbort aborts an in-progress merge
func (r *Repo) MergeAbort(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "merge", "--abort"); err != nil {
		return flowerrors.NewBackendError("merge abort", err)
	}
	return nil
}

// unknownOption reports whether git rejected a command line option, which it
// signals with exit code 129
func unknownOption(err error, option string) bool {
	if exitCode(err) != 129 {
		return false
	}
	var cmdErr *flowerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return strings.Contains(cmdErr.Stderr, option)
}
