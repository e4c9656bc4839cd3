package git

import (
	"context"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// HasUncommittedChanges reports whether tracked files differ from HEAD or the index
func (r *Repo) HasUncommittedChanges(ctx context.Context) (bool, error) {
	out, err := r.runner.Run(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, flowerrors.NewBackendError("status", err)
	}
	return out != "", nil
}
