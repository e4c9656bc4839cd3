package git

import (
	"context"
	"fmt"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// Diff returns the changes on branch since it diverged from base
func (r *Repo) Diff(ctx context.Context, base, branch string) (string, error) {
	out, err := r.runner.RunRaw(ctx, "diff", base+"..."+branch)
	if err != nil {
		return "", flowerrors.NewBackendError(fmt.Sprintf("diff %s...%s", base, branch), err)
	}
	return out, nil
}
