package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, flowerrors.NewBranchExistsError("feature/x"), flowerrors.ErrBranchExists)
	require.ErrorIs(t, flowerrors.NewBranchNotFoundError("feature/x"), flowerrors.ErrBranchNotFound)
	require.ErrorIs(t, flowerrors.NewConfigMissingError("gitflow.prefix.feature"), flowerrors.ErrConfigMissing)
	require.ErrorIs(t, flowerrors.NewMergeConflictError("feature/x", "develop", nil), flowerrors.ErrMergeConflict)
	require.ErrorIs(t, flowerrors.NewRebaseConflictError("feature/x", ""), flowerrors.ErrRebaseConflict)
	require.ErrorIs(t, flowerrors.NewBackendError("checkout", errors.New("boom")), flowerrors.ErrBackend)
	require.ErrorIs(t, flowerrors.NewGitCommandError("git", nil, "", "", errors.New("boom")), flowerrors.ErrBackend)
	require.ErrorIs(t, flowerrors.ErrNoActiveKind, flowerrors.ErrState)
	require.ErrorIs(t, flowerrors.ErrDirtyWorktree, flowerrors.ErrState)
}

func TestNewBackendErrorNil(t *testing.T) {
	t.Parallel()
	require.NoError(t, flowerrors.NewBackendError("noop", nil))
}

func TestMergeConflictErrorMessage(t *testing.T) {
	t.Parallel()

	err := flowerrors.NewMergeConflictError("release/1.0", "master", []string{"a.txt", "b.txt"})
	require.Equal(t, "merge conflict merging release/1.0 into master: a.txt, b.txt", err.Error())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, flowerrors.ExitOK},
		{"generic", errors.New("nope"), flowerrors.ExitWorkflow},
		{"conflict", flowerrors.NewMergeConflictError("a", "b", nil), flowerrors.ExitWorkflow},
		{"state", flowerrors.ErrNoActiveKind, flowerrors.ExitWorkflow},
		{"no head", fmt.Errorf("start: %w", flowerrors.ErrNoHead), flowerrors.ExitNoHead},
		{"backend", flowerrors.NewBackendError("push", errors.New("denied")), flowerrors.ExitBackend},
		{"git command", flowerrors.NewGitCommandError("git", []string{"checkout"}, "", "fatal", errors.New("exit 128")), flowerrors.ExitBackend},
		{"io", flowerrors.NewIoError("/tmp/x", errors.New("disk full")), flowerrors.ExitIO},
		{"path error", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, flowerrors.ExitIO},
		{"backend wrapping no head", flowerrors.NewBackendError("head", flowerrors.ErrNoHead), flowerrors.ExitNoHead},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, flowerrors.ExitCode(tt.err))
		})
	}
}
