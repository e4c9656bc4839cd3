package engine

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing/transport"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/merge"
)

// Backend is the repository capability the engine is built on
type Backend interface {
	config.Store
	merge.Backend

	Head() (string, error)
	HeadBranch() (string, error)
	CurrentBranch() (string, error)
	Branches() ([]git.Branch, error)
	DeleteBranch(ctx context.Context, name string) error
	IsAncestor(ancestor, descendant string) (bool, error)
	EmptyTree() (string, error)
	Tag(commit, name, message string) error
	HasUncommittedChanges(ctx context.Context) (bool, error)
	MergeInProgress(ctx context.Context) bool
	MergeAbort(ctx context.Context) error
	HooksDir() string

	RemoteURL(remote string) (string, error)
	Fetch(ctx context.Context, remote, branch string, auth transport.AuthMethod, progress git.ProgressFunc) error
	Push(ctx context.Context, remote, branch string, auth transport.AuthMethod, progress git.ProgressFunc) error
	RemoteBranch(remote, branch string) (git.Branch, error)
	SetUpstream(branch, remote string) error

	Rebase(ctx context.Context, branch, onto string, opts git.RebaseOptions) ([]git.RebaseOperation, error)
	Diff(ctx context.Context, base, branch string) (string, error)
}

// MessageProvider supplies merge messages, tag names and tag messages
// when the caller did not give them explicitly
type MessageProvider interface {
	MergeMessage(source, target string) (string, error)
	// TagName returns the tag to create. An empty name skips tagging.
	TagName(suggested string) (string, error)
	TagMessage(tag string) (string, error)
}

// Logger receives engine output
type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}
