package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// RemoteURL returns the first configured URL of a remote
func (r *Repo) RemoteURL(remote string) (string, error) {
	rem, err := r.repo.Remote(remote)
	if err != nil {
		return "", flowerrors.NewBackendError(fmt.Sprintf("remote %s", remote), err)
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", flowerrors.NewBackendError(fmt.Sprintf("remote %s", remote), errors.New("no url configured"))
	}
	return urls[0], nil
}

// Fetch fetches a single branch from remote into refs/remotes/<remote>/<branch>.
// Transfer progress is reported through progress when it is non-nil.
func (r *Repo) Fetch(ctx context.Context, remote, branch string, auth transport.AuthMethod, progress ProgressFunc) error {
	rem, err := r.repo.Remote(remote)
	if err != nil {
		return flowerrors.NewBackendError(fmt.Sprintf("remote %s", remote), err)
	}

	refSpec := gitconfig.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch))
	opts := &gogit.FetchOptions{
		RemoteName: remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       auth,
		Tags:       gogit.AllTags,
	}
	if progress != nil {
		w := NewProgressWriter(progress)
		defer w.Flush()
		opts.Progress = w
	}

	err = rem.FetchContext(ctx, opts)
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return flowerrors.NewBackendError(fmt.Sprintf("fetch %s from %s", branch, remote), err)
	}
	return nil
}

// Push pushes a local branch to remote and records it as the branch upstream
func (r *Repo) Push(ctx context.Context, remote, branch string, auth transport.AuthMethod, progress ProgressFunc) error {
	rem, err := r.repo.Remote(remote)
	if err != nil {
		return flowerrors.NewBackendError(fmt.Sprintf("remote %s", remote), err)
	}

	refName := plumbing.NewBranchReferenceName(branch)
	opts := &gogit.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(fmt.Sprintf("%s:%s", refName, refName))},
		Auth:       auth,
	}
	if progress != nil {
		w := NewProgressWriter(progress)
		defer w.Flush()
		opts.Progress = w
	}

	err = rem.PushContext(ctx, opts)
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return flowerrors.NewBackendError(fmt.Sprintf("push %s to %s", branch, remote), err)
	}

	return r.SetUpstream(branch, remote)
}

// SetUpstream records remote/<branch> as the upstream of the local branch
func (r *Repo) SetUpstream(branch, remote string) error {
	cfg, err := r.repo.Config()
	if err != nil {
		return flowerrors.NewIoError("config", err)
	}
	cfg.Branches[branch] = &gitconfig.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}
	if err := r.repo.Storer.SetConfig(cfg); err != nil {
		return flowerrors.NewIoError("config", err)
	}
	return nil
}

// Upstream returns the remote configured for a branch, if any
func (r *Repo) Upstream(branch string) (string, bool, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", false, flowerrors.NewIoError("config", err)
	}
	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" {
		return "", false, nil
	}
	return b.Remote, true, nil
}

// RemoteBranch returns the remote-tracking ref refs/remotes/<remote>/<branch>
func (r *Repo) RemoteBranch(remote, branch string) (Branch, error) {
	ref, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Branch{}, flowerrors.NewBranchNotFoundError(remote + "/" + branch)
	}
	if err != nil {
		return Branch{}, flowerrors.NewBackendError(fmt.Sprintf("find %s/%s", remote, branch), err)
	}
	return Branch{Name: remote + "/" + branch, Commit: ref.Hash().String()}, nil
}
