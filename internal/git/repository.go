package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// Repo wraps a go-git repository together with a command runner rooted at its worktree
type Repo struct {
	repo   *gogit.Repository
	path   string
	runner *CommandRunner
}

// Open opens the git repository containing path
func Open(path string) (*Repo, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, flowerrors.NewIoError(path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, flowerrors.NewBackendError("open repository", err)
	}

	return newRepo(repo, absPath)
}

// OpenOrInit opens the repository at path, initializing a new one when none exists
func OpenOrInit(path string) (*Repo, bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, flowerrors.NewIoError(path, err)
	}

	// a missing directory is never searched upwards for an enclosing repository
	if _, statErr := os.Stat(absPath); statErr == nil {
		repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
			DetectDotGit: true,
		})
		if err == nil {
			r, err := newRepo(repo, absPath)
			return r, false, err
		}
		if !errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, false, flowerrors.NewBackendError("open repository", err)
		}
	}

	if err := os.MkdirAll(absPath, 0750); err != nil {
		return nil, false, flowerrors.NewIoError(absPath, err)
	}
	repo, err := gogit.PlainInit(absPath, false)
	if err != nil {
		return nil, false, flowerrors.NewBackendError("init repository", err)
	}

	r, err := newRepo(repo, absPath)
	return r, true, err
}

func newRepo(repo *gogit.Repository, fallback string) (*Repo, error) {
	root := fallback
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Repo{
		repo:   repo,
		path:   root,
		runner: NewCommandRunner(root),
	}, nil
}

// Workdir returns the root of the repository's working tree
func (r *Repo) Workdir() string {
	return r.path
}

// HooksDir returns the default hooks directory for the repository
func (r *Repo) HooksDir() string {
	return filepath.Join(r.path, ".git", "hooks")
}

// Head returns the commit HEAD points to, or ErrNoHead when the current branch is unborn
func (r *Repo) Head() (string, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", flowerrors.ErrNoHead
	}
	if err != nil {
		return "", flowerrors.NewBackendError("resolve HEAD", err)
	}
	return head.Hash().String(), nil
}

// HeadBranch returns the branch HEAD is attached to. It works on unborn branches.
func (r *Repo) HeadBranch() (string, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", flowerrors.NewBackendError("read HEAD", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Target().Short(), nil
}

// CurrentBranch returns the current branch name
func (r *Repo) CurrentBranch() (string, error) {
	return r.HeadBranch()
}

// resolveCommit resolves a branch name, ref or SHA to a commit hash
func (r *Repo) resolveCommit(rev string) (plumbing.Hash, error) {
	if ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(rev), true); err == nil {
		return ref.Hash(), nil
	}
	if ref, err := r.repo.Reference(plumbing.ReferenceName(rev), true); err == nil {
		return ref.Hash(), nil
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, flowerrors.NewBackendError(fmt.Sprintf("resolve %s", rev), err)
	}
	return *hash, nil
}
