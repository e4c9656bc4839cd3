package git

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// EmptyTree writes the empty tree object and returns its hash
func (r *Repo) EmptyTree() (string, error) {
	tree := &object.Tree{}
	obj := r.repo.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return "", flowerrors.NewBackendError("encode empty tree", err)
	}
	hash, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return "", flowerrors.NewIoError("objects", err)
	}
	return hash.String(), nil
}

// Commit writes a commit object with the given parents, tree and message.
// No ref is moved.
func (r *Repo) Commit(parents []string, tree, message string) (string, error) {
	name, email := r.signatureIdentity()
	sig := object.Signature{Name: name, Email: email, When: time.Now()}

	parentHashes := make([]plumbing.Hash, 0, len(parents))
	for _, p := range parents {
		h, err := r.resolveCommit(p)
		if err != nil {
			return "", err
		}
		parentHashes = append(parentHashes, h)
	}

	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      message,
		TreeHash:     plumbing.NewHash(tree),
		ParentHashes: parentHashes,
	}

	obj := r.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return "", flowerrors.NewBackendError("encode commit", err)
	}
	hash, err := r.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return "", flowerrors.NewIoError("objects", err)
	}
	return hash.String(), nil
}

// CommitParents returns the parent hashes of a commit in order
func (r *Repo) CommitParents(commit string) ([]string, error) {
	hash, err := r.resolveCommit(commit)
	if err != nil {
		return nil, err
	}
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, flowerrors.NewBackendError("load commit", err)
	}
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return parents, nil
}

// CommitMessage returns the full message of a commit
func (r *Repo) CommitMessage(commit string) (string, error) {
	hash, err := r.resolveCommit(commit)
	if err != nil {
		return "", err
	}
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return "", flowerrors.NewBackendError("load commit", err)
	}
	return c.Message, nil
}
