package git

import (
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// Tag creates a tag named name pointing at commit. A non-empty message makes it annotated.
func (r *Repo) Tag(commit, name, message string) error {
	hash, err := r.resolveCommit(commit)
	if err != nil {
		return err
	}

	var opts *gogit.CreateTagOptions
	if message != "" {
		tagger, email := r.signatureIdentity()
		opts = &gogit.CreateTagOptions{
			Tagger:  &object.Signature{Name: tagger, Email: email, When: time.Now()},
			Message: message,
		}
	}

	if _, err := r.repo.CreateTag(name, hash, opts); err != nil {
		if errors.Is(err, gogit.ErrTagExists) {
			return fmt.Errorf("%w: %s", flowerrors.ErrTagExists, name)
		}
		return flowerrors.NewBackendError(fmt.Sprintf("create tag %s", name), err)
	}
	return nil
}

// TagTarget returns the commit a tag resolves to
func (r *Repo) TagTarget(name string) (string, error) {
	ref, err := r.repo.Tag(name)
	if err != nil {
		return "", flowerrors.NewBackendError(fmt.Sprintf("find tag %s", name), err)
	}
	if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
		c, err := tagObj.Commit()
		if err != nil {
			return "", flowerrors.NewBackendError(fmt.Sprintf("peel tag %s", name), err)
		}
		return c.Hash.String(), nil
	} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return "", flowerrors.NewBackendError(fmt.Sprintf("read tag %s", name), err)
	}
	return ref.Hash().String(), nil
}
