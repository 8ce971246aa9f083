package repo

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/worktree"
)

// CheckoutHeadFile implements `checkout -- F`: copy HEAD's version of F
// into the working directory.
func (r *Repo) CheckoutHeadFile(name string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(head, name, gitleterr.ErrFileNotInCommit)
}

// CheckoutCommitFile implements `checkout <id> -- F`: copy F from the
// resolved commit (prefix allowed) into the working directory.
func (r *Repo) CheckoutCommitFile(idOrPrefix, name string) error {
	_, c, err := r.ResolveCommit(idOrPrefix)
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(c, name, gitleterr.ErrFileNotInCommit)
}

func (r *Repo) checkoutFileFrom(c *object.Commit, name string, notFoundErr error) error {
	id, ok := c.Lookup(name)
	if !ok {
		return notFoundErr
	}
	blob, err := r.Store.GetBlob(id)
	if err != nil {
		return err
	}
	return worktree.Materialize(r.RootDir, name, blob.Content)
}

// CheckoutBranch implements `checkout <branch>`: switch branches (spec.md
// §4.4).
func (r *Repo) CheckoutBranch(branch string) error {
	targetID, ok := r.Refs.ReadBranch(branch)
	if !ok {
		return gitleterr.ErrNoSuchBranch
	}
	current, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if branch == current {
		return gitleterr.ErrAlreadyOnBranch
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	target, err := r.Store.GetCommit(targetID)
	if err != nil {
		return err
	}

	if err := r.checkUntrackedInTheWay(head, target); err != nil {
		return err
	}
	if err := r.applyCommit(head, target); err != nil {
		return err
	}

	idx, err := r.loadIndex()
	if err != nil {
		return err
	}
	idx.Clear()
	if err := idx.Save(); err != nil {
		return err
	}

	return r.Refs.WriteHead(branch)
}
