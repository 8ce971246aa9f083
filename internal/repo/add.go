package repo

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/worktree"
)

// Add stages name for the next commit (spec.md §4.4).
func (r *Repo) Add(name string) error {
	if !worktree.Exists(r.RootDir, name) {
		return gitleterr.ErrFileDoesNotExist
	}
	content, err := worktree.Read(r.RootDir, name)
	if err != nil {
		return err
	}
	id := object.BlobID(content)

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	idx, err := r.loadIndex()
	if err != nil {
		return err
	}

	if headID, tracked := head.Lookup(name); tracked && headID == id {
		idx.UnstageAdd(name)
	} else {
		if _, err := r.Store.PutBlob(content); err != nil {
			return err
		}
		idx.StageAdd(name, id)
	}
	delete(idx.RmSet, name)

	return idx.Save()
}
