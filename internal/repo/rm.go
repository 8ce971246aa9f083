package repo

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/worktree"
)

// Rm unstages and, if tracked, schedules name for removal (spec.md §4.4).
func (r *Repo) Rm(name string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	idx, err := r.loadIndex()
	if err != nil {
		return err
	}

	_, staged := idx.AddMap[name]
	_, tracked := head.Lookup(name)
	if !staged && !tracked {
		return gitleterr.ErrNoReasonToRemove
	}

	idx.UnstageAdd(name)
	if tracked {
		idx.StageRemove(name)
		if worktree.Exists(r.RootDir, name) {
			if err := worktree.Delete(r.RootDir, name); err != nil {
				return err
			}
		}
	}

	return idx.Save()
}
