package repo

import "github.com/arlodev/gitlet/internal/gitleterr"

// Branch creates a new branch ref at HEAD's commit (spec.md §4.4).
func (r *Repo) Branch(name string) error {
	if _, exists := r.Refs.ReadBranch(name); exists {
		return gitleterr.ErrBranchAlreadyExists
	}
	id, err := r.HeadCommitID()
	if err != nil {
		return err
	}
	return r.Refs.WriteBranch(name, id)
}

// RmBranch deletes a branch ref. It refuses to delete the current branch.
func (r *Repo) RmBranch(name string) error {
	if _, exists := r.Refs.ReadBranch(name); !exists {
		return gitleterr.ErrBranchDoesNotExist
	}
	current, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if name == current {
		return gitleterr.ErrCannotRemoveCurrent
	}
	return r.Refs.DeleteBranch(name)
}
