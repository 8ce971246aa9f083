package repo

// Reset implements `reset <id>`: the same overwrite/delete logic as
// `checkout <branch>`, but retargets the current branch ref (not HEAD)
// to the resolved commit (spec.md §4.4).
func (r *Repo) Reset(idOrPrefix string) error {
	targetID, target, err := r.ResolveCommit(idOrPrefix)
	if err != nil {
		return err
	}
	head, err := r.HeadCommit()
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

	branch, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	return r.Refs.WriteBranch(branch, targetID)
}
