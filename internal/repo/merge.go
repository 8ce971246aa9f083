package repo

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/graph"
	"github.com/arlodev/gitlet/internal/merge"
	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/worktree"
)

// MergeOutcome reports how a Merge call concluded. At most one of
// GivenIsAncestor and FastForwarded is true; when both are false a merge
// commit was created, possibly with conflicts.
type MergeOutcome struct {
	GivenIsAncestor bool
	FastForwarded   bool
	Conflicted      bool
	CommitID        object.ID
}

// Merge implements the three-way merge engine (spec.md §4.5).
func (r *Repo) Merge(branch string) (*MergeOutcome, error) {
	idx, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	if !idx.Empty() {
		return nil, gitleterr.ErrUncommittedChanges
	}

	current, err := r.CurrentBranch()
	if err != nil {
		return nil, err
	}
	if branch == current {
		return nil, gitleterr.ErrMergeWithSelf
	}

	gID, ok := r.Refs.ReadBranch(branch)
	if !ok {
		return nil, gitleterr.ErrBranchDoesNotExist
	}

	hID, err := r.HeadCommitID()
	if err != nil {
		return nil, err
	}
	head, err := r.Store.GetCommit(hID)
	if err != nil {
		return nil, err
	}
	other, err := r.Store.GetCommit(gID)
	if err != nil {
		return nil, err
	}

	splitID, err := graph.SplitPoint(r.Store, hID, gID)
	if err != nil {
		return nil, err
	}

	if splitID == gID {
		return &MergeOutcome{GivenIsAncestor: true}, nil
	}
	if splitID == hID {
		if err := r.checkUntrackedInTheWay(head, other); err != nil {
			return nil, err
		}
		if err := r.applyCommit(head, other); err != nil {
			return nil, err
		}
		idx.Clear()
		if err := idx.Save(); err != nil {
			return nil, err
		}
		if err := r.Refs.WriteBranch(current, gID); err != nil {
			return nil, err
		}
		return &MergeOutcome{FastForwarded: true, CommitID: gID}, nil
	}

	split, err := r.Store.GetCommit(splitID)
	if err != nil {
		return nil, err
	}

	splitMap, headMap, otherMap := split.FileMap(), head.FileMap(), other.FileMap()

	names := make(map[string]bool)
	for n := range splitMap {
		names[n] = true
	}
	for n := range headMap {
		names[n] = true
	}
	for n := range otherMap {
		names[n] = true
	}

	type decision struct {
		name   string
		action merge.Action
	}
	var decisions []decision
	for name := range names {
		action := merge.Classify(splitMap[name], headMap[name], otherMap[name])
		decisions = append(decisions, decision{name: name, action: action})
	}

	// Precondition check: no untracked-in-the-way file before any mutation
	// (spec.md §4.5, §5).
	for _, d := range decisions {
		if d.action == merge.ActionTakeOther || d.action == merge.ActionConflict {
			if _, trackedByHead := headMap[d.name]; trackedByHead {
				continue
			}
			if worktree.Exists(r.RootDir, d.name) {
				return nil, gitleterr.ErrUntrackedInTheWay
			}
		}
	}

	conflicted := false
	for _, d := range decisions {
		switch d.action {
		case merge.ActionTakeOther:
			blob, err := r.Store.GetBlob(otherMap[d.name])
			if err != nil {
				return nil, err
			}
			if err := worktree.Materialize(r.RootDir, d.name, blob.Content); err != nil {
				return nil, err
			}
			idx.StageAdd(d.name, otherMap[d.name])

		case merge.ActionRemove:
			if err := worktree.Delete(r.RootDir, d.name); err != nil {
				return nil, err
			}
			idx.StageRemove(d.name)

		case merge.ActionConflict:
			conflicted = true
			headContent, err := contentOrEmpty(r.Store, headMap[d.name])
			if err != nil {
				return nil, err
			}
			otherContent, err := contentOrEmpty(r.Store, otherMap[d.name])
			if err != nil {
				return nil, err
			}
			resolved := merge.ConflictContent(headContent, otherContent)
			if err := worktree.Materialize(r.RootDir, d.name, resolved); err != nil {
				return nil, err
			}
			id, err := r.Store.PutBlob(resolved)
			if err != nil {
				return nil, err
			}
			idx.StageAdd(d.name, id)

		case merge.ActionNone:
			// leave the working tree unchanged
		}
	}

	message := "Merged " + branch + " into " + current + "."
	commitID, err := r.commitInternal(message, idx, gID)
	if err != nil {
		return nil, err
	}

	return &MergeOutcome{Conflicted: conflicted, CommitID: commitID}, nil
}

func contentOrEmpty(store *object.Store, id object.ID) ([]byte, error) {
	if id == "" {
		return nil, nil
	}
	blob, err := store.GetBlob(id)
	if err != nil {
		return nil, err
	}
	return blob.Content, nil
}
