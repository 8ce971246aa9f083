package repo

import (
	"time"

	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/index"
	"github.com/arlodev/gitlet/internal/object"
)

// Commit creates a new commit from the staging area (spec.md §4.4).
func (r *Repo) Commit(message string) (object.ID, error) {
	if message == "" {
		return "", gitleterr.ErrEmptyCommitMessage
	}
	idx, err := r.loadIndex()
	if err != nil {
		return "", err
	}
	if idx.Empty() {
		return "", gitleterr.ErrNoChangesAdded
	}
	return r.commitInternal(message, idx, "")
}

// commitInternal builds and stores a commit from idx without the "no
// changes" precondition, so the merge engine can call it to produce the
// unconditional merge commit (spec.md §4.5). parent2, when non-empty,
// marks this as a merge commit.
func (r *Repo) commitInternal(message string, idx *index.Index, parent2 object.ID) (object.ID, error) {
	head, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	headID, err := r.HeadCommitID()
	if err != nil {
		return "", err
	}

	files := head.FileMap()
	for name, id := range idx.AddMap {
		files[name] = id
	}
	for name := range idx.RmSet {
		delete(files, name)
	}

	entries := make([]object.FileEntry, 0, len(files))
	for name, id := range files {
		entries = append(entries, object.FileEntry{Name: name, Blob: id})
	}

	c := &object.Commit{
		Message:   message,
		Timestamp: time.Now(),
		Parent:    headID,
		Parent2:   parent2,
		Files:     entries,
	}
	id, err := r.Store.PutCommit(c)
	if err != nil {
		return "", err
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}
	if err := r.Refs.WriteBranch(branch, id); err != nil {
		return "", err
	}

	idx.Clear()
	if err := idx.Save(); err != nil {
		return "", err
	}

	return id, nil
}
