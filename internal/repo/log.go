package repo

import (
	"sort"

	"github.com/arlodev/gitlet/internal/object"
)

// LogEntry pairs a commit with its id for log output. Formatting
// (timestamps, merge lines) is a console-I/O concern left to cmd/gitlet
// (spec.md §1: log pretty-printing is out of scope for the core).
type LogEntry struct {
	ID     object.ID
	Commit *object.Commit
}

// Log walks the first-parent chain from HEAD (spec.md §4.4).
func (r *Repo) Log() ([]LogEntry, error) {
	id, err := r.HeadCommitID()
	if err != nil {
		return nil, err
	}
	var entries []LogEntry
	for id != "" {
		c, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})
		id = c.Parent
	}
	return entries, nil
}

// GlobalLog returns every commit in the store, sorted by id for
// deterministic output (spec.md §4.4: "order does not matter" for the
// command's semantics, but deterministic test output is still desirable).
func (r *Repo) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Store.ListCommitIDs()
	if err != nil {
		return nil, err
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entries := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		c, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})
	}
	return entries, nil
}
