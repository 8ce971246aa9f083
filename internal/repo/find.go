package repo

import (
	"errors"
	"sort"

	"github.com/arlodev/gitlet/internal/object"
)

// ErrNoCommitWithMessage is returned by Find when no commit has the exact
// message (grounded on original_source/gitlet/Main.java's
// "Found no commit with that message." -- spec.md §4.4 states the
// operation fails on no match but does not restate the legacy string).
var ErrNoCommitWithMessage = errors.New("Found no commit with that message.")

// Find returns the ids of every commit whose message exactly equals
// message, sorted for deterministic output. It fails if none match.
func (r *Repo) Find(message string) ([]object.ID, error) {
	ids, err := r.Store.ListCommitIDs()
	if err != nil {
		return nil, err
	}

	var matches []object.ID
	for _, id := range ids {
		c, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, err
		}
		if c.Message == message {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoCommitWithMessage
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
	return matches, nil
}
