// Package graph provides the in-memory commit-graph operations the merge
// engine needs: ancestor-set enumeration and the BFS split-point search
// over a possibly diamond-shaped DAG (spec.md §4.5).
package graph

import (
	"fmt"

	"github.com/arlodev/gitlet/internal/object"
)

// CommitReader fetches a commit by id. Satisfied by *object.Store.
type CommitReader interface {
	GetCommit(id object.ID) (*object.Commit, error)
}

// AncestorSet enumerates every commit reachable from start (including
// start itself) via DFS through both Parent and Parent2. Commit ids form a
// DAG by construction (a commit's id depends on its parents' ids, so no
// cycle can exist), but a visited set is still carried for robustness
// (spec.md §9).
func AncestorSet(store CommitReader, start object.ID) (map[object.ID]bool, error) {
	seen := make(map[object.ID]bool)
	if start == "" {
		return seen, nil
	}
	stack := []object.ID{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true

		c, err := store.GetCommit(id)
		if err != nil {
			return nil, fmt.Errorf("graph: ancestor set: read commit %s: %w", id, err)
		}
		if c.Parent != "" {
			stack = append(stack, c.Parent)
		}
		if c.Parent2 != "" {
			stack = append(stack, c.Parent2)
		}
	}
	return seen, nil
}

// SplitPoint finds the split point used for a three-way merge: the
// ancestor set of h is built by DFS (AncestorSet above); then a BFS from g
// visits parent before parent2 at each step and returns the first commit
// that lies in h's ancestor set. This walks g-side breadth-first, so it
// returns the split closest to g along g's BFS distance, and deterministically
// breaks diamond cases toward the first-parent path (spec.md §4.5, §9).
func SplitPoint(store CommitReader, h, g object.ID) (object.ID, error) {
	hAncestors, err := AncestorSet(store, h)
	if err != nil {
		return "", err
	}
	if g == "" {
		return "", nil
	}
	if hAncestors[g] {
		return g, nil
	}

	seen := make(map[object.ID]bool)
	queue := []object.ID{g}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true

		if hAncestors[id] {
			return id, nil
		}

		c, err := store.GetCommit(id)
		if err != nil {
			return "", fmt.Errorf("graph: split point: read commit %s: %w", id, err)
		}
		if c.Parent != "" {
			queue = append(queue, c.Parent)
		}
		if c.Parent2 != "" {
			queue = append(queue, c.Parent2)
		}
	}
	return "", fmt.Errorf("graph: split point: no common ancestor between %s and %s", h, g)
}
