// Package index implements the staging area: the set of pending additions
// and removals that mediate a working-directory snapshot into the next
// commit. Unlike blobs and commits, the index is local, mutable state, not
// part of the content-addressed object graph, so it is persisted with
// github.com/BurntSushi/toml rather than the bespoke commit encoding.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/arlodev/gitlet/internal/object"
)

// record is the on-disk shape of the index file.
type record struct {
	Add    map[string]string `toml:"add"`
	Remove []string           `toml:"remove"`
}

// Index holds the two disjoint sets described in spec.md §3: files staged
// for addition (name -> blob id) and files staged for removal (names).
type Index struct {
	path string

	AddMap map[string]object.ID
	RmSet  map[string]bool
}

// Open returns an Index bound to gitletDir/index. It does not load from
// disk; call Load for that.
func Open(gitletDir string) *Index {
	return &Index{
		path:   filepath.Join(gitletDir, "index"),
		AddMap: make(map[string]object.ID),
		RmSet:  make(map[string]bool),
	}
}

// Load reads the persisted index from disk. A missing file is treated as
// an empty index, matching a freshly initialized repository.
func (idx *Index) Load() error {
	data, err := os.ReadFile(idx.path)
	if err != nil {
		if os.IsNotExist(err) {
			idx.AddMap = make(map[string]object.ID)
			idx.RmSet = make(map[string]bool)
			return nil
		}
		return fmt.Errorf("index: load: %w", err)
	}

	var rec record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("index: load: decode: %w", err)
	}

	idx.AddMap = make(map[string]object.ID, len(rec.Add))
	for name, id := range rec.Add {
		idx.AddMap[name] = object.ID(id)
	}
	idx.RmSet = make(map[string]bool, len(rec.Remove))
	for _, name := range rec.Remove {
		idx.RmSet[name] = true
	}
	return nil
}

// Save persists the index to disk.
func (idx *Index) Save() error {
	rec := record{
		Add:    make(map[string]string, len(idx.AddMap)),
		Remove: make([]string, 0, len(idx.RmSet)),
	}
	for name, id := range idx.AddMap {
		rec.Add[name] = string(id)
	}
	for name := range idx.RmSet {
		rec.Remove = append(rec.Remove, name)
	}
	sort.Strings(rec.Remove)

	data, err := toml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("index: save: encode: %w", err)
	}
	if err := os.WriteFile(idx.path, data, 0o644); err != nil {
		return fmt.Errorf("index: save: %w", err)
	}
	return nil
}

// StageAdd marks name for addition with the given blob id, removing it from
// the removal set if present -- the two sets are disjoint at all times
// (spec.md §3 invariant).
func (idx *Index) StageAdd(name string, id object.ID) {
	idx.AddMap[name] = id
	delete(idx.RmSet, name)
}

// UnstageAdd removes name from the addition set, if present.
func (idx *Index) UnstageAdd(name string) {
	delete(idx.AddMap, name)
}

// StageRemove marks name for removal, removing it from the addition set
// first to preserve disjointness.
func (idx *Index) StageRemove(name string) {
	delete(idx.AddMap, name)
	idx.RmSet[name] = true
}

// Clear empties both sets.
func (idx *Index) Clear() {
	idx.AddMap = make(map[string]object.ID)
	idx.RmSet = make(map[string]bool)
}

// Empty reports whether both sets are empty.
func (idx *Index) Empty() bool {
	return len(idx.AddMap) == 0 && len(idx.RmSet) == 0
}

// SortedAddNames returns the staged-for-addition names in sorted order.
func (idx *Index) SortedAddNames() []string {
	names := make([]string, 0, len(idx.AddMap))
	for n := range idx.AddMap {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SortedRmNames returns the staged-for-removal names in sorted order.
func (idx *Index) SortedRmNames() []string {
	names := make([]string, 0, len(idx.RmSet))
	for n := range idx.RmSet {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
