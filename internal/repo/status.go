package repo

import (
	"sort"
	"strings"

	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/worktree"
)

// ModEntry is one "Modifications Not Staged For Commit" line.
type ModEntry struct {
	Name   string
	Status string // "modified" or "deleted"
}

// StatusReport is the data behind `status` (spec.md §4.4). Rendering
// (headers, the leading "*" on the current branch) is left to cmd/gitlet.
type StatusReport struct {
	Branches       []string
	CurrentBranch  string
	StagedFiles    []string
	RemovedFiles   []string
	Modifications  []ModEntry
	UntrackedFiles []string
}

// Status computes the full status report.
func (r *Repo) Status() (*StatusReport, error) {
	allBranches, err := r.Refs.ListBranches()
	if err != nil {
		return nil, err
	}
	// Status's "Branches" section lists only local (non-namespaced)
	// branches -- remote-tracking refs live in a nested directory and are
	// not part of this listing (grounded on original_source's
	// plainFilenamesIn(REFS), which does not recurse).
	var branches []string
	for _, b := range allBranches {
		if !strings.Contains(b, "/") {
			branches = append(branches, b)
		}
	}
	current, err := r.CurrentBranch()
	if err != nil {
		return nil, err
	}
	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	idx, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	headFiles := head.FileMap()

	workNames, err := worktree.ListPlainFiles(r.RootDir, DirName)
	if err != nil {
		return nil, err
	}
	onDisk := make(map[string]bool, len(workNames))
	for _, n := range workNames {
		onDisk[n] = true
	}

	var mods []ModEntry
	for name, headID := range headFiles {
		if _, staged := idx.AddMap[name]; staged {
			continue
		}
		if onDisk[name] {
			content, err := worktree.Read(r.RootDir, name)
			if err != nil {
				return nil, err
			}
			if object.BlobID(content) != headID {
				mods = append(mods, ModEntry{Name: name, Status: "modified"})
			}
		} else if !idx.RmSet[name] {
			mods = append(mods, ModEntry{Name: name, Status: "deleted"})
		}
	}
	for name, stagedID := range idx.AddMap {
		if onDisk[name] {
			content, err := worktree.Read(r.RootDir, name)
			if err != nil {
				return nil, err
			}
			if object.BlobID(content) != stagedID {
				mods = append(mods, ModEntry{Name: name, Status: "modified"})
			}
		} else {
			mods = append(mods, ModEntry{Name: name, Status: "deleted"})
		}
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].Name < mods[j].Name })

	var untracked []string
	for _, n := range workNames {
		if _, inHead := headFiles[n]; inHead {
			continue
		}
		if _, staged := idx.AddMap[n]; staged {
			continue
		}
		untracked = append(untracked, n)
	}
	sort.Strings(untracked)

	return &StatusReport{
		Branches:       branches,
		CurrentBranch:  current,
		StagedFiles:    idx.SortedAddNames(),
		RemovedFiles:   idx.SortedRmNames(),
		Modifications:  mods,
		UntrackedFiles: untracked,
	}, nil
}
