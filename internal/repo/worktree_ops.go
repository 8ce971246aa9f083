package repo

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/worktree"
)

// checkUntrackedInTheWay verifies that no file that "from" doesn't track
// but that exists in the working directory would be silently overwritten
// by materializing "to". Shared by checkout-branch, reset, merge, and push
// (spec.md §4.4 checkout, §4.5 merge, §4.6 push all state this check).
func (r *Repo) checkUntrackedInTheWay(from, to *object.Commit) error {
	return checkUntrackedInTheWayAt(r.RootDir, from, to)
}

func checkUntrackedInTheWayAt(root string, from, to *object.Commit) error {
	for _, f := range to.Files {
		if _, tracked := from.Lookup(f.Name); tracked {
			continue
		}
		if worktree.Exists(root, f.Name) {
			return gitleterr.ErrUntrackedInTheWay
		}
	}
	return nil
}

// applyCommit materializes every file of "to" into the working directory
// and deletes every file tracked by "from" but absent from "to". It does
// not touch the index, HEAD, or any ref -- callers do that afterward.
func (r *Repo) applyCommit(from, to *object.Commit) error {
	return applyCommitAt(r.RootDir, r.Store, from, to)
}

func applyCommitAt(root string, store *object.Store, from, to *object.Commit) error {
	toMap := to.FileMap()
	for name := range from.FileMap() {
		if _, stillTracked := toMap[name]; !stillTracked {
			if err := worktree.Delete(root, name); err != nil {
				return err
			}
		}
	}
	for _, f := range to.Files {
		blob, err := store.GetBlob(f.Blob)
		if err != nil {
			return err
		}
		if err := worktree.Materialize(root, f.Name, blob.Content); err != nil {
			return err
		}
	}
	return nil
}
