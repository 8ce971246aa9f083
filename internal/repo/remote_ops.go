package repo

import (
	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/graph"
	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/refs"
	"github.com/arlodev/gitlet/internal/remote"
)

// AddRemote registers a local alias for another repository's .gitlet root
// (spec.md §4.6, §6: the path argument names that directory directly).
func (r *Repo) AddRemote(name, path string) error {
	return remote.Add(r.GitletDir, name, path)
}

// RmRemote removes a previously registered remote alias.
func (r *Repo) RmRemote(name string) error {
	return remote.Remove(r.GitletDir, name)
}

func (r *Repo) openRemote(name string) (*remote.Record, *object.Store, *refs.Store, error) {
	rec, err := remote.Read(r.GitletDir, name)
	if err != nil {
		return nil, nil, nil, err
	}
	if !remote.Exists(rec) {
		return nil, nil, nil, gitleterr.ErrRemoteDirNotFound
	}
	return rec, object.Open(rec.Path), refs.Open(rec.Path), nil
}

// Push copies commits and blobs along HEAD's first-parent chain into the
// named remote's object store, fast-forwarding the remote's branch ref and
// working directory to HEAD (spec.md §4.6).
func (r *Repo) Push(remoteName, branch string) error {
	rec, remoteStore, remoteRefs, err := r.openRemote(remoteName)
	if err != nil {
		return err
	}

	headID, err := r.HeadCommitID()
	if err != nil {
		return err
	}
	headAncestors, err := graph.AncestorSet(r.Store, headID)
	if err != nil {
		return err
	}

	remoteTip, hasRemoteTip := remoteRefs.ReadBranch(branch)
	if hasRemoteTip && remoteTip != "" && !headAncestors[remoteTip] {
		return gitleterr.ErrPullBeforePush
	}

	for id := headID; id != "" && id != remoteTip; {
		c, err := r.Store.GetCommit(id)
		if err != nil {
			return err
		}
		if _, err := remoteStore.PutCommit(c); err != nil {
			return err
		}
		for _, f := range c.Files {
			blob, err := r.Store.GetBlob(f.Blob)
			if err != nil {
				return err
			}
			if _, err := remoteStore.PutBlob(blob.Content); err != nil {
				return err
			}
		}
		id = c.Parent
	}

	if err := remoteRefs.WriteBranch(branch, headID); err != nil {
		return err
	}

	remoteRoot := remote.RootDir(rec)
	remoteHeadBranch, err := remoteRefs.ReadHead()
	if err != nil {
		return err
	}
	remoteHeadID, ok := remoteRefs.ReadBranch(remoteHeadBranch)
	var remoteHead *object.Commit
	if ok {
		remoteHead, err = remoteStore.GetCommit(remoteHeadID)
		if err != nil {
			return err
		}
	} else {
		remoteHead = &object.Commit{}
	}

	head, err := r.Store.GetCommit(headID)
	if err != nil {
		return err
	}
	if err := checkUntrackedInTheWayAt(remoteRoot, remoteHead, head); err != nil {
		return err
	}
	return applyCommitAt(remoteRoot, remoteStore, remoteHead, head)
}

// Fetch copies commits and blobs along the remote branch's first-parent
// chain into the local object store and creates or updates the local
// remote-tracking ref "<remote>/<branch>". It never touches the working
// directory (spec.md §4.6).
func (r *Repo) Fetch(remoteName, branch string) error {
	_, remoteStore, remoteRefs, err := r.openRemote(remoteName)
	if err != nil {
		return err
	}

	tip, ok := remoteRefs.ReadBranch(branch)
	if !ok {
		return gitleterr.ErrRemoteNoSuchBranch
	}

	for id := tip; id != ""; {
		c, err := remoteStore.GetCommit(id)
		if err != nil {
			return err
		}
		if _, err := r.Store.PutCommit(c); err != nil {
			return err
		}
		for _, f := range c.Files {
			blob, err := remoteStore.GetBlob(f.Blob)
			if err != nil {
				return err
			}
			if _, err := r.Store.PutBlob(blob.Content); err != nil {
				return err
			}
		}
		id = c.Parent
	}

	return r.Refs.WriteBranch(remoteName+"/"+branch, tip)
}

// Pull fetches the remote branch and merges the resulting remote-tracking
// ref into the current branch (spec.md §4.6).
func (r *Repo) Pull(remoteName, branch string) (*MergeOutcome, error) {
	if err := r.Fetch(remoteName, branch); err != nil {
		return nil, err
	}
	return r.Merge(remoteName + "/" + branch)
}
