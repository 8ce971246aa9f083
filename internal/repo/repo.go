// Package repo implements the command core (spec.md §4.4): init, add,
// commit, rm, checkout, reset, branch, rm-branch, status, log, global-log,
// find. It wires together internal/object, internal/refs, internal/index,
// and internal/worktree the way a command dispatcher would, but exposes
// plain Go methods so that cmd/gitlet (and tests) can drive it directly.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arlodev/gitlet/internal/gitleterr"
	"github.com/arlodev/gitlet/internal/index"
	"github.com/arlodev/gitlet/internal/object"
	"github.com/arlodev/gitlet/internal/refs"
)

// DirName is the name of the control directory, analogous to ".git".
const DirName = ".gitlet"

// DefaultBranch is the branch init creates and points HEAD at.
const DefaultBranch = "master"

// Repo is an opened Gitlet repository rooted at RootDir.
type Repo struct {
	RootDir   string
	GitletDir string
	Store     *object.Store
	Refs      *refs.Store
}

// Init creates a new repository at root. It fails if one already exists
// there (spec.md §4.4).
func Init(root string) (*Repo, error) {
	gitletDir := filepath.Join(root, DirName)
	if info, err := os.Stat(gitletDir); err == nil && info.IsDir() {
		return nil, gitleterr.ErrAlreadyInitialized
	}

	r := &Repo{
		RootDir:   root,
		GitletDir: gitletDir,
		Store:     object.Open(gitletDir),
		Refs:      refs.Open(gitletDir),
	}

	if err := r.Store.MkdirAll(); err != nil {
		return nil, err
	}
	if err := r.Refs.MkdirAll(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(gitletDir, "remotes"), 0o755); err != nil {
		return nil, fmt.Errorf("init: mkdir remotes: %w", err)
	}

	initial := &object.Commit{
		Message:   "initial commit",
		Timestamp: object.Epoch,
	}
	id, err := r.Store.PutCommit(initial)
	if err != nil {
		return nil, err
	}
	if err := r.Refs.WriteBranch(DefaultBranch, id); err != nil {
		return nil, err
	}
	// HEAD is written directly rather than through refs.WriteHead, so no
	// branch-existence check runs here; the branch was written just above.
	headPath := filepath.Join(gitletDir, "HEAD")
	if err := os.WriteFile(headPath, []byte(DefaultBranch+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	if err := index.Open(gitletDir).Save(); err != nil {
		return nil, fmt.Errorf("init: write index: %w", err)
	}

	return r, nil
}

// Open opens an existing repository rooted at root. It fails if no
// repository exists there.
func Open(root string) (*Repo, error) {
	gitletDir := filepath.Join(root, DirName)
	info, err := os.Stat(gitletDir)
	if err != nil || !info.IsDir() {
		return nil, gitleterr.ErrNotInitialized
	}
	return &Repo{
		RootDir:   root,
		GitletDir: gitletDir,
		Store:     object.Open(gitletDir),
		Refs:      refs.Open(gitletDir),
	}, nil
}

// loadIndex reads the persisted staging area.
func (r *Repo) loadIndex() (*index.Index, error) {
	idx := index.Open(r.GitletDir)
	if err := idx.Load(); err != nil {
		return nil, err
	}
	return idx, nil
}

// CurrentBranch returns the name of the branch HEAD points at.
func (r *Repo) CurrentBranch() (string, error) {
	return r.Refs.ReadHead()
}

// HeadCommitID resolves HEAD to a commit id.
func (r *Repo) HeadCommitID() (object.ID, error) {
	branch, err := r.CurrentBranch()
	if err != nil {
		return "", err
	}
	id, ok := r.Refs.ReadBranch(branch)
	if !ok {
		return "", fmt.Errorf("repo: HEAD branch %q has no commit", branch)
	}
	return id, nil
}

// HeadCommit resolves and reads the HEAD commit.
func (r *Repo) HeadCommit() (*object.Commit, error) {
	id, err := r.HeadCommitID()
	if err != nil {
		return nil, err
	}
	return r.Store.GetCommit(id)
}

// ResolveCommit resolves a (possibly abbreviated) commit id to a full id
// and reads it. Returns gitleterr.ErrNoCommitWithID if it cannot be
// resolved.
func (r *Repo) ResolveCommit(idOrPrefix string) (object.ID, *object.Commit, error) {
	full, ok := r.Store.ResolvePrefix(idOrPrefix)
	if !ok {
		return "", nil, gitleterr.ErrNoCommitWithID
	}
	c, err := r.Store.GetCommit(full)
	if err != nil {
		return "", nil, gitleterr.ErrNoCommitWithID
	}
	return full, c, nil
}
