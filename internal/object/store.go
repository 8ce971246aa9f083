package object

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store is a content-addressed store rooted at a .gitlet directory. Blobs
// and commits live in flat subdirectories keyed by their full 40-hex id
// (spec.md §6: "blobs/<id>", "commits/<id>" -- no fan-out, no packing).
type Store struct {
	blobsDir   string
	commitsDir string
}

// Open returns a Store rooted at gitletDir/blobs and gitletDir/commits.
// It does not create the directories; callers that need them to exist
// (init) must do so explicitly.
func Open(gitletDir string) *Store {
	return &Store{
		blobsDir:   filepath.Join(gitletDir, "blobs"),
		commitsDir: filepath.Join(gitletDir, "commits"),
	}
}

// MkdirAll creates the blobs/ and commits/ subdirectories.
func (s *Store) MkdirAll() error {
	if err := os.MkdirAll(s.blobsDir, 0o755); err != nil {
		return fmt.Errorf("object store: mkdir blobs: %w", err)
	}
	if err := os.MkdirAll(s.commitsDir, 0o755); err != nil {
		return fmt.Errorf("object store: mkdir commits: %w", err)
	}
	return nil
}

func (s *Store) blobPath(id ID) string   { return filepath.Join(s.blobsDir, string(id)) }
func (s *Store) commitPath(id ID) string { return filepath.Join(s.commitsDir, string(id)) }

// HasBlob reports whether a blob with this id is present.
func (s *Store) HasBlob(id ID) bool {
	_, err := os.Stat(s.blobPath(id))
	return err == nil
}

// HasCommit reports whether a commit with this id is present.
func (s *Store) HasCommit(id ID) bool {
	_, err := os.Stat(s.commitPath(id))
	return err == nil
}

// PutBlob stores content and returns its id. A second write of an already
// present id is a no-op (spec.md §4.1: put is idempotent).
func (s *Store) PutBlob(content []byte) (ID, error) {
	id := BlobID(content)
	if s.HasBlob(id) {
		return id, nil
	}
	if err := os.WriteFile(s.blobPath(id), EncodeBlob(&Blob{Content: content}), 0o644); err != nil {
		return "", fmt.Errorf("object store: write blob %s: %w", id, err)
	}
	return id, nil
}

// GetBlob reads and decodes the blob with the given id.
func (s *Store) GetBlob(id ID) (*Blob, error) {
	data, err := os.ReadFile(s.blobPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object store: blob %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("object store: read blob %s: %w", id, err)
	}
	return DecodeBlob(data), nil
}

// PutCommit stores a commit and returns its id. Idempotent like PutBlob.
func (s *Store) PutCommit(c *Commit) (ID, error) {
	id := CommitID(c)
	if s.HasCommit(id) {
		return id, nil
	}
	if err := os.WriteFile(s.commitPath(id), EncodeCommit(c), 0o644); err != nil {
		return "", fmt.Errorf("object store: write commit %s: %w", id, err)
	}
	return id, nil
}

// GetCommit reads and decodes the commit with the given id.
func (s *Store) GetCommit(id ID) (*Commit, error) {
	data, err := os.ReadFile(s.commitPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object store: commit %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("object store: read commit %s: %w", id, err)
	}
	return DecodeCommit(data)
}

// ListCommitIDs returns every commit id in the store, in directory-listing
// order (os.ReadDir lists entries sorted by filename).
func (s *Store) ListCommitIDs() ([]ID, error) {
	entries, err := os.ReadDir(s.commitsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("object store: list commits: %w", err)
	}
	ids := make([]ID, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ids = append(ids, ID(e.Name()))
	}
	return ids, nil
}

// ResolvePrefix resolves a possibly-abbreviated commit id. A prefix shorter
// than 40 hex characters is a lookup request; equal length is an exact
// match; longer is treated as not-found. Directory-listing order decides
// ties, and the first match wins (spec.md §4.1, §9 "original_source" note:
// this mirrors a plain directory scan, no prefix trie).
func (s *Store) ResolvePrefix(prefix string) (ID, bool) {
	if len(prefix) > 40 {
		return "", false
	}
	if len(prefix) == 40 {
		id := ID(prefix)
		if s.HasCommit(id) {
			return id, true
		}
		return "", false
	}
	entries, err := os.ReadDir(s.commitsDir)
	if err != nil {
		return "", false
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	// Deterministic fallback when the filesystem's own listing order is not
	// guaranteed (e.g. across platforms); "first match" then means
	// lexicographically first, which keeps resolution reproducible.
	sort.Strings(names)
	for _, n := range names {
		if len(n) >= len(prefix) && n[:len(prefix)] == prefix {
			return ID(n), true
		}
	}
	return "", false
}
