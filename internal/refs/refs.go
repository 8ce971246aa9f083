// Package refs manages HEAD and branch ref files under a .gitlet directory:
// HEAD is a symbolic pointer naming the current branch; branch refs are
// plain files holding a 40-hex commit id, nested into directories for
// namespaced (remote-tracking) names such as "origin/main".
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arlodev/gitlet/internal/object"
)

// Store reads and writes refs under a .gitlet directory.
type Store struct {
	refsDir string
	headPath string
}

// Open returns a Store rooted at gitletDir/refs and gitletDir/HEAD.
func Open(gitletDir string) *Store {
	return &Store{
		refsDir:  filepath.Join(gitletDir, "refs"),
		headPath: filepath.Join(gitletDir, "HEAD"),
	}
}

// MkdirAll creates the refs/ directory.
func (s *Store) MkdirAll() error {
	if err := os.MkdirAll(s.refsDir, 0o755); err != nil {
		return fmt.Errorf("refs: mkdir: %w", err)
	}
	return nil
}

func (s *Store) branchPath(name string) string {
	return filepath.Join(s.refsDir, filepath.FromSlash(name))
}

// ReadHead returns the name of the branch HEAD currently points at.
func (s *Store) ReadHead() (string, error) {
	data, err := os.ReadFile(s.headPath)
	if err != nil {
		return "", fmt.Errorf("refs: read HEAD: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// WriteHead points HEAD at the named branch. It validates that the branch
// exists (spec.md §4.2).
func (s *Store) WriteHead(branch string) error {
	if _, ok := s.ReadBranch(branch); !ok {
		return fmt.Errorf("refs: write HEAD: branch %q does not exist", branch)
	}
	if err := os.WriteFile(s.headPath, []byte(branch+"\n"), 0o644); err != nil {
		return fmt.Errorf("refs: write HEAD: %w", err)
	}
	return nil
}

// ReadBranch returns the commit id a branch points at, and whether the
// branch exists.
func (s *Store) ReadBranch(name string) (object.ID, bool) {
	data, err := os.ReadFile(s.branchPath(name))
	if err != nil {
		return "", false
	}
	return object.ID(strings.TrimRight(string(data), "\n")), true
}

// WriteBranch creates or updates the named branch ref, creating any nested
// directories the name implies (e.g. "origin/main").
func (s *Store) WriteBranch(name string, id object.ID) error {
	path := s.branchPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("refs: mkdir for branch %q: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(string(id)+"\n"), 0o644); err != nil {
		return fmt.Errorf("refs: write branch %q: %w", name, err)
	}
	return nil
}

// DeleteBranch removes the named branch ref.
func (s *Store) DeleteBranch(name string) error {
	if err := os.Remove(s.branchPath(name)); err != nil {
		return fmt.Errorf("refs: delete branch %q: %w", name, err)
	}
	return nil
}

// ListBranches returns every branch ref name, including namespaced
// remote-tracking names in "remote/branch" form, sorted lexicographically.
func (s *Store) ListBranches() ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.refsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.refsDir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("refs: list branches: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
