// Package worktree implements the three primitive operations the command
// core needs against the working directory: materializing a blob to a
// path, deleting a path, and listing the plain files directly under the
// repository root. Per spec.md §1 Non-goals, only plain files directly
// under the root are tracked -- no subdirectories, no symlinks.
package worktree

import (
	"fmt"
	"os"
	"path/filepath"
)

// Materialize writes content to name under root, creating or truncating
// the file as needed.
func Materialize(root, name string, content []byte) error {
	path := filepath.Join(root, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("worktree: write %q: %w", name, err)
	}
	return nil
}

// Read returns the content of name under root.
func Read(root, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return nil, fmt.Errorf("worktree: read %q: %w", name, err)
	}
	return data, nil
}

// Exists reports whether name is a plain file directly under root.
func Exists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && info.Mode().IsRegular()
}

// Delete removes name under root. Deleting a file that does not exist is
// not an error -- callers that need to know first call Exists.
func Delete(root, name string) error {
	if err := os.Remove(filepath.Join(root, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("worktree: delete %q: %w", name, err)
	}
	return nil
}

// ListPlainFiles returns the names of every plain file directly under
// root, excluding dotDir (the repository's own control directory, e.g.
// ".gitlet"). Subdirectories and their contents are not descended into.
func ListPlainFiles(root, dotDir string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("worktree: list %q: %w", root, err)
	}
	var names []string
	for _, e := range entries {
		if e.Name() == dotDir {
			continue
		}
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
