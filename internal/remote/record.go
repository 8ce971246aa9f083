// Package remote implements the on-disk Remote record: a local alias name
// mapped to the absolute path of another repository's .gitlet root
// (spec.md §2 "Remote record", §4.6). It deliberately knows nothing about
// the merge/push/fetch algorithms themselves -- internal/repo drives those,
// using this package only to persist and resolve the alias.
package remote

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arlodev/gitlet/internal/gitleterr"
)

// Record is the on-disk shape of a remote alias.
type Record struct {
	Path string `toml:"path"`
}

func recordPath(gitletDir, name string) string {
	return filepath.Join(gitletDir, "remotes", name)
}

// Add creates a new remote alias. Fails if one with this name already
// exists (spec.md §7).
func Add(gitletDir, name, path string) error {
	p := recordPath(gitletDir, name)
	if _, err := os.Stat(p); err == nil {
		return gitleterr.ErrRemoteAlreadyExists
	}
	data, err := toml.Marshal(Record{Path: path})
	if err != nil {
		return fmt.Errorf("remote: encode %q: %w", name, err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("remote: mkdir: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("remote: write %q: %w", name, err)
	}
	return nil
}

// Remove deletes a remote alias. Fails if it does not exist.
func Remove(gitletDir, name string) error {
	p := recordPath(gitletDir, name)
	if _, err := os.Stat(p); err != nil {
		return gitleterr.ErrRemoteDoesNotExist
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("remote: delete %q: %w", name, err)
	}
	return nil
}

// Read resolves a remote alias to its record. Fails if it does not exist.
func Read(gitletDir, name string) (*Record, error) {
	data, err := os.ReadFile(recordPath(gitletDir, name))
	if err != nil {
		return nil, gitleterr.ErrRemoteDoesNotExist
	}
	var rec Record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("remote: decode %q: %w", name, err)
	}
	return &rec, nil
}

// Exists reports whether the remote's .gitlet directory is present on disk.
func Exists(rec *Record) bool {
	info, err := os.Stat(rec.Path)
	return err == nil && info.IsDir()
}

// RootDir returns the working-directory root that owns the remote's .gitlet
// directory, i.e. its parent.
func RootDir(rec *Record) string {
	return filepath.Dir(rec.Path)
}
