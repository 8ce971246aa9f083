package remote

import (
	"path/filepath"
	"testing"

	"github.com/arlodev/gitlet/internal/gitleterr"
)

func TestAddReadRemoveRoundTrip(t *testing.T) {
	gitletDir := t.TempDir()
	if err := Add(gitletDir, "origin", "/tmp/other/.gitlet"); err != nil {
		t.Fatal(err)
	}
	rec, err := Read(gitletDir, "origin")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Path != "/tmp/other/.gitlet" {
		t.Fatalf("got %q", rec.Path)
	}
	if err := Remove(gitletDir, "origin"); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(gitletDir, "origin"); err != gitleterr.ErrRemoteDoesNotExist {
		t.Fatalf("got %v", err)
	}
}

func TestAddDuplicateFails(t *testing.T) {
	gitletDir := t.TempDir()
	if err := Add(gitletDir, "origin", "/tmp/other/.gitlet"); err != nil {
		t.Fatal(err)
	}
	if err := Add(gitletDir, "origin", "/tmp/other2/.gitlet"); err != gitleterr.ErrRemoteAlreadyExists {
		t.Fatalf("got %v", err)
	}
}

func TestRemoveMissingFails(t *testing.T) {
	gitletDir := t.TempDir()
	if err := Remove(gitletDir, "ghost"); err != gitleterr.ErrRemoteDoesNotExist {
		t.Fatalf("got %v", err)
	}
}

func TestExistsAndRootDir(t *testing.T) {
	dir := t.TempDir()
	gitletDir := filepath.Join(dir, ".gitlet")
	rec := &Record{Path: gitletDir}
	if Exists(rec) {
		t.Fatal("expected Exists to be false before the directory is created")
	}
	if RootDir(rec) != dir {
		t.Fatalf("got %q want %q", RootDir(rec), dir)
	}
}
