package worktree

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMaterializeReadExistsDelete(t *testing.T) {
	root := t.TempDir()
	if Exists(root, "a.txt") {
		t.Fatal("should not exist yet")
	}
	if err := Materialize(root, "a.txt", []byte("hi")); err != nil {
		t.Fatal(err)
	}
	if !Exists(root, "a.txt") {
		t.Fatal("expected file to exist")
	}
	data, err := Read(root, "a.txt")
	if err != nil || string(data) != "hi" {
		t.Fatalf("got %q err %v", data, err)
	}
	if err := Delete(root, "a.txt"); err != nil {
		t.Fatal(err)
	}
	if Exists(root, "a.txt") {
		t.Fatal("expected file to be gone")
	}
}

func TestDeleteMissingIsNoError(t *testing.T) {
	root := t.TempDir()
	if err := Delete(root, "missing.txt"); err != nil {
		t.Fatal(err)
	}
}

func TestListPlainFilesSkipsDirsAndDotDir(t *testing.T) {
	root := t.TempDir()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(Materialize(root, "a.txt", []byte("1")))
	must(Materialize(root, "b.txt", []byte("2")))
	must(os.Mkdir(filepath.Join(root, ".gitlet"), 0o755))
	must(os.Mkdir(filepath.Join(root, "sub"), 0o755))

	names, err := ListPlainFiles(root, ".gitlet")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("got %v", names)
	}
}
