package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arlodev/gitlet/internal/gitleterr"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInitCreatesDeterministicInitialCommit(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	entries, err := r.Log()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Commit.Message != "initial commit" {
		t.Fatalf("got %+v", entries)
	}

	root2 := t.TempDir()
	r2, err := Init(root2)
	if err != nil {
		t.Fatal(err)
	}
	entries2, err := r2.Log()
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].ID != entries2[0].ID {
		t.Fatal("initial commit id must be deterministic across fresh repositories")
	}
}

func TestInitFailsIfAlreadyExists(t *testing.T) {
	root := t.TempDir()
	if _, err := Init(root); err != nil {
		t.Fatal(err)
	}
	if _, err := Init(root); err != gitleterr.ErrAlreadyInitialized {
		t.Fatalf("got %v", err)
	}
}

func TestAddCommitCycle(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c1"); err != nil {
		t.Fatal(err)
	}
	head, err := r.HeadCommit()
	if err != nil {
		t.Fatal(err)
	}
	if id, ok := head.Lookup("a.txt"); !ok || id == "" {
		t.Fatalf("expected a.txt tracked, got %v %v", id, ok)
	}
}

func TestAddMissingFileFails(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Add("nope.txt"); err != gitleterr.ErrFileDoesNotExist {
		t.Fatalf("got %v", err)
	}
}

func TestAddIdempotence(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	idx1, _ := r.loadIndex()
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	idx2, _ := r.loadIndex()
	if idx1.AddMap["a.txt"] != idx2.AddMap["a.txt"] {
		t.Fatal("repeated add without modification must be idempotent")
	}
}

func TestAddMatchingHeadUnstages(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c1"); err != nil {
		t.Fatal(err)
	}
	// Re-add unmodified a.txt: should not appear staged (matches HEAD).
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	idx, err := r.loadIndex()
	if err != nil {
		t.Fatal(err)
	}
	if _, staged := idx.AddMap["a.txt"]; staged {
		t.Fatal("re-adding content identical to HEAD must not stage it")
	}
}

func TestCommitFailsOnEmptyMessage(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit(""); err != gitleterr.ErrEmptyCommitMessage {
		t.Fatalf("got %v", err)
	}
}

func TestCommitFailsWithNoChanges(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c1"); err != gitleterr.ErrNoChangesAdded {
		t.Fatalf("got %v", err)
	}
}

func TestRmTrackedFileStagesRemovalAndDeletes(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "x")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c1"); err != nil {
		t.Fatal(err)
	}
	if err := r.Rm("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "a.txt")); !os.IsNotExist(err) {
		t.Fatal("expected a.txt to be deleted from working directory")
	}
	status, err := r.Status()
	if err != nil {
		t.Fatal(err)
	}
	if len(status.RemovedFiles) != 1 || status.RemovedFiles[0] != "a.txt" {
		t.Fatalf("got %v", status.RemovedFiles)
	}
}

func TestRmNeitherStagedNorTrackedFails(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Rm("nope.txt"); err != gitleterr.ErrNoReasonToRemove {
		t.Fatalf("got %v", err)
	}
}

func TestCheckoutHeadFileAndCommitFile(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	c1, err := r.Commit("c1")
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "2")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c2"); err != nil {
		t.Fatal(err)
	}

	if err := r.CheckoutHeadFile("a.txt"); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(filepath.Join(root, "a.txt"))
	if string(data) != "2" {
		t.Fatalf("got %q", data)
	}

	if err := r.CheckoutCommitFile(string(c1)[:6], "a.txt"); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(filepath.Join(root, "a.txt"))
	if string(data) != "1" {
		t.Fatalf("got %q", data)
	}
}

func TestCheckoutBranchSwitchesFiles(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Branch("dev"); err != nil {
		t.Fatal(err)
	}
	if err := r.CheckoutBranch("dev"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "b.txt", "B")
	if err := r.Add("b.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("B"); err != nil {
		t.Fatal(err)
	}

	if err := r.CheckoutBranch("master"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(root, "b.txt")); !os.IsNotExist(err) {
		t.Fatal("b.txt should not exist on master")
	}

	if err := r.CheckoutBranch("dev"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(root, "b.txt"))
	if err != nil || string(data) != "B" {
		t.Fatalf("got %q err %v", data, err)
	}
}

func TestCheckoutAlreadyCurrentBranchFails(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.CheckoutBranch("master"); err != gitleterr.ErrAlreadyOnBranch {
		t.Fatalf("got %v", err)
	}
}

func TestRmBranchRefusesCurrent(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RmBranch("master"); err != gitleterr.ErrCannotRemoveCurrent {
		t.Fatalf("got %v", err)
	}
}

func TestResetRetargetsCurrentBranchNotHead(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	c1, err := r.Commit("c1")
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "2")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c2"); err != nil {
		t.Fatal(err)
	}

	if err := r.Reset(string(c1)); err != nil {
		t.Fatal(err)
	}
	branchID, _ := r.Refs.ReadBranch("master")
	if branchID != c1 {
		t.Fatalf("expected master to retarget to c1, got %s", branchID)
	}
	data, _ := os.ReadFile(filepath.Join(root, "a.txt"))
	if string(data) != "1" {
		t.Fatalf("got %q", data)
	}
}

func TestFindExactMessage(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	c1, err := r.Commit("unique message")
	if err != nil {
		t.Fatal(err)
	}
	ids, err := r.Find("unique message")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != c1 {
		t.Fatalf("got %v", ids)
	}
	if _, err := r.Find("does not exist"); err != ErrNoCommitWithMessage {
		t.Fatalf("got %v", err)
	}
}

func TestStatusReportsStagedRemovedModifiedUntracked(t *testing.T) {
	root := t.TempDir()
	r, err := Init(root)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "a.txt", "1")
	if err := r.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Commit("c1"); err != nil {
		t.Fatal(err)
	}

	writeFile(t, root, "a.txt", "2") // modified, not staged
	writeFile(t, root, "b.txt", "B") // untracked
	writeFile(t, root, "c.txt", "C")
	if err := r.Add("c.txt"); err != nil { // staged
		t.Fatal(err)
	}

	status, err := r.Status()
	if err != nil {
		t.Fatal(err)
	}
	if len(status.StagedFiles) != 1 || status.StagedFiles[0] != "c.txt" {
		t.Fatalf("got %v", status.StagedFiles)
	}
	if len(status.UntrackedFiles) != 1 || status.UntrackedFiles[0] != "b.txt" {
		t.Fatalf("got %v", status.UntrackedFiles)
	}
	foundModified := false
	for _, m := range status.Modifications {
		if m.Name == "a.txt" && m.Status == "modified" {
			foundModified = true
		}
	}
	if !foundModified {
		t.Fatalf("expected a.txt modified, got %v", status.Modifications)
	}
}
