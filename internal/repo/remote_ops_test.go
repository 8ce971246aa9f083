package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arlodev/gitlet/internal/gitleterr"
)

func initTwoRepos(t *testing.T) (local, remote *Repo, remoteGitletDir string) {
	t.Helper()
	localRoot := t.TempDir()
	remoteRoot := t.TempDir()

	l, err := Init(localRoot)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Init(remoteRoot)
	if err != nil {
		t.Fatal(err)
	}
	return l, r, filepath.Join(remoteRoot, DirName)
}

func TestPushFastForwardsRemote(t *testing.T) {
	local, _, remoteGitletDir := initTwoRepos(t)
	if err := local.AddRemote("origin", remoteGitletDir); err != nil {
		t.Fatal(err)
	}

	writeFile(t, local.RootDir, "a.txt", "1")
	if err := local.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	headID, err := local.Commit("c1")
	if err != nil {
		t.Fatal(err)
	}

	if err := local.Push("origin", "master"); err != nil {
		t.Fatal(err)
	}

	remoteR, err := Open(filepath.Dir(remoteGitletDir))
	if err != nil {
		t.Fatal(err)
	}
	remoteBranchID, ok := remoteR.Refs.ReadBranch("master")
	if !ok || remoteBranchID != headID {
		t.Fatalf("expected remote master at %s, got %s (ok=%v)", headID, remoteBranchID, ok)
	}
	data, err := os.ReadFile(filepath.Join(remoteR.RootDir, "a.txt"))
	if err != nil || string(data) != "1" {
		t.Fatalf("expected remote working tree to have a.txt=1, got %q err=%v", data, err)
	}
}

func TestPushRemoteDirNotFound(t *testing.T) {
	local, err := Init(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := local.AddRemote("origin", filepath.Join(t.TempDir(), "ghost", ".gitlet")); err != nil {
		t.Fatal(err)
	}
	if err := local.Push("origin", "master"); err != gitleterr.ErrRemoteDirNotFound {
		t.Fatalf("got %v", err)
	}
}

func TestFetchCreatesRemoteTrackingRef(t *testing.T) {
	local, remote, remoteGitletDir := initTwoRepos(t)
	if err := local.AddRemote("origin", remoteGitletDir); err != nil {
		t.Fatal(err)
	}

	writeFile(t, remote.RootDir, "b.txt", "B")
	if err := remote.Add("b.txt"); err != nil {
		t.Fatal(err)
	}
	remoteHead, err := remote.Commit("on remote")
	if err != nil {
		t.Fatal(err)
	}

	if err := local.Fetch("origin", "master"); err != nil {
		t.Fatal(err)
	}
	trackedID, ok := local.Refs.ReadBranch("origin/master")
	if !ok || trackedID != remoteHead {
		t.Fatalf("expected origin/master to track %s, got %s (ok=%v)", remoteHead, trackedID, ok)
	}
	if _, err := os.Stat(filepath.Join(local.RootDir, "b.txt")); !os.IsNotExist(err) {
		t.Fatal("fetch must not touch the working directory")
	}
}

func TestPullFetchesAndMerges(t *testing.T) {
	local, remote, remoteGitletDir := initTwoRepos(t)
	if err := local.AddRemote("origin", remoteGitletDir); err != nil {
		t.Fatal(err)
	}

	writeFile(t, remote.RootDir, "b.txt", "B")
	if err := remote.Add("b.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := remote.Commit("on remote"); err != nil {
		t.Fatal(err)
	}

	outcome, err := local.Pull("origin", "master")
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.FastForwarded {
		t.Fatalf("expected fast-forward pull, got %+v", outcome)
	}
	data, err := os.ReadFile(filepath.Join(local.RootDir, "b.txt"))
	if err != nil || string(data) != "B" {
		t.Fatalf("got %q err %v", data, err)
	}
}

func TestPushBeforePullFails(t *testing.T) {
	local, remote, remoteGitletDir := initTwoRepos(t)
	if err := local.AddRemote("origin", remoteGitletDir); err != nil {
		t.Fatal(err)
	}

	writeFile(t, remote.RootDir, "b.txt", "B")
	if err := remote.Add("b.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := remote.Commit("on remote"); err != nil {
		t.Fatal(err)
	}

	writeFile(t, local.RootDir, "a.txt", "1")
	if err := local.Add("a.txt"); err != nil {
		t.Fatal(err)
	}
	if _, err := local.Commit("local change"); err != nil {
		t.Fatal(err)
	}

	if err := local.Push("origin", "master"); err != gitleterr.ErrPullBeforePush {
		t.Fatalf("got %v", err)
	}
}
