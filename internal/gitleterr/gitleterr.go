// Package gitleterr holds the exact user-facing strings spec.md §7 requires
// for parity with the legacy tool being mimicked. The core returns these
// verbatim -- no command wraps them in additional context, since the CLI
// prints err.Error() as the single line the user sees. The one user-facing
// error defined elsewhere is find's ErrNoCommitWithMessage (internal/repo).
package gitleterr

import "errors"

var (
	ErrEnterCommand          = errors.New("Please enter a command.")
	ErrIncorrectOperands     = errors.New("Incorrect operands.")
	ErrNotInitialized        = errors.New("Not in an initialized Gitlet directory.")
	ErrAlreadyInitialized    = errors.New("A Gitlet version-control system already exists in the current directory.")
	ErrFileDoesNotExist      = errors.New("File does not exist.")
	ErrFileNotInCommit       = errors.New("File does not exist in that commit.")
	ErrNoCommitWithID        = errors.New("No commit with that id exists.")
	ErrNoSuchBranch          = errors.New("No such branch exists.")
	ErrBranchDoesNotExist    = errors.New("A branch with that name does not exist.")
	ErrRemoteNoSuchBranch    = errors.New("That remote does not have that branch.")
	ErrRemoteDirNotFound     = errors.New("Remote directory not found.")
	ErrRemoteDoesNotExist    = errors.New("A remote with that name does not exist.")
	ErrBranchAlreadyExists   = errors.New("A branch with that name already exists.")
	ErrRemoteAlreadyExists   = errors.New("A remote with that name already exists.")
	ErrCannotRemoveCurrent   = errors.New("Cannot remove the current branch.")
	ErrAlreadyOnBranch       = errors.New("No need to checkout the current branch.")
	ErrNoChangesAdded        = errors.New("No changes added to the commit.")
	ErrEmptyCommitMessage    = errors.New("Please enter a commit message.")
	ErrNoReasonToRemove      = errors.New("No reason to remove the file.")
	ErrUncommittedChanges    = errors.New("You have uncommitted changes.")
	ErrMergeWithSelf         = errors.New("Cannot merge a branch with itself.")
	ErrUntrackedInTheWay     = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrPullBeforePush        = errors.New("Please pull down remote changes before pushing.")
)

// Non-fatal completion messages: these are not command failures, they are
// informational lines the command prints (spec.md §4.5, §4.6, §8 scenario
// 4/6). The ancestor and fast-forward messages end a merge early; the
// conflict message is printed after the merge commit has been created.
var (
	MsgGivenBranchIsAncestor  = "Given branch is an ancestor of the current branch."
	MsgFastForwarded          = "Current branch fast-forwarded."
	MsgMergeConflict          = "Encountered a merge conflict."
)
