// Package merge implements the pure per-file classification rules of the
// three-way merge (spec.md §4.5's table). It has no I/O: it only compares
// the three optional blob ids a file may have at the split point, at HEAD,
// and at the merge source, and says what should happen to that file. The
// repo package (internal/repo) drives the working-tree and index effects.
package merge

import "github.com/arlodev/gitlet/internal/object"

// Action is the per-file outcome of three-way classification.
type Action int

const (
	// ActionNone leaves the working tree unchanged for this file.
	ActionNone Action = iota
	// ActionTakeOther takes the merge source's version and stages it.
	ActionTakeOther
	// ActionRemove deletes the file from the working tree and stages the
	// removal.
	ActionRemove
	// ActionConflict requires writing conflict markers and staging the
	// result.
	ActionConflict
)

// Classify implements spec.md §4.5's table. split, head, and other are the
// blob id a file has at the split point, HEAD, and the merge source,
// respectively; an empty ID means the file is absent there.
func Classify(split, head, other object.ID) Action {
	sPresent, hPresent, oPresent := split != "", head != "", other != ""

	switch {
	case sPresent && hPresent && oPresent:
		hChanged := head != split
		oChanged := other != split
		switch {
		case oChanged && !hChanged:
			return ActionTakeOther
		case hChanged && oChanged && head != other:
			return ActionConflict
		default:
			return ActionNone
		}

	case !sPresent && !hPresent && oPresent:
		return ActionTakeOther

	case sPresent && hPresent && !oPresent:
		if head == split {
			return ActionRemove
		}
		return ActionConflict

	case sPresent && !hPresent && oPresent:
		if other != split {
			return ActionConflict
		}
		return ActionNone

	case !sPresent && hPresent && oPresent:
		if head != other {
			return ActionConflict
		}
		return ActionNone

	default:
		// Absent from split+H but not G is handled above; present in H
		// only, present in split only, or absent everywhere all leave the
		// working tree untouched.
		return ActionNone
	}
}
