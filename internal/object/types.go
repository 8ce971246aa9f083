// Package object implements the content-addressed store: blobs and commits
// keyed by the 40-hex SHA-1 digest of their canonical serialized form.
package object

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Store lookups (and usable by test doubles)
// when an id is absent.
var ErrNotFound = errors.New("object not found")

// ID is a 40-character lowercase hex SHA-1 digest identifying a Blob or a
// Commit.
type ID string

// Epoch is the fixed instant assigned to the initial commit of every fresh
// repository. Its value must never change: the initial commit's id is a
// digest of this timestamp, and tests rely on it being bit-stable.
var Epoch = time.Unix(0, 0).UTC()

// Blob is the immutable content object for a tracked file. Its identity is
// sha1(Content); two blobs with equal content always share an id.
type Blob struct {
	Content []byte
}

// FileEntry is one name -> blob id mapping inside a Commit's file map.
type FileEntry struct {
	Name string
	Blob ID
}

// Commit is an immutable snapshot. Parent and Parent2 are empty strings
// when absent; Parent2 is only ever set on a merge commit. Files may be in
// any order: EncodeCommit sorts it by Name so that encoding is deterministic
// (§3: "ordered mapping ... sorted by name"), and a decoded commit's Files
// come back in that sorted order.
type Commit struct {
	Message   string
	Timestamp time.Time
	Parent    ID
	Parent2   ID
	Files     []FileEntry
}

// IsMerge reports whether this is a merge commit (has a second parent).
func (c *Commit) IsMerge() bool {
	return c.Parent2 != ""
}

// FileMap returns the commit's file mapping as name -> blob id.
func (c *Commit) FileMap() map[string]ID {
	m := make(map[string]ID, len(c.Files))
	for _, f := range c.Files {
		m[f.Name] = f.Blob
	}
	return m
}

// Lookup returns the blob id tracked for name and whether it was present.
func (c *Commit) Lookup(name string) (ID, bool) {
	for _, f := range c.Files {
		if f.Name == name {
			return f.Blob, true
		}
	}
	return "", false
}
