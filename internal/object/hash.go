package object

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// Sum returns the 40-hex SHA-1 digest of data as an ID. SHA-1 is used
// because spec.md §1 names it as the one fixed external collaborator for
// content addressing; it is a cryptographic primitive, not a concern any
// library in the example corpus wraps, so it is taken straight from
// crypto/sha1.
func Sum(data []byte) ID {
	h := sha1.Sum(data)
	return ID(hex.EncodeToString(h[:]))
}

// BlobID returns the id a blob with this content would have.
func BlobID(content []byte) ID {
	return Sum(EncodeBlob(&Blob{Content: content}))
}

// CommitID returns the id a commit with these fields would have.
func CommitID(c *Commit) ID {
	return Sum(EncodeCommit(c))
}
