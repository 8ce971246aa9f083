package object

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EncodeBlob serializes a Blob. A blob's encoding is its content, verbatim
// -- this keeps "equal objects <-> equal bytes" trivially true and matches
// the data model's claim that a Blob's only attribute is its content.
func EncodeBlob(b *Blob) []byte {
	out := make([]byte, len(b.Content))
	copy(out, b.Content)
	return out
}

// DecodeBlob is the inverse of EncodeBlob.
func DecodeBlob(data []byte) *Blob {
	out := make([]byte, len(data))
	copy(out, data)
	return &Blob{Content: out}
}

// EncodeCommit serializes a Commit into its canonical form:
//
//	parent <id>        (omitted if no parent)
//	parent2 <id>        (omitted unless a merge commit)
//	timestamp <unix-seconds>
//	file <name> <blob-id>   (zero or more, sorted by name)
//
//	<message>
//
// Any change to a Commit's fields changes this encoding, and therefore its
// id -- this is the "serialization equals identity" contract (spec §9).
func EncodeCommit(c *Commit) []byte {
	files := make([]FileEntry, len(c.Files))
	copy(files, c.Files)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	var buf bytes.Buffer
	if c.Parent != "" {
		fmt.Fprintf(&buf, "parent %s\n", c.Parent)
	}
	if c.Parent2 != "" {
		fmt.Fprintf(&buf, "parent2 %s\n", c.Parent2)
	}
	fmt.Fprintf(&buf, "timestamp %d\n", c.Timestamp.Unix())
	for _, f := range files {
		fmt.Fprintf(&buf, "file %s %s\n", f.Name, f.Blob)
	}
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// DecodeCommit is the inverse of EncodeCommit.
func DecodeCommit(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("decode commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &Commit{Message: message}
	if header == "" {
		return c, nil
	}
	for _, line := range strings.Split(header, "\n") {
		if line == "" {
			continue
		}
		key, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("decode commit: malformed header line %q", line)
		}
		switch key {
		case "parent":
			c.Parent = ID(rest)
		case "parent2":
			c.Parent2 = ID(rest)
		case "timestamp":
			sec, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("decode commit: bad timestamp %q: %w", rest, err)
			}
			c.Timestamp = unixToTime(sec)
		case "file":
			name, blob, ok := strings.Cut(rest, " ")
			if !ok {
				return nil, fmt.Errorf("decode commit: malformed file entry %q", rest)
			}
			c.Files = append(c.Files, FileEntry{Name: name, Blob: ID(blob)})
		default:
			return nil, fmt.Errorf("decode commit: unknown header key %q", key)
		}
	}
	return c, nil
}
