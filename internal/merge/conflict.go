package merge

// ConflictContent renders the literal conflict-marker text for a file
// (spec.md §4.5): a missing side is rendered as the empty string.
func ConflictContent(headContent, otherContent []byte) []byte {
	out := make([]byte, 0, len(headContent)+len(otherContent)+32)
	out = append(out, "<<<<<<< HEAD\n"...)
	out = append(out, headContent...)
	out = append(out, "=======\n"...)
	out = append(out, otherContent...)
	out = append(out, ">>>>>>>\n"...)
	return out
}
