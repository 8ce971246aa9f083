package main

import "time"

// logZone is the fixed negative-8-hour zone timestamps are rendered in
// (spec.md §6). Gitlet's canonical timestamp format keeps the displayed
// instant stable regardless of the host machine's local zone.
var logZone = time.FixedZone("", -8*3600)

// logTimeLayout mirrors Java's "E MMM d HH:mm:ss y Z" pattern: abbreviated
// weekday, abbreviated month, day of month with no leading zero, then a
// zero-padded clock and numeric zone offset.
const logTimeLayout = "Mon Jan 2 15:04:05 2006 -0700"

func formatTimestamp(t time.Time) string {
	return t.In(logZone).Format(logTimeLayout)
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
