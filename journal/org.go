package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatRunOrg renders a RunRecord as an Org-mode block with the facts in a
// PROPERTIES drawer.
func FormatRunOrg(r RunRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Run: %s (%s)\n", r.Strategy, shortID(r.RunID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", r.RunID)
	fmt.Fprintf(&b, ":STRATEGY: %s\n", r.Strategy)
	fmt.Fprintf(&b, ":STARTED_AT: %s\n", r.StartedAt.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&b, ":EXECUTED_AT: %s\n", r.ExecutedAt.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&b, ":HOST: %s\n", r.Host)
	b.WriteString(":END:\n")
	return b.String()
}

// FormatRunsOrg renders multiple runs separated by blank lines.
func FormatRunsOrg(runs []RunRecord) string {
	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatRunOrg(r))
	}
	return b.String()
}

// shortID keeps the random tail of a ULID; the leading characters encode
// the timestamp and repeat across runs in the same millisecond.
func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
