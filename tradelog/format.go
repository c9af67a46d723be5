package tradelog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Prefix starts every line written to the trade log.
const Prefix = "Trade executed at "

// TimestampLayout is the whole-second part of a log timestamp. A six digit
// microsecond fraction follows it unless the microseconds are zero.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrMalformedLine is returned when a line is not a trade log record.
var ErrMalformedLine = errors.New("malformed trade log line")

// Entry is a single record of the trade log.
type Entry struct {
	Time time.Time
}

// FormatTimestamp renders t as "YYYY-MM-DD HH:MM:SS.ffffff", dropping the
// fraction when the microsecond component is zero.
func FormatTimestamp(t time.Time) string {
	s := t.Format(TimestampLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

// ParseTimestamp parses a timestamp produced by FormatTimestamp in local time.
func ParseTimestamp(s string) (time.Time, error) {
	// time.Parse accepts an optional fraction after the seconds field.
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}

// FormatLine returns the log record for t without the trailing newline.
func FormatLine(t time.Time) string {
	return Prefix + FormatTimestamp(t)
}

// ParseLine is the inverse of FormatLine.
func ParseLine(line string) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	ts, ok := strings.CutPrefix(line, Prefix)
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing %q prefix", ErrMalformedLine, strings.TrimSpace(Prefix))
	}
	t, err := ParseTimestamp(ts)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return Entry{Time: t}, nil
}
