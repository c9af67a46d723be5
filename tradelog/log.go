// Package tradelog reads and appends the plain text trade log, one
// "Trade executed at <timestamp>" line per strategy run.
package tradelog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// DefaultPath is where the log lives when nothing else is configured.
const DefaultPath = "trade_log.txt"

// ErrClosed is returned by Append after Close.
var ErrClosed = errors.New("trade log closed")

// Log is an open, append-only trade log.
type Log struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// Open opens path for appending, creating it if needed. Existing content is
// never truncated. Parent directories must already exist.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	return &Log{path: path, file: f}, nil
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Append writes one record for t. The line goes out in a single write so
// records from concurrent callers never interleave.
func (l *Log) Append(t time.Time) error {
	line := FormatLine(t) + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return ErrClosed
	}
	if _, err := l.file.WriteString(line); err != nil {
		return fmt.Errorf("append trade log: %w", err)
	}
	return nil
}

// Close closes the underlying file. Calling it twice is harmless.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ReadEntries returns every record in path in file order. A missing file is
// an empty log.
func ReadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	defer f.Close()

	var out []Entry
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read trade log: %w", err)
	}
	return out, nil
}

// Tail returns the last n records in path, oldest first.
func Tail(path string, n int) ([]Entry, error) {
	if n < 0 {
		return nil, fmt.Errorf("tail: n must not be negative, got %d", n)
	}
	entries, err := ReadEntries(path)
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
