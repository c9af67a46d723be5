package journal

import "fmt"

// Multi fans every record out to several journals, in order.
type Multi []Journal

// RecordRun stops at the first journal that fails.
func (m Multi) RecordRun(r RunRecord) error {
	for i, j := range m {
		if err := j.RecordRun(r); err != nil {
			return fmt.Errorf("journal %d: %w", i, err)
		}
	}
	return nil
}

// Close closes every journal and reports the first failure.
func (m Multi) Close() error {
	var first error
	for _, j := range m {
		if err := j.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
