// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"errors"
	"fmt"
	"sync"
)

type Status string

const (
	StatusSuccess        Status = "success"
	StatusPartialFailure Status = "partial_failure"
	StatusFailure        Status = "failure"
)

// Transfer is one object written to its destination.
type Transfer struct {
	Source      string
	Destination string
	Size        int64
}

// Failure is the cause of a failed transfer.
// Key is empty when the failure is not tied to a single object, such as a listing error.
type Failure struct {
	Key string
	Err error
}

func (f Failure) Error() string {
	if len(f.Key) == 0 {
		return f.Err.Error()
	}
	return fmt.Sprintf("%s: %s", f.Key, f.Err.Error())
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Result summarizes a folder operation.  It is safe for concurrent use while the operation runs.
type Result struct {
	Operation   string
	Source      string
	Destination string
	Transferred []Transfer
	Skipped     []string
	Failures    []Failure
	Pages       int

	mu sync.Mutex
}

func (r *Result) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status()
}

func (r *Result) status() Status {
	if len(r.Failures) == 0 {
		return StatusSuccess
	}
	if len(r.Transferred) > 0 {
		return StatusPartialFailure
	}
	return StatusFailure
}

// Err returns the failures joined into one error, or nil if there were none.
func (r *Result) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// Fields returns a summary of the result for logging.
func (r *Result) Fields() map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return map[string]interface{}{
		"operation":   r.Operation,
		"source":      r.Source,
		"destination": r.Destination,
		"status":      r.status(),
		"transferred": len(r.Transferred),
		"skipped":     len(r.Skipped),
		"failures":    len(r.Failures),
		"pages":       r.Pages,
	}
}

func (r *Result) addTransfer(t Transfer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Transferred = append(r.Transferred, t)
}

func (r *Result) addSkipped(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Skipped = append(r.Skipped, key)
}

func (r *Result) addFailure(key string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, Failure{Key: key, Err: err})
}

func (r *Result) addPage() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pages++
}

func (r *Result) hasFailures() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failures) > 0
}

func newResult(operation string, source string, destination string) *Result {
	return &Result{
		Operation:   operation,
		Source:      source,
		Destination: destination,
		Transferred: make([]Transfer, 0),
		Skipped:     make([]string, 0),
		Failures:    make([]Failure, 0),
	}
}
