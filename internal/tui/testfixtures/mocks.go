// Package testfixtures provides mocks and helpers for TUI tests.
//
//   - MockSubmitter: scripted intake.Submitter that records every snapshot
//   - ReadyWizard / FilledWizard: controllers in known states
//   - Key helpers that build tea.KeyPressMsg values
//
// Example usage:
//
//	func TestSubmit(t *testing.T) {
//	    sub := testfixtures.NewMockSubmitter(nil)
//	    m := NewWizardModel(context.Background(), testfixtures.ReadyWizard(), sub)
//	    // drive m.Update ...
//	    require.Equal(t, 1, sub.Calls())
//	}
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/planwise/internal/intake"
)

// MockSubmitter is a thread-safe intake.Submitter. Errors are returned in
// order, one per call; once they run out every call succeeds.
type MockSubmitter struct {
	mu        sync.Mutex
	errs      []error
	snapshots []intake.Answers

	// Gate, when non-nil, blocks Submit until a value is received or the
	// context is done.
	Gate chan struct{}
}

// NewMockSubmitter creates a submitter returning errs in sequence.
func NewMockSubmitter(errs ...error) *MockSubmitter {
	return &MockSubmitter{errs: errs}
}

// Submit records answers and returns the next scripted error.
func (m *MockSubmitter) Submit(ctx context.Context, answers intake.Answers) error {
	m.mu.Lock()
	m.snapshots = append(m.snapshots, answers)
	var err error
	if len(m.errs) > 0 {
		err, m.errs = m.errs[0], m.errs[1:]
	}
	gate := m.Gate
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// Calls returns how many times Submit was invoked.
func (m *MockSubmitter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshots)
}

// Snapshots returns a copy of every record received.
func (m *MockSubmitter) Snapshots() []intake.Answers {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]intake.Answers, len(m.snapshots))
	copy(out, m.snapshots)
	return out
}

var _ intake.Submitter = (*MockSubmitter)(nil)
