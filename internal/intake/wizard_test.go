package intake

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records calls and returns a canned error.
type fakeSubmitter struct {
	calls []Answers
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, a Answers) error {
	f.calls = append(f.calls, a)
	return f.err
}

func readyWizard(t *testing.T) *Wizard {
	t.Helper()
	w := New()
	require.NoError(t, w.SetName("Alice"))
	require.NoError(t, w.SetContactInfo("0912-345-678"))
	return w
}

func TestNew(t *testing.T) {
	w := New()

	assert.Equal(t, 0, w.Step())
	assert.Equal(t, 5, w.LastIndex())
	assert.Equal(t, StepIntro, w.Current().ID)
	assert.Equal(t, PhaseActive, w.Phase())
	assert.Empty(t, w.ErrorMessage())
	assert.False(t, w.CanSubmit())
}

func TestSteps_OrderMatchesIDs(t *testing.T) {
	for i, s := range Steps {
		assert.Equal(t, StepID(i), s.ID, "step %d", i)
		assert.NotEmpty(t, s.Title)
	}
}

// Advancing past the end saturates on the last step.
func TestAdvance_SaturatesAtLastStep(t *testing.T) {
	w := New()

	for i := 0; i < 5; i++ {
		require.NoError(t, w.Advance(), "advance %d", i+1)
	}
	err := w.Advance()
	require.Error(t, err)

	var be *BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 5, be.Step)
	assert.Equal(t, 1, be.Delta)
	assert.Equal(t, 5, w.Step())
	assert.Equal(t, StepContact, w.Current().ID)
}

func TestRetreat_SaturatesAtFirstStep(t *testing.T) {
	w := New()

	err := w.Retreat()
	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, -1, be.Delta)
	assert.Equal(t, 0, w.Step())
	assert.Contains(t, err.Error(), "retreat")
}

func TestAdvanceRetreat_RoundTrip(t *testing.T) {
	for i := 1; i <= 4; i++ {
		t.Run(fmt.Sprintf("step %d", i), func(t *testing.T) {
			w := New()
			for j := 0; j < i; j++ {
				require.NoError(t, w.Advance())
			}
			require.True(t, w.CanGoBack())
			require.True(t, w.CanGoNext())

			require.NoError(t, w.Advance())
			require.NoError(t, w.Retreat())
			assert.Equal(t, i, w.Step())
		})
	}
}

func TestChromeAndControls(t *testing.T) {
	tests := []struct {
		step     int
		header   bool
		chrome   bool
		back     bool
		next     bool
		progress float64
	}{
		{0, false, false, false, false, 0},
		{1, true, true, true, true, 0.2},
		{2, true, true, true, true, 0.4},
		{3, true, true, true, true, 0.6},
		{4, true, true, true, true, 0.8},
		{5, true, false, true, false, 1},
	}

	w := New()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("step %d", tt.step), func(t *testing.T) {
			for w.Step() < tt.step {
				require.NoError(t, w.Advance())
			}
			assert.Equal(t, tt.header, w.ShowsHeader())
			assert.Equal(t, tt.chrome, w.ShowsChrome())
			assert.Equal(t, tt.back, w.CanGoBack())
			assert.Equal(t, tt.next, w.CanGoNext())
			assert.InDelta(t, tt.progress, w.Progress(), 1e-9)
		})
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name    string
		person  string
		contact string
		phase   Phase
		want    bool
	}{
		{"missing both", "", "", PhaseActive, false},
		{"missing contact", "Alice", "", PhaseActive, false},
		{"missing name", "", "0912", PhaseActive, false},
		{"ready", "Alice", "0912", PhaseActive, true},
		{"ready after failure", "Alice", "0912", PhaseFailed, true},
		{"in flight", "Alice", "0912", PhaseSubmitting, false},
		{"done", "Alice", "0912", PhaseSubmitted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			w.answers.SetName(tt.person)
			w.answers.SetContactInfo(tt.contact)
			w.phase = tt.phase
			assert.Equal(t, tt.want, w.CanSubmit())
		})
	}
}

// Scenario B: a 2xx-equivalent outcome finishes the session.
func TestSubmit_Success(t *testing.T) {
	w := readyWizard(t)
	s := &fakeSubmitter{}

	require.NoError(t, w.Submit(context.Background(), s))

	require.Len(t, s.calls, 1)
	assert.Equal(t, "Alice", s.calls[0].Name)
	assert.Equal(t, "0912-345-678", s.calls[0].ContactInfo)
	assert.Equal(t, PhaseSubmitted, w.Phase())
	assert.False(t, w.CanSubmit())
	assert.Empty(t, w.ErrorMessage())
}

// Scenarios C and D.
func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"relay rejection", fmt.Errorf("status 500: %w", ErrRejected), MsgRejected},
		{"transport failure", fmt.Errorf("dial tcp: %w", ErrTransport), MsgTransport},
		{"unclassified error", errors.New("boom"), MsgTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := readyWizard(t)
			for w.Step() < w.LastIndex() {
				require.NoError(t, w.Advance())
			}
			require.NoError(t, w.Toggle(FieldFinancialGoals, "fire"))
			before := w.Answers().Clone()

			err := w.Submit(context.Background(), &fakeSubmitter{err: tt.err})
			require.Error(t, err)

			assert.Equal(t, PhaseFailed, w.Phase())
			assert.Equal(t, tt.wantMsg, w.ErrorMessage())
			assert.Equal(t, before, w.Answers().Clone(), "answers must survive a failed attempt")
			assert.Equal(t, w.LastIndex(), w.Step(), "user stays on the contact step")
			assert.True(t, w.CanSubmit(), "retry must be possible")
		})
	}
}

func TestSubmit_RetryClearsError(t *testing.T) {
	w := readyWizard(t)

	require.Error(t, w.Submit(context.Background(), &fakeSubmitter{err: ErrTransport}))
	require.Equal(t, MsgTransport, w.ErrorMessage())

	snapshot, err := w.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, "Alice", snapshot.Name)
	assert.Empty(t, w.ErrorMessage(), "error is cleared when a new attempt starts")
	assert.Equal(t, PhaseSubmitting, w.Phase())

	w.CompleteSubmit(nil)
	assert.Equal(t, PhaseSubmitted, w.Phase())
}

func TestBeginSubmit_Guards(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		w := New()
		_, err := w.BeginSubmit()
		assert.ErrorIs(t, err, ErrNotReady)
		assert.Equal(t, PhaseActive, w.Phase())
	})

	t.Run("in flight", func(t *testing.T) {
		w := readyWizard(t)
		_, err := w.BeginSubmit()
		require.NoError(t, err)
		_, err = w.BeginSubmit()
		assert.ErrorIs(t, err, ErrInFlight)
	})

	t.Run("already submitted", func(t *testing.T) {
		w := readyWizard(t)
		require.NoError(t, w.Submit(context.Background(), &fakeSubmitter{}))
		s := &fakeSubmitter{}
		assert.ErrorIs(t, w.Submit(context.Background(), s), ErrSubmitted)
		assert.Empty(t, s.calls)
	})
}

func TestBeginSubmit_SnapshotIsDetached(t *testing.T) {
	w := readyWizard(t)
	require.NoError(t, w.Toggle(FieldConcerns, ConcernOptions[1].Value))

	snapshot, err := w.BeginSubmit()
	require.NoError(t, err)
	require.NoError(t, w.Toggle(FieldConcerns, ConcernOptions[2].Value))

	assert.Equal(t, []string{ConcernOptions[1].Value}, snapshot.Concerns)
}

func TestCompleteSubmit_IgnoredOutsideSubmitting(t *testing.T) {
	w := readyWizard(t)
	w.CompleteSubmit(nil)
	assert.Equal(t, PhaseActive, w.Phase())
}

func TestSubmitted_IsTerminal(t *testing.T) {
	w := readyWizard(t)
	require.NoError(t, w.Advance())
	require.NoError(t, w.Submit(context.Background(), &fakeSubmitter{}))

	assert.ErrorIs(t, w.Advance(), ErrSubmitted)
	assert.ErrorIs(t, w.Retreat(), ErrSubmitted)
	assert.ErrorIs(t, w.SetName("Mallory"), ErrSubmitted)
	assert.ErrorIs(t, w.Toggle(FieldFinancialGoals, "tax"), ErrSubmitted)
	assert.False(t, w.CanGoBack())
	assert.False(t, w.CanGoNext())
	assert.Equal(t, "Alice", w.Answers().Name)
	assert.Equal(t, 1, w.Step())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "submitting", PhaseSubmitting.String())
	assert.Equal(t, "submitted", PhaseSubmitted.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
