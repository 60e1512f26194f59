package intake

import (
	"context"

	"github.com/mark3labs/planwise/internal/logger"
)

// Phase is the submission phase of a wizard session.
type Phase int

const (
	PhaseActive     Phase = iota // filling in steps, nothing sent yet
	PhaseSubmitting              // POST in flight
	PhaseSubmitted               // relay accepted the answers (terminal)
	PhaseFailed                  // last attempt failed, user may retry
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Submitter delivers a finished record somewhere.
type Submitter interface {
	Submit(ctx context.Context, answers Answers) error
}

// Wizard is the intake controller: the current step, the accumulated
// answers, and the submission phase.
type Wizard struct {
	steps   []Step
	step    int
	answers *Answers
	phase   Phase
	errMsg  string
}

// New creates a wizard positioned on the intro step with empty answers.
func New() *Wizard {
	return &Wizard{
		steps:   Steps,
		answers: NewAnswers(),
	}
}

// Step returns the current step index.
func (w *Wizard) Step() int { return w.step }

// LastIndex returns the index of the final step.
func (w *Wizard) LastIndex() int { return len(w.steps) - 1 }

// Current returns the definition of the active step.
func (w *Wizard) Current() Step { return w.steps[w.step] }

// Steps returns the step sequence.
func (w *Wizard) Steps() []Step { return w.steps }

// Advance moves one step forward. On the last step it stays put and
// returns a *BoundsError.
func (w *Wizard) Advance() error {
	if w.phase == PhaseSubmitted {
		return ErrSubmitted
	}
	if w.step >= w.LastIndex() {
		return &BoundsError{Step: w.step, Delta: 1}
	}
	w.step++
	logger.Debug("intake: advanced to step %d", w.step)
	return nil
}

// Retreat moves one step back. On the first step it stays put and
// returns a *BoundsError.
func (w *Wizard) Retreat() error {
	if w.phase == PhaseSubmitted {
		return ErrSubmitted
	}
	if w.step <= 0 {
		return &BoundsError{Step: w.step, Delta: -1}
	}
	w.step--
	logger.Debug("intake: retreated to step %d", w.step)
	return nil
}

// IsFirst reports whether the intro step is active.
func (w *Wizard) IsFirst() bool { return w.step == 0 }

// IsLast reports whether the contact step is active.
func (w *Wizard) IsLast() bool { return w.step == w.LastIndex() }

// ShowsHeader reports whether the step header (counter, title, progress)
// is shown. Only the intro goes without it.
func (w *Wizard) ShowsHeader() bool { return !w.IsFirst() }

// ShowsChrome reports whether the generic Back/Next controls are shown.
// The intro and the contact step carry their own controls.
func (w *Wizard) ShowsChrome() bool { return !w.IsFirst() && !w.IsLast() }

// CanGoBack reports whether a back control is available.
func (w *Wizard) CanGoBack() bool { return w.step > 0 && w.phase != PhaseSubmitted }

// CanGoNext reports whether a generic next control is available.
func (w *Wizard) CanGoNext() bool { return w.ShowsChrome() && w.phase != PhaseSubmitted }

// Progress returns step/lastIndex in [0,1].
func (w *Wizard) Progress() float64 {
	if w.LastIndex() <= 0 {
		return 1
	}
	return float64(w.step) / float64(w.LastIndex())
}

// Answers returns the live record. Mutate it through the wizard's setters.
func (w *Wizard) Answers() *Answers { return w.answers }

// edit applies fn to the record unless the session is finished.
func (w *Wizard) edit(fn func(a *Answers) error) error {
	if w.phase == PhaseSubmitted {
		return ErrSubmitted
	}
	return fn(w.answers)
}

// SetName sets the name field.
func (w *Wizard) SetName(name string) error {
	return w.edit(func(a *Answers) error { a.SetName(name); return nil })
}

// SetContactInfo sets the contact field.
func (w *Wizard) SetContactInfo(contact string) error {
	return w.edit(func(a *Answers) error { a.SetContactInfo(contact); return nil })
}

// SetStage sets the life stage.
func (w *Wizard) SetStage(s Stage) error {
	return w.edit(func(a *Answers) error { return a.SetStage(s) })
}

// SetMonthlySavings sets the surplus bracket.
func (w *Wizard) SetMonthlySavings(b SavingsBracket) error {
	return w.edit(func(a *Answers) error { return a.SetMonthlySavings(b) })
}

// Toggle flips value in a multi-select field.
func (w *Wizard) Toggle(field MultiField, value string) error {
	return w.edit(func(a *Answers) error { return a.Toggle(field, value) })
}

// Phase returns the submission phase.
func (w *Wizard) Phase() Phase { return w.phase }

// ErrorMessage returns the message of the last failed attempt, or "".
func (w *Wizard) ErrorMessage() string { return w.errMsg }

// CanSubmit reports whether the submit control is enabled.
func (w *Wizard) CanSubmit() bool {
	if w.phase == PhaseSubmitting || w.phase == PhaseSubmitted {
		return false
	}
	return w.answers.Ready()
}

// BeginSubmit enters the submitting phase and returns the snapshot to send.
// The previous error message is cleared.
func (w *Wizard) BeginSubmit() (Answers, error) {
	switch w.phase {
	case PhaseSubmitting:
		return Answers{}, ErrInFlight
	case PhaseSubmitted:
		return Answers{}, ErrSubmitted
	}
	if !w.answers.Ready() {
		return Answers{}, ErrNotReady
	}
	w.phase = PhaseSubmitting
	w.errMsg = ""
	return w.answers.Clone(), nil
}

// CompleteSubmit records the outcome of the attempt started by BeginSubmit.
// It is a no-op outside the submitting phase.
func (w *Wizard) CompleteSubmit(err error) {
	if w.phase != PhaseSubmitting {
		return
	}
	if err == nil {
		w.phase = PhaseSubmitted
		logger.Info("intake: answers submitted")
		return
	}
	w.phase = PhaseFailed
	w.errMsg = FailureMessage(err)
	logger.Warn("intake: submission failed: %v", err)
}

// Submit runs one full submission attempt synchronously.
func (w *Wizard) Submit(ctx context.Context, s Submitter) error {
	snapshot, err := w.BeginSubmit()
	if err != nil {
		return err
	}
	err = s.Submit(ctx, snapshot)
	w.CompleteSubmit(err)
	return err
}
