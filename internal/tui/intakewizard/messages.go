package intakewizard

import tea "charm.land/bubbletea/v2"

// AdvanceMsg asks the wizard to move to the next step.
type AdvanceMsg struct{}

// RetreatMsg asks the wizard to move to the previous step.
type RetreatMsg struct{}

// SubmitRequestedMsg asks the wizard to start a submission attempt.
type SubmitRequestedMsg struct{}

// SubmitResultMsg carries the outcome of a submission attempt.
type SubmitResultMsg struct {
	Err error
}

func advance() tea.Msg       { return AdvanceMsg{} }
func requestSubmit() tea.Msg { return SubmitRequestedMsg{} }
