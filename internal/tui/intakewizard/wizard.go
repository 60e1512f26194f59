// Package intakewizard is the full-screen terminal rendition of the
// financial planning intake.
package intakewizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/logger"
	"github.com/mark3labs/planwise/internal/tui/theme"
	"github.com/mark3labs/planwise/internal/tui/wizard"
)

// ErrCancelled is returned by Run when the user quits before submitting.
var ErrCancelled = errors.New("intake cancelled")

// Modal layout constants
const (
	modalWidth        = 72
	modalPadding      = 2
	modalBorderWidth  = 1
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2)
)

// stepComponent is the behaviour every step screen provides.
type stepComponent interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	FocusFirst() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
}

// WizardModel is the Bubbletea model driving an intake.Wizard.
type WizardModel struct {
	ctx       context.Context
	wizard    *intake.Wizard
	submitter intake.Submitter

	width     int
	height    int
	cancelled bool

	steps     []stepComponent // indexed by intake step
	contact   *ContactStep
	submitted *SubmittedStep

	// Back/Next bar shown on the middle steps
	buttonBar     *wizard.ButtonBar
	buttonFocused bool
}

// NewWizardModel creates the model. Submissions go through submitter using
// ctx.
func NewWizardModel(ctx context.Context, w *intake.Wizard, submitter intake.Submitter) *WizardModel {
	contact := newContactStep(w)
	m := &WizardModel{
		ctx:       ctx,
		wizard:    w,
		submitter: submitter,
		contact:   contact,
		steps: []stepComponent{
			newIntroStep(w),
			newStageStep(w),
			newGoalsStep(w),
			newAssetsStep(w),
			newConcernsStep(w),
			contact,
		},
	}
	m.resetButtonBar()
	return m
}

// Run starts a full-screen program over w and blocks until it exits.
// It returns ErrCancelled when the user leaves without a successful
// submission.
func Run(ctx context.Context, w *intake.Wizard, submitter intake.Submitter) error {
	m := NewWizardModel(ctx, w, submitter)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return outcome(finalModel)
}

// outcome maps the model a program exited with to Run's result.
func outcome(finalModel tea.Model) error {
	final, ok := finalModel.(*WizardModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", finalModel)
	}
	if final.wizard.Phase() != intake.PhaseSubmitted {
		return ErrCancelled
	}
	return nil
}

// Cancelled reports whether the user quit explicitly.
func (m *WizardModel) Cancelled() bool { return m.cancelled }

// Init focuses the current step.
func (m *WizardModel) Init() tea.Cmd {
	return m.current().Init()
}

func (m *WizardModel) current() stepComponent {
	return m.steps[m.wizard.Step()]
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = m.wizard.Phase() != intake.PhaseSubmitted
			return m, tea.Quit
		}
		if m.submitted != nil {
			return m, m.submitted.Update(msg)
		}
		if m.wizard.Phase() == intake.PhaseSubmitting {
			return m, nil
		}

		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					return m, m.focusStepContentFirst()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					return m, m.focusStepContentLast()
				}
				return m, nil
			case "enter", "space", " ":
				return m, m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		if msg.String() == "esc" {
			if m.wizard.IsFirst() {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, m.retreat()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case AdvanceMsg:
		return m, m.advance()

	case RetreatMsg:
		return m, m.retreat()

	case wizard.TabExitForwardMsg:
		if !m.wizard.ShowsChrome() {
			return m, m.current().FocusFirst()
		}
		m.current().Blur()
		m.buttonFocused = m.buttonBar.FocusFirst()
		if !m.buttonFocused {
			return m, m.current().FocusFirst()
		}
		return m, nil

	case wizard.TabExitBackwardMsg:
		if !m.wizard.ShowsChrome() {
			return m, m.current().FocusLast()
		}
		m.current().Blur()
		m.buttonFocused = m.buttonBar.FocusLast()
		if !m.buttonFocused {
			return m, m.current().FocusLast()
		}
		return m, nil

	case SubmitRequestedMsg:
		return m, m.startSubmit()

	case SubmitResultMsg:
		m.wizard.CompleteSubmit(msg.Err)
		if m.wizard.Phase() == intake.PhaseSubmitted {
			m.submitted = newSubmittedStep(m.wizard.Answers())
			m.updateSizes()
			return m, nil
		}
		return m, m.contact.FocusFirst()
	}

	if m.submitted != nil {
		return m, nil
	}
	return m, m.current().Update(msg)
}

// startSubmit enters the submitting phase and posts the snapshot off the
// update loop.
func (m *WizardModel) startSubmit() tea.Cmd {
	snapshot, err := m.wizard.BeginSubmit()
	if err != nil {
		logger.Debug("intakewizard: submit ignored: %v", err)
		return nil
	}
	m.contact.Blur()

	ctx, submitter := m.ctx, m.submitter
	post := func() tea.Msg {
		return SubmitResultMsg{Err: submitter.Submit(ctx, snapshot)}
	}
	return tea.Batch(m.contact.Spin(), post)
}

func (m *WizardModel) advance() tea.Cmd {
	m.current().Blur()
	if err := m.wizard.Advance(); err != nil {
		logger.Debug("intakewizard: %v", err)
	}
	return m.enterStep()
}

func (m *WizardModel) retreat() tea.Cmd {
	m.current().Blur()
	if err := m.wizard.Retreat(); err != nil {
		logger.Debug("intakewizard: %v", err)
	}
	return m.enterStep()
}

// enterStep resets focus for the step just made current.
func (m *WizardModel) enterStep() tea.Cmd {
	m.resetButtonBar()
	m.updateSizes()
	return m.current().FocusFirst()
}

func (m *WizardModel) resetButtonBar() {
	m.buttonFocused = false
	m.buttonBar = wizard.NewButtonBar(wizard.BackNextButtons(m.wizard.CanGoBack(), m.wizard.CanGoNext()))
	m.buttonBar.SetWidth(modalContentWidth)
}

func (m *WizardModel) focusStepContentFirst() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	return m.current().FocusFirst()
}

func (m *WizardModel) focusStepContentLast() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	return m.current().FocusLast()
}

func (m *WizardModel) activateButton(id wizard.ButtonID) tea.Cmd {
	switch id {
	case wizard.ButtonBack:
		return m.retreat()
	case wizard.ButtonNext:
		return m.advance()
	}
	return nil
}

// getModalContentSize returns the content dimensions inside the modal.
func (m *WizardModel) getModalContentSize() (width, height int) {
	width = modalContentWidth
	if m.width > 0 && m.width-8 < width {
		width = max(m.width-8, 20)
	}
	height = m.height - 12
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m *WizardModel) updateSizes() {
	w, h := m.getModalContentSize()
	for _, s := range m.steps {
		s.SetSize(w, h)
	}
	if m.submitted != nil {
		m.submitted.SetSize(w, h)
	}
	m.buttonBar.SetWidth(w)
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	centered := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal renders the current screen inside the modal frame.
func (m *WizardModel) renderModal() string {
	t := theme.Current()
	width, _ := m.getModalContentSize()
	modal := t.S().Modal.Width(width + modalPadding*2 + modalBorderWidth*2)

	if m.submitted != nil {
		return modal.BorderForeground(lipgloss.Color(t.Success)).Render(m.submitted.View())
	}

	parts := make([]string, 0, 6)
	if m.wizard.ShowsHeader() {
		parts = append(parts, m.renderHeader(width), "")
	}
	parts = append(parts, m.current().View())
	if m.wizard.ShowsChrome() {
		parts = append(parts,
			"",
			m.buttonBar.Render(),
			"",
			wizard.RenderHintBar("tab", "focus", "↑↓", "move", "space", "select", "esc", "back"),
		)
	}
	return modal.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderHeader renders the back hint, the step counter, the step title and
// the progress bar.
func (m *WizardModel) renderHeader(width int) string {
	t := theme.Current()
	st := t.S()
	def := m.wizard.Current()

	back := st.Muted.Render("‹ esc")
	counter := st.StepCounter.Render(fmt.Sprintf("PLANNING PROCESS %d/%d", m.wizard.Step(), m.wizard.LastIndex()))
	gap := width - lipgloss.Width(back) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	top := back + strings.Repeat(" ", gap) + counter

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Background(lipgloss.Color(t.BgSurface)).
		Padding(0, 1).
		Render(def.Icon)
	title := lipgloss.JoinVertical(lipgloss.Left,
		st.HeaderTitle.Render(def.Title),
		st.HeaderSubtitle.Render(def.Subtitle),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", title),
		"",
		wizard.RenderProgress(width, m.wizard.Progress()),
	)
}
