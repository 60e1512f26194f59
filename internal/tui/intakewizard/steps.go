package intakewizard

import (
	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/logger"
	"github.com/mark3labs/planwise/internal/tui/wizard"
)

// multiList builds a checkbox list bound to a multi-select field.
func multiList(w *intake.Wizard, f intake.MultiField) *listField {
	return &listField{list: wizard.NewOptionList(
		optionItems(f.Options()),
		true,
		func(v string) bool { return w.Answers().Has(f, v) },
		func(v string) {
			if err := w.Toggle(f, v); err != nil {
				logger.Warn("intakewizard: toggle %s %q: %v", f, v, err)
			}
		},
	)}
}

func newStageStep(w *intake.Wizard) *FormStep {
	stages := &listField{list: wizard.NewOptionList(
		optionItems(intake.StageOptions),
		false,
		func(v string) bool { return string(w.Answers().Stage) == v },
		func(v string) {
			if err := w.SetStage(intake.Stage(v)); err != nil {
				logger.Warn("intakewizard: set stage %q: %v", v, err)
			}
		},
	)}

	name := wizard.NewTextInput("e.g. Mr. Chen, Amy", 60)
	name.SetValue(w.Answers().Name)

	return newFormStep(w.Steps()[intake.StepStage],
		section{label: "Which stage best describes you right now?", field: stages},
		section{label: "How should I address you?", field: &inputField{
			input: name,
			onChange: func(v string) {
				if err := w.SetName(v); err != nil {
					logger.Warn("intakewizard: set name: %v", err)
				}
			},
			onEnter: advance,
		}},
	)
}

func newGoalsStep(w *intake.Wizard) *FormStep {
	return newFormStep(w.Steps()[intake.StepGoals],
		section{field: multiList(w, intake.FieldFinancialGoals)},
	)
}

func newAssetsStep(w *intake.Wizard) *FormStep {
	savings := &listField{list: wizard.NewOptionList(
		optionItems(intake.SavingsOptions),
		false,
		func(v string) bool { return string(w.Answers().MonthlySavings) == v },
		func(v string) {
			if err := w.SetMonthlySavings(intake.SavingsBracket(v)); err != nil {
				logger.Warn("intakewizard: set savings %q: %v", v, err)
			}
		},
	)}

	return newFormStep(w.Steps()[intake.StepAssets],
		section{label: "Which instruments do you hold or know well?", field: multiList(w, intake.FieldInvestmentExperience)},
		section{label: "Monthly surplus you could invest (TWD)", field: savings},
	)
}

func newConcernsStep(w *intake.Wizard) *FormStep {
	return newFormStep(w.Steps()[intake.StepConcerns],
		section{field: multiList(w, intake.FieldConcerns)},
	)
}
