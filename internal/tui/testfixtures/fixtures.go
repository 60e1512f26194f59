package testfixtures

import "github.com/mark3labs/planwise/internal/intake"

// Fixed values used across wizard tests.
const (
	FixedName    = "Alice"
	FixedContact = "0912-345-678"
)

// ReadyWizard returns a controller on the intro step whose answers already
// satisfy the submission presence checks.
func ReadyWizard() *intake.Wizard {
	w := intake.New()
	_ = w.SetName(FixedName)
	_ = w.SetContactInfo(FixedContact)
	return w
}

// FilledWizard returns a ready controller with every field answered,
// positioned on the contact step.
func FilledWizard() *intake.Wizard {
	w := ReadyWizard()
	_ = w.SetStage(intake.StagePreRetirement)
	_ = w.SetMonthlySavings(intake.Savings5To10)
	_ = w.Toggle(intake.FieldFinancialGoals, "cashflow")
	_ = w.Toggle(intake.FieldFinancialGoals, "tax")
	_ = w.Toggle(intake.FieldInvestmentExperience, intake.InstrumentOptions[0].Value)
	_ = w.Toggle(intake.FieldConcerns, intake.ConcernOptions[3].Value)
	for w.Step() < w.LastIndex() {
		_ = w.Advance()
	}
	return w
}
