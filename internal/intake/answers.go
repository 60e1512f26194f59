// Package intake holds the financial-planning intake record and the wizard
// controller that walks a prospect through it.
package intake

import (
	"encoding/json"
	"fmt"
)

// Answers is the flat record accumulated over one wizard session.
// It is posted to the relay as-is.
type Answers struct {
	Name                 string         `json:"name"`
	Stage                Stage          `json:"stage"`
	FinancialGoals       []string       `json:"financialGoals"`
	InvestmentExperience []string       `json:"investmentExperience"`
	MonthlySavings       SavingsBracket `json:"monthlySavings"`
	Concerns             []string       `json:"concerns"`
	ContactInfo          string         `json:"contactInfo"`
}

// NewAnswers returns an empty record.
func NewAnswers() *Answers {
	return &Answers{
		FinancialGoals:       []string{},
		InvestmentExperience: []string{},
		Concerns:             []string{},
	}
}

// MarshalJSON encodes unset multi-select fields as [] rather than null.
func (a Answers) MarshalJSON() ([]byte, error) {
	type wire Answers
	w := wire(a.Clone())
	return json.Marshal(w)
}

// Clone returns a deep copy with non-nil slices.
func (a Answers) Clone() Answers {
	c := a
	c.FinancialGoals = append([]string{}, a.FinancialGoals...)
	c.InvestmentExperience = append([]string{}, a.InvestmentExperience...)
	c.Concerns = append([]string{}, a.Concerns...)
	return c
}

// Ready reports whether the two required fields are filled in.
func (a *Answers) Ready() bool {
	return a.Name != "" && a.ContactInfo != ""
}

// SetName sets how the prospect wants to be addressed.
func (a *Answers) SetName(name string) {
	a.Name = name
}

// SetContactInfo sets the contact handle (phone number or messenger id).
func (a *Answers) SetContactInfo(contact string) {
	a.ContactInfo = contact
}

// SetStage sets the life stage. StageNone clears it.
func (a *Answers) SetStage(s Stage) error {
	if s != StageNone && !contains(StageOptions, string(s)) {
		return fmt.Errorf("stage %q: %w", s, ErrUnknownOption)
	}
	a.Stage = s
	return nil
}

// SetMonthlySavings sets the surplus bracket. SavingsNone clears it.
func (a *Answers) SetMonthlySavings(b SavingsBracket) error {
	if b != SavingsNone && !contains(SavingsOptions, string(b)) {
		return fmt.Errorf("monthly savings %q: %w", b, ErrUnknownOption)
	}
	a.MonthlySavings = b
	return nil
}

// Toggle flips the presence of value in a multi-select field.
// Inserts append, so the field keeps selection order.
func (a *Answers) Toggle(field MultiField, value string) error {
	if !contains(field.Options(), value) {
		return fmt.Errorf("%s %q: %w", field, value, ErrUnknownOption)
	}
	list := a.list(field)
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return nil
		}
	}
	*list = append(*list, value)
	return nil
}

// Has reports whether value is selected in a multi-select field.
func (a *Answers) Has(field MultiField, value string) bool {
	for _, v := range *a.list(field) {
		if v == value {
			return true
		}
	}
	return false
}

// Values returns a copy of a multi-select field.
func (a *Answers) Values(field MultiField) []string {
	return append([]string{}, *a.list(field)...)
}

func (a *Answers) list(field MultiField) *[]string {
	switch field {
	case FieldFinancialGoals:
		return &a.FinancialGoals
	case FieldInvestmentExperience:
		return &a.InvestmentExperience
	case FieldConcerns:
		return &a.Concerns
	default:
		return &[]string{}
	}
}
