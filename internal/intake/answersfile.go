package intake

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnswersFile is the YAML form of Answers used for headless submissions.
// Multi-select entries and enumerations accept wire values or option keys.
type AnswersFile struct {
	Name                 string   `yaml:"name"`
	Stage                string   `yaml:"stage"`
	FinancialGoals       []string `yaml:"financial_goals"`
	InvestmentExperience []string `yaml:"investment_experience"`
	MonthlySavings       string   `yaml:"monthly_savings"`
	Concerns             []string `yaml:"concerns"`
	ContactInfo          string   `yaml:"contact_info"`
}

// LoadAnswersFile reads and parses an answers file.
func LoadAnswersFile(path string) (*AnswersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	var f AnswersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return &f, nil
}

// WriteAnswersFile writes f to path as YAML.
func WriteAnswersFile(path string, f *AnswersFile) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling answers file: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing answers file: %w", err)
	}
	return nil
}

// Apply fills the wizard's record from the file. Entries listed twice are
// selected once.
func (f *AnswersFile) Apply(w *Wizard) error {
	if err := w.SetName(f.Name); err != nil {
		return err
	}
	if err := w.SetContactInfo(f.ContactInfo); err != nil {
		return err
	}
	if f.Stage != "" {
		opt, ok := Resolve(StageOptions, f.Stage)
		if !ok {
			return fmt.Errorf("stage %q: %w", f.Stage, ErrUnknownOption)
		}
		if err := w.SetStage(Stage(opt.Value)); err != nil {
			return err
		}
	}
	if f.MonthlySavings != "" {
		opt, ok := Resolve(SavingsOptions, f.MonthlySavings)
		if !ok {
			return fmt.Errorf("monthly savings %q: %w", f.MonthlySavings, ErrUnknownOption)
		}
		if err := w.SetMonthlySavings(SavingsBracket(opt.Value)); err != nil {
			return err
		}
	}

	multi := []struct {
		field  MultiField
		inputs []string
	}{
		{FieldFinancialGoals, f.FinancialGoals},
		{FieldInvestmentExperience, f.InvestmentExperience},
		{FieldConcerns, f.Concerns},
	}
	for _, m := range multi {
		for _, in := range m.inputs {
			opt, ok := Resolve(m.field.Options(), in)
			if !ok {
				return fmt.Errorf("%s %q: %w", m.field, in, ErrUnknownOption)
			}
			if w.Answers().Has(m.field, opt.Value) {
				continue
			}
			if err := w.Toggle(m.field, opt.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// AnswersTemplate returns an empty file for editing in $EDITOR.
func AnswersTemplate() *AnswersFile {
	return &AnswersFile{
		FinancialGoals:       []string{},
		InvestmentExperience: []string{},
		Concerns:             []string{},
	}
}
