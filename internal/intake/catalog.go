package intake

import (
	"strings"

	"github.com/gosimple/slug"
)

// Option is a single selectable answer for a question.
// Value is what goes over the wire; Label and Description are for display.
type Option struct {
	Value       string
	Label       string
	Description string
}

// Key returns the stable slug for the option, derived from its English label.
// Keys are what the answers file and the options command use.
func (o Option) Key() string {
	return slug.Make(o.Label)
}

// Matches reports whether input names this option by wire value, slug key,
// or anything that slugifies to the same key.
func (o Option) Matches(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if input == o.Value || input == o.Key() {
		return true
	}
	return slug.Make(input) == o.Key()
}

// Stage is the life stage the prospect identifies with.
type Stage string

const (
	StageNone          Stage = ""
	StageAccumulation  Stage = "accumulation"
	StageFamily        Stage = "family"
	StagePreRetirement Stage = "pre_retirement"
	StageLegacy        Stage = "legacy"
)

// SavingsBracket is the monthly surplus bracket (in units of 10k TWD).
type SavingsBracket string

const (
	SavingsNone     SavingsBracket = ""
	Savings1To3     SavingsBracket = "1-3w"
	Savings3To5     SavingsBracket = "3-5w"
	Savings5To10    SavingsBracket = "5-10w"
	Savings10Plus   SavingsBracket = "10w+"
	SavingsNegative SavingsBracket = "negative"
)

// StageOptions are the life stages in display order.
var StageOptions = []Option{
	{Value: string(StageAccumulation), Label: "Wealth building", Description: "Focused on career income, growing assets and the first nest egg"},
	{Value: string(StageFamily), Label: "Family responsibility", Description: "Stable household cash flow, mortgage and children's education"},
	{Value: string(StagePreRetirement), Label: "Wealth maturity", Description: "Assets in place, planning passive income for retirement"},
	{Value: string(StageLegacy), Label: "Legacy planning", Description: "Preserving assets, tax planning and a smooth transfer"},
}

// GoalOptions are the financial goals in display order.
var GoalOptions = []Option{
	{Value: "cashflow", Label: "Passive income"},
	{Value: "house", Label: "Home purchase"},
	{Value: "fire", Label: "Early retirement (FIRE)"},
	{Value: "tax", Label: "Tax optimisation"},
	{Value: "education", Label: "Education fund"},
	{Value: "risk", Label: "Asset protection"},
}

// InstrumentOptions are the instruments a prospect may hold or know.
// Wire values are the advisor's original tags.
var InstrumentOptions = []Option{
	{Value: "股票/ETF", Label: "Stocks / ETF"},
	{Value: "基金/債券", Label: "Funds / Bonds"},
	{Value: "房地產", Label: "Real estate"},
	{Value: "保險/儲蓄", Label: "Insurance / Savings"},
	{Value: "虛擬貨幣", Label: "Crypto"},
	{Value: "定存/現金", Label: "Deposits / Cash"},
	{Value: "公司股權", Label: "Company equity"},
}

// SavingsOptions are the monthly surplus brackets in display order.
var SavingsOptions = []Option{
	{Value: string(Savings1To3), Label: "10k - 30k"},
	{Value: string(Savings3To5), Label: "30k - 50k"},
	{Value: string(Savings5To10), Label: "50k - 100k"},
	{Value: string(Savings10Plus), Label: "Over 100k"},
	{Value: string(SavingsNegative), Label: "No surplus yet", Description: "Needs help reviewing income and spending"},
}

// ConcernOptions are the financial risks a prospect may worry about.
var ConcernOptions = []Option{
	{Value: "現金購買力下降（通膨風險）", Label: "Inflation risk", Description: "Cash losing purchasing power"},
	{Value: "缺乏穩定被動現金流（收入單一）", Label: "Single income", Description: "No stable passive cash flow"},
	{Value: "資產傳承與稅務問題", Label: "Inheritance and tax", Description: "Passing assets on and the tax that comes with it"},
	{Value: "突發健康狀況導致資產縮水", Label: "Health shock", Description: "A sudden illness eroding assets"},
	{Value: "投資過於分散，缺乏整體策略", Label: "No overall strategy", Description: "Investments scattered without a plan"},
}

// MultiField identifies a multi-select field of Answers.
type MultiField int

const (
	FieldFinancialGoals MultiField = iota
	FieldInvestmentExperience
	FieldConcerns
)

// String returns the JSON key of the field.
func (f MultiField) String() string {
	switch f {
	case FieldFinancialGoals:
		return "financialGoals"
	case FieldInvestmentExperience:
		return "investmentExperience"
	case FieldConcerns:
		return "concerns"
	default:
		return "unknown"
	}
}

// Options returns the catalog backing the field.
func (f MultiField) Options() []Option {
	switch f {
	case FieldFinancialGoals:
		return GoalOptions
	case FieldInvestmentExperience:
		return InstrumentOptions
	case FieldConcerns:
		return ConcernOptions
	default:
		return nil
	}
}

// Resolve finds the option in opts that input refers to.
func Resolve(opts []Option, input string) (Option, bool) {
	for _, o := range opts {
		if o.Matches(input) {
			return o, true
		}
	}
	return Option{}, false
}

func contains(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
