package intake

// StepID identifies a screen of the intake wizard.
type StepID int

const (
	StepIntro StepID = iota
	StepStage
	StepGoals
	StepAssets
	StepConcerns
	StepContact
)

// Step is the static definition of one wizard screen.
type Step struct {
	ID       StepID
	Title    string
	Subtitle string
	Icon     string
	Body     string // markdown shown above the step's inputs, may be empty
}

// Steps is the fixed step sequence, in order.
var Steps = []Step{
	{
		ID:       StepIntro,
		Title:    "Financial Planning Check-up",
		Subtitle: "Your private financial architect",
		Icon:     "◆",
		Body: `## Build your wealth blueprint

Real wealth management is not about buying a single product. It is a
systematic allocation that lets assets grow steadily and pass on well.

**This consultation helps you clarify:**

- **Concrete goals**: turn a retirement or home-buying dream into numbers you can act on.
- **Better allocation**: review how your current tools perform, close gaps and cut needless risk.
- **Tax and legacy**: put a safety net in place so wealth stays where you intend.`,
	},
	{
		ID:       StepStage,
		Title:    "Where You Are in Life",
		Subtitle: "Planning starts with understanding today",
		Icon:     "◎",
	},
	{
		ID:       StepGoals,
		Title:    "Setting Your Goals",
		Subtitle: "We tailor the strategy to these",
		Icon:     "▲",
		Body:     "Pick the 1-3 goals that matter most to you right now:",
	},
	{
		ID:       StepAssets,
		Title:    "Your Asset Picture",
		Subtitle: "Knowing your tools is how we optimise them",
		Icon:     "◔",
	},
	{
		ID:       StepConcerns,
		Title:    "What Worries You",
		Subtitle: "What is holding your wealth back?",
		Icon:     "↗",
		Body:     "Beyond market swings, which financial risks concern you most?",
	},
	{
		ID:       StepContact,
		Title:    "Book a First Review",
		Subtitle: "Let's start the conversation",
		Icon:     "✉",
		Body: `**What happens next:**

1. Once your answers arrive, I will do a first review of your financial structure.
2. Within 24 hours I will message you to set up a one-on-one session, online or in person.`,
	},
}
