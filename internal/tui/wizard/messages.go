package wizard

// TabExitForwardMsg is sent when tab leaves the last element of a step.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when shift+tab leaves the first element of a step.
type TabExitBackwardMsg struct{}
