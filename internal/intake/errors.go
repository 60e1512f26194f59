package intake

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected marks a submission the relay answered with a non-2xx status.
	ErrRejected = errors.New("relay rejected submission")
	// ErrTransport marks a submission that never got a response.
	ErrTransport = errors.New("relay unreachable")

	ErrNotReady      = errors.New("name and contact info are required")
	ErrInFlight      = errors.New("submission already in progress")
	ErrSubmitted     = errors.New("answers already submitted")
	ErrUnknownOption = errors.New("unknown option")
)

// User-facing messages for the two failure kinds.
const (
	MsgRejected  = "Submission failed, please try again later."
	MsgTransport = "Network error, please check your connection."
)

// BoundsError is returned when navigation would leave the step sequence.
type BoundsError struct {
	Step  int // step the wizard stayed on
	Delta int // +1 for advance, -1 for retreat
}

func (e *BoundsError) Error() string {
	if e.Delta > 0 {
		return fmt.Sprintf("cannot advance past last step %d", e.Step)
	}
	return fmt.Sprintf("cannot retreat before step %d", e.Step)
}

// FailureMessage maps a submission error to the message shown to the user.
// Anything that is not a relay rejection counts as a transport failure.
func FailureMessage(err error) string {
	if errors.Is(err, ErrRejected) {
		return MsgRejected
	}
	return MsgTransport
}
