package domain

// Step is the checkout wizard's position.
type Step int

const (
	StepShipping Step = 1
	StepPayment  Step = 2
	StepComplete Step = 3
)

// SelectionNew is the sentinel address id meaning the user chose to enter
// an address manually instead of picking a saved one.
const SelectionNew = "new"

// CanTransitionTo reports whether the wizard may move from one step to
// another. Forward moves are strictly sequential; the only backward move
// is Payment to Shipping. Complete is terminal.
func (s Step) CanTransitionTo(next Step) bool {
	switch s {
	case StepShipping:
		return next == StepPayment
	case StepPayment:
		return next == StepComplete || next == StepShipping
	default:
		return false
	}
}

// IsTerminal reports whether the step ends the flow.
func (s Step) IsTerminal() bool {
	return s == StepComplete
}

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "SHIPPING"
	case StepPayment:
		return "PAYMENT"
	case StepComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}
