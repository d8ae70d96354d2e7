package wizard

// Step is a position in the booking wizard pipeline. The pipeline is
// strictly linear: forward movement happens one step at a time through
// Advance (or in a validated prefix jump through ResumeFromDeepLink),
// backward movement only through Back.
type Step int

const (
	StepWelcome Step = iota
	StepProvince
	StepBranch
	StepService
	StepDate
	StepTime
	StepContact
	StepSuccess
)

var stepNames = map[Step]string{
	StepWelcome:  "welcome",
	StepProvince: "province",
	StepBranch:   "branch",
	StepService:  "service",
	StepDate:     "date",
	StepTime:     "time",
	StepContact:  "contact",
	StepSuccess:  "success",
}

// String returns the wire name of the step.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal returns true for the success step, which has no outgoing
// transitions.
func (s Step) IsTerminal() bool {
	return s == StepSuccess
}

// next returns the following pipeline step. StepContact is the last
// step Advance can reach; success is entered only through Submit.
func (s Step) next() Step {
	if s >= StepContact {
		return s
	}
	return s + 1
}

// prev returns the preceding pipeline step.
func (s Step) prev() Step {
	if s <= StepWelcome {
		return s
	}
	return s - 1
}
