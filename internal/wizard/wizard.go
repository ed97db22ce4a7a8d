// Package wizard models the candidate journey as a finite-state machine with
// named steps and an explicit transition table.
package wizard

import "fmt"

// Step is a named state in the candidate journey.
type Step string

// Journey steps, in order.
const (
	StepWelcome     Step = "welcome"
	StepSkills      Step = "skills"
	StepBehavior    Step = "behavior"
	StepReferences  Step = "references"
	StepBackchannel Step = "backchannel"
	StepEducation   Step = "education"
	StepHRCheck     Step = "hr_check"
	StepJDMatch     Step = "jd_match"
	StepSummary     Step = "summary"
)

// order lists every step once; transitions are derived from adjacency.
var order = []Step{
	StepWelcome,
	StepSkills,
	StepBehavior,
	StepReferences,
	StepBackchannel,
	StepEducation,
	StepHRCheck,
	StepJDMatch,
	StepSummary,
}

var (
	next = map[Step]Step{}
	prev = map[Step]Step{}
)

func init() {
	for i := 0; i < len(order)-1; i++ {
		next[order[i]] = order[i+1]
		prev[order[i+1]] = order[i]
	}
}

// ErrInvalidTransition is returned for moves the transition table forbids.
type ErrInvalidTransition struct {
	From      Step
	Direction string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("no %s transition from step %q", e.Direction, e.From)
}

// First returns the initial step of the journey.
func First() Step {
	return order[0]
}

// Valid reports whether s names a known step.
func Valid(s Step) bool {
	for _, step := range order {
		if step == s {
			return true
		}
	}
	return false
}

// Advance returns the step after s, or ErrInvalidTransition at the final step.
func Advance(s Step) (Step, error) {
	if !Valid(s) {
		return "", fmt.Errorf("unknown wizard step %q", s)
	}
	to, ok := next[s]
	if !ok {
		return "", &ErrInvalidTransition{From: s, Direction: "forward"}
	}
	return to, nil
}

// Back returns the step before s, or ErrInvalidTransition at the first step.
func Back(s Step) (Step, error) {
	if !Valid(s) {
		return "", fmt.Errorf("unknown wizard step %q", s)
	}
	to, ok := prev[s]
	if !ok {
		return "", &ErrInvalidTransition{From: s, Direction: "backward"}
	}
	return to, nil
}

// Index returns the zero-based position of s, used for progress display.
func Index(s Step) int {
	for i, step := range order {
		if step == s {
			return i
		}
	}
	return -1
}

// Count returns the total number of steps in the journey.
func Count() int {
	return len(order)
}

// Terminal reports whether s is the final step of the journey.
func Terminal(s Step) bool {
	_, ok := next[s]
	return Valid(s) && !ok
}
