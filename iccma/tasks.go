package iccma

import (
	"fmt"

	"github.com/katalvlaran/dungaf/semantics"
)

// Problem identifies the ICCMA problem shape, independent of semantics.
type Problem string

const (
	// SE asks for a single extension.
	SE Problem = "SE"
	// EE asks for every extension.
	EE Problem = "EE"
	// DC asks whether some extension contains a given argument.
	DC Problem = "DC"
	// DS asks whether every extension contains a given argument.
	DS Problem = "DS"
)

// IsEnumeration reports whether p is SE or EE — the problems that forbid
// -a/--argument.
func (p Problem) IsEnumeration() bool {
	return p == SE || p == EE
}

// IsDecision reports whether p is DC or DS — the problems that require
// -a/--argument.
func (p Problem) IsDecision() bool {
	return p == DC || p == DS
}

// Task is a problem task, e.g. "EE-CO": a problem shape paired with a
// semantics.
type Task struct {
	Problem   Problem
	Semantics semantics.Semantics
}

// String renders the task in ICCMA notation, e.g. "EE-CO".
func (t Task) String() string {
	return string(t.Problem) + "-" + string(t.Semantics)
}

// supportedTasks is the closed set of tasks this solver accepts. Grounded
// has no EE or DS entry: there is exactly one grounded extension, so "all
// extensions" and "skeptical over all extensions" collapse into SE-GR and
// DC-GR respectively and are not offered as separate tasks.
var supportedTasks = []Task{
	{EE, semantics.Complete}, {SE, semantics.Complete}, {DC, semantics.Complete}, {DS, semantics.Complete},
	{SE, semantics.Grounded}, {DC, semantics.Grounded},
	{EE, semantics.Preferred}, {SE, semantics.Preferred}, {DC, semantics.Preferred}, {DS, semantics.Preferred},
	{EE, semantics.Stable}, {SE, semantics.Stable}, {DC, semantics.Stable}, {DS, semantics.Stable},
}

// SupportedTasks returns the closed set of task names, for the CLI's
// --problems listing.
func SupportedTasks() []string {
	out := make([]string, len(supportedTasks))
	for i, t := range supportedTasks {
		out[i] = t.String()
	}
	return out
}

// ParseTask resolves a task name like "EE-CO" against the supported set.
func ParseTask(name string) (Task, bool) {
	for _, t := range supportedTasks {
		if t.String() == name {
			return t, true
		}
	}
	return Task{}, false
}

// CheckArgumentUsage enforces that -a/--argument is given for DC/DS tasks
// and withheld for SE/EE tasks, with a diagnostic pointing at the
// complementary prefix the caller probably meant — the Go rendition of the
// reference implementation's "you probably meant" misuse message.
func CheckArgumentUsage(t Task, argumentGiven bool) error {
	switch {
	case t.Problem.IsDecision() && !argumentGiven:
		return fmt.Errorf("%w (task %s); did you mean an SE or EE task instead?", ErrArgumentRequired, t)
	case t.Problem.IsEnumeration() && argumentGiven:
		return fmt.Errorf("%w (task %s); did you mean a DC or DS task instead?", ErrArgumentForbidden, t)
	default:
		return nil
	}
}
