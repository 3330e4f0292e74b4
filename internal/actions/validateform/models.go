// internal/actions/validateform/models.go
package validateform

// Verdict is the outcome class of validating one candidate field value.
type Verdict int

const (
	// VerdictAbsent means no value was provided. The slot is cleared and the
	// user is not prompted; skipping an optional field is not a mistake.
	VerdictAbsent Verdict = iota
	// VerdictAccepted means the value passed and carries its normalized form.
	VerdictAccepted
	// VerdictRejected means a value was provided but failed the rules; the
	// slot is cleared and the user sees a correction prompt.
	VerdictRejected
)

// Result is the tagged outcome of one validation. Value is only meaningful
// when accepted, Prompt only when rejected.
type Result struct {
	Verdict Verdict
	Value   string
	Prompt  string
}

func Accepted(value string) Result {
	return Result{Verdict: VerdictAccepted, Value: value}
}

func Rejected(prompt string) Result {
	return Result{Verdict: VerdictRejected, Prompt: prompt}
}

func Absent() Result {
	return Result{Verdict: VerdictAbsent}
}

// SlotValue renders the result as a slot update: the normalized value when
// accepted, nil otherwise. A value that failed validation is never allowed
// through.
func (r Result) SlotValue() interface{} {
	if r.Verdict == VerdictAccepted {
		return r.Value
	}
	return nil
}
