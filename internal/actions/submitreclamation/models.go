// internal/actions/submitreclamation/models.go
package submitreclamation

import (
	"strings"

	"reclamation-actions/internal/rasa"
)

// Input is the validated slot snapshot the submission works from. Empty
// strings mean "not provided"; the form validator guarantees anything
// present here already passed its rules.
type Input struct {
	Username string
	Message  string
	Email    string
	Phone    string
}

func readInput(tracker rasa.SlotReader) *Input {
	input := &Input{}
	if v, ok := tracker.Slot(SlotUsername); ok {
		input.Username = strings.TrimSpace(v)
	}
	if v, ok := tracker.Slot(SlotMessage); ok {
		input.Message = v
	}
	if v, ok := tracker.Slot(SlotEmail); ok {
		input.Email = strings.TrimSpace(v)
	}
	if v, ok := tracker.Slot(SlotPhone); ok {
		input.Phone = strings.TrimSpace(v)
	}
	return input
}
