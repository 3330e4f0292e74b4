package validateform

import (
	"context"
	"strings"

	"reclamation-actions/internal/common/logger"
	"reclamation-actions/internal/common/validation"
	"reclamation-actions/internal/rasa"
)

const ActionName = "validate_reclamation_form"

// Slot names of the reclamation form.
const (
	SlotEmail    = "email"
	SlotPhone    = "phone"
	SlotUsername = "username"
	SlotMessage  = "reclamation_message"
)

// Correction prompts shown when a provided value fails its rule.
const (
	promptEmail           = "Please provide a valid email address (e.g., name@example.com)."
	promptPhone           = "Please provide a valid phone number with at least 5 digits."
	promptUsernameShort   = "Please provide a valid username (at least 2 characters)."
	promptUsernameNumeric = "That looks like an ID. Please provide your username instead."
	promptMessage         = "Please provide more details about your issue (at least 10 characters)."
)

// Handler validates the reclamation form fields. Each validator is pure and
// total: it always produces a Result, never an error.
type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{logger: log}
}

func (h *Handler) Name() string {
	return ActionName
}

// Run validates every form slot present in the tracker snapshot and reports
// a slot update per validated field. Slots the dialogue engine did not fill
// this turn are left untouched.
func (h *Handler) Run(ctx context.Context, dispatcher rasa.Dispatcher, tracker rasa.SlotReader) ([]rasa.Event, error) {
	fields := []struct {
		slot     string
		validate func(string) Result
	}{
		{SlotEmail, h.ValidateEmail},
		{SlotPhone, h.ValidatePhone},
		{SlotUsername, h.ValidateUsername},
		{SlotMessage, h.ValidateMessage},
	}

	var events []rasa.Event
	for _, field := range fields {
		raw, ok := tracker.Slot(field.slot)
		if !ok {
			continue
		}

		result := field.validate(raw)
		if result.Verdict == VerdictRejected {
			dispatcher.UtterMessage(result.Prompt)
		}
		events = append(events, rasa.SlotSet(field.slot, result.SlotValue()))

		h.logger.Debug("Validated form slot", map[string]interface{}{
			"slot":     field.slot,
			"accepted": result.Verdict == VerdictAccepted,
		})
	}

	return events, nil
}

// ValidateEmail accepts any trimmed value containing both '@' and '.'.
func (h *Handler) ValidateEmail(raw string) Result {
	email := strings.TrimSpace(raw)
	if email == "" {
		return Absent()
	}
	if !validation.LooksLikeEmail(email) {
		return Rejected(promptEmail)
	}
	return Accepted(email)
}

// ValidatePhone accepts any trimmed value containing at least five digits.
// The value is kept as typed, not digit-stripped, so formatting like
// "12-345" survives.
func (h *Handler) ValidatePhone(raw string) Result {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return Absent()
	}
	if validation.DigitCount(phone) < 5 {
		return Rejected(promptPhone)
	}
	return Accepted(phone)
}

// ValidateUsername accepts trimmed values of at least two characters that
// are not entirely numeric. An all-digit value is most likely a pasted id.
func (h *Handler) ValidateUsername(raw string) Result {
	username := strings.TrimSpace(raw)
	if username == "" {
		return Absent()
	}
	if len([]rune(username)) < 2 {
		return Rejected(promptUsernameShort)
	}
	if validation.IsAllDigits(username) {
		return Rejected(promptUsernameNumeric)
	}
	return Accepted(username)
}

// ValidateMessage accepts trimmed complaint text of at least ten characters.
func (h *Handler) ValidateMessage(raw string) Result {
	message := strings.TrimSpace(raw)
	if message == "" {
		return Absent()
	}
	if len([]rune(message)) < 10 {
		return Rejected(promptMessage)
	}
	return Accepted(message)
}
