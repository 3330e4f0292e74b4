package submitreclamation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"reclamation-actions/internal/common/errors"
	"reclamation-actions/internal/common/logger"
	"reclamation-actions/internal/common/validation"
	"reclamation-actions/internal/rasa"
	"reclamation-actions/internal/reclamation"
)

const ActionName = "action_submit_reclamation"

// Slot names read from and written back to conversation state.
const (
	SlotUsername      = "username"
	SlotMessage       = "reclamation_message"
	SlotEmail         = "email"
	SlotPhone         = "phone"
	SlotReclamationID = "reclamation_id"
)

const (
	anonymousUsername = "Anonymous"

	msgTimeout = "❌ The reclamation service timed out. Please try again later."
	msgConnect = "❌ Could not connect to the reclamation service. Please try again later."
)

// Handler submits a completed reclamation form to the backend and relays the
// outcome to the user. Exactly one outbound call per run, no retries; every
// branch ends in a dispatched message.
type Handler struct {
	config *Config
	logger logger.Logger
	client *reclamation.Client
}

func NewHandler(cfg *Config, client *reclamation.Client, log logger.Logger) *Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Handler{
		config: cfg,
		logger: log,
		client: client,
	}
}

func (h *Handler) Name() string {
	return ActionName
}

func (h *Handler) Run(ctx context.Context, dispatcher rasa.Dispatcher, tracker rasa.SlotReader) ([]rasa.Event, error) {
	input := readInput(tracker)

	ticket := &reclamation.TicketRequest{
		Username: input.Username,
		Message:  input.Message,
		Category: h.config.Category,
		Location: h.config.Location,
		Email:    input.Email,
		Phone:    input.Phone,
	}
	if ticket.Username == "" {
		ticket.Username = anonymousUsername
	}

	runCtx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	outcome, err := h.client.Create(runCtx, ticket)
	if err != nil {
		if errors.IsTimeout(err) {
			h.logger.WithError(err).Warn("Reclamation submission timed out", nil)
			dispatcher.UtterMessage(msgTimeout)
			return nil, nil
		}
		h.logger.WithError(err).Warn("Reclamation submission transport failure", nil)
		dispatcher.UtterMessage(msgConnect)
		return nil, nil
	}

	if outcome.StatusCode == http.StatusCreated {
		return h.handleCreated(dispatcher, input, ticket.Username, outcome), nil
	}

	// Backend rejected the payload: surface its validation errors verbatim
	// when it sent JSON, a generic message otherwise.
	if outcome.ErrorBody != nil {
		details, _ := json.Marshal(outcome.ErrorBody)
		dispatcher.UtterMessage(fmt.Sprintf(
			"❌ Error submitting reclamation (HTTP %d). Details: %s",
			outcome.StatusCode, details,
		))
	} else {
		dispatcher.UtterMessage(fmt.Sprintf(
			"❌ Error submitting reclamation (HTTP %d). Please try again.",
			outcome.StatusCode,
		))
	}

	h.logger.Warn("Reclamation submission rejected by backend", map[string]interface{}{
		"status": outcome.StatusCode,
	})
	return nil, nil
}

func (h *Handler) handleCreated(dispatcher rasa.Dispatcher, input *Input, username string, outcome *reclamation.CreateOutcome) []rasa.Event {
	recID := reclamation.Field(outcome.Ticket, "id", "Unknown")
	priority := strings.ToUpper(reclamation.Field(outcome.Ticket, "priority", "normal"))
	sentiment := validation.Capitalize(reclamation.Field(outcome.Ticket, "sentiment", "neutral"))

	var contactInfo strings.Builder
	if input.Email != "" {
		fmt.Fprintf(&contactInfo, "\n📧 Email: %s", input.Email)
	}
	if input.Phone != "" {
		fmt.Fprintf(&contactInfo, "\n📞 Phone: %s", input.Phone)
	}

	dispatcher.UtterMessage(fmt.Sprintf(
		"✅ Reclamation submitted successfully!%s\n\n"+
			"📋 Reclamation ID: #%s\n"+
			"👤 Username: %s\n"+
			"📝 Issue: %s...\n"+
			"🚨 Priority: %s\n"+
			"😊 Sentiment: %s\n\n"+
			"We will review your issue and contact you soon.",
		contactInfo.String(),
		recID,
		username,
		validation.Truncate(input.Message, 100),
		priority,
		sentiment,
	))

	h.logger.Info("Reclamation submitted", map[string]interface{}{
		"reclamationId": recID,
		"priority":      priority,
	})

	// Remember the id so a later tracking request can reference it.
	return []rasa.Event{rasa.SlotSet(SlotReclamationID, recID)}
}
