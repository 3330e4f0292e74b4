package trackreclamation

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"reclamation-actions/internal/common/errors"
	"reclamation-actions/internal/common/logger"
	"reclamation-actions/internal/common/validation"
	"reclamation-actions/internal/rasa"
	"reclamation-actions/internal/reclamation"
)

const ActionName = "action_track_reclamation"

const SlotReclamationID = "reclamation_id"

const (
	msgMissingID = "Please provide your reclamation ID."
	msgNotFound  = "❌ No reclamation found with that ID."
	msgTimeout   = "❌ The reclamation service timed out while tracking. Please try again later."
	msgConnect   = "❌ Could not connect to the reclamation service. Please try again later."
)

// Handler looks up the status of a previously submitted reclamation. The id
// comes from conversation state; without one the user is asked for it and
// nothing else happens.
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
	id, ok := tracker.Slot(SlotReclamationID)
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		dispatcher.UtterMessage(msgMissingID)
		return nil, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	outcome, err := h.client.Track(runCtx, id)
	if err != nil {
		if errors.IsTimeout(err) {
			h.logger.WithError(err).Warn("Reclamation tracking timed out", map[string]interface{}{
				"reclamationId": id,
			})
			dispatcher.UtterMessage(msgTimeout)
			return nil, nil
		}
		h.logger.WithError(err).Warn("Reclamation tracking transport failure", map[string]interface{}{
			"reclamationId": id,
		})
		dispatcher.UtterMessage(msgConnect)
		return nil, nil
	}

	switch outcome.StatusCode {
	case http.StatusOK:
		dispatcher.UtterMessage(fmt.Sprintf(
			"📊 Reclamation #%s\n"+
				"Status: %s\n"+
				"Priority: %s\n"+
				"Sentiment: %s\n"+
				"Message: %s",
			reclamation.Field(outcome.Ticket, "id", id),
			reclamation.Field(outcome.Ticket, "status", "unknown"),
			reclamation.Field(outcome.Ticket, "priority", "normal"),
			reclamation.Field(outcome.Ticket, "sentiment", "neutral"),
			validation.Truncate(reclamation.Field(outcome.Ticket, "message", ""), 150),
		))
	case http.StatusNotFound:
		dispatcher.UtterMessage(msgNotFound)
	default:
		h.logger.Warn("Reclamation tracking failed", map[string]interface{}{
			"reclamationId": id,
			"status":        outcome.StatusCode,
		})
		dispatcher.UtterMessage(fmt.Sprintf(
			"❌ Tracking error (HTTP %d). Please try again.",
			outcome.StatusCode,
		))
	}

	return nil, nil
}
