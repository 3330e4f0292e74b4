package rasa

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"reclamation-actions/internal/common/errors"
	"reclamation-actions/internal/common/logger"
	"reclamation-actions/internal/common/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"
)

const maxRequestBytes = 1 << 20

// webhookSchema guards the dispatch layer: a request must name an action and
// carry a tracker object before any handler sees it. An empty tracker
// serializes its slots as null, so null is as legal as {} there.
const webhookSchema = `{
	"type": "object",
	"required": ["next_action", "tracker"],
	"properties": {
		"next_action": {"type": "string", "minLength": 1},
		"sender_id": {"type": "string"},
		"version": {"type": "string"},
		"tracker": {
			"type": "object",
			"properties": {
				"sender_id": {"type": "string"},
				"slots": {"type": ["object", "null"]}
			}
		}
	}
}`

// Server dispatches webhook calls from the dialogue engine to registered
// actions. It owns no conversation state; every request carries its own
// tracker snapshot.
type Server struct {
	logger  logger.Logger
	actions map[string]Action
	schema  *gojsonschema.Schema
	mux     *http.ServeMux
}

func NewServer(log logger.Logger, actions ...Action) (*Server, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(webhookSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile webhook schema: %w", err)
	}

	s := &Server{
		logger:  log,
		actions: make(map[string]Action, len(actions)),
		schema:  schema,
		mux:     http.NewServeMux(),
	}

	for _, action := range actions {
		s.actions[action.Name()] = action
	}

	s.mux.HandleFunc("/webhook", s.handleWebhook)
	s.mux.HandleFunc("/actions", s.handleActions)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ActionNames returns the registered action names in sorted order.
func (s *Server) ActionNames() []string {
	names := make([]string, 0, len(s.actions))
	for name := range s.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "webhook only accepts POST", "")
		return
	}

	requestID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
	})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		stdErr := errors.NewRequestParsingError(err.Error())
		log.Warn("Failed to read webhook body", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusBadRequest, stdErr.Message, "")
		return
	}

	if validationErr := s.validateRequest(body); validationErr != nil {
		log.Warn("Webhook request rejected", map[string]interface{}{
			"errorCode": string(errors.CodeOf(validationErr)),
			"error":     validationErr.Error(),
		})
		writeError(w, http.StatusBadRequest, validationErr.Message, "")
		return
	}

	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		stdErr := errors.NewRequestParsingError(err.Error())
		log.Warn("Failed to decode webhook body", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusBadRequest, stdErr.Message, "")
		return
	}

	action, ok := s.actions[req.NextAction]
	if !ok {
		stdErr := errors.NewActionNotFoundError(req.NextAction)
		log.Warn("Unknown action requested", map[string]interface{}{
			"action": req.NextAction,
		})
		writeError(w, http.StatusNotFound, stdErr.Message, req.NextAction)
		return
	}

	senderID := req.SenderID
	if senderID == "" && req.Tracker != nil {
		senderID = req.Tracker.SenderID
	}

	log = log.WithFields(map[string]interface{}{
		"action":   req.NextAction,
		"senderId": senderID,
	})
	log.Info("Dispatching action", nil)

	startTime := time.Now()
	metrics.ActionsActive.WithLabelValues(req.NextAction).Inc()
	defer metrics.ActionsActive.WithLabelValues(req.NextAction).Dec()

	dispatcher := NewCollectingDispatcher(senderID)
	events, err := action.Run(r.Context(), dispatcher, req.Tracker)
	if err != nil {
		stdErr := errors.NewActionExecutionError(req.NextAction, err)
		metrics.ActionsFailed.WithLabelValues(req.NextAction, string(stdErr.Code)).Inc()
		log.Error("Action run failed", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, stdErr.Message, req.NextAction)
		return
	}

	metrics.ActionsCompleted.WithLabelValues(req.NextAction).Inc()
	metrics.ActionDuration.WithLabelValues(req.NextAction).Observe(time.Since(startTime).Seconds())

	if events == nil {
		events = []Event{}
	}

	log.Info("Action completed", map[string]interface{}{
		"events":    len(events),
		"responses": len(dispatcher.Messages()),
	})

	writeJSON(w, http.StatusOK, WebhookResponse{
		Events:    events,
		Responses: dispatcher.Messages(),
	})
}

func (s *Server) validateRequest(body []byte) *errors.StandardError {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.NewRequestParsingError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return errors.NewRequestValidationError(strings.Join(details, "; "))
	}
	return nil
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "actions only accepts GET", "")
		return
	}

	names := s.ActionNames()
	listing := make([]map[string]string, 0, len(names))
	for _, name := range names {
		listing = append(listing, map[string]string{"name": name})
	}
	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, actionName string) {
	body := map[string]string{"error": message}
	if actionName != "" {
		body["action_name"] = actionName
	}
	writeJSON(w, status, body)
}
