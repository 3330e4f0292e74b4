package rasa

import "context"

// Action is a named handler invoked by the dialogue engine once per turn.
// Run must never leak an error for conversation-level problems: anything the
// user should hear goes through the dispatcher, and a non-nil error is
// reserved for protocol-level faults.
type Action interface {
	Name() string
	Run(ctx context.Context, dispatcher Dispatcher, tracker SlotReader) ([]Event, error)
}

// WebhookRequest is the body the dialogue engine posts to /webhook.
type WebhookRequest struct {
	NextAction string   `json:"next_action"`
	SenderID   string   `json:"sender_id"`
	Tracker    *Tracker `json:"tracker"`
	Version    string   `json:"version,omitempty"`
}

// WebhookResponse mirrors the action-server reply: state changes plus the
// messages to show the user, both always present even when empty.
type WebhookResponse struct {
	Events    []Event   `json:"events"`
	Responses []Message `json:"responses"`
}
