package rasa

import (
	"fmt"
	"strconv"
)

// SlotReader is the narrow slot-access capability handed to actions: one
// read-by-key operation. The boolean reports whether the slot is present
// with a non-null value, which is how "no value provided" is distinguished
// from an empty string.
type SlotReader interface {
	Slot(name string) (string, bool)
}

// Tracker is the per-conversation state snapshot supplied by the dialogue
// engine with every webhook call. It is read-only from the action's point of
// view; state changes flow back as events.
type Tracker struct {
	SenderID      string                 `json:"sender_id"`
	Slots         map[string]interface{} `json:"slots"`
	LatestMessage map[string]interface{} `json:"latest_message,omitempty"`
	ActiveLoop    map[string]interface{} `json:"active_loop,omitempty"`
}

// Slot implements SlotReader. Slot values arrive as arbitrary JSON; numbers
// are rendered without an exponent so ids round-trip cleanly.
func (t *Tracker) Slot(name string) (string, bool) {
	if t == nil || t.Slots == nil {
		return "", false
	}
	v, ok := t.Slots[name]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}
