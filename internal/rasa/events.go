// Package rasa implements the subset of the Rasa action-server webhook
// protocol this service needs: trackers, collecting dispatchers, slot events
// and the HTTP endpoint the dialogue engine calls once per conversational
// turn.
package rasa

// Event is a conversation event returned to the dialogue engine. Only slot
// events are produced by this server but the shape matches the general
// protocol.
type Event struct {
	Event     string      `json:"event"`
	Timestamp *float64    `json:"timestamp"`
	Name      string      `json:"name,omitempty"`
	Value     interface{} `json:"value"`
}

// SlotSet builds a slot event. A nil value clears the slot, which is how a
// rejected or absent form value is reported back.
func SlotSet(name string, value interface{}) Event {
	return Event{
		Event: "slot",
		Name:  name,
		Value: value,
	}
}
