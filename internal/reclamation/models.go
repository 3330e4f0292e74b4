package reclamation

import "encoding/json"

// TicketRequest is the create payload sent to the backend. Category and
// Location are fixed channel tags identifying the chat interface so support
// staff can tell bot submissions apart from web-form ones.
type TicketRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Location string `json:"location"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CreateOutcome is the structural result of one create call. Ticket is the
// decoded body of a 201 reply; ErrorBody is the decoded body of any other
// status, nil when the backend returned something that is not JSON.
type CreateOutcome struct {
	StatusCode int
	Ticket     map[string]interface{}
	ErrorBody  map[string]interface{}
}

// TrackOutcome is the structural result of one read call. Ticket is only set
// for a 200 reply with a decodable body.
type TrackOutcome struct {
	StatusCode int
	Ticket     map[string]interface{}
}

// Field extracts a string rendering of a key from a decoded body, falling
// back when the key is missing or null. Numbers decode as json.Number so ids
// like 42 render without an exponent.
func Field(body map[string]interface{}, key, fallback string) string {
	if body == nil {
		return fallback
	}
	v, ok := body[key]
	if !ok || v == nil {
		return fallback
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fallback
		}
		return string(b)
	}
}
