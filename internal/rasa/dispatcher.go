package rasa

// Message is a single user-facing response emitted during an action run.
type Message struct {
	RecipientID string `json:"recipient_id,omitempty"`
	Text        string `json:"text"`
}

// Dispatcher is the narrow message-emitter capability handed to actions.
type Dispatcher interface {
	UtterMessage(text string)
}

// CollectingDispatcher buffers messages uttered during a single action run
// so the webhook handler can return them in one response.
type CollectingDispatcher struct {
	recipientID string
	messages    []Message
}

// NewCollectingDispatcher creates a dispatcher addressing the given sender.
func NewCollectingDispatcher(recipientID string) *CollectingDispatcher {
	return &CollectingDispatcher{recipientID: recipientID}
}

func (d *CollectingDispatcher) UtterMessage(text string) {
	d.messages = append(d.messages, Message{
		RecipientID: d.recipientID,
		Text:        text,
	})
}

// Messages returns everything uttered so far, never nil.
func (d *CollectingDispatcher) Messages() []Message {
	if d.messages == nil {
		return []Message{}
	}
	return d.messages
}
