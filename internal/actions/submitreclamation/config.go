// internal/actions/submitreclamation/config.go
package submitreclamation

import "time"

type Config struct {
	Timeout  time.Duration
	Category string
	Location string
}

// DefaultConfig carries the fixed channel tags the backend uses to attribute
// submissions to the chat interface.
func DefaultConfig() *Config {
	return &Config{
		Timeout:  15 * time.Second,
		Category: "Rasa Bot",
		Location: "Rasa Chat Interface",
	}
}
