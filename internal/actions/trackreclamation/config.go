// internal/actions/trackreclamation/config.go
package trackreclamation

import "time"

type Config struct {
	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
