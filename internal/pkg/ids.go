package pkg

import "github.com/google/uuid"

// GenerateMatchID returns a new scoreboard id.
func GenerateMatchID() string {
	return uuid.NewString()
}
