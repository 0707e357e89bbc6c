package domain

import (
	"github.com/google/uuid"
)

// Reply is what the chat service hands back for one line of user input.
type Reply struct {
	ID      uuid.UUID
	Input   string
	Intent  Intent
	Answer  string
	Score   float64
	Matched bool
	Lang    string // ISO 639-1, set only when debug logging is enabled
}
