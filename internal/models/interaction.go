package models

import (
	"time"

	"github.com/google/uuid"
)

// Response sources recorded on each interaction.
const (
	SourceKB        = "kb"
	SourceInference = "inference"
	SourceDefault   = "default"
)

// Interaction is one completed request/response exchange, handed to the
// interaction log after the response has been determined.
type Interaction struct {
	ID          uuid.UUID `json:"id"`
	SessionID   string    `json:"session_id"`
	UserInput   string    `json:"user_input"`
	BotResponse string    `json:"bot_response"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// SourceCount is an aggregate of interactions by response source,
// used by the metrics collector.
type SourceCount struct {
	Source string
	Count  int64
}
