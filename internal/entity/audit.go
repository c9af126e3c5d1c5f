package entity

import (
	"time"

	"github.com/google/uuid"
)

// Extraction types recorded against usage.
const (
	ExtractionTypeURL  = "url"
	ExtractionTypeText = "text"
)

// ExtractionAudit is one append-only row per extraction attempt.
type ExtractionAudit struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ModelName      string    `json:"model_name"`
	ExtractionType string    `json:"extraction_type"`
	InputTokens    int       `json:"input_tokens"`
	OutputTokens   int       `json:"output_tokens"`
	Success        bool      `json:"success"`
	CreatedAt      time.Time `json:"created_at"`
}
