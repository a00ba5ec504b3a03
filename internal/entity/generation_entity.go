package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationRecord is the audit row written after a generation completes.
// Params carries the assembled parameter snapshot (minus file bytes) so a
// generation can be inspected or re-run later.
type GenerationRecord struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Tool           string
	Discipline     string
	Grade          string
	Subject        string
	Params         json.RawMessage
	ResultText     string
	ImageMimeType  *string
	ImageData      []byte
	WebSearch      bool
	CreditsCharged int
	CreatedAt      time.Time
}
