package entities

import (
	"time"

	"github.com/google/uuid"
)

// Preference is one persisted key/value pair for a visitor, e.g. the
// locale chosen on the language switcher ("app.locale" -> "es").
type Preference struct {
	VisitorID uuid.UUID
	Key       string
	Value     string
	UpdatedAt time.Time
}
