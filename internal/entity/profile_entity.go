package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the read-model of the external identity backend's profile
// record. Identity (signup, login, sessions) lives on that backend; this
// service reads display data and debits credits.
type Profile struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Credits   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
