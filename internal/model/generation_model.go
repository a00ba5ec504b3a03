package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GenerationRecord struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Tool           string    `gorm:"type:varchar(50);not null;index"`
	Discipline     string    `gorm:"type:varchar(100)"`
	Grade          string    `gorm:"type:varchar(50)"`
	Subject        string    `gorm:"type:varchar(255)"`
	Params         datatypes.JSON
	ResultText     string  `gorm:"type:text;not null"`
	ImageMimeType  *string `gorm:"type:varchar(100)"`
	ImageData      []byte
	WebSearch      bool      `gorm:"default:false"`
	CreditsCharged int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (GenerationRecord) TableName() string {
	return "generation_records"
}
