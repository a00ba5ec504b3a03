package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileAttachment carries an uploaded reference document (base64 payload,
// decoded before the model call).
type FileAttachment struct {
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

type GenerateQuestionsRequest struct {
	Count         int             `json:"count"`
	Grade         string          `json:"grade" validate:"required"`
	Discipline    string          `json:"discipline" validate:"required"`
	Subject       string          `json:"subject"`
	Context       string          `json:"context"`
	Skills        []string        `json:"skills"`
	ManualDetails string          `json:"manual_details"`
	Language      string          `json:"language"`
	OtherDetails  string          `json:"other_details"`
	File          *FileAttachment `json:"file"`
	WebSearch     bool            `json:"web_search"`
}

type GenerateSlidesRequest struct {
	Count         int             `json:"count"`
	Subject       string          `json:"subject"`
	Discipline    string          `json:"discipline" validate:"required"`
	Grade         string          `json:"grade" validate:"required"`
	ClassContext  string          `json:"class_context"`
	Duration      string          `json:"duration"`
	Language      string          `json:"language"`
	Skills        []string        `json:"skills"`
	ManualDetails string          `json:"manual_details"`
	File          *FileAttachment `json:"file"`
	WebSearch     bool            `json:"web_search"`
	IncludeImages bool            `json:"include_images"`
}

type GenerateLessonPlanRequest struct {
	Period            string   `json:"period" validate:"required"`
	Grade             string   `json:"grade" validate:"required"`
	Discipline        string   `json:"discipline" validate:"required"`
	Multidisciplinary string   `json:"multidisciplinary"`
	WeekDays          []string `json:"week_days"`
	Subject           string   `json:"subject"`
	Skills            []string `json:"skills"`
	ManualDetails     string   `json:"manual_details"`
}

type GenerateEssayCorrectionRequest struct {
	Grade      string          `json:"grade" validate:"required"`
	Discipline string          `json:"discipline" validate:"required"`
	Theme      string          `json:"theme"`
	Language   string          `json:"language"`
	Notes      string          `json:"notes"`
	EssayText  string          `json:"essay_text"`
	File       *FileAttachment `json:"file"`
}

type SlideItem struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type GeneratedImage struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type GenerationResponse struct {
	Tool           string          `json:"tool"`
	ResultText     string          `json:"result_text"`
	Slides         []SlideItem     `json:"slides,omitempty"`
	Image          *GeneratedImage `json:"image,omitempty"`
	CreditsCharged int             `json:"credits_charged"`
}

type GenerationSummaryResponse struct {
	Id             uuid.UUID `json:"id"`
	Tool           string    `json:"tool"`
	Discipline     string    `json:"discipline"`
	Grade          string    `json:"grade"`
	Subject        string    `json:"subject"`
	CreditsCharged int       `json:"credits_charged"`
	CreatedAt      time.Time `json:"created_at"`
}

type ShowGenerationResponse struct {
	Id             uuid.UUID       `json:"id"`
	Tool           string          `json:"tool"`
	Discipline     string          `json:"discipline"`
	Grade          string          `json:"grade"`
	Subject        string          `json:"subject"`
	Params         interface{}     `json:"params"`
	ResultText     string          `json:"result_text"`
	Slides         []SlideItem     `json:"slides,omitempty"`
	Image          *GeneratedImage `json:"image,omitempty"`
	WebSearch      bool            `json:"web_search"`
	CreditsCharged int             `json:"credits_charged"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ShareGenerationRequest struct {
	Id      uuid.UUID
	ToEmail string `json:"to_email" validate:"required,email"`
}

// PublishGenerationMessage is the payload of GENERATION_COMPLETED on the
// in-process bus. The consumer debits credits and records history in one
// transaction; file bytes never ride the bus, only the params snapshot.
type PublishGenerationMessage struct {
	RecordId       uuid.UUID       `json:"record_id"`
	UserId         uuid.UUID       `json:"user_id"`
	Tool           string          `json:"tool"`
	Discipline     string          `json:"discipline"`
	Grade          string          `json:"grade"`
	Subject        string          `json:"subject"`
	Params         json.RawMessage `json:"params"`
	ResultText     string          `json:"result_text"`
	ImageMimeType  *string         `json:"image_mime_type,omitempty"`
	ImageData      []byte          `json:"image_data,omitempty"`
	WebSearch      bool            `json:"web_search"`
	CreditsCharged int             `json:"credits_charged"`
}
