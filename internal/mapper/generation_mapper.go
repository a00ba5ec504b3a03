package mapper

import (
	"encoding/json"

	"profai-be/internal/entity"
	"profai-be/internal/model"

	"gorm.io/datatypes"
)

type GenerationMapper struct{}

func NewGenerationMapper() *GenerationMapper {
	return &GenerationMapper{}
}

func (m *GenerationMapper) ToEntity(r *model.GenerationRecord) *entity.GenerationRecord {
	if r == nil {
		return nil
	}
	return &entity.GenerationRecord{
		Id:             r.Id,
		UserId:         r.UserId,
		Tool:           r.Tool,
		Discipline:     r.Discipline,
		Grade:          r.Grade,
		Subject:        r.Subject,
		Params:         json.RawMessage(r.Params),
		ResultText:     r.ResultText,
		ImageMimeType:  r.ImageMimeType,
		ImageData:      r.ImageData,
		WebSearch:      r.WebSearch,
		CreditsCharged: r.CreditsCharged,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *GenerationMapper) ToModel(r *entity.GenerationRecord) *model.GenerationRecord {
	if r == nil {
		return nil
	}
	return &model.GenerationRecord{
		Id:             r.Id,
		UserId:         r.UserId,
		Tool:           r.Tool,
		Discipline:     r.Discipline,
		Grade:          r.Grade,
		Subject:        r.Subject,
		Params:         datatypes.JSON(r.Params),
		ResultText:     r.ResultText,
		ImageMimeType:  r.ImageMimeType,
		ImageData:      r.ImageData,
		WebSearch:      r.WebSearch,
		CreditsCharged: r.CreditsCharged,
		CreatedAt:      r.CreatedAt,
	}
}
