package service

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"profai-be/internal/constant"
	"profai-be/internal/dto"
	"profai-be/internal/pkg/mailer"
	"profai-be/internal/pkg/serverutils"
	"profai-be/internal/repository/specification"
	"profai-be/internal/repository/unitofwork"
	"profai-be/pkg/slides"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHistoryService interface {
	GetAll(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.GenerationSummaryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowGenerationResponse, error)
	Share(ctx context.Context, userId uuid.UUID, req *dto.ShareGenerationRequest) error
}

type historyService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewHistoryService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IHistoryService {
	return &historyService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (h *historyService) GetAll(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.GenerationSummaryResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := h.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.GenerationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GenerationSummaryResponse, 0, len(records))
	for _, r := range records {
		result = append(result, &dto.GenerationSummaryResponse{
			Id:             r.Id,
			Tool:           r.Tool,
			Discipline:     r.Discipline,
			Grade:          r.Grade,
			Subject:        r.Subject,
			CreditsCharged: r.CreditsCharged,
			CreatedAt:      r.CreatedAt,
		})
	}
	return result, nil
}

func (h *historyService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowGenerationResponse, error) {
	uow := h.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.GenerationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "geração não encontrada")
	}

	var params interface{}
	if len(record.Params) > 0 {
		_ = json.Unmarshal(record.Params, &params)
	}

	res := &dto.ShowGenerationResponse{
		Id:             record.Id,
		Tool:           record.Tool,
		Discipline:     record.Discipline,
		Grade:          record.Grade,
		Subject:        record.Subject,
		Params:         params,
		ResultText:     record.ResultText,
		WebSearch:      record.WebSearch,
		CreditsCharged: record.CreditsCharged,
		CreatedAt:      record.CreatedAt,
	}

	// Slides are re-parsed from the stored text so exports see the same
	// outline the original response carried, same order, one for one.
	if record.Tool == string(constant.ToolSlides) {
		for _, s := range slides.Parse(record.ResultText) {
			res.Slides = append(res.Slides, dto.SlideItem{Title: s.Title, Body: s.Body})
		}
	}

	if record.ImageMimeType != nil && len(record.ImageData) > 0 {
		res.Image = &dto.GeneratedImage{
			MimeType: *record.ImageMimeType,
			Data:     base64.StdEncoding.EncodeToString(record.ImageData),
		}
	}

	return res, nil
}

func (h *historyService) Share(ctx context.Context, userId uuid.UUID, req *dto.ShareGenerationRequest) error {
	uow := h.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.GenerationRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if record == nil {
		return serverutils.NewAppError(fiber.StatusNotFound, "geração não encontrada")
	}

	toolTitle := record.Tool
	if tool, ok := constant.FindTool(constant.ToolKind(record.Tool)); ok {
		toolTitle = tool.Title
	}

	if err := h.emailService.SendGeneratedMaterial(req.ToEmail, toolTitle, record.Subject, record.ResultText); err != nil {
		return serverutils.WrapAppError(fiber.StatusBadGateway,
			"não foi possível enviar o e-mail agora", err)
	}
	return nil
}
