package service

import (
	"context"
	"fmt"
	"strings"

	"profai-be/internal/constant"
	"profai-be/internal/dto"
	"profai-be/internal/pkg/logger"
	"profai-be/internal/pkg/serverutils"
	"profai-be/pkg/aiclient"
	"profai-be/pkg/bncc"

	"github.com/gofiber/fiber/v2"
)

type ISuggestionService interface {
	SuggestSkills(ctx context.Context, req *dto.SuggestSkillsRequest) (*dto.SuggestSkillsResponse, error)
}

type suggestionService struct {
	textGenerator aiclient.TextGenerator
	catalog       bncc.Catalog
	logger        logger.ILogger
}

func NewSuggestionService(
	textGenerator aiclient.TextGenerator,
	catalog bncc.Catalog,
	sysLogger logger.ILogger,
) ISuggestionService {
	return &suggestionService{
		textGenerator: textGenerator,
		catalog:       catalog,
		logger:        sysLogger,
	}
}

func (s *suggestionService) SuggestSkills(ctx context.Context, req *dto.SuggestSkillsRequest) (*dto.SuggestSkillsResponse, error) {
	// Blank subject is refused before any model call; the caller keeps
	// its current selection.
	if strings.TrimSpace(req.Subject) == "" {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest,
			"informe o assunto antes de sugerir habilidades")
	}

	available := req.AvailableSkills
	if len(available) == 0 {
		available = s.catalog.SelectableSkills(req.Discipline, req.Grade)
	}
	if len(available) == 0 {
		return &dto.SuggestSkillsResponse{Skills: []string{}}, nil
	}

	prompt := fmt.Sprintf(constant.SuggestSkillsPromptTemplate,
		req.Grade, req.Discipline, req.Subject, strings.Join(available, "\n"))

	res, err := s.textGenerator.GenerateText(ctx, &aiclient.TextRequest{
		SystemInstruction: constant.SystemInstruction,
		Prompt:            prompt,
	})
	if err != nil {
		s.logger.Error("suggestion", "falha ao sugerir habilidades", map[string]interface{}{
			"discipline": req.Discipline,
			"grade":      req.Grade,
			"error":      err.Error(),
		})
		return nil, serverutils.WrapAppError(fiber.StatusBadGateway,
			"não foi possível sugerir habilidades agora", err)
	}

	candidates := bncc.SplitSuggestionReply(res.Text)
	return &dto.SuggestSkillsResponse{
		Skills: bncc.FilterSuggestions(available, candidates),
	}, nil
}
