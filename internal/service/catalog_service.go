package service

import (
	"context"

	"profai-be/internal/constant"
	"profai-be/internal/dto"
	"profai-be/pkg/bncc"
)

type ICatalogService interface {
	GetDisciplines(ctx context.Context) []string
	GetGrades(ctx context.Context) []string
	GetTools(ctx context.Context) []*dto.ToolResponse
	GetSkills(ctx context.Context, req *dto.SkillsRequest) *dto.SkillsResponse
}

type catalogService struct {
	catalog bncc.Catalog
}

func NewCatalogService(catalog bncc.Catalog) ICatalogService {
	return &catalogService{
		catalog: catalog,
	}
}

func (c *catalogService) GetDisciplines(ctx context.Context) []string {
	return constant.Disciplinas
}

func (c *catalogService) GetGrades(ctx context.Context) []string {
	return constant.AnosEscolaridade
}

func (c *catalogService) GetTools(ctx context.Context) []*dto.ToolResponse {
	result := make([]*dto.ToolResponse, 0, len(constant.Tools))
	for _, t := range constant.Tools {
		result = append(result, &dto.ToolResponse{
			Id:          string(t.Id),
			Title:       t.Title,
			Description: t.Description,
			Icon:        t.Icon,
			Category:    t.Category,
			CreditCost:  t.CreditCost,
		})
	}
	return result
}

func (c *catalogService) GetSkills(ctx context.Context, req *dto.SkillsRequest) *dto.SkillsResponse {
	// Unknown pairs return an empty list, never an error. The client
	// resets the skill selection whenever discipline or grade changes.
	return &dto.SkillsResponse{
		Discipline: req.Discipline,
		Grade:      req.Grade,
		Skills:     c.catalog.SelectableSkills(req.Discipline, req.Grade),
	}
}
