package controller

import (
	"profai-be/internal/dto"
	"profai-be/internal/pkg/serverutils"
	"profai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetTools(ctx *fiber.Ctx) error
	GetDisciplines(ctx *fiber.Ctx) error
	GetGrades(ctx *fiber.Ctx) error
	GetSkills(ctx *fiber.Ctx) error
	SuggestSkills(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService    service.ICatalogService
	suggestionService service.ISuggestionService
}

func NewCatalogController(
	catalogService service.ICatalogService,
	suggestionService service.ISuggestionService,
) ICatalogController {
	return &catalogController{
		catalogService:    catalogService,
		suggestionService: suggestionService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("tools", c.GetTools)
	h.Get("disciplines", c.GetDisciplines)
	h.Get("grades", c.GetGrades)
	h.Get("skills", c.GetSkills)
	// Suggestion hits the model, so it is not anonymous.
	h.Post("suggest-skills", serverutils.JwtMiddleware, c.SuggestSkills)
}

func (c *catalogController) GetTools(ctx *fiber.Ctx) error {
	res := c.catalogService.GetTools(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get tools", res))
}

func (c *catalogController) GetDisciplines(ctx *fiber.Ctx) error {
	res := c.catalogService.GetDisciplines(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get disciplines", res))
}

func (c *catalogController) GetGrades(ctx *fiber.Ctx) error {
	res := c.catalogService.GetGrades(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get grades", res))
}

func (c *catalogController) GetSkills(ctx *fiber.Ctx) error {
	req := dto.SkillsRequest{
		Discipline: ctx.Query("discipline"),
		Grade:      ctx.Query("grade"),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.catalogService.GetSkills(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success get skills", res))
}

func (c *catalogController) SuggestSkills(ctx *fiber.Ctx) error {
	var req dto.SuggestSkillsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.suggestionService.SuggestSkills(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success suggest skills", res))
}
