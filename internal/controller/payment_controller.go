package controller

import (
	"profai-be/internal/pkg/serverutils"
	"profai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	GetPlans(ctx *fiber.Ctx) error
	GetCheckoutURL(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
	userService    service.IUserService
}

func NewPaymentController(
	paymentService service.IPaymentService,
	userService service.IUserService,
) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
		userService:    userService,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	h.Get("plans", c.GetPlans)
	h.Get("checkout-url", serverutils.JwtMiddleware, c.GetCheckoutURL)
}

func (c *paymentController) GetPlans(ctx *fiber.Ctx) error {
	res := c.paymentService.GetPlans(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get plans", res))
}

func (c *paymentController) GetCheckoutURL(ctx *fiber.Ctx) error {
	planId := ctx.Query("plan_id")
	if planId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "informe o plan_id")
	}

	// E-mail comes from the token claim; fall back to the profile when
	// the identity backend omits it.
	email, _ := ctx.Locals("user_email").(string)
	if email == "" {
		userIdStr, _ := ctx.Locals("user_id").(string)
		if userId, err := uuid.Parse(userIdStr); err == nil {
			if profile, err := c.userService.GetProfile(ctx.Context(), userId); err == nil {
				email = profile.Email
			}
		}
	}

	res, err := c.paymentService.GetCheckoutURL(ctx.Context(), planId, email)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get checkout url", res))
}
