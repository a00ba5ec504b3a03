package service

import (
	"context"
	"testing"

	"profai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newPaymentService() IPaymentService {
	return NewPaymentService(map[string]string{
		"prod_TzUJ3EbgFL26nD": "https://buy.stripe.com/test_abc123",
	}, noopLogger{})
}

func TestGetCheckoutURLPrefillsEmail(t *testing.T) {
	svc := newPaymentService()

	res, err := svc.GetCheckoutURL(context.Background(), "prod_TzUJ3EbgFL26nD", "prof@escola.br")

	require.NoError(t, err)
	require.Equal(t, "https://buy.stripe.com/test_abc123?prefilled_email=prof%40escola.br", res.CheckoutURL)
}

func TestGetCheckoutURLWithoutEmail(t *testing.T) {
	svc := newPaymentService()

	res, err := svc.GetCheckoutURL(context.Background(), "prod_TzUJ3EbgFL26nD", "")

	require.NoError(t, err)
	require.Equal(t, "https://buy.stripe.com/test_abc123", res.CheckoutURL)
}

func TestGetCheckoutURLUnknownPlan(t *testing.T) {
	svc := newPaymentService()

	_, err := svc.GetCheckoutURL(context.Background(), "price_inexistente", "prof@escola.br")

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusNotFound, appErr.Code)
}

func TestGetPlansMatchesCatalog(t *testing.T) {
	svc := newPaymentService()

	plans := svc.GetPlans(context.Background())
	require.NotEmpty(t, plans)

	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.Id)
	}
	require.Contains(t, ids, "prod_TzUJ3EbgFL26nD")
}
