package service

import (
	"context"
	"net/url"
	"time"

	"profai-be/internal/constant"
	"profai-be/internal/dto"
	"profai-be/internal/pkg/logger"
	"profai-be/internal/pkg/serverutils"
	"profai-be/pkg/events"

	"github.com/gofiber/fiber/v2"
)

type IPaymentService interface {
	GetPlans(ctx context.Context) []*dto.PlanResponse
	GetCheckoutURL(ctx context.Context, planId, userEmail string) (*dto.CheckoutURLResponse, error)
}

// paymentService resolves static hosted-checkout links. There is no
// server-side transaction and no webhook: the payment page belongs to the
// processor, this service only hands out the right URL.
type paymentService struct {
	checkoutLinks map[string]string
	logger        logger.ILogger
}

func NewPaymentService(checkoutLinks map[string]string, sysLogger logger.ILogger) IPaymentService {
	return &paymentService{
		checkoutLinks: checkoutLinks,
		logger:        sysLogger,
	}
}

func (p *paymentService) GetPlans(ctx context.Context) []*dto.PlanResponse {
	result := make([]*dto.PlanResponse, 0, len(constant.Plans))
	for _, plan := range constant.Plans {
		result = append(result, &dto.PlanResponse{
			Id:          plan.Id,
			Name:        plan.Name,
			PriceLabel:  plan.PriceLabel,
			Credits:     plan.Credits,
			Description: plan.Description,
		})
	}
	return result
}

func (p *paymentService) GetCheckoutURL(ctx context.Context, planId, userEmail string) (*dto.CheckoutURLResponse, error) {
	rawURL, ok := p.checkoutLinks[planId]
	if !ok || rawURL == "" {
		return nil, serverutils.NewAppError(fiber.StatusNotFound,
			"link de pagamento não configurado para este plano")
	}

	checkoutURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, serverutils.WrapAppError(fiber.StatusInternalServerError,
			"link de pagamento inválido", err)
	}

	// Prefill the teacher's e-mail on the processor's page.
	if userEmail != "" {
		q := checkoutURL.Query()
		q.Set("prefilled_email", userEmail)
		checkoutURL.RawQuery = q.Encode()
	}

	ev := events.BaseEvent{
		Type:       events.TypeCheckoutStarted,
		Data:       map[string]interface{}{"plan_id": planId},
		OccurredAt: time.Now(),
	}
	p.logger.Info("payment", "checkout iniciado", map[string]interface{}{
		"event":   ev.EventType(),
		"plan_id": planId,
	})

	return &dto.CheckoutURLResponse{
		PlanId:      planId,
		CheckoutURL: checkoutURL.String(),
	}, nil
}
