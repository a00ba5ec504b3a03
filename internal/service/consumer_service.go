package service

import (
	"context"
	"encoding/json"
	"time"

	"profai-be/internal/dto"
	"profai-be/internal/entity"
	"profai-be/internal/pkg/logger"
	"profai-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains GENERATION_COMPLETED and persists the history
// row plus the credit debit in one transaction. Keeping the write off the
// request path means a slow Postgres never delays the teacher's result.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishGenerationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "mensagem inválida", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads never become valid; do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		cs.logger.Error("consumer", "falha ao abrir transação", map[string]interface{}{
			"record_id": payload.RecordId.String(), "error": err.Error(),
		})
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if payload.CreditsCharged > 0 {
		if err := uow.ProfileRepository().DebitCredits(ctx, payload.UserId, payload.CreditsCharged); err != nil {
			cs.logger.Error("consumer", "falha ao debitar créditos", map[string]interface{}{
				"record_id": payload.RecordId.String(),
				"user":      payload.UserId.String(),
				"error":     err.Error(),
			})
			msg.Nack()
			return
		}
	}

	record := entity.GenerationRecord{
		Id:             payload.RecordId,
		UserId:         payload.UserId,
		Tool:           payload.Tool,
		Discipline:     payload.Discipline,
		Grade:          payload.Grade,
		Subject:        payload.Subject,
		Params:         payload.Params,
		ResultText:     payload.ResultText,
		ImageMimeType:  payload.ImageMimeType,
		ImageData:      payload.ImageData,
		WebSearch:      payload.WebSearch,
		CreditsCharged: payload.CreditsCharged,
		CreatedAt:      time.Now(),
	}

	if err := uow.GenerationRepository().Create(ctx, &record); err != nil {
		cs.logger.Error("consumer", "falha ao gravar histórico", map[string]interface{}{
			"record_id": payload.RecordId.String(), "error": err.Error(),
		})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.logger.Error("consumer", "falha ao confirmar transação", map[string]interface{}{
			"record_id": payload.RecordId.String(), "error": err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "geração registrada", map[string]interface{}{
		"record_id": payload.RecordId.String(),
		"tool":      payload.Tool,
		"credits":   payload.CreditsCharged,
	})
	msg.Ack()
}
