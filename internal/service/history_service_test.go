package service

import (
	"context"
	"errors"
	"testing"

	"profai-be/internal/dto"
	"profai-be/internal/entity"
	"profai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) SendGeneratedMaterial(toEmail, toolTitle, subject, resultText string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

func TestHistoryShowReparsesSlides(t *testing.T) {
	userId := uuid.New()
	factory, uow := newFakeFactory(nil)
	uow.records.records = append(uow.records.records, &entity.GenerationRecord{
		Id:         uuid.New(),
		UserId:     userId,
		Tool:       "slides-ia",
		ResultText: "--- SLIDE 1 ---\nTÍTULO: Abertura\nCONTEÚDO: Panorama geral da aula",
		Params:     []byte(`{"count":1}`),
	})

	svc := NewHistoryService(factory, &fakeMailer{})
	res, err := svc.Show(context.Background(), userId, uow.records.records[0].Id)

	require.NoError(t, err)
	require.Len(t, res.Slides, 1)
	require.Equal(t, "Abertura", res.Slides[0].Title)
}

func TestHistoryShowNotFound(t *testing.T) {
	factory, _ := newFakeFactory(nil)
	svc := NewHistoryService(factory, &fakeMailer{})

	_, err := svc.Show(context.Background(), uuid.New(), uuid.New())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusNotFound, appErr.Code)
}

func TestHistoryShareSendsMail(t *testing.T) {
	userId := uuid.New()
	factory, uow := newFakeFactory(nil)
	uow.records.records = append(uow.records.records, &entity.GenerationRecord{
		Id:         uuid.New(),
		UserId:     userId,
		Tool:       "questoes-ia",
		Subject:    "Frações",
		ResultText: "questões",
	})

	mail := &fakeMailer{}
	svc := NewHistoryService(factory, mail)

	err := svc.Share(context.Background(), userId, &dto.ShareGenerationRequest{
		Id:      uow.records.records[0].Id,
		ToEmail: "colega@escola.br",
	})

	require.NoError(t, err)
	require.Equal(t, []string{"colega@escola.br"}, mail.sent)
}

func TestHistoryShareMailerFailure(t *testing.T) {
	userId := uuid.New()
	factory, uow := newFakeFactory(nil)
	uow.records.records = append(uow.records.records, &entity.GenerationRecord{
		Id:     uuid.New(),
		UserId: userId,
		Tool:   "questoes-ia",
	})

	svc := NewHistoryService(factory, &fakeMailer{err: errors.New("smtp down")})

	err := svc.Share(context.Background(), userId, &dto.ShareGenerationRequest{
		Id:      uow.records.records[0].Id,
		ToEmail: "colega@escola.br",
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusBadGateway, appErr.Code)
}
