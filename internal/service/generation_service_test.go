package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"profai-be/internal/dto"
	"profai-be/internal/entity"
	"profai-be/internal/pkg/serverutils"
	"profai-be/internal/repository/memory"
	"profai-be/pkg/aiclient"
	"profai-be/pkg/bncc"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var generationCatalog = bncc.Catalog{
	"Matemática": {
		"9º ano": {
			"(EF09MA01) Números irracionais",
			"(EF09MA13) Teorema de Pitágoras",
		},
	},
}

type generationHarness struct {
	svc       IGenerationService
	text      *fakeTextGenerator
	image     *fakeImageGenerator
	publisher *fakePublisher
	inflight  *memory.InflightRegistry
	userId    uuid.UUID
}

func newGenerationHarness(t *testing.T, credits int) *generationHarness {
	t.Helper()
	userId := uuid.New()
	factory, _ := newFakeFactory(&entity.Profile{
		Id:      userId,
		Email:   "prof@escola.br",
		Credits: credits,
	})

	text := &fakeTextGenerator{res: &aiclient.TextResult{Text: "material gerado"}}
	image := &fakeImageGenerator{res: &aiclient.ImageResult{MimeType: "image/png", Data: []byte{1, 2, 3}}}
	publisher := &fakePublisher{}
	inflight := memory.NewInflightRegistry()

	return &generationHarness{
		svc: NewGenerationService(
			factory, text, image, generationCatalog, inflight, publisher, noopLogger{},
		),
		text:      text,
		image:     image,
		publisher: publisher,
		inflight:  inflight,
		userId:    userId,
	}
}

func questionsRequest() *dto.GenerateQuestionsRequest {
	return &dto.GenerateQuestionsRequest{
		Count:      10,
		Grade:      "9º ano",
		Discipline: "Matemática",
		Subject:    "Teorema de Pitágoras",
		Skills:     []string{"(EF09MA13) Teorema de Pitágoras"},
	}
}

func TestGenerateQuestionsHappyPath(t *testing.T) {
	h := newGenerationHarness(t, 5)

	res, err := h.svc.GenerateQuestions(context.Background(), h.userId, questionsRequest())

	require.NoError(t, err)
	require.Equal(t, "questoes-ia", res.Tool)
	require.Equal(t, "material gerado", res.ResultText)
	require.Equal(t, 1, res.CreditsCharged)

	require.Equal(t, 1, h.text.calls)
	require.Contains(t, h.text.lastReq.Prompt, "Crie 10 questões")
	require.Contains(t, h.text.lastReq.Prompt, "Teorema de Pitágoras")
	require.NotEmpty(t, h.text.lastReq.SystemInstruction)

	require.Len(t, h.publisher.payloads, 1)
	var msg dto.PublishGenerationMessage
	require.NoError(t, json.Unmarshal(h.publisher.payloads[0], &msg))
	require.Equal(t, h.userId, msg.UserId)
	require.Equal(t, "questoes-ia", msg.Tool)
	require.Equal(t, 1, msg.CreditsCharged)
	require.NotEmpty(t, msg.Params)
}

func TestGenerateQuestionsClampsCount(t *testing.T) {
	h := newGenerationHarness(t, 5)

	req := questionsRequest()
	req.Count = 500
	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)
	require.NoError(t, err)
	require.Contains(t, h.text.lastReq.Prompt, "Crie 50 questões")

	req.Count = -3
	_, err = h.svc.GenerateQuestions(context.Background(), h.userId, req)
	require.NoError(t, err)
	require.Contains(t, h.text.lastReq.Prompt, "Crie 1 questões")
}

func TestGenerateQuestionsRequiresSubjectOrManualDetails(t *testing.T) {
	h := newGenerationHarness(t, 5)

	req := questionsRequest()
	req.Subject = ""
	req.ManualDetails = ""

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusBadRequest, appErr.Code)
	require.Zero(t, h.text.calls)
}

func TestGenerateQuestionsRejectsStaleSkills(t *testing.T) {
	h := newGenerationHarness(t, 5)

	req := questionsRequest()
	req.Skills = []string{"(EF01LP01) Reconhecer protocolos de leitura"}

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusBadRequest, appErr.Code)
	require.Zero(t, h.text.calls)
}

func TestGenerateQuestionsInsufficientCredits(t *testing.T) {
	h := newGenerationHarness(t, 0)

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, questionsRequest())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusPaymentRequired, appErr.Code)
	require.Zero(t, h.text.calls, "credit refusal must not reach the model")
	require.Empty(t, h.publisher.payloads)
}

func TestGenerateQuestionsSingleFlight(t *testing.T) {
	h := newGenerationHarness(t, 5)

	require.True(t, h.inflight.TryAcquire(h.userId, "questoes-ia"))

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, questionsRequest())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusConflict, appErr.Code)
	require.Zero(t, h.text.calls)

	// Released flag accepts the next submission.
	h.inflight.Release(h.userId, "questoes-ia")
	_, err = h.svc.GenerateQuestions(context.Background(), h.userId, questionsRequest())
	require.NoError(t, err)
}

func TestGenerateQuestionsReleasesBusyOnModelError(t *testing.T) {
	h := newGenerationHarness(t, 5)
	h.text.err = errors.New("model down")

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, questionsRequest())

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusBadGateway, appErr.Code)
	require.Empty(t, h.publisher.payloads)

	// The flag must be cleared so a retry is accepted.
	h.text.err = nil
	_, err = h.svc.GenerateQuestions(context.Background(), h.userId, questionsRequest())
	require.NoError(t, err)
}

func TestGenerateQuestionsAppendsSources(t *testing.T) {
	h := newGenerationHarness(t, 5)
	h.text.res = &aiclient.TextResult{
		Text: "questões",
		Citations: []aiclient.Citation{
			{Title: "Portal BNCC", URI: "https://example.org/bncc"},
		},
	}

	req := questionsRequest()
	req.WebSearch = true

	res, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)
	require.NoError(t, err)
	require.True(t, h.text.lastReq.WebSearch)
	require.Contains(t, res.ResultText, "### Fontes de Pesquisa (Validação Pedagógica):")
	require.Contains(t, res.ResultText, "[Portal BNCC](https://example.org/bncc)")
}

func TestGenerateQuestionsNoCitationsNoHeader(t *testing.T) {
	h := newGenerationHarness(t, 5)

	req := questionsRequest()
	req.WebSearch = true

	res, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)
	require.NoError(t, err)
	require.NotContains(t, res.ResultText, "Fontes de Pesquisa")
}

func TestGenerateQuestionsRejectsBadFile(t *testing.T) {
	h := newGenerationHarness(t, 5)

	req := questionsRequest()
	req.File = &dto.FileAttachment{MimeType: "application/pdf", Data: "not-base64!!"}

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusBadRequest, appErr.Code)
	require.Zero(t, h.text.calls)
}

func TestGenerateQuestionsForwardsFile(t *testing.T) {
	h := newGenerationHarness(t, 5)

	payload := []byte("%PDF-1.4 conteúdo")
	req := questionsRequest()
	req.File = &dto.FileAttachment{
		MimeType: "application/pdf",
		Data:     base64.StdEncoding.EncodeToString(payload),
	}

	_, err := h.svc.GenerateQuestions(context.Background(), h.userId, req)
	require.NoError(t, err)
	require.NotNil(t, h.text.lastReq.File)
	require.Equal(t, "application/pdf", h.text.lastReq.File.MimeType)
	require.Equal(t, payload, h.text.lastReq.File.Data)
	require.Contains(t, h.text.lastReq.Prompt, "arquivo anexo")
}

func TestGenerateSlidesParsesOutline(t *testing.T) {
	h := newGenerationHarness(t, 5)
	h.text.res = &aiclient.TextResult{
		Text: "--- SLIDE 1 ---\nTÍTULO: Introdução\nCONTEÚDO: Conceitos básicos do teorema\n--- SLIDE 2 ---\nTÍTULO: Aplicações\nCONTEÚDO: Exercícios aplicados em sala",
	}

	res, err := h.svc.GenerateSlides(context.Background(), h.userId, &dto.GenerateSlidesRequest{
		Count:      2,
		Subject:    "Teorema de Pitágoras",
		Discipline: "Matemática",
		Grade:      "9º ano",
	})

	require.NoError(t, err)
	require.Len(t, res.Slides, 2)
	require.Equal(t, "Introdução", res.Slides[0].Title)
	require.Equal(t, "Aplicações", res.Slides[1].Title)
	require.Nil(t, res.Image)
	require.Zero(t, h.image.calls)
}

func TestGenerateSlidesWithImage(t *testing.T) {
	h := newGenerationHarness(t, 5)

	res, err := h.svc.GenerateSlides(context.Background(), h.userId, &dto.GenerateSlidesRequest{
		Count:         3,
		Subject:       "Frações",
		Discipline:    "Matemática",
		Grade:         "9º ano",
		IncludeImages: true,
	})

	require.NoError(t, err)
	require.Equal(t, 1, h.image.calls)
	require.NotNil(t, res.Image)
	require.Equal(t, "image/png", res.Image.MimeType)
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), res.Image.Data)
}

func TestGenerateSlidesImageFailureIsNonFatal(t *testing.T) {
	h := newGenerationHarness(t, 5)
	h.image.err = errors.New("image model down")

	res, err := h.svc.GenerateSlides(context.Background(), h.userId, &dto.GenerateSlidesRequest{
		Count:         3,
		Subject:       "Frações",
		Discipline:    "Matemática",
		Grade:         "9º ano",
		IncludeImages: true,
	})

	require.NoError(t, err)
	require.Nil(t, res.Image)
	require.NotEmpty(t, res.ResultText)
	require.Len(t, h.publisher.payloads, 1)
}

func TestGenerateLessonPlan(t *testing.T) {
	h := newGenerationHarness(t, 5)

	res, err := h.svc.GenerateLessonPlan(context.Background(), h.userId, &dto.GenerateLessonPlanRequest{
		Period:     "Semanal",
		Grade:      "9º ano",
		Discipline: "Matemática",
		Subject:    "Geometria",
		WeekDays:   []string{"Segunda", "Quarta"},
	})

	require.NoError(t, err)
	require.Equal(t, "plano-aula", res.Tool)
	require.Contains(t, h.text.lastReq.Prompt, "Semanal")
	require.Contains(t, h.text.lastReq.Prompt, "Segunda, Quarta")
}

func TestGenerateEssayRequiresTextOrFile(t *testing.T) {
	h := newGenerationHarness(t, 5)

	_, err := h.svc.GenerateEssayCorrection(context.Background(), h.userId, &dto.GenerateEssayCorrectionRequest{
		Grade:      "9º ano",
		Discipline: "Matemática",
		Theme:      "Meio ambiente",
	})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, fiber.StatusBadRequest, appErr.Code)
	require.Zero(t, h.text.calls)
}

func TestGenerateEssayInlinesText(t *testing.T) {
	h := newGenerationHarness(t, 5)

	_, err := h.svc.GenerateEssayCorrection(context.Background(), h.userId, &dto.GenerateEssayCorrectionRequest{
		Grade:      "9º ano",
		Discipline: "Matemática",
		Theme:      "Meio ambiente",
		EssayText:  "O planeta precisa de cuidado.",
	})

	require.NoError(t, err)
	require.Contains(t, h.text.lastReq.Prompt, "REDAÇÃO DO ESTUDANTE:")
	require.Contains(t, h.text.lastReq.Prompt, "O planeta precisa de cuidado.")
}
