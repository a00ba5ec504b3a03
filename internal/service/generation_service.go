package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"profai-be/internal/constant"
	"profai-be/internal/dto"
	"profai-be/internal/pkg/logger"
	"profai-be/internal/pkg/serverutils"
	"profai-be/internal/repository/memory"
	"profai-be/internal/repository/specification"
	"profai-be/internal/repository/unitofwork"
	"profai-be/pkg/aiclient"
	"profai-be/pkg/bncc"
	"profai-be/pkg/events"
	"profai-be/pkg/slides"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGenerationService interface {
	GenerateQuestions(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuestionsRequest) (*dto.GenerationResponse, error)
	GenerateSlides(ctx context.Context, userId uuid.UUID, req *dto.GenerateSlidesRequest) (*dto.GenerationResponse, error)
	GenerateLessonPlan(ctx context.Context, userId uuid.UUID, req *dto.GenerateLessonPlanRequest) (*dto.GenerationResponse, error)
	GenerateEssayCorrection(ctx context.Context, userId uuid.UUID, req *dto.GenerateEssayCorrectionRequest) (*dto.GenerationResponse, error)
}

type generationService struct {
	uowFactory       unitofwork.RepositoryFactory
	textGenerator    aiclient.TextGenerator
	imageGenerator   aiclient.ImageGenerator
	catalog          bncc.Catalog
	inflight         *memory.InflightRegistry
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	textGenerator aiclient.TextGenerator,
	imageGenerator aiclient.ImageGenerator,
	catalog bncc.Catalog,
	inflight *memory.InflightRegistry,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IGenerationService {
	return &generationService{
		uowFactory:       uowFactory,
		textGenerator:    textGenerator,
		imageGenerator:   imageGenerator,
		catalog:          catalog,
		inflight:         inflight,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

// clampCount applies the [1,50] bound the form enforces on edit; the
// server repeats it at submit time.
func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// orNone fills optional prompt slots the way the frontend did: empty
// fields read "Nenhum" inside the instruction instead of a hole.
func orNone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Nenhum"
	}
	return s
}

func orDefaultLanguage(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Português (Brasil)"
	}
	return s
}

func joinSkills(skills []string) string {
	if len(skills) == 0 {
		return "Nenhuma"
	}
	return strings.Join(skills, "; ")
}

func (g *generationService) validateSkills(discipline, grade string, skills []string) error {
	// A selection made under a previous discipline/grade pair is stale;
	// reject it so the client resets instead of silently dropping codes.
	for _, skill := range skills {
		if !g.catalog.Contains(discipline, grade, skill) {
			return serverutils.NewAppError(fiber.StatusBadRequest,
				fmt.Sprintf("habilidade fora do catálogo para %s / %s: %s", discipline, grade, skill))
		}
	}
	return nil
}

func decodeFile(file *dto.FileAttachment) (*aiclient.FilePayload, error) {
	if file == nil {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(file.Data)
	if err != nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest, "arquivo anexo inválido")
	}
	return &aiclient.FilePayload{
		MimeType: file.MimeType,
		Data:     data,
	}, nil
}

// paramsSnapshot stores the request for later inspection, replacing file
// bytes with metadata.
func paramsSnapshot(req interface{}, file *dto.FileAttachment) json.RawMessage {
	raw, err := json.Marshal(req)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return raw
	}
	if file != nil {
		m["file"] = map[string]interface{}{
			"mime_type":  file.MimeType,
			"size_bytes": base64.StdEncoding.DecodedLen(len(file.Data)),
		}
	}
	out, err := json.Marshal(m)
	if err != nil {
		return raw
	}
	return out
}

// checkCredits verifies the balance before any model call. The debit
// itself happens with the history write, in the consumer's transaction.
func (g *generationService) checkCredits(ctx context.Context, userId uuid.UUID, cost int) error {
	uow := g.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if profile == nil {
		return serverutils.NewAppError(fiber.StatusNotFound, "perfil não encontrado")
	}
	if profile.Credits < cost {
		return serverutils.NewAppError(fiber.StatusPaymentRequired, "créditos insuficientes")
	}
	return nil
}

func toolCost(kind constant.ToolKind) int {
	if tool, ok := constant.FindTool(kind); ok {
		return tool.CreditCost
	}
	return 1
}

type generationInput struct {
	kind       constant.ToolKind
	discipline string
	grade      string
	subject    string
	prompt     string
	file       *aiclient.FilePayload
	webSearch  bool
	sources    string // header appended when citations return
	params     json.RawMessage
}

// acquire marks the (user, kind) pair busy for the whole request,
// including slide image generation. The returned release runs deferred so
// an error can never leave a wedged pending state.
func (g *generationService) acquire(userId uuid.UUID, kind constant.ToolKind) (func(), error) {
	if !g.inflight.TryAcquire(userId, string(kind)) {
		return nil, serverutils.NewAppError(fiber.StatusConflict, "geração em andamento, aguarde a anterior terminar")
	}
	return func() { g.inflight.Release(userId, string(kind)) }, nil
}

// generate runs the shared pipeline: credit check, model call, sources
// section.
func (g *generationService) generate(ctx context.Context, userId uuid.UUID, in *generationInput) (*dto.GenerationResponse, error) {
	kind := string(in.kind)
	cost := toolCost(in.kind)
	if err := g.checkCredits(ctx, userId, cost); err != nil {
		return nil, err
	}

	res, err := g.textGenerator.GenerateText(ctx, &aiclient.TextRequest{
		SystemInstruction: constant.SystemInstruction,
		Prompt:            in.prompt,
		File:              in.file,
		WebSearch:         in.webSearch,
	})
	if err != nil {
		g.logger.Error("generation", "falha na geração", map[string]interface{}{
			"tool":  kind,
			"user":  userId.String(),
			"error": err.Error(),
		})
		return nil, serverutils.WrapAppError(fiber.StatusBadGateway,
			"não foi possível gerar o material agora", err)
	}

	text := res.Text
	if in.webSearch && in.sources != "" {
		text = aiclient.AppendSources(text, in.sources, res.Citations)
	}

	return &dto.GenerationResponse{
		Tool:           kind,
		ResultText:     text,
		CreditsCharged: cost,
	}, nil
}

// publishCompleted hands the finished generation to the history consumer.
// A publish failure is logged, never surfaced: the teacher already has the
// material in hand.
func (g *generationService) publishCompleted(ctx context.Context, userId uuid.UUID, in *generationInput, resp *dto.GenerationResponse) {
	msg := dto.PublishGenerationMessage{
		RecordId:       uuid.New(),
		UserId:         userId,
		Tool:           resp.Tool,
		Discipline:     in.discipline,
		Grade:          in.grade,
		Subject:        in.subject,
		Params:         in.params,
		ResultText:     resp.ResultText,
		WebSearch:      in.webSearch,
		CreditsCharged: resp.CreditsCharged,
	}
	if resp.Image != nil {
		data, err := base64.StdEncoding.DecodeString(resp.Image.Data)
		if err == nil {
			msg.ImageMimeType = &resp.Image.MimeType
			msg.ImageData = data
		}
	}

	ev := events.BaseEvent{
		Type:       events.TypeGenerationCompleted,
		Data:       map[string]interface{}{"record_id": msg.RecordId.String(), "tool": msg.Tool},
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		g.logger.Error("generation", "falha ao serializar evento", map[string]interface{}{
			"event": ev.EventType(), "error": err.Error(),
		})
		return
	}
	if err := g.publisherService.Publish(ctx, payload); err != nil {
		g.logger.Error("generation", "falha ao publicar evento", map[string]interface{}{
			"event": ev.EventType(), "error": err.Error(),
		})
		return
	}
	g.logger.Info("generation", "evento publicado", map[string]interface{}{
		"event": ev.EventType(), "record_id": msg.RecordId.String(), "tool": msg.Tool,
	})
}

func (g *generationService) GenerateQuestions(ctx context.Context, userId uuid.UUID, req *dto.GenerateQuestionsRequest) (*dto.GenerationResponse, error) {
	if strings.TrimSpace(req.Subject) == "" && strings.TrimSpace(req.ManualDetails) == "" {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest,
			"informe o assunto ou os detalhes manuais da BNCC")
	}
	if err := g.validateSkills(req.Discipline, req.Grade, req.Skills); err != nil {
		return nil, err
	}
	file, err := decodeFile(req.File)
	if err != nil {
		return nil, err
	}

	fileNote := ""
	if file != nil {
		fileNote = constant.FileAttachedQuestionsNote
	}

	count := clampCount(req.Count)
	prompt := fmt.Sprintf(constant.QuestionsPromptTemplate,
		count,
		req.Grade,
		req.Discipline,
		orNone(req.Subject),
		orNone(req.Context),
		joinSkills(req.Skills),
		orNone(req.ManualDetails),
		orDefaultLanguage(req.Language),
		orNone(req.OtherDetails),
		fileNote,
	)

	in := &generationInput{
		kind:       constant.ToolQuestions,
		discipline: req.Discipline,
		grade:      req.Grade,
		subject:    req.Subject,
		prompt:     prompt,
		file:       file,
		webSearch:  req.WebSearch,
		sources:    constant.SourcesHeaderQuestions,
		params:     paramsSnapshot(req, req.File),
	}

	release, err := g.acquire(userId, in.kind)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := g.generate(ctx, userId, in)
	if err != nil {
		return nil, err
	}

	g.publishCompleted(ctx, userId, in, resp)
	return resp, nil
}

func (g *generationService) GenerateSlides(ctx context.Context, userId uuid.UUID, req *dto.GenerateSlidesRequest) (*dto.GenerationResponse, error) {
	if strings.TrimSpace(req.Subject) == "" && strings.TrimSpace(req.ManualDetails) == "" {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest,
			"informe o assunto ou os detalhes manuais da BNCC")
	}
	if err := g.validateSkills(req.Discipline, req.Grade, req.Skills); err != nil {
		return nil, err
	}
	file, err := decodeFile(req.File)
	if err != nil {
		return nil, err
	}

	fileNote := ""
	if file != nil {
		fileNote = constant.FileAttachedSlidesNote
	}

	count := clampCount(req.Count)
	prompt := fmt.Sprintf(constant.SlidesPromptTemplate,
		count,
		orNone(req.Subject),
		req.Discipline,
		req.Grade,
		orNone(req.ClassContext),
		orNone(req.Duration),
		orDefaultLanguage(req.Language),
		joinSkills(req.Skills),
		orNone(req.ManualDetails),
		fileNote,
	)

	in := &generationInput{
		kind:       constant.ToolSlides,
		discipline: req.Discipline,
		grade:      req.Grade,
		subject:    req.Subject,
		prompt:     prompt,
		file:       file,
		webSearch:  req.WebSearch,
		sources:    constant.SourcesHeaderSlides,
		params:     paramsSnapshot(req, req.File),
	}

	release, err := g.acquire(userId, in.kind)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := g.generate(ctx, userId, in)
	if err != nil {
		return nil, err
	}

	// The parsed outline rides alongside the raw text. Count mismatches
	// pass through: the model may under- or over-produce.
	for _, s := range slides.Parse(resp.ResultText) {
		resp.Slides = append(resp.Slides, dto.SlideItem{Title: s.Title, Body: s.Body})
	}

	if req.IncludeImages {
		theme := req.Subject
		if strings.TrimSpace(theme) == "" {
			theme = req.ManualDetails
		}
		img, err := g.imageGenerator.GenerateImage(ctx, &aiclient.ImageRequest{
			Prompt:      fmt.Sprintf(constant.ThematicImagePromptTemplate, theme, req.Discipline),
			AspectRatio: "16:9",
		})
		if err != nil {
			// Non-fatal: the outline is still returned without the image.
			g.logger.Warn("generation", "falha ao gerar imagem temática", map[string]interface{}{
				"user": userId.String(), "error": err.Error(),
			})
		} else if img != nil {
			resp.Image = &dto.GeneratedImage{
				MimeType: img.MimeType,
				Data:     base64.StdEncoding.EncodeToString(img.Data),
			}
		}
	}

	g.publishCompleted(ctx, userId, in, resp)
	return resp, nil
}

func (g *generationService) GenerateLessonPlan(ctx context.Context, userId uuid.UUID, req *dto.GenerateLessonPlanRequest) (*dto.GenerationResponse, error) {
	if strings.TrimSpace(req.Subject) == "" && strings.TrimSpace(req.ManualDetails) == "" {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest,
			"informe o assunto ou os detalhes manuais da BNCC")
	}
	if err := g.validateSkills(req.Discipline, req.Grade, req.Skills); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(constant.LessonPlanPromptTemplate,
		req.Period,
		req.Grade,
		req.Discipline,
		orNone(req.Multidisciplinary),
		orNone(strings.Join(req.WeekDays, ", ")),
		joinSkills(req.Skills),
		orNone(req.ManualDetails),
	)

	in := &generationInput{
		kind:       constant.ToolLessonPlan,
		discipline: req.Discipline,
		grade:      req.Grade,
		subject:    req.Subject,
		prompt:     prompt,
		params:     paramsSnapshot(req, nil),
	}

	release, err := g.acquire(userId, in.kind)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := g.generate(ctx, userId, in)
	if err != nil {
		return nil, err
	}

	g.publishCompleted(ctx, userId, in, resp)
	return resp, nil
}

func (g *generationService) GenerateEssayCorrection(ctx context.Context, userId uuid.UUID, req *dto.GenerateEssayCorrectionRequest) (*dto.GenerationResponse, error) {
	if strings.TrimSpace(req.EssayText) == "" && req.File == nil {
		return nil, serverutils.NewAppError(fiber.StatusBadRequest,
			"envie o texto da redação ou o arquivo anexo")
	}
	file, err := decodeFile(req.File)
	if err != nil {
		return nil, err
	}

	essayBlock := constant.FileAttachedEssayNote
	if file == nil {
		essayBlock = "REDAÇÃO DO ESTUDANTE:\n" + req.EssayText
	}

	prompt := fmt.Sprintf(constant.EssayCorrectionPromptTemplate,
		req.Grade,
		req.Discipline,
		orNone(req.Theme),
		orDefaultLanguage(req.Language),
		orNone(req.Notes),
		essayBlock,
	)

	in := &generationInput{
		kind:       constant.ToolEssayCorrection,
		discipline: req.Discipline,
		grade:      req.Grade,
		subject:    req.Theme,
		prompt:     prompt,
		file:       file,
		params:     paramsSnapshot(req, req.File),
	}

	release, err := g.acquire(userId, in.kind)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := g.generate(ctx, userId, in)
	if err != nil {
		return nil, err
	}

	g.publishCompleted(ctx, userId, in, resp)
	return resp, nil
}
