package bootstrap

import (
	"context"
	"log"

	"profai-be/internal/config"
	"profai-be/internal/constant"
	"profai-be/internal/controller"
	"profai-be/internal/pkg/logger"
	"profai-be/internal/pkg/mailer"
	"profai-be/internal/repository/memory"
	"profai-be/internal/repository/unitofwork"
	"profai-be/internal/service"
	"profai-be/pkg/aiclient"
	"profai-be/pkg/bncc"
	"profai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CatalogController    controller.ICatalogController
	GenerationController controller.IGenerationController
	HistoryController    controller.IHistoryController
	UserController       controller.IUserController
	PaymentController    controller.IPaymentController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI client
	gemini, err := aiclient.NewGeminiClient(
		context.Background(),
		cfg.Keys.GoogleGemini,
		cfg.Ai.TextModel,
		cfg.Ai.ImageModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Gemini client: %v", err)
	}
	log.Printf("[INFO] Using Gemini models: text=%s image=%s", cfg.Ai.TextModel, cfg.Ai.ImageModel)

	catalog := bncc.Catalog(constant.BNCCData)
	inflight := memory.NewInflightRegistry()

	// 4. Services
	publisherService := service.NewPublisherService(events.TopicGenerationCompleted, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		events.TopicGenerationCompleted,
		uowFactory,
		sysLogger,
	)

	catalogService := service.NewCatalogService(catalog)
	suggestionService := service.NewSuggestionService(gemini, catalog, sysLogger)
	generationService := service.NewGenerationService(
		uowFactory,
		gemini,
		gemini,
		catalog,
		inflight,
		publisherService,
		sysLogger,
	)
	historyService := service.NewHistoryService(uowFactory, emailService)
	userService := service.NewUserService(uowFactory)
	paymentService := service.NewPaymentService(cfg.Payment.CheckoutLinks, sysLogger)

	// 5. Controllers
	return &Container{
		CatalogController:    controller.NewCatalogController(catalogService, suggestionService),
		GenerationController: controller.NewGenerationController(generationService),
		HistoryController:    controller.NewHistoryController(historyService),
		UserController:       controller.NewUserController(userService),
		PaymentController:    controller.NewPaymentController(paymentService, userService),

		ConsumerService: consumerService,
	}
}
