package bootstrap

import (
	"context"
	"log"
	"time"

	"telehealth-be/internal/config"
	"telehealth-be/internal/controller"
	"telehealth-be/internal/handler"
	"telehealth-be/internal/pkg/logger"
	"telehealth-be/internal/pkg/mailer"
	"telehealth-be/internal/repository/implementation"
	"telehealth-be/internal/repository/unitofwork"
	"telehealth-be/internal/service"
	"telehealth-be/internal/websocket"
	"telehealth-be/pkg/llm/factory"

	pktNats "telehealth-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	ProfileController       controller.IProfileController
	DoctorController        controller.IDoctorController
	AppointmentController   controller.IAppointmentController
	MedicalRecordController controller.IMedicalRecordController
	PrescriptionController  controller.IPrescriptionController
	LabReportController     controller.ILabReportController
	ChatController          controller.IChatController
	PaymentController       controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	MailWorkerService service.IMailWorkerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Mail Queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Triage Model Provider
	llmProvider, err := factory.NewLLMProvider(
		context.Background(),
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Doctor directory cache, shared so profile updates can flush it.
	directoryCache := gocache.New(gocache.NoExpiration, 10*time.Minute)

	// 5. Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	profileService := service.NewProfileService(uowFactory, directoryCache)
	doctorService := service.NewDoctorService(uowFactory, directoryCache)
	appointmentService := service.NewAppointmentService(
		uowFactory,
		natsPub,
		pubSub,
		cfg.Keys.AppointmentMailTopic,
		sysLogger,
	)
	medicalRecordService := service.NewMedicalRecordService(uowFactory, natsPub, sysLogger)
	prescriptionService := service.NewPrescriptionService(uowFactory)
	labReportService := service.NewLabReportService(uowFactory)
	chatService := service.NewChatService(uowFactory, llmProvider, natsPub, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, natsPub, cfg.Midtrans, cfg.App.ClientURL, sysLogger)

	mailWorkerService := service.NewMailWorkerService(
		pubSub,
		cfg.Keys.AppointmentMailTopic,
		emailService,
		sysLogger,
	)

	// 6. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	return &Container{
		AuthController:          controller.NewAuthController(authService),
		ProfileController:       controller.NewProfileController(profileService),
		DoctorController:        controller.NewDoctorController(doctorService),
		AppointmentController:   controller.NewAppointmentController(appointmentService),
		MedicalRecordController: controller.NewMedicalRecordController(medicalRecordService),
		PrescriptionController:  controller.NewPrescriptionController(prescriptionService),
		LabReportController:     controller.NewLabReportController(labReportService),
		ChatController:          controller.NewChatController(chatService),
		PaymentController:       controller.NewPaymentController(paymentService),

		MailWorkerService: mailWorkerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
