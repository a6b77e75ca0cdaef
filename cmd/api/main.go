package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/config"
	"github.com/mstancik/leadgen-backend/internal/infra/cache"
	"github.com/mstancik/leadgen-backend/internal/infra/database"
	"github.com/mstancik/leadgen-backend/internal/infra/http/handlers"
	"github.com/mstancik/leadgen-backend/internal/infra/http/middleware"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/crm"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/gemini"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/pagespeed"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/whisper"
	"github.com/mstancik/leadgen-backend/internal/infra/mail"
	"github.com/mstancik/leadgen-backend/internal/infra/queue"
	"github.com/mstancik/leadgen-backend/internal/infra/scraper"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// RabbitMQ and the CRM sync worker are optional; the pipeline runs
	// fine without downstream sync.
	var (
		producer   usecase.QueueProducerInterface
		rabbitConn *amqp.Connection
	)
	if cfg.RabbitHost != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			logrus.Warnf("rabbitmq unavailable, CRM sync disabled: %v", err)
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

			crmClient := crm.NewClient(cfg.CRMBaseURL, cfg.CRMAPIToken)
			if crmClient.Configured() {
				worker := queue.NewWorker(rabbitMQ.Ch, crmClient)
				go worker.Start(queue.QueueName)
			} else {
				logrus.Warn("CRM not configured, lead events will pile up unconsumed")
			}
		}
	}

	// Optional Redis cache in front of the scraper.
	var pageCache scraper.Cache
	if cfg.RedisAddr != "" {
		pc, err := cache.NewPageCache(cfg.RedisAddr)
		if err != nil {
			logrus.Warnf("redis unavailable, page cache disabled: %v", err)
		} else {
			pageCache = pc
		}
	}

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	messageRepo := database.NewMessageRepository(db)

	// 2. Gateways and adapters
	model := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	collector := scraper.NewCollector(pageCache)
	scorer := pagespeed.NewClient(cfg.PageSpeedAPIKey)
	transcriber := whisper.NewClient(cfg.OpenAIAPIKey)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
		cfg.MailFrom, cfg.AdminEmail, cfg.BookingURL,
	)

	// 3. Use cases
	insights := usecase.NewInsightGenerator(model)
	qualifier := usecase.NewLeadQualifier(model)
	auditUC := usecase.NewRunAuditUseCase(collector, scorer, insights, mailSender)
	intakeUC := usecase.NewCaptureLeadUseCase(leadRepo, qualifier, mailSender, producer)
	requalifyUC := usecase.NewRequalifyLeadUseCase(leadRepo, qualifier, mailSender)
	chatUC := usecase.NewChatAgentUseCase(model, intakeUC, messageRepo)

	// 4. Handlers
	auditHandler := handlers.NewAuditHandler(auditUC)
	leadHandler := handlers.NewLeadHandler(intakeUC)
	chatHandler := handlers.NewChatHandler(chatUC)
	transcribeHandler := handlers.NewTranscribeHandler(transcriber)
	adminHandler := handlers.NewAdminHandler(leadRepo, requalifyUC, cfg.AdminSecret)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/api/audit", auditHandler.Handle)
	r.Post("/api/contact", leadHandler.CaptureLead)
	r.Post("/api/contact/voice", leadHandler.VoiceContact)
	r.Post("/api/chat", chatHandler.Handle)
	r.Post("/api/transcribe", transcribeHandler.Handle)
	r.Get("/api/admin/leads", adminHandler.HandleListLeads)
	r.Post("/api/admin/qualify", adminHandler.HandleQualify)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	logrus.Infof("🔥 Lead engine running on port :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
