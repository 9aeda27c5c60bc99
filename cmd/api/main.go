package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"

	"github.com/johnquangdev/meeting-insights/internal/adapter/handler"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/external/transcription"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/internal/usecase/insights"
	"github.com/johnquangdev/meeting-insights/internal/usecase/scoring"
	"github.com/johnquangdev/meeting-insights/internal/usecase/template"
	pkgai "github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache. Redis is optional; a failed connection falls back
	// to the in-memory store so analysis still works in single-node setups.
	log.Println("📦 Connecting to Redis...")
	var store cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory cache", err)
		store = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	jobRepo := repository.NewAnalysisJobRepository(db)

	// Initialize analysis components
	log.Println("🤖 Initializing analysis components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	var summarizer analysis.Summarizer
	if groqClient.Configured() {
		summarizer = groqClient
	} else {
		log.Println("⚠️  GROQ_API_KEY not set, summaries will be extractive")
	}
	engine := analysis.NewEngine(summarizer, nil, logger)
	templates := template.NewManager(logger)
	scorer := scoring.NewScorer(logger)

	// Initialize transcription service
	transcriber := transcription.NewService(&cfg.Assembly, logger)
	if cfg.Assembly.APIKey == "" {
		log.Println("⚠️  ASSEMBLYAI_API_KEY not set, meetings must supply transcript_text directly")
	}

	// Initialize insight service and worker pool
	log.Println("✨ Initializing insight service...")
	insightService := insights.NewService(
		meetingRepo,
		transcriptRepo,
		noteRepo,
		actionItemRepo,
		scoreRepo,
		jobRepo,
		engine,
		templates,
		scorer,
		store,
		cfg,
		logger,
	)
	if err := insightService.StartWorkerPool(context.Background()); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}
	log.Printf("👷 Analysis worker pool started (%d workers)", cfg.Worker.Count)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(
		insightService,
		meetingRepo,
		transcriptRepo,
		noteRepo,
		actionItemRepo,
		scoreRepo,
		transcriber,
		logger,
	)
	templateHandler := handler.NewTemplateHandler(templates, logger)
	webhookHandler := handler.NewWebhookHandler(
		insightService,
		meetingRepo,
		transcriptRepo,
		transcriber,
		&cfg.Assembly,
		logger,
	)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, templateHandler, webhookHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if err := insightService.StopWorkerPool(); err != nil {
		log.Printf("⚠️  Worker pool shutdown error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
