// Sleep Debt API
//
// REST API for automated sleep debt estimation.
//
//	@title			Sleep Debt API
//	@version		1.0
//	@description	Track sleep records, reconstruct sessions from raw stage samples, and run automated sleep debt calculations with data quality assessment and adaptive missing-day imputation.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-records
//	@tag.description	Sleep record tracking and import endpoints
//
//	@tag.name			sleep-debt
//	@tag.description	Automated sleep debt calculation endpoints
//
//	@tag.name			sleep-insights
//	@tag.description	LLM-backed insights and feedback endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/cloudnine/sleep-debt-api/internal/api"
	"github.com/cloudnine/sleep-debt-api/internal/api/handler"
	"github.com/cloudnine/sleep-debt-api/internal/config"
	"github.com/cloudnine/sleep-debt-api/internal/debt"
	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/langfuse"
	"github.com/cloudnine/sleep-debt-api/internal/llm"
	"github.com/cloudnine/sleep-debt-api/internal/repository"
	"github.com/cloudnine/sleep-debt-api/internal/seed"
	"github.com/cloudnine/sleep-debt-api/internal/service"
	"github.com/cloudnine/sleep-debt-api/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-debt-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sleepRecordRepo := repository.NewSleepRecordRepository(db)

	// Initialize the debt core
	calculator := debt.NewCalculator(cfg.RecommendedSleepHours)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sleepRecordService := service.NewSleepRecordService(sleepRecordRepo, userRepo)
	debtService := service.NewDebtService(sleepRecordRepo, userRepo, calculator)

	// Load the insights system prompt from Langfuse prompt management when
	// configured. The built-in default is used when nothing is configured.
	systemPrompt := ""
	if cfg.LangfusePromptName != "" || cfg.LangfusePromptCache != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    cfg.LangfusePromptCache,
		})
		if err != nil {
			log.Printf("Warning: failed to load insights prompt, using built-in default: %v", err)
		} else {
			systemPrompt = prompt
		}
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIDebtInsightsModel, systemPrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize insights service
	insightsService := service.NewInsightsService(debtService, openaiClient, userRepo)

	// Initialize Langfuse client for the feedback endpoint
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sleepRecordHandler := handler.NewSleepRecordHandler(sleepRecordService)
	debtHandler := handler.NewDebtHandler(debtService)
	insightsHandler := handler.NewInsightsHandler(insightsService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, sleepRecordHandler, debtHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
