package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)

	"github.com/brandvoice/voice-engine/pkg/config"
	"github.com/brandvoice/voice-engine/pkg/content"
	"github.com/brandvoice/voice-engine/pkg/database"
	"github.com/brandvoice/voice-engine/pkg/handlers"
	"github.com/brandvoice/voice-engine/pkg/llm"
	"github.com/brandvoice/voice-engine/pkg/middleware"
	"github.com/brandvoice/voice-engine/pkg/repositories"
	"github.com/brandvoice/voice-engine/pkg/retry"
	"github.com/brandvoice/voice-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load .env if present; real deployments set environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("bind_addr", cfg.BindAddr),
		zap.String("port", cfg.Port),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.Bool("use_stub_llm", cfg.LLM.UseStub))

	ctx := context.Background()

	db, err := retry.DoWithResult(ctx, retry.DefaultConfig(), func() (*database.DB, error) {
		return database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: cfg.Database.MaxConnections,
		})
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := runMigrations(cfg, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	brandRepo := repositories.NewBrandRepository(db)
	profileRepo := repositories.NewVoiceProfileRepository(db)
	evalRepo := repositories.NewVoiceEvaluationRepository(db)

	// Domain components
	fetcher := content.NewHTTPFetcher(content.DefaultTimeout)
	aggregator := content.NewAggregator(fetcher, logger)
	llmFactory := llm.NewFactory(&cfg.LLM, logger)

	// Services
	brandService := services.NewBrandService(brandRepo, logger)
	voiceService := services.NewVoiceService(brandRepo, profileRepo, evalRepo, aggregator, llmFactory, logger)

	// HTTP surface
	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewBrandHandler(brandService, logger).RegisterRoutes(mux)
	handlers.NewVoiceHandler(voiceService, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting voice-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a production logger, or a development logger when the
// debug flag is set.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runMigrations applies pending migrations through database/sql, which
// golang-migrate requires.
func runMigrations(cfg *config.Config, logger *zap.Logger) error {
	sqlDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	return database.RunMigrations(sqlDB, cfg.MigrationsPath, logger)
}
