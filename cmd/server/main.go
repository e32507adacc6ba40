// Package main is the entry point for the outreach trigger server.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/webforgehq/outreach/internal/config"
	"github.com/webforgehq/outreach/internal/handler"
	"github.com/webforgehq/outreach/internal/middleware"
	"github.com/webforgehq/outreach/internal/pipeline"
	"github.com/webforgehq/outreach/internal/repository"
	"github.com/webforgehq/outreach/internal/scheduler"
	"github.com/webforgehq/outreach/internal/scoring"
	"github.com/webforgehq/outreach/internal/sender"
	"github.com/webforgehq/outreach/internal/sequence"
	"github.com/webforgehq/outreach/internal/sources"
	"github.com/webforgehq/outreach/internal/templates"
	"github.com/webforgehq/outreach/internal/warmup"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			_ = syncErr
		}
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	repo := repository.NewRepository(db)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := templates.NewEngine(rnd, cfg.Email.TrackBaseURL)

	campaigns := buildCampaigns(cfg, repo, logger)

	measurer := scoring.NewPageSpeedClient(cfg.PageSpeed, logger)
	scoreLimiter := rate.NewLimiter(rate.Every(time.Duration(cfg.Pipeline.ScoreDelayMillis)*time.Millisecond), 1)
	scorer := scoring.NewScorer(repo, measurer, scoreLimiter, cfg.PageSpeed.APIKey, logger)

	assigner := sequence.NewAssigner(repo, engine, rnd, logger)

	classifier := sender.NewKeywordClassifier()

	emailTransport, emailDelay := buildEmailTransport(cfg, logger)
	emailLimiter := rate.NewLimiter(rate.Every(emailDelay), 1)
	emailSender, err := sender.NewEmailSender(cfg.Email, repo, emailTransport, classifier, emailLimiter, logger)
	if err != nil {
		logger.Fatal("Failed to build email sender", zap.Error(err))
	}

	smsLimiter := rate.NewLimiter(rate.Every(time.Duration(cfg.SMS.DelaySec)*time.Second), 1)
	smsSender := sender.NewSMSSender(cfg.SMS, repo, sender.NewTwilioTransport(cfg.SMS), classifier, smsLimiter, redisClient, logger)

	orchestrator := pipeline.NewOrchestrator(
		cfg.Pipeline,
		campaigns,
		scorer,
		assigner,
		emailSender,
		smsSender,
		repo,
		redisClient,
		logger,
	)

	tracker := warmup.NewTracker(cfg.Warmup, repo, logger)
	warmupScheduler := scheduler.NewScheduler(
		logger.Named("warmup"),
		time.Duration(cfg.Warmup.IntervalMinutes)*time.Minute,
		func(ctx context.Context) error {
			_, err := tracker.Promote()
			return err
		},
	)

	h := handler.NewHandler(orchestrator, repo, redisClient, cfg.Trigger.Secret, logger)
	router := setupRouter(h)

	middlewareConfig := &middleware.Config{
		Logger:         logger,
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
	}

	finalHandler := middleware.Chain(middlewareConfig)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := warmupScheduler.Start(ctx); err != nil {
		logger.Error("Failed to start warmup scheduler", zap.Error(err))
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if warmupScheduler.IsRunning() {
		if err := warmupScheduler.Stop(); err != nil {
			logger.Error("Failed to stop warmup scheduler", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildCampaigns maps configured campaigns onto source adapters. Inactive or
// misconfigured campaigns are skipped with a warning rather than blocking
// startup.
func buildCampaigns(cfg *config.Config, repo repository.Repository, logger *zap.Logger) []pipeline.Campaign {
	sourceLimiter := rate.NewLimiter(rate.Every(time.Duration(cfg.Pipeline.SourceDelayMillis)*time.Millisecond), 1)

	directoryAdapter := sources.NewDirectoryAdapter(cfg.Directory, repo, sourceLimiter, logger)
	placesAdapter := sources.NewPlacesAdapter(cfg.Places, repo, sourceLimiter, logger)

	var campaigns []pipeline.Campaign
	for _, c := range cfg.Campaigns {
		if !c.Active {
			continue
		}

		var adapter sources.Adapter
		switch c.Source {
		case "directory":
			adapter = directoryAdapter
		case "places":
			adapter = placesAdapter
		default:
			logger.Warn("Skipping campaign with unknown source",
				zap.String("campaign", c.Label),
				zap.String("source", c.Source))
			continue
		}

		campaigns = append(campaigns, pipeline.Campaign{
			Label:   c.Label,
			Adapter: adapter,
			Filters: sources.Filters{
				Industry: c.Industry,
				City:     c.City,
				Country:  c.Country,
				Limit:    c.Limit,
				Campaign: c.Label,
			},
		})
	}

	return campaigns
}

// buildEmailTransport selects the configured backend and its pacing. Raw
// SMTP is paced much slower than the managed bulk API.
func buildEmailTransport(cfg *config.Config, logger *zap.Logger) (sender.EmailTransport, time.Duration) {
	switch cfg.Email.Backend {
	case "bulk":
		return sender.NewBulkTransport(cfg.Email.Bulk), time.Duration(cfg.Email.BulkDelaySec) * time.Second
	case "smtp":
		return sender.NewSMTPTransport(cfg.Email.SMTP), time.Duration(cfg.Email.SMTPDelaySec) * time.Second
	default:
		logger.Warn("Unknown email backend, falling back to smtp",
			zap.String("backend", cfg.Email.Backend))
		return sender.NewSMTPTransport(cfg.Email.SMTP), time.Duration(cfg.Email.SMTPDelaySec) * time.Second
	}
}
