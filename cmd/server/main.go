package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SantoSarker101/airbnb-server/internal/api"
	"github.com/SantoSarker101/airbnb-server/internal/infrastructure/config"
	"github.com/SantoSarker101/airbnb-server/internal/infrastructure/db/mongo"
	"github.com/SantoSarker101/airbnb-server/internal/infrastructure/db/redis"
	"github.com/SantoSarker101/airbnb-server/internal/infrastructure/mail"
	"github.com/SantoSarker101/airbnb-server/internal/infrastructure/payment"
	"github.com/SantoSarker101/airbnb-server/internal/infrastructure/queue"
	"github.com/SantoSarker101/airbnb-server/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Notification pipeline ---
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dedup := redis.NewNotificationDedup(rdb)
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, mailer, dedup, log)
	dispatcher.Start(ctx)

	// --- Payments ---
	payments := payment.NewStripeProvider(cfg.Stripe.SecretKey)

	// --- HTTP server ---
	e := api.NewRouter(api.Options{
		DB:         db,
		Redis:      rdb,
		Dispatcher: dispatcher,
		Payments:   payments,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		Currency:   cfg.Stripe.Currency,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("marketplace server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
