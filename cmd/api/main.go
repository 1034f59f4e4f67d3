package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/nailyse/salon-api/docs"
	"github.com/nailyse/salon-api/internal/api"
	"github.com/nailyse/salon-api/internal/core/service"
	"github.com/nailyse/salon-api/internal/infrastructure/config"
	mongodb "github.com/nailyse/salon-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nailyse/salon-api/internal/infrastructure/db/redis"
	"github.com/nailyse/salon-api/internal/infrastructure/mail"
	"github.com/nailyse/salon-api/internal/infrastructure/payment"
	"github.com/nailyse/salon-api/pkg/logger"
)

// mockStripePrefix marks a placeholder key: checkout sessions are simulated
// locally instead of contacting Stripe.
const mockStripePrefix = "sk_test_***"

// @title           Nailyse API
// @version         1.0
// @description     Nail salon e-commerce and appointment booking backend.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "salon-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}
	productRepo := mongodb.NewProductRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)

	if cfg.SeedDemoData {
		if err := mongodb.Seed(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("demo data seeding failed")
		}
		log.Info().Msg("demo data seeded")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Email ---
	renderer := mail.NewRenderer(cfg.FrontendURL)
	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromEmail: cfg.SMTP.FromEmail,
		FromName:  cfg.SMTP.FromName,
	}, renderer)
	if err != nil {
		log.Fatal().Err(err).Msg("smtp client setup failed")
	}

	// --- Payments ---
	mockMode := strings.HasPrefix(cfg.Stripe.SecretKey, mockStripePrefix)
	if mockMode {
		log.Warn().Msg("stripe key is a placeholder, running payments in mock mode")
	}
	stripeProvider := payment.NewStripeProvider(cfg.Stripe.SecretKey, cfg.FrontendURL)

	// --- Services ---
	if cfg.Auth.TokenSecret == "" {
		log.Fatal().Msg("TOKEN_SECRET is required")
	}
	tokens := service.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.AllowLegacyTokens)
	authService := service.NewAuthService(userRepo, tokens, mailer, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, mailer, log)
	paymentService := service.NewPaymentService(
		stripeProvider,
		mailer,
		redisdb.NewConfirmDedup(rdb),
		mockMode,
		cfg.FrontendURL,
		log,
	)

	e := api.NewRouter(api.Deps{
		Logger:       log,
		Auth:         authService,
		Users:        userService,
		Products:     productService,
		Appointments: appointmentService,
		Payments:     paymentService,
		Mongo:        db,
		Redis:        rdb,
		FrontendURL:  cfg.FrontendURL,
		StaticDir:    cfg.StaticDir,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
