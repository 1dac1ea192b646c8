// @title        Inventory API
// @version      1.0
// @description  User accounts, password reset and product inventory.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/api"
	"github.com/j88moja/inventory-system/internal/core/service"
	"github.com/j88moja/inventory-system/internal/infrastructure/config"
	mongodb "github.com/j88moja/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/j88moja/inventory-system/internal/infrastructure/db/redis"
	"github.com/j88moja/inventory-system/internal/infrastructure/http/handlers"
	"github.com/j88moja/inventory-system/internal/infrastructure/mail"
	"github.com/j88moja/inventory-system/internal/infrastructure/storage"
	"github.com/j88moja/inventory-system/pkg/logger"
)

func main() {
	// A missing .env is fine; the real environment still applies.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "inventory-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	users := mongodb.NewUserRepository(db)
	tokens := mongodb.NewResetTokenRepository(db)
	products := mongodb.NewProductRepository(db)
	if err := mongodb.EnsureIndexes(ctx, users, tokens, products); err != nil {
		return err
	}

	// ── Redis ────────────────────────────────────────────────
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	forgotLimiter := redisdb.NewLimiter(rdb, "forgotpassword",
		cfg.RateLimit.ForgotPasswordLimit, cfg.RateLimit.ForgotPasswordWindow)

	// ── MinIO ────────────────────────────────────────────────
	blobs, err := storage.NewMinioStore(ctx, storage.Config{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
		PublicURL: cfg.Minio.PublicURL,
	})
	if err != nil {
		return err
	}

	// ── SMTP ─────────────────────────────────────────────────
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Password,
	})

	// ── Services ─────────────────────────────────────────────
	creds := service.NewCredentialService(users, service.CredentialConfig{
		JWTSecret:  cfg.JWTSecret,
		BcryptCost: cfg.BcryptCost,
	}, log)
	resets := service.NewResetService(users, tokens, creds, mailer, service.ResetConfig{
		FrontendURL: cfg.FrontendURL,
		EmailFrom:   cfg.SMTP.From,
	}, log)

	e := api.NewRouter(api.Dependencies{
		Logger:                log,
		Credentials:           creds,
		Resets:                resets,
		Accounts:              service.NewAccountService(users, creds, log),
		Products:              service.NewProductService(products, blobs, log),
		Contact:               service.NewContactService(users, mailer, cfg.SMTP.From, cfg.SMTP.SupportEmail, log),
		ForgotPasswordLimiter: forgotLimiter,
		Readiness: map[string]handlers.Pinger{
			"mongodb": handlers.MongoPinger(db),
			"redis":   handlers.RedisPinger(rdb),
			"minio":   blobs,
		},
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
