package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mrgcar/internal/app"
	"mrgcar/internal/config"
	"mrgcar/internal/ratelimit"
	"mrgcar/internal/server"
	"mrgcar/internal/util"
	"mrgcar/pkg/auth"
	"mrgcar/pkg/queue"
	"mrgcar/pkg/storage"
	"mrgcar/pkg/store"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	sessionTTL, err := config.ParseSessionTTL(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("failed to parse session TTL: %v", err)
	}
	photoURLExpiry, err := config.ParsePhotoURLExpiry(cfg.PhotoURLExpiry)
	if err != nil {
		log.Fatalf("failed to parse photo url expiry: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	st, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	sessions, err := auth.NewSessions(cfg.SessionSecret, sessionTTL)
	if err != nil {
		log.Fatalf("failed to init sessions: %v", err)
	}

	trustedProxies, err := util.NewTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("failed to parse trusted proxies: %v", err)
	}

	var loginLimiter *ratelimit.FixedWindowLimiter
	if cfg.LoginRateLimitPerMinute > 0 {
		if cfg.RedisAddr == "" {
			log.Fatalf("login rate limit requires redisAddr")
		}
		loginLimiter, err = ratelimit.NewRedisFixedWindowLimiter(
			cfg.RedisAddr, cfg.RedisPassword, "mrgcar:ratelimit:login",
			cfg.LoginRateLimitPerMinute, time.Minute,
		)
		if err != nil {
			log.Fatalf("failed to init login rate limiter: %v", err)
		}
	}

	var photos storage.PhotoStore
	if cfg.MinioEndpoint != "" {
		photos, err = storage.NewMinioStore(
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatalf("failed to init photo storage: %v", err)
		}
	} else {
		logger.Warn("photo storage disabled, minioEndpoint not set")
	}

	// Event delivery prefers the broker; the Redis stream is the
	// lighter-weight fallback for single-box deployments.
	var events queue.Publisher
	switch {
	case cfg.AMQPURL != "":
		publisher, err := queue.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("failed to init amqp publisher: %v", err)
		}
		defer publisher.Close()
		events = publisher
	case cfg.RedisAddr != "":
		publisher, err := queue.NewRedisPublisher(queue.RedisPublisherConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			Stream:   cfg.EventStream,
		})
		if err != nil {
			log.Fatalf("failed to init redis publisher: %v", err)
		}
		events = publisher
	default:
		logger.Warn("event publishing disabled, no broker configured")
	}

	appCore, err := app.New(app.Config{
		Store:          st,
		Sessions:       sessions,
		Events:         events,
		Photos:         photos,
		PhotoURLExpiry: photoURLExpiry,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	httpServer := server.New(server.Config{
		App:            appCore,
		LoginLimiter:   loginLimiter,
		TrustedProxies: trustedProxies,
		MaxPhotoBytes:  cfg.MaxPhotoUploadBytes,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server error", "err", err)
	}
	slog.Info("server stopped")
}
