package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/linkdeck/linkdeck/internal/auth"
	"github.com/linkdeck/linkdeck/internal/config"
	"github.com/linkdeck/linkdeck/internal/directory"
	"github.com/linkdeck/linkdeck/internal/httpserver"
	"github.com/linkdeck/linkdeck/internal/httpserver/deps"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/redis"
	"github.com/linkdeck/linkdeck/internal/seeder"
	"github.com/linkdeck/linkdeck/internal/store"
	objectstore "github.com/linkdeck/linkdeck/internal/store/object"
	redisstore "github.com/linkdeck/linkdeck/internal/store/redis"
	"github.com/linkdeck/linkdeck/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	seeder      *seeder.Seeder
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable.
	// Sessions always live in Redis, even with the s3 document backend.
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Pick the document store backend.
	var docStore store.Store
	switch cfg.StoreBackend {
	case config.StoreBackendS3:
		s3, err := objectstore.New(objectstore.Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Bucket:    cfg.S3Bucket,
			ObjectKey: cfg.S3ObjectKey,
		})
		if err != nil {
			loggerClient.Errorf("Failed to initialize object storage: %v", err)
			os.Exit(1)
		}
		docStore = s3
		loggerClient.Info("document store: s3",
			logger.String("endpoint", cfg.S3Endpoint),
			logger.String("bucket", cfg.S3Bucket))
	default:
		docStore = redisstore.NewStore(redisClient)
		loggerClient.Info("document store: redis")
	}

	svc := directory.NewService(docStore, loggerClient)
	sessions := auth.NewSessionStore(redisClient, cfg.SessionTTL)
	seed := seeder.New(cfg.SeedFile, docStore, svc, loggerClient)

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           time.Now,
		AllowedHosts:      cfg.AllowedHosts,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		RedisClient:       redisClient,
		Store:             docStore,
		Directory:         svc,
		Sessions:          sessions,
		AdminPasswordHash: cfg.AdminPasswordHash,
		SecureCookies:     cfg.SecureCookies,
		SessionTTL:        cfg.SessionTTL,
		LoginRateBurst:    cfg.LoginRateBurst,
		LoginRatePerMin:   cfg.LoginRatePerMin,
		StaticDir:         cfg.StaticDir,
		CORSOrigins:       cfg.CORSOrigins,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		seeder:      seed,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting linkdeck v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("linkdeck %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed an empty store before accepting traffic. Never overwrites an
	// existing document.
	if err := a.seeder.EnsureSeeded(ctx); err != nil {
		return fmt.Errorf("failed to seed directory: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ linkdeck stopped cleanly")
	return nil
}
