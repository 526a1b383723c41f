package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"family-timeline/internal/adapters/encoder/ffmpeg"
	natsbroker "family-timeline/internal/adapters/eventbroker/nats"
	"family-timeline/internal/adapters/handlers/http/chi"
	auth2 "family-timeline/internal/adapters/handlers/http/chi/v1/auth"
	photo2 "family-timeline/internal/adapters/handlers/http/chi/v1/photo"
	upload2 "family-timeline/internal/adapters/handlers/http/chi/v1/upload"
	video2 "family-timeline/internal/adapters/handlers/http/chi/v1/video"
	redislimiter "family-timeline/internal/adapters/ratelimit/redis"
	"family-timeline/internal/adapters/repository/postgres"
	"family-timeline/internal/adapters/storage/cloudinary"
	"family-timeline/internal/adapters/storage/local"
	"family-timeline/internal/adapters/storage/minio"
	"family-timeline/internal/config"
	"family-timeline/internal/core/port"
	authservice "family-timeline/internal/core/service/auth"
	"family-timeline/internal/core/service/cleanup"
	photoservice "family-timeline/internal/core/service/photo"
	uploadservice "family-timeline/internal/core/service/upload"
	videoservice "family-timeline/internal/core/service/video"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}))

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	signer, err := initUploadSigner(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init upload signer", "error", err, "provider", cfg.Upload.Provider)
		os.Exit(1)
	}
	outputStore, err := local.NewOutputStore(cfg.Video.OutputDir)
	if err != nil {
		logger.Error("failed to init output directory", "error", err, "dir", cfg.Video.OutputDir)
		os.Exit(1)
	}

	//optional infrastructure
	var limiter port.LoginLimiter
	if cfg.RateLimit.RedisAddr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, login throttling fails open until it recovers", "error", err)
		}
		limiter = redislimiter.NewLimiter(redisClient, cfg.RateLimit.LoginMaxAttempts, cfg.RateLimit.LoginWindow)
		logger.Info("login throttling enabled", "max_attempts", cfg.RateLimit.LoginMaxAttempts, "window", cfg.RateLimit.LoginWindow)
	}

	var publisher port.JobEventPublisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := natsbroker.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init NATS publisher", "error", err)
			os.Exit(1)
		}
		publisher = natsPublisher
		defer func() {
			if err := natsPublisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		logger.Info("job events published to NATS", "stream", cfg.NATS.StreamName, "subject", cfg.NATS.Subject)
	}

	//repositories
	photoRepo := postgres.NewSqlPhotoRepository(db)
	videoJobRepo := postgres.NewSqlVideoJobRepository(db)

	//services
	authService := authservice.NewAuthService(cfg.Auth, limiter, logger)
	photoService := photoservice.NewPhotoService(photoRepo)
	uploadService := uploadservice.NewUploadService(signer, cfg.Upload)
	videoService := videoservice.NewVideoService(videoJobRepo, ffmpeg.NewEncoder(cfg.Video, logger), outputStore, publisher, cfg.Video, logger)
	cleanupService := cleanup.NewCleanupService(videoJobRepo, outputStore, 2*cfg.Video.RenderTimeout, logger)

	//http
	handlers := chi.Handlers{
		Auth: auth2.NewAuthHandlerV1(authService, auth2.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Env.IsProd(),
		}, logger),
		Photo:  photo2.NewPhotoHandlerV1(photoService, logger),
		Upload: upload2.NewUploadHandlerV1(uploadService, logger),
		Video:  video2.NewVideoHandlerV1(videoService, logger),
	}
	session := chi.Session{Service: authService, CookieName: cfg.Auth.CookieName}

	router := chi.NewRouter(logger, session, handlers, db, cfg.Env.Env, cfg.Server.TrustedProxies)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init stale job sweeper
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Video.SweepEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()

	logger.Info("waiting for in-flight renders")
	videoService.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initUploadSigner(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.UploadSigner, error) {
	switch cfg.Upload.Provider {
	case config.UploadProviderCloudinary:
		return cloudinary.NewSigner(cfg.Cloudinary), nil
	default:
		adapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	}
}

func initCleanupTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("stale job sweeper initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			swept, err := service.SweepStaleJobs(ctx, time.Now())
			if err != nil {
				logger.Error("failed to sweep stale jobs", "error", err)
			} else if swept > 0 {
				logger.Info("stale jobs marked failed", "count", swept)
			}
		case <-ctx.Done():
			logger.Info("stale job sweeper stopped")
			return
		}
	}

}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
