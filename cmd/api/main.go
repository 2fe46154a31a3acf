package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/repository/postgres"
	blob "github.com/marcos-nsantos/image-processing-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/imageproc"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/access"
	authUC "github.com/marcos-nsantos/image-processing-backend/internal/usecase/auth"
	imageUC "github.com/marcos-nsantos/image-processing-backend/internal/usecase/image"
	"github.com/marcos-nsantos/image-processing-backend/internal/usecase/transform"
)

//	@title						Image Processing API
//	@version					1.0
//	@description				Upload images, derive transformed variants and hand out presigned URLs.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
	if err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations applied", zap.Int("count", applied))

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	refreshTokenRepo := postgres.NewRefreshTokenRepo(pool)
	imageRepo := postgres.NewImageRepo(pool)
	transformedRepo := postgres.NewTransformedImageRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(cfg.JWT.BcryptCost)

	blobStorage, err := newBlobStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	processor := imageproc.NewProcessor(cfg.Image.JPEGQuality, cfg.Image.MaxDimension)
	issuer := access.NewURLIssuer(blobStorage)

	// Use cases
	authSvc := authUC.NewService(userRepo, refreshTokenRepo, jwtSvc, passwordHasher, cfg.JWT.RefreshTokenTTL)
	transformSvc := transform.NewService(imageRepo, transformedRepo, blobStorage, processor, issuer, logger)
	imageSvc := imageUC.NewService(imageRepo, transformedRepo, blobStorage, issuer, transformSvc, imageUC.Config{
		MaxUploadSize: cfg.Image.MaxUploadSize,
		CascadeDelete: cfg.Image.CascadeDelete,
	}, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	imageHandler := handler.NewImageHandler(imageSvc, cfg.Image.MaxUploadSize, logger)
	transformHandler := handler.NewTransformHandler(transformSvc, logger)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var transformLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer closeRedis(redisClient, logger)
		transformLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, "transform", logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:      authHandler,
		ImageHandler:     imageHandler,
		TransformHandler: transformHandler,
		AuthMiddleware:   authMiddleware,
		TransformLimiter: transformLimiter,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	go purgeExpiredTokens(ctx, authSvc, cfg.JWT.CleanupInterval, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newBlobStorage(ctx context.Context, cfg *config.Config) (blob.BlobStorage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverS3:
		return storage.NewS3Storage(cfg.S3)
	case config.StorageDriverMinIO:
		minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			return nil, err
		}
		if err := minioStorage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return minioStorage, nil
	case config.StorageDriverMemory:
		return storage.NewMemoryStorage(fmt.Sprintf("http://localhost:%d/storage", cfg.Server.Port)), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func purgeExpiredTokens(ctx context.Context, authSvc *authUC.Service, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authSvc.PurgeExpiredTokens(ctx); err != nil {
				logger.Warn("failed to purge expired refresh tokens", zap.Error(err))
			}
		}
	}
}

func closeRedis(client *redis.Client, logger *zap.Logger) {
	if err := client.Close(); err != nil {
		logger.Warn("failed to close redis client", zap.Error(err))
	}
}
