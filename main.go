package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-be/internal/cache"
	"recipe-be/internal/config"
	"recipe-be/internal/controllers"
	"recipe-be/internal/database"
	"recipe-be/internal/jwt"
	"recipe-be/internal/logging"
	"recipe-be/internal/middleware"
	"recipe-be/internal/repository"
	"recipe-be/internal/router"
	"recipe-be/internal/service"
	"recipe-be/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logging.SlogLogger) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis is optional; without it every request reads the user from the database
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn(ctx, "redis unavailable, continuing without cache", "error", err)
			cacheClient = nil
		} else {
			defer cacheClient.Close()
			logger.Info(ctx, "connected to redis cache")
		}
	}

	store, mediaRoot, err := newStorage(ctx, cfg)
	if err != nil {
		return err
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)
	maxUpload := int64(cfg.MaxUploadMB) << 20

	// Services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient, logger.With("component", "auth"))
	userService := service.NewUserService(userRepo, cacheClient, logger.With("component", "users"))
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, store, maxUpload,
		logger.With("component", "recipes"))

	templates, err := controllers.LoadTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	apiLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer apiLimiter.Stop()
	authLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer authLimiter.Stop()

	engine := router.New(router.Options{
		AuthService:        authService,
		UserService:        userService,
		RecipeService:      recipeService,
		TagService:         service.NewLabelService(tagRepo),
		IngredientService:  service.NewLabelService(ingredientRepo),
		Templates:          templates,
		APILimiter:         apiLimiter,
		AuthLimiter:        authLimiter,
		MediaURL:           cfg.MediaURL,
		MediaRoot:          mediaRoot,
		MaxMultipartMemory: maxUpload,
		Middleware:         []gin.HandlerFunc{gin.Logger(), gin.Recovery()},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server starting", "addr", srv.Addr, "storage", cfg.StorageBackend)
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

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStorage picks the image backend. The returned media root is non-empty
// only for local storage, which the router then serves statically.
func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, string, error) {
	switch cfg.StorageBackend {
	case "local":
		return storage.NewLocalStorage(cfg.MediaRoot, cfg.BaseURL+cfg.MediaURL), cfg.MediaRoot, nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, "", errors.New("S3_BUCKET must be set for the s3 storage backend")
		}
		client, err := storage.NewS3Client(ctx, storage.S3Options{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to configure s3: %w", err)
		}
		return storage.NewS3Storage(client, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicURL), "", nil
	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
