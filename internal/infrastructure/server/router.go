package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-processing-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/image-processing-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	authHandler      *handler.AuthHandler
	imageHandler     *handler.ImageHandler
	transformHandler *handler.TransformHandler
	authMiddleware   *middleware.AuthMiddleware
	transformLimiter *middleware.RateLimiter
	allowedOrigins   []string
	logger           *zap.Logger
}

type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	ImageHandler     *handler.ImageHandler
	TransformHandler *handler.TransformHandler
	AuthMiddleware   *middleware.AuthMiddleware
	// TransformLimiter is optional; nil disables rate limiting.
	TransformLimiter *middleware.RateLimiter
	AllowedOrigins   []string
	Logger           *zap.Logger
	Environment      string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		authHandler:      cfg.AuthHandler,
		imageHandler:     cfg.ImageHandler,
		transformHandler: cfg.TransformHandler,
		authMiddleware:   cfg.AuthMiddleware,
		transformLimiter: cfg.TransformLimiter,
		allowedOrigins:   cfg.AllowedOrigins,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		images := api.Group("/images")
		images.Use(r.authMiddleware.RequireAuth())
		{
			images.POST("", r.imageHandler.Upload)
			images.GET("", r.imageHandler.List)
			images.POST("/upload-url", r.imageHandler.RequestUploadURL)
			images.POST("/metadata", r.imageHandler.RegisterMetadata)

			images.GET("/transformed-images", r.transformHandler.ListForOwner)
			images.GET("/transformed-images/:id/download-url", r.transformHandler.DownloadURL)
			images.DELETE("/transformed-images/:id", r.transformHandler.Delete)

			images.GET("/:id", r.imageHandler.Get)
			images.GET("/:id/download-url", r.imageHandler.DownloadURL)
			images.DELETE("/:id", r.imageHandler.Delete)
			images.GET("/:id/transformations", r.transformHandler.ListForImage)
			images.POST("/:id/transform", r.transformChain()...)
		}
	}
}

func (r *Router) transformChain() []gin.HandlerFunc {
	if r.transformLimiter == nil {
		return []gin.HandlerFunc{r.transformHandler.Transform}
	}
	return []gin.HandlerFunc{r.transformLimiter.Limit(), r.transformHandler.Transform}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
