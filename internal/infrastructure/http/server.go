package http

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/infrastructure/config"
	"github.com/recipehub/backend/internal/infrastructure/security"
	"github.com/recipehub/backend/internal/infrastructure/storage"
)

// Server wraps the Gin engine and the underlying http.Server.
type Server struct {
	server *nethttp.Server
	logger *zap.Logger
}

// NewServer wires routes, middleware and static image serving.
func NewServer(
	cfg *config.Config,
	tokens *security.JWTManager,
	files *storage.LocalFileStorage,
	recipeHandler *RecipeHandler,
	userHandler *UserHandler,
	imageHandler *ImageHandler,
	logger *zap.Logger,
) *Server {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger.Named("http")))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"status": "ok"})
	})
	engine.Static("/static", files.Dir())

	auth := authRequired(tokens)
	api := engine.Group("/api")
	recipeHandler.register(api, auth)
	userHandler.register(api, auth)
	imageHandler.register(api, auth)

	return &Server{
		server: &nethttp.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		logger: logger.Named("server"),
	}
}

// Start begins serving in the calling goroutine.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.server.Shutdown(ctx)
}
