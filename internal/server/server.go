package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "panelboard/docs"
	"panelboard/internal/auth"
	"panelboard/internal/config"
	"panelboard/internal/database"
	"panelboard/internal/handler"
	"panelboard/internal/middleware"
	"panelboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine  *gin.Engine
	Handler http.Handler
	DB      *gorm.DB
	Config  *config.Config
	Logger  *slog.Logger
}

// Init opens and migrates the database, then builds the router.
func Init(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := database.Migrate(db, cfg); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	logger.Info("connected to database", "driver", cfg.DBDriver)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	engine := NewEngine(db, cfg, logger)

	return &Server{
		Engine:  engine,
		Handler: withCORS(engine, cfg.CORSAllowedOrigins),
		DB:      db,
		Config:  cfg,
		Logger:  logger,
	}, nil
}

// NewEngine wires repositories, handlers and routes over an open database.
func NewEngine(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	// Request bodies may only carry the keys their request type declares.
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(handler.NoRoute)
	r.NoMethod(handler.NoMethod)
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	panelRepo := repository.NewPanelRepository(db)
	cardRepo := repository.NewCardRepository(db)

	// Initialize handlers
	issuer := auth.NewTokenIssuer(cfg.SecretKey)
	verifier := auth.NewTokenVerifier(cfg.SecretKey, userRepo)
	authHandler := handler.NewAuthHandler(userRepo, issuer, logger)
	userHandler := handler.NewUserHandler(userRepo, logger)
	panelHandler := handler.NewPanelHandler(panelRepo, logger)
	cardHandler := handler.NewCardHandler(cardRepo, panelRepo, logger)

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.POST("/auth/login", authHandler.Login)
	r.POST("/user/", userHandler.Register)

	// Protected routes - require a token
	authorized := r.Group("/")
	authorized.Use(middleware.TokenAuthMiddleware(verifier, logger))
	{
		// User routes
		authorized.GET("/user/list", userHandler.List)
		authorized.GET("/user/:id", userHandler.GetByID)
		authorized.PUT("/user/:id", userHandler.Update)
		authorized.DELETE("/user/:id", userHandler.Delete)

		// Panel routes
		authorized.POST("/panel/", panelHandler.Create)
		authorized.GET("/panel/", panelHandler.GetAll)
		authorized.GET("/panel/:panel_id", panelHandler.GetByID)
		authorized.PUT("/panel/:panel_id", panelHandler.Update)
		authorized.DELETE("/panel/:panel_id", panelHandler.Delete)

		// Card routes
		authorized.GET("/panel/:panel_id/cards", cardHandler.GetAll)
		authorized.POST("/panel/:panel_id/cards", cardHandler.Create)
		authorized.PUT("/panel/:panel_id/cards/:card_id", cardHandler.Update)
		authorized.DELETE("/panel/:panel_id/cards/:card_id", cardHandler.Delete)
	}
	return r
}

func withCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.TokenHeader},
		ExposedHeaders: []string{"WWW-Authenticate", middleware.RequestIDHeader},
	})
	return c.Handler(h)
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to listen: %w", err)
	case <-quit:
	}
	s.Logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
	s.Logger.Info("server exited properly")
	return nil
}
