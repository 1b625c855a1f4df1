package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scribe/internal/config"
	"scribe/internal/gemini"
	"scribe/internal/handler"
	"scribe/internal/pdf"
	"scribe/internal/server/middleware"
)

// Server is the HTTP server.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// New creates a server instance.
func New(cfg *config.Config) (*Server, error) {
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	srv := &Server{
		cfg:    cfg,
		engine: engine,
	}

	srv.setupRoutes()

	return srv, nil
}

func (s *Server) setupRoutes() {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	// Health checks
	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger docs
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Landing page and static assets
	if s.cfg.Server.StaticDir != "" {
		s.engine.Static("/static", s.cfg.Server.StaticDir)
		index := filepath.Join(s.cfg.Server.StaticDir, "index.html")
		s.engine.GET("/", func(c *gin.Context) {
			c.File(index)
		})
	}

	// Generation
	dispatcher := gemini.NewDispatcher(&s.cfg.Gemini)
	generateHandler := handler.NewGenerateHandler(dispatcher)
	s.engine.POST("/generate", generateHandler.Generate)

	// PDF export
	exportHandler := handler.NewExportHandler(pdf.NewRenderer())
	s.engine.POST("/exportPDF", exportHandler.Export)
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine returns the gin engine, for in-process tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
