// Package http provides the API HTTP server: routing, middleware assembly,
// and health endpoints.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/prabhanjangururaj/records-vault/internal/auth/http"
	recordsHTTP "github.com/prabhanjangururaj/records-vault/internal/records/http"
	tokenizationDomain "github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// RouterConfig carries everything SetupRouter needs to assemble the API routes.
type RouterConfig struct {
	AuthHandler   *authHTTP.AuthHandler
	RecordHandler *recordsHTTP.RecordHandler

	// AuthMiddleware authenticates bearer tokens and stores the principal.
	AuthMiddleware gin.HandlerFunc

	// LoginRateLimitMiddleware guards the login endpoint. Nil disables it.
	LoginRateLimitMiddleware gin.HandlerFunc

	// MetricsMiddleware records per-request HTTP metrics. Nil disables it.
	MetricsMiddleware gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router is assembled separately via
// SetupRouter so tests can wire a minimal one.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with middleware and all API routes.
func (s *Server) SetupRouter(cfg RouterConfig, logger *slog.Logger) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	// Health and readiness
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Authentication
	login := []gin.HandlerFunc{}
	if cfg.LoginRateLimitMiddleware != nil {
		login = append(login, cfg.LoginRateLimitMiddleware)
	}
	login = append(login, cfg.AuthHandler.LoginHandler)
	router.POST("/api/auth/login", login...)
	router.GET("/api/auth/me", cfg.AuthMiddleware, cfg.AuthHandler.MeHandler)

	// Records
	records := router.Group("/api/records", cfg.AuthMiddleware)
	{
		records.POST("",
			authHTTP.RequireRoleMiddleware(logger,
				tokenizationDomain.RoleAdmin, tokenizationDomain.RoleEditor),
			cfg.RecordHandler.CreateHandler)
		records.GET("", cfg.RecordHandler.ListHandler)
		records.GET("/search", cfg.RecordHandler.SearchHandler)
		records.GET("/raw/view",
			authHTTP.RequireRoleMiddleware(logger, tokenizationDomain.RoleAdmin),
			cfg.RecordHandler.ListRawHandler)
		records.GET("/:id", cfg.RecordHandler.GetHandler)
		records.DELETE("/:id",
			authHTTP.RequireRoleMiddleware(logger, tokenizationDomain.RoleAdmin),
			cfg.RecordHandler.DeleteHandler)
	}

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The database
// is the only hard dependency: the DSM is probed lazily per request and its
// failures degrade responses instead of failing them.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
		ready = false
	} else {
		components["database"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes. It is nil until
// SetupRouter has been called.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
