// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/handler"
	"jokeshare/src/app/http/session"
	"jokeshare/src/app/middleware"
	"jokeshare/src/app/web"
	"jokeshare/src/core/ports"
	"jokeshare/src/core/usecase"
	"jokeshare/src/infra/config"
	"jokeshare/src/infra/logger"
)

// Server owns the gin engine, the page handlers and the net/http server.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	router   *gin.Engine
	http     *http.Server
	sessions *session.Manager

	health *handler.HealthHandler
	home   *handler.HomeHandler
	auth   *handler.AuthHandler
	jokes  *handler.JokesHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, store ports.Store, cookies ports.SessionStore, hasher ports.PasswordHasher) *Server {
	mode := gin.ReleaseMode
	if cfg.Log.Level == "debug" {
		mode = gin.DebugMode
	}
	gin.SetMode(mode)

	router := gin.New()
	router.SetHTMLTemplate(web.MustTemplates())
	router.StaticFS("/static", web.Static())

	healthService := usecase.NewHealthService(store, logger.WithComponent(log, "health"))
	authService := usecase.NewAuthService(store, hasher, logger.WithComponent(log, "auth"))
	jokeService := usecase.NewJokeService(store, logger.WithComponent(log, "jokes"))
	sessions := session.NewManager(cookies, authService, logger.WithComponent(log, "session"))

	httpLog := logger.WithComponent(log, "http")

	s := &Server{
		cfg:      cfg,
		log:      log,
		router:   router,
		sessions: sessions,
		health:   handler.NewHealthHandler(healthService),
		home:     handler.NewHomeHandler(),
		auth:     handler.NewAuthHandler(sessions, httpLog),
		jokes:    handler.NewJokesHandler(jokeService, sessions, httpLog),
	}

	s.useMiddleware()
	s.registerRoutes()
	s.setupHTTPServer()

	return s
}

// useMiddleware installs the global chain. Recovery runs outermost so a panic
// anywhere below still renders the error page.
func (s *Server) useMiddleware() {
	s.router.Use(
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.Session(s.sessions),
		middleware.Logging(logger.WithComponent(s.log, "access")),
	)
}

// registerRoutes maps every page and form action.
func (s *Server) registerRoutes() {
	r := s.router
	r.GET("/health", s.health.Health)
	r.GET("/health/detailed", s.health.DetailedHealth)

	r.GET("/", s.home.Home)

	r.GET("/login", s.auth.LoginPage)
	r.POST("/login", s.auth.Login)
	r.GET("/logout", s.auth.LogoutRedirect)
	r.POST("/logout", s.auth.Logout)

	jokes := r.Group("/jokes")
	jokes.GET("", s.jokes.Index)
	jokes.GET("/new", s.jokes.New)
	jokes.POST("/new", s.jokes.Create)
	jokes.GET("/:jokeId", s.jokes.Show)
	jokes.POST("/:jokeId", s.jokes.Action)

	r.NoRoute(s.home.NotFound)
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.router,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", s.http.Addr, err)
	case <-ctx.Done():
		s.log.Info("shutdown requested", "cause", context.Cause(ctx))
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

// Router exposes the gin engine so tests can serve it with httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}
