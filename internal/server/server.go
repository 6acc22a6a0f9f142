// Package server wires the page and the theme provider into a gin engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gabrielbrunop/site/internal/config"
	"github.com/gabrielbrunop/site/internal/logger"
	"github.com/gabrielbrunop/site/internal/page"
	"github.com/gabrielbrunop/site/internal/theme"
)

// Server serves the site.
type Server struct {
	cfg     config.Config
	profile page.Profile
	log     zerolog.Logger
	engine  *gin.Engine
	now     func() time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces time.Now, used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New validates the profile and builds the routes.
func New(cfg config.Config, profile page.Profile, log zerolog.Logger, opts ...Option) (*Server, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		profile: profile,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), logger.Requests(log))
	s.routes()
	return s, nil
}

func (s *Server) themeOptions() theme.Options {
	opts := theme.DefaultOptions()
	if p, err := theme.ParsePreference(s.cfg.Theme.Default); err == nil {
		opts.Default = p
	} else {
		s.log.Warn().Err(err).Msg("falling back to default theme")
	}
	opts.EnableSystem = s.cfg.Theme.EnableSystem
	if s.cfg.Theme.Cookie != "" {
		opts.StorageKey = s.cfg.Theme.Cookie
	}
	return opts
}

func (s *Server) routes() {
	s.engine.Static("/static", s.cfg.StaticDir)
	s.engine.StaticFile("/avatar.png", filepath.Join(s.cfg.StaticDir, "avatar.png"))

	themed := s.engine.Group("/")
	themed.Use(theme.Middleware(s.themeOptions(), s.log))

	// Home page route
	themed.GET("/", s.home)
	themed.GET("/theme/:preference", theme.SetHandler(s.log))
}

func (s *Server) home(c *gin.Context) {
	tc := theme.FromContext(c)
	c.Render(http.StatusOK, nodeRender{node: page.Document(s.profile, tc, s.now())})
}

// Handler exposes the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("starting webserver")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down webserver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
