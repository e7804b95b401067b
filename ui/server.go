// Package ui serves journal lookups over HTTP.
package ui

import (
	"context"
	"net/http"
	"strings"
	"time"

	"jifdict/domain/journal"
	"jifdict/internal"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server answers journal queries against a loaded lookup
type Server struct {
	router  *gin.Engine
	matcher *journal.Matcher
	logger  *internal.Logger
}

// NewServer creates a server over matcher. The matcher is shared read-only
// by all handlers.
func NewServer(matcher *journal.Matcher, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if logger.GetLevel() >= internal.LogLevelDebug {
		router.Use(gin.LoggerWithWriter(logger.Writer()))
	}

	s := &Server{
		router:  router,
		matcher: matcher,
		logger:  logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/journals", s.handleJournalQuery)
	api.GET("/journals/:name", s.handleJournal)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is canceled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[Server] listening on %s (%d journal keys)", addr, s.matcher.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("[Server] shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"keys":   s.matcher.Len(),
	})
}

func (s *Server) handleJournal(c *gin.Context) {
	s.respondMatch(c, c.Param("name"))
}

func (s *Server) handleJournalQuery(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	s.respondMatch(c, query)
}

func (s *Server) respondMatch(c *gin.Context, query string) {
	match, ok := s.matcher.Match(query)
	if !ok {
		s.logger.Debug("[Server] no journal for %q", query)
		c.JSON(http.StatusNotFound, gin.H{"error": "journal not found", "query": query})
		return
	}
	c.JSON(http.StatusOK, match)
}
