package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/pkg/log"
)

const TimeFormat = "03:04 PM"

type Server struct {
	ctx     context.Context
	cfg     *config.WebConfig
	session *chat.Session
	router  core.CmdRouter
	tax     *topic.Taxonomy
	hub     *Hub
	quick   []string

	engine *gin.Engine
	srv    *http.Server
}

// NewServer serves one shared conversation. ctx outlives requests and is used
// for composing replies.
func NewServer(
	ctx context.Context,
	cfg *config.WebConfig,
	session *chat.Session,
	router core.CmdRouter,
	tax *topic.Taxonomy,
	hub *Hub,
	quick []string,
) *Server {
	s := &Server{
		ctx:     ctx,
		cfg:     cfg,
		session: session,
		router:  router,
		tax:     tax,
		hub:     hub,
		quick:   quick,
	}
	s.engine = s.setupRouter()
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupRouter() *gin.Engine {
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.ctx))
	origins := s.cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": core.Version,
		})
	})

	api := router.Group("/api")
	{
		api.GET("/conversation", s.getConversation)
		api.POST("/messages", s.postMessage)
		api.GET("/events", s.streamEvents)
		api.GET("/topics", s.getTopics)
		api.GET("/quick-questions", s.getQuickQuestions)
	}

	return router
}

func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	log.FromCtx(ctx).Info().Str("addr", ln.Addr().String()).Msg("starting web server")

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func requestLogger(ctx context.Context) gin.HandlerFunc {
	logger := log.FromCtx(ctx)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("http request")
	}
}
