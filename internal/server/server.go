package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplist/internal/list"
	"shoplist/internal/storage"
)

// Server provides the HTTP boundary between the browser frontend and the
// list model.
type Server struct {
	engine    *gin.Engine
	list      *list.List
	projector *list.Projector
	store     storage.KV
	events    *eventHub
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured and
// wires the event stream to list change notifications.
func New(lst *list.List, projector *list.Projector, store storage.KV, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:    router,
		list:      lst,
		projector: projector,
		store:     store,
		events:    newEventHub(),
		logger:    logger,
		staticDir: staticDir,
	}

	lst.Subscribe(srv.events.broadcast)

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		items := api.Group("/items")
		{
			items.GET("", s.handleListItems)
			items.POST("", s.handleAddItem)
			items.POST(":id/toggle", s.handleToggleItem)
			items.DELETE(":id", s.handleDeleteItem)
		}

		api.GET("/stats", s.handleStats)
		api.GET("/share", s.handleShare)
		api.GET("/categories", s.handleCategories)
		api.GET("/theme", s.handleGetTheme)
		api.PUT("/theme", s.handleSetTheme)
		api.GET("/events", s.handleEvents)
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to int64 with error handling.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
