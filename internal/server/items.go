package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplist/internal/list"
	"shoplist/internal/models"
)

type itemRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// handleListItems returns the collection projected for the requested sort
// mode. An unknown or missing mode falls back to insertion order.
func (s *Server) handleListItems(c *gin.Context) {
	mode := models.ParseSortMode(c.Query("sort"))
	items := s.projector.Project(s.list.Items(), mode)
	c.JSON(http.StatusOK, gin.H{"items": items, "sort": mode})
}

// handleAddItem creates a new item. A persistence failure does not undo the
// in-memory add; it is reported as a warning alongside the created item.
func (s *Server) handleAddItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := s.list.Add(c.Request.Context(), req.Text, req.Category)
	if errors.Is(err, list.ErrEmptyText) {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"item": item, "warning": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// handleToggleItem flips an item's completed flag. Toggling an unknown id
// changes nothing and still succeeds.
func (s *Server) handleToggleItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s.respondMutation(c, s.list.Toggle(c.Request.Context(), id))
}

// handleDeleteItem removes an item. Deleting an unknown id changes nothing
// and still succeeds.
func (s *Server) handleDeleteItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s.respondMutation(c, s.list.Delete(c.Request.Context(), id))
}

// handleStats returns the derived counters.
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stats": s.list.Stats()})
}

// handleCategories returns the fixed labels offered by the creation form.
func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

// respondMutation reports a toggle or delete whose only possible failure is
// the persistence write. The mutation itself has already taken effect, so
// the status stays OK and the write failure travels as a warning.
func (s *Server) respondMutation(c *gin.Context, err error) {
	if err != nil {
		s.logger.Warn("mutation not persisted", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
		c.JSON(http.StatusOK, gin.H{"status": "ok", "warning": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
