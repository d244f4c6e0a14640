package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplist/internal/models"
	"shoplist/internal/share"
	"shoplist/internal/storage"
)

// handleShare returns the list formatted for sharing: the plain-text form
// for the clipboard and native share sheet, and the grouped form for the
// preview modal.
func (s *Server) handleShare(c *gin.Context) {
	items := s.list.Items()
	c.JSON(http.StatusOK, gin.H{
		"text":   share.FormatText(items),
		"groups": share.Groups(items),
	})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// handleGetTheme returns the persisted display mode, defaulting to light
// when none has been stored yet.
func (s *Server) handleGetTheme(c *gin.Context) {
	raw, err := s.store.Read(c.Request.Context(), storage.ThemeKey)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"theme": "light"})
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": string(raw)})
}

// handleSetTheme persists the display mode chosen by the frontend.
func (s *Server) handleSetTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if _, ok := models.ValidThemes[req.Theme]; !ok {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("unknown theme %q", req.Theme))
		return
	}
	if err := s.store.Write(c.Request.Context(), storage.ThemeKey, []byte(req.Theme)); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
