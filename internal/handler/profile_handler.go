package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Sharif-Hamza/novanews/internal/model"

	"github.com/gin-gonic/gin"
)

type ProfileStore interface {
	GetByUsername(username string) (*model.Profile, error)
}

type ProfileHandler struct {
	repository ProfileStore
}

func NewProfileHandler(repository ProfileStore) *ProfileHandler {
	return &ProfileHandler{repository: repository}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.repository.GetByUsername(username)
	if err != nil {
		slog.Error("error fetching profile", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:          profile.ID,
		Username:    profile.Username,
		DisplayName: profile.DisplayName,
		CreatedAt:   profile.CreatedAt.Format(time.RFC3339),
	})
}
