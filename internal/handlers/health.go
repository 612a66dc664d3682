package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gift-card-checker-service/internal/repository"
)

const healthPingTimeout = 5 * time.Second

// HealthHandler reports store connectivity.
type HealthHandler struct {
	repo repository.SubmissionRepository
}

func NewHealthHandler(repo repository.SubmissionRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Status handles health check requests. The server itself is always reported
// as running; the store key flips between connected and disconnected.
func (h *HealthHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.repo.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":      "Server is running",
			h.repo.Name(): "disconnected",
			"error":       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "Server is running",
		h.repo.Name(): "connected",
	})
}
