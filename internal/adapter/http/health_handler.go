package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schedbank/schedule-notify/internal/adapter/queue"
)

type HealthHandler struct {
	notifierCfg queue.Config
}

func NewHealthHandler(notifierCfg queue.Config) *HealthHandler {
	return &HealthHandler{notifierCfg: notifierCfg}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness always reports ready: notifications are best-effort, so a
// disabled or unconfigured queue never takes the service out of rotation.
// The check state is exposed so operators can see it.
func (h *HealthHandler) Readiness(c *gin.Context) {
	state := "disabled"
	if h.notifierCfg.Enabled && h.notifierCfg.QueueURL != "" {
		state = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{"queue_notifications": state},
	})
}
