package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedbank/schedule-notify/internal/adapter/queue"
)

func queueConfigForTest() queue.Config {
	return queue.Config{
		QueueURL: "https://sqs.us-east-1.amazonaws.com/123456789012/schedule-events",
		Enabled:  true,
	}
}

func TestLiveness(t *testing.T) {
	r := setupTestServer()

	w := doJSON(r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp["status"])
}

func TestReadiness_NotificationsEnabled(t *testing.T) {
	r := setupTestServer()

	w := doJSON(r, http.MethodGet, "/health/ready", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "enabled", resp.Checks["queue_notifications"])
}

func TestReadiness_NotificationsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health/ready", NewHealthHandler(queue.Config{}).Readiness)

	w := doJSON(r, http.MethodGet, "/health/ready", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status, "a disabled queue must not take the service out of rotation")
	assert.Equal(t, "disabled", resp.Checks["queue_notifications"])
}
