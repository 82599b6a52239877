package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthStatus mirrors the teacher's health response shape, trimmed of the
// database/redis checks that don't apply to a storage-free service.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler handles liveness/readiness endpoints. Unlike the teacher's
// version, it has no database or Redis client to ping — persistent storage
// is an explicit Non-goal, so this service is ready the moment it starts.
type HealthHandler struct {
	serviceName string
	logger      *logrus.Logger
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(serviceName string, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, logger: logger}
}

// GetHealth returns the basic health status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:    "ok",
		Service:   h.serviceName,
		Timestamp: time.Now(),
		Checks:    map[string]string{},
	})
}

// GetReady returns the readiness status.
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:    "ready",
		Service:   h.serviceName,
		Timestamp: time.Now(),
		Checks:    map[string]string{},
	})
}
