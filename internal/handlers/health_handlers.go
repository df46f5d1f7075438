package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const version = "1.0.0"

// HealthCheck reports basic liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   version,
	})
}

// ReadinessCheck reports readiness to serve traffic. The store is in-process
// memory, so there is nothing external to probe.
func ReadinessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"message": "All systems operational",
	})
}
