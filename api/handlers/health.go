package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/metrics"
)

// HealthCheck handles health check requests
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Fleet Service",
	})
}

// Metrics returns the in-process metrics snapshot
func Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.GetMetricsCollector().GetMetrics())
}
