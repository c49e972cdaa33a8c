package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
)

// DashboardHandler serves the fleet summary
type DashboardHandler struct {
	service service.DashboardService
	log     *logrus.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(svc service.DashboardService, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{service: svc, log: log}
}

// GetSummary returns aggregate fleet counts by derived status
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c)
	if err != nil {
		h.log.WithError(err).Error("Failed to build dashboard summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
