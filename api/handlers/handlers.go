package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
)

// Services bundles the domain services the handlers delegate to.
type Services struct {
	Trucks      service.TruckService
	Drivers     service.DriverService
	Shipments   service.ShipmentService
	Maintenance service.MaintenanceService
	Cargo       service.CargoService
	Dashboard   service.DashboardService
	Search      search.Client
}

// respondError maps a service error onto an HTTP status and JSON envelope.
// entity names what was being operated on, action what failed.
func respondError(c *gin.Context, log *logrus.Logger, err error, entity, action string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	default:
		log.WithError(err).Error("Failed to " + action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
