package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/status"
)

// TruckHandler handles truck-related requests
type TruckHandler struct {
	service service.TruckService
	log     *logrus.Logger
}

// NewTruckHandler creates a new TruckHandler instance
func NewTruckHandler(svc service.TruckService, log *logrus.Logger) *TruckHandler {
	return &TruckHandler{service: svc, log: log}
}

// ListTrucks handles listing all trucks
func (h *TruckHandler) ListTrucks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

// GetTruck handles truck retrieval
func (h *TruckHandler) GetTruck(c *gin.Context) {
	truck, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Truck", "get truck")
		return
	}
	c.JSON(http.StatusOK, truck)
}

// CreateTruck handles truck creation
func (h *TruckHandler) CreateTruck(c *gin.Context) {
	truck := model.NewTruck()
	if err := c.ShouldBindJSON(truck); err != nil {
		h.log.WithError(err).Warn("Invalid truck format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck format"})
		return
	}
	truck.SetKey("")

	saved, err := h.service.Save(c, truck)
	if err != nil {
		respondError(c, h.log, err, "Truck", "create truck")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateTruck handles truck updates
func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	truck := model.NewTruck()
	if err := c.ShouldBindJSON(truck); err != nil {
		h.log.WithError(err).Warn("Invalid truck format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck format"})
		return
	}
	truck.SetKey(c.Param("id"))

	saved, err := h.service.Save(c, truck)
	if err != nil {
		respondError(c, h.log, err, "Truck", "update truck")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteTruck handles truck deletion
func (h *TruckHandler) DeleteTruck(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		respondError(c, h.log, err, "Truck", "delete truck")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMaintenanceStatus returns the derived maintenance status for a truck
func (h *TruckHandler) GetMaintenanceStatus(c *gin.Context) {
	truck, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Truck", "get truck")
		return
	}

	resp := gin.H{
		"truckId":            truck.Key(),
		"status":             truck.MaintenanceStatus,
		"nextMaintenanceDue": truck.NextMaintenanceDue,
	}
	if days, ok := status.DaysUntilMaintenance(model.Today(), truck.Truck); ok {
		resp["daysUntilDue"] = days
	}
	c.JSON(http.StatusOK, resp)
}

// completeMaintenanceRequest is the body for maintenance completion
type completeMaintenanceRequest struct {
	Performed model.Date `json:"performed"`
}

// CompleteMaintenance records maintenance performed on a truck
func (h *TruckHandler) CompleteMaintenance(c *gin.Context) {
	// Body is optional; an absent date defaults to today.
	var req completeMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.WithError(err).Warn("Invalid maintenance completion format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance completion format"})
		return
	}

	truck, err := h.service.CompleteMaintenance(c, c.Param("id"), req.Performed)
	if err != nil {
		respondError(c, h.log, err, "Truck", "complete maintenance")
		return
	}
	c.JSON(http.StatusOK, truck)
}
