package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
)

// MaintenanceHandler handles maintenance record requests
type MaintenanceHandler struct {
	service service.MaintenanceService
	log     *logrus.Logger
}

// NewMaintenanceHandler creates a new MaintenanceHandler instance
func NewMaintenanceHandler(svc service.MaintenanceService, log *logrus.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{service: svc, log: log}
}

// ListRecords handles listing maintenance records, optionally by truck
func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	if truckID := c.Query("truck_id"); truckID != "" {
		c.JSON(http.StatusOK, h.service.ListByTruck(c, truckID))
		return
	}
	c.JSON(http.StatusOK, h.service.List(c))
}

// GetRecord handles maintenance record retrieval
func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	record, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Maintenance record", "get maintenance record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateRecord handles maintenance record creation
func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	record := model.NewMaintenanceRecord()
	if err := c.ShouldBindJSON(record); err != nil {
		h.log.WithError(err).Warn("Invalid maintenance record format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance record format"})
		return
	}
	record.SetKey("")

	saved, err := h.service.Save(c, record)
	if err != nil {
		respondError(c, h.log, err, "Maintenance record", "create maintenance record")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateRecord handles maintenance record updates
func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	record := model.NewMaintenanceRecord()
	if err := c.ShouldBindJSON(record); err != nil {
		h.log.WithError(err).Warn("Invalid maintenance record format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance record format"})
		return
	}
	record.SetKey(c.Param("id"))

	saved, err := h.service.Save(c, record)
	if err != nil {
		respondError(c, h.log, err, "Maintenance record", "update maintenance record")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteRecord handles maintenance record deletion
func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		respondError(c, h.log, err, "Maintenance record", "delete maintenance record")
		return
	}
	c.Status(http.StatusNoContent)
}

// completeRecordRequest is the body for record completion
type completeRecordRequest struct {
	Performed model.Date `json:"performed"`
}

// CompleteRecord marks a record completed and updates the owning truck
func (h *MaintenanceHandler) CompleteRecord(c *gin.Context) {
	// Body is optional; an absent date defaults to today.
	var req completeRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.WithError(err).Warn("Invalid completion format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid completion format"})
		return
	}

	record, err := h.service.Complete(c, c.Param("id"), req.Performed)
	if err != nil {
		respondError(c, h.log, err, "Maintenance record", "complete maintenance record")
		return
	}
	c.JSON(http.StatusOK, record)
}
