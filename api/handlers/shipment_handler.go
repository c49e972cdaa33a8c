package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
)

// ShipmentHandler handles shipment-related requests
type ShipmentHandler struct {
	service service.ShipmentService
	log     *logrus.Logger
}

// NewShipmentHandler creates a new ShipmentHandler instance
func NewShipmentHandler(svc service.ShipmentService, log *logrus.Logger) *ShipmentHandler {
	return &ShipmentHandler{service: svc, log: log}
}

// ListShipments handles listing all shipments
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

// GetShipment handles shipment retrieval
func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	shipment, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Shipment", "get shipment")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// CreateShipment handles shipment creation
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	shipment := model.NewShipment()
	if err := c.ShouldBindJSON(shipment); err != nil {
		h.log.WithError(err).Warn("Invalid shipment format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment format"})
		return
	}
	shipment.SetKey("")

	saved, err := h.service.Save(c, shipment)
	if err != nil {
		respondError(c, h.log, err, "Shipment", "create shipment")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateShipment handles shipment updates
func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	shipment := model.NewShipment()
	if err := c.ShouldBindJSON(shipment); err != nil {
		h.log.WithError(err).Warn("Invalid shipment format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment format"})
		return
	}
	shipment.SetKey(c.Param("id"))

	saved, err := h.service.Save(c, shipment)
	if err != nil {
		respondError(c, h.log, err, "Shipment", "update shipment")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteShipment handles shipment deletion
func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		respondError(c, h.log, err, "Shipment", "delete shipment")
		return
	}
	c.Status(http.StatusNoContent)
}

// NormalizeShipments rewrites all stored shipments in canonical form
func (h *ShipmentHandler) NormalizeShipments(c *gin.Context) {
	count, err := h.service.Normalize(c)
	if err != nil {
		respondError(c, h.log, err, "Shipments", "normalize shipments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"normalized": count})
}
