package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
)

// CargoHandler handles cargo inventory requests
type CargoHandler struct {
	service service.CargoService
	log     *logrus.Logger
}

// NewCargoHandler creates a new CargoHandler instance
func NewCargoHandler(svc service.CargoService, log *logrus.Logger) *CargoHandler {
	return &CargoHandler{service: svc, log: log}
}

// ListItems handles listing all cargo items
func (h *CargoHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

// GetItem handles cargo item retrieval
func (h *CargoHandler) GetItem(c *gin.Context) {
	item, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Cargo item", "get cargo item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem handles cargo item creation
func (h *CargoHandler) CreateItem(c *gin.Context) {
	item := model.NewCargoItem()
	if err := c.ShouldBindJSON(item); err != nil {
		h.log.WithError(err).Warn("Invalid cargo item format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cargo item format"})
		return
	}
	item.SetKey("")

	saved, err := h.service.Save(c, item)
	if err != nil {
		respondError(c, h.log, err, "Cargo item", "create cargo item")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateItem handles cargo item updates
func (h *CargoHandler) UpdateItem(c *gin.Context) {
	item := model.NewCargoItem()
	if err := c.ShouldBindJSON(item); err != nil {
		h.log.WithError(err).Warn("Invalid cargo item format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cargo item format"})
		return
	}
	item.SetKey(c.Param("id"))

	saved, err := h.service.Save(c, item)
	if err != nil {
		respondError(c, h.log, err, "Cargo item", "update cargo item")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteItem handles cargo item deletion
func (h *CargoHandler) DeleteItem(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		respondError(c, h.log, err, "Cargo item", "delete cargo item")
		return
	}
	c.Status(http.StatusNoContent)
}
