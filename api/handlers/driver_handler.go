package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
)

// DriverHandler handles driver-related requests
type DriverHandler struct {
	service service.DriverService
	log     *logrus.Logger
}

// NewDriverHandler creates a new DriverHandler instance
func NewDriverHandler(svc service.DriverService, log *logrus.Logger) *DriverHandler {
	return &DriverHandler{service: svc, log: log}
}

// ListDrivers handles listing all drivers
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

// GetDriver handles driver retrieval
func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Driver", "get driver")
		return
	}
	c.JSON(http.StatusOK, driver)
}

// CreateDriver handles driver creation
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	driver := model.NewDriver()
	if err := c.ShouldBindJSON(driver); err != nil {
		h.log.WithError(err).Warn("Invalid driver format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver format"})
		return
	}
	driver.SetKey("")

	saved, err := h.service.Save(c, driver)
	if err != nil {
		respondError(c, h.log, err, "Driver", "create driver")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// UpdateDriver handles driver updates
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	driver := model.NewDriver()
	if err := c.ShouldBindJSON(driver); err != nil {
		h.log.WithError(err).Warn("Invalid driver format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver format"})
		return
	}
	driver.SetKey(c.Param("id"))

	saved, err := h.service.Save(c, driver)
	if err != nil {
		respondError(c, h.log, err, "Driver", "update driver")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteDriver handles driver deletion
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("id")); err != nil {
		respondError(c, h.log, err, "Driver", "delete driver")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCompliance returns the derived compliance status for a driver
func (h *DriverHandler) GetCompliance(c *gin.Context) {
	driver, err := h.service.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Driver", "get driver")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"driverId":          driver.Key(),
		"status":            driver.ComplianceStatus,
		"licenseExpiry":     driver.LicenseExpiry,
		"medicalCertExpiry": driver.MedicalCertExpiry,
	})
}
