package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
)

// SyncHandler triggers collection reloads from the document store
type SyncHandler struct {
	services Services
	log      *logrus.Logger
}

// NewSyncHandler creates a new SyncHandler instance
func NewSyncHandler(services Services, log *logrus.Logger) *SyncHandler {
	return &SyncHandler{services: services, log: log}
}

// SyncCollection reloads one collection from the store
func (h *SyncHandler) SyncCollection(c *gin.Context) {
	name := c.Param("collection")

	var err error
	switch name {
	case docstore.CollectionTrucks:
		err = h.services.Trucks.Load(c)
	case docstore.CollectionDrivers:
		err = h.services.Drivers.Load(c)
	case docstore.CollectionShipments:
		err = h.services.Shipments.Load(c)
	case docstore.CollectionMaintenance:
		err = h.services.Maintenance.Load(c)
	case docstore.CollectionCargo:
		err = h.services.Cargo.Load(c)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	if err != nil {
		h.log.WithError(err).WithField("collection", name).Error("Failed to sync collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync collection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": name, "synced": true})
}

// SyncAll reloads every collection from the store
func (h *SyncHandler) SyncAll(c *gin.Context) {
	loads := []struct {
		name string
		load func() error
	}{
		{docstore.CollectionTrucks, func() error { return h.services.Trucks.Load(c) }},
		{docstore.CollectionDrivers, func() error { return h.services.Drivers.Load(c) }},
		{docstore.CollectionShipments, func() error { return h.services.Shipments.Load(c) }},
		{docstore.CollectionMaintenance, func() error { return h.services.Maintenance.Load(c) }},
		{docstore.CollectionCargo, func() error { return h.services.Cargo.Load(c) }},
	}

	synced := make([]string, 0, len(loads))
	for _, l := range loads {
		if err := l.load(); err != nil {
			h.log.WithError(err).WithField("collection", l.name).Error("Failed to sync collection")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "Failed to sync collection " + l.name,
				"synced": synced,
			})
			return
		}
		synced = append(synced, l.name)
	}
	c.JSON(http.StatusOK, gin.H{"synced": synced})
}
