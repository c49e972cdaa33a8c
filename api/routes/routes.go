package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/api/handlers"
)

// SetupRoutes sets up all the routes for the server
func SetupRoutes(r *gin.Engine, services handlers.Services, log *logrus.Logger) {
	// Health check and metrics
	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", handlers.Metrics)

	// API routes
	api := r.Group("/api/v1")

	// Truck routes
	truckHandler := handlers.NewTruckHandler(services.Trucks, log)
	trucks := api.Group("/trucks")
	{
		trucks.GET("", truckHandler.ListTrucks)
		trucks.POST("", truckHandler.CreateTruck)
		trucks.GET("/:id", truckHandler.GetTruck)
		trucks.PUT("/:id", truckHandler.UpdateTruck)
		trucks.DELETE("/:id", truckHandler.DeleteTruck)

		// Derived maintenance state
		trucks.GET("/:id/maintenance-status", truckHandler.GetMaintenanceStatus)
		trucks.POST("/:id/maintenance-completed", truckHandler.CompleteMaintenance)
	}

	// Driver routes
	driverHandler := handlers.NewDriverHandler(services.Drivers, log)
	drivers := api.Group("/drivers")
	{
		drivers.GET("", driverHandler.ListDrivers)
		drivers.POST("", driverHandler.CreateDriver)
		drivers.GET("/:id", driverHandler.GetDriver)
		drivers.PUT("/:id", driverHandler.UpdateDriver)
		drivers.DELETE("/:id", driverHandler.DeleteDriver)
		drivers.GET("/:id/compliance", driverHandler.GetCompliance)
	}

	// Shipment routes
	shipmentHandler := handlers.NewShipmentHandler(services.Shipments, log)
	shipments := api.Group("/shipments")
	{
		shipments.GET("", shipmentHandler.ListShipments)
		shipments.POST("", shipmentHandler.CreateShipment)
		shipments.GET("/:id", shipmentHandler.GetShipment)
		shipments.PUT("/:id", shipmentHandler.UpdateShipment)
		shipments.DELETE("/:id", shipmentHandler.DeleteShipment)
		shipments.POST("/normalize", shipmentHandler.NormalizeShipments)
	}

	// Maintenance record routes
	maintenanceHandler := handlers.NewMaintenanceHandler(services.Maintenance, log)
	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", maintenanceHandler.ListRecords)
		maintenance.POST("", maintenanceHandler.CreateRecord)
		maintenance.GET("/:id", maintenanceHandler.GetRecord)
		maintenance.PUT("/:id", maintenanceHandler.UpdateRecord)
		maintenance.DELETE("/:id", maintenanceHandler.DeleteRecord)
		maintenance.POST("/:id/complete", maintenanceHandler.CompleteRecord)
	}

	// Cargo routes
	cargoHandler := handlers.NewCargoHandler(services.Cargo, log)
	cargo := api.Group("/cargo")
	{
		cargo.GET("", cargoHandler.ListItems)
		cargo.POST("", cargoHandler.CreateItem)
		cargo.GET("/:id", cargoHandler.GetItem)
		cargo.PUT("/:id", cargoHandler.UpdateItem)
		cargo.DELETE("/:id", cargoHandler.DeleteItem)
	}

	// Collection sync
	syncHandler := handlers.NewSyncHandler(services, log)
	api.POST("/sync", syncHandler.SyncAll)
	api.POST("/sync/:collection", syncHandler.SyncCollection)

	// Dashboard
	dashboardHandler := handlers.NewDashboardHandler(services.Dashboard, log)
	api.GET("/dashboard", dashboardHandler.GetSummary)

	// Search
	searchHandler := handlers.NewSearchHandler(services.Search, log)
	api.GET("/search", searchHandler.Search)
}
