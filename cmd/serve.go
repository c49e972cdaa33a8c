package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Maaz-R-Khan/truck-logistics-app/api"
	"github.com/Maaz-R-Khan/truck-logistics-app/api/handlers"
	"github.com/Maaz-R-Khan/truck-logistics-app/config"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/cache"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/db"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/messagebus"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/telemetry"
)

var (
	// Serve command flags
	serverPort      int
	syncWorkers     int
	gracefulTimeout int
	skipInitialLoad bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Starts the fleet service API server that manages trucks, drivers,
shipments, maintenance records and cargo inventory.

On startup every collection is loaded from the document store into memory.
The server gracefully shuts down on receiving SIGINT or SIGTERM signals.`,
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Serve-specific flags
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "Server port (overrides environment)")
	serveCmd.Flags().IntVar(&syncWorkers, "sync-workers", 4, "Maximum concurrent document store writes")
	serveCmd.Flags().IntVar(&gracefulTimeout, "graceful-timeout", 30, "Graceful shutdown timeout in seconds")
	serveCmd.Flags().BoolVar(&skipInitialLoad, "skip-initial-load", false, "Skip the initial collection load on startup")
}

// startServer initializes and starts the API server
func startServer() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override config with command line flags if provided
	if serverPort > 0 {
		cfg.Server.Port = serverPort
	}

	// Logging flags win over environment configuration.
	if !rootCmd.PersistentFlags().Changed("log-level") {
		if lvl, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(lvl)
		}
	}
	if !rootCmd.PersistentFlags().Changed("log-format") && !cfg.Logging.JSON {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.WithFields(logrus.Fields{
		"port":             cfg.Server.Port,
		"redis_enabled":    cfg.Redis.Enabled,
		"bus_enabled":      cfg.MessageBus.Enabled,
		"search_enabled":   cfg.Elasticsearch.Enabled,
		"newrelic_enabled": cfg.NewRelic.Enabled,
	}).Info("Initializing service components...")

	// Initialize database with retry logic
	gormDB, err := connectWithRetry(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize Redis cache
	cacheClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize message bus
	busClient, err := messagebus.NewClient(&cfg.MessageBus)
	if err != nil {
		log.Fatalf("Failed to initialize message bus: %v", err)
	}

	// Initialize search
	searchClient, err := search.NewClient(&cfg.Elasticsearch)
	if err != nil {
		log.Fatalf("Failed to initialize Elasticsearch: %v", err)
	}

	// Initialize New Relic
	nrApp, err := telemetry.InitNewRelic(cfg.NewRelic)
	if err != nil {
		log.Warnf("Failed to initialize New Relic: %v", err)
	}

	// Build the synchronized collections over the document store
	store := docstore.NewGormStore(gormDB)
	queue := syncer.NewKeyQueue(syncWorkers)

	trucks := syncer.NewCollection(store, docstore.CollectionTrucks, model.NewTruck, queue, log)
	drivers := syncer.NewCollection(store, docstore.CollectionDrivers, model.NewDriver, queue, log)
	shipments := syncer.NewCollection(store, docstore.CollectionShipments, model.NewShipment, queue, log)
	maintenance := syncer.NewCollection(store, docstore.CollectionMaintenance, model.NewMaintenanceRecord, queue, log)
	cargo := syncer.NewCollection(store, docstore.CollectionCargo, model.NewCargoItem, queue, log)

	notifier := service.NewNotifier(busClient, searchClient, cacheClient, cfg.MessageBus.EventsQueue, log)

	truckSvc := service.NewTruckService(trucks, notifier)
	driverSvc := service.NewDriverService(drivers, notifier)
	shipmentSvc := service.NewShipmentService(shipments, notifier)
	maintenanceSvc := service.NewMaintenanceService(maintenance, truckSvc, notifier)
	cargoSvc := service.NewCargoService(cargo, notifier)
	dashboardSvc := service.NewDashboardService(truckSvc, driverSvc, shipmentSvc, maintenanceSvc, cacheClient, log)

	services := handlers.Services{
		Trucks:      truckSvc,
		Drivers:     driverSvc,
		Shipments:   shipmentSvc,
		Maintenance: maintenanceSvc,
		Cargo:       cargoSvc,
		Dashboard:   dashboardSvc,
		Search:      searchClient,
	}

	// Load every collection before serving traffic
	if !skipInitialLoad {
		loadCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := loadCollections(loadCtx, services); err != nil {
			cancel()
			log.Fatalf("Failed to load collections: %v", err)
		}
		cancel()
	}

	// Create and start the HTTP server
	server := api.NewServer(cfg, log, nrApp, services)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gracefulTimeout)*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Warnf("Server shutdown error: %v", err)
	}

	// Shutdown service components
	if err := busClient.Close(ctx); err != nil {
		log.Warnf("Message bus shutdown error: %v", err)
	}

	log.Info("Server shutdown complete")
}

// connectWithRetry connects to the database with exponential backoff
func connectWithRetry(cfg *config.Config) (gormDB *gorm.DB, err error) {
	maxRetries := 5
	retryInterval := time.Second

	for i := 0; i < maxRetries; i++ {
		log.WithField("attempt", i+1).Info("Connecting to database...")
		gormDB, err = db.Connect(&cfg.Database)
		if err == nil {
			return gormDB, nil
		}

		log.WithFields(logrus.Fields{
			"error":         err.Error(),
			"retry_attempt": i + 1,
			"max_retries":   maxRetries,
		}).Error("Failed to connect to database, retrying...")

		if i < maxRetries-1 {
			time.Sleep(retryInterval)
			retryInterval *= 2
		}
	}
	return nil, err
}

// loadCollections performs the initial load of every collection
func loadCollections(ctx context.Context, services handlers.Services) error {
	loads := []struct {
		name string
		load func(context.Context) error
	}{
		{docstore.CollectionTrucks, services.Trucks.Load},
		{docstore.CollectionDrivers, services.Drivers.Load},
		{docstore.CollectionShipments, services.Shipments.Load},
		{docstore.CollectionMaintenance, services.Maintenance.Load},
		{docstore.CollectionCargo, services.Cargo.Load},
	}

	for _, l := range loads {
		if err := l.load(ctx); err != nil {
			return err
		}
		log.WithField("collection", l.name).Info("Collection loaded")
	}
	return nil
}
