package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Maaz-R-Khan/truck-logistics-app/config"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/cache"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/db"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/messagebus"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite stored shipments in canonical form",
	Long: `Loads every shipment from the document store and writes it back in
canonical form. Legacy documents carrying string-typed values or missing
identity fields are migrated in place. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runNormalize()
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

// runNormalize rewrites the shipment collection
func runNormalize() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Info("Connecting to database...")
	gormDB, err := db.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Offline tooling never fans mutations out to downstream systems.
	cacheClient, _ := cache.NewRedisClient(&config.RedisConfig{})
	busClient, _ := messagebus.NewClient(&config.MessageBusConfig{})
	searchClient, _ := search.NewClient(&config.ElasticsearchConfig{})
	notifier := service.NewNotifier(busClient, searchClient, cacheClient, cfg.MessageBus.EventsQueue, log)

	store := docstore.NewGormStore(gormDB)
	queue := syncer.NewKeyQueue(1)
	shipments := syncer.NewCollection(store, docstore.CollectionShipments, model.NewShipment, queue, log)
	svc := service.NewShipmentService(shipments, notifier)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := svc.Normalize(ctx)
	if err != nil {
		log.Fatalf("Failed to normalize shipments: %v", err)
	}
	log.WithField("count", count).Info("Shipments normalized")
}
