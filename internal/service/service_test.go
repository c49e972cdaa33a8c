package service

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Maaz-R-Khan/truck-logistics-app/config"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/cache"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/messagebus"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// testEnv wires the services over an in-memory store with every downstream
// integration disabled.
type testEnv struct {
	store       *docstore.MemStore
	trucks      TruckService
	drivers     DriverService
	shipments   ShipmentService
	maintenance MaintenanceService
	cargo       CargoService
	dashboard   DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	cacheClient, err := cache.NewRedisClient(&config.RedisConfig{})
	require.NoError(t, err)
	busClient, err := messagebus.NewClient(&config.MessageBusConfig{})
	require.NoError(t, err)
	searchClient, err := search.NewClient(&config.ElasticsearchConfig{})
	require.NoError(t, err)

	notifier := NewNotifier(busClient, searchClient, cacheClient, "fleet-events", log)

	store := docstore.NewMemStore()
	queue := syncer.NewKeyQueue(2)

	trucks := NewTruckService(
		syncer.NewCollection(store, docstore.CollectionTrucks, model.NewTruck, queue, log), notifier)
	drivers := NewDriverService(
		syncer.NewCollection(store, docstore.CollectionDrivers, model.NewDriver, queue, log), notifier)
	shipments := NewShipmentService(
		syncer.NewCollection(store, docstore.CollectionShipments, model.NewShipment, queue, log), notifier)
	maintenance := NewMaintenanceService(
		syncer.NewCollection(store, docstore.CollectionMaintenance, model.NewMaintenanceRecord, queue, log),
		trucks, notifier)
	cargo := NewCargoService(
		syncer.NewCollection(store, docstore.CollectionCargo, model.NewCargoItem, queue, log), notifier)
	dashboard := NewDashboardService(trucks, drivers, shipments, maintenance, cacheClient, log)

	return &testEnv{
		store:       store,
		trucks:      trucks,
		drivers:     drivers,
		shipments:   shipments,
		maintenance: maintenance,
		cargo:       cargo,
		dashboard:   dashboard,
	}
}

func validTruck() *model.Truck {
	truck := model.NewTruck()
	truck.VIN = "VIN123"
	truck.Make = "Volvo"
	truck.Model = "FH16"
	truck.Year = 2020
	return truck
}

// Saving an invalid truck returns a validation error and stores nothing
func TestTruckServiceSaveValidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	truck := model.NewTruck()
	_, err := env.trucks.Save(ctx, truck)
	require.Error(t, err)
	require.True(t, IsValidationError(err))
	require.Equal(t, 0, env.store.Len(docstore.CollectionTrucks))
}

// Saving a valid truck allocates a key and persists the document
func TestTruckServiceSavePersists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	saved, err := env.trucks.Save(ctx, validTruck())
	require.NoError(t, err)
	require.NotEmpty(t, saved.Key())
	require.Equal(t, 1, env.store.Len(docstore.CollectionTrucks))

	view, err := env.trucks.Get(ctx, saved.Key())
	require.NoError(t, err)
	require.Equal(t, "Volvo FH16 (VIN123)", view.DisplayName)
	require.Equal(t, "Not configured", view.MaintenanceStatus)
}

// A zero interval is replaced with the default on save
func TestTruckServiceSaveDefaultsInterval(t *testing.T) {
	env := newTestEnv(t)

	truck := validTruck()
	truck.MaintenanceIntervalMonths = 0
	saved, err := env.trucks.Save(context.Background(), truck)
	require.NoError(t, err)
	require.Equal(t, model.DefaultMaintenanceIntervalMonths, saved.MaintenanceIntervalMonths)
}

// Deleting an unknown truck reports not found
func TestTruckServiceDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.trucks.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

// Completing maintenance rolls the last maintenance date forward
func TestTruckServiceCompleteMaintenance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	truck := validTruck()
	truck.NeedsMaintenance = true
	saved, err := env.trucks.Save(ctx, truck)
	require.NoError(t, err)

	performed := model.NewDate(2024, time.July, 15)
	updated, err := env.trucks.CompleteMaintenance(ctx, saved.Key(), performed)
	require.NoError(t, err)
	require.Equal(t, performed, updated.LastMaintenanceDate)
	require.False(t, updated.NeedsMaintenance)
}

// Driver views carry the derived compliance status
func TestDriverServiceViews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	driver := model.NewDriver()
	driver.FirstName = "Maria"
	driver.LastName = "Lopez"
	driver.LicenseNumber = "D123"
	driver.LicenseExpiry = model.Today().AddMonths(12)
	driver.MedicalCertExpiry = model.Today().AddMonths(12)
	driver.HazmatEndorsement = true

	saved, err := env.drivers.Save(ctx, driver)
	require.NoError(t, err)

	view, err := env.drivers.Get(ctx, saved.Key())
	require.NoError(t, err)
	require.Equal(t, "Compliant", view.ComplianceStatus)
	require.Equal(t, "Maria Lopez", view.FullName)
	require.Equal(t, "HazMat", view.Endorsements)
}

// A driver with no expiry dates on file is non-compliant
func TestDriverServiceMissingDatesNonCompliant(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	driver := model.NewDriver()
	driver.FirstName = "Sam"
	driver.LastName = "Reed"
	driver.LicenseNumber = "D456"

	saved, err := env.drivers.Save(ctx, driver)
	require.NoError(t, err)

	view, err := env.drivers.Get(ctx, saved.Key())
	require.NoError(t, err)
	require.Equal(t, "Non-Compliant", view.ComplianceStatus)
}

// Normalize rewrites legacy shipment documents in canonical form
func TestShipmentServiceNormalize(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Legacy document: string value, no priority, no embedded identity.
	legacy := []byte(`{"route":"Chicago -> Denver","customer":"Acme","value":"2500.0"}`)
	require.NoError(t, env.store.Set(ctx, docstore.CollectionShipments, "s1", legacy))

	count, err := env.shipments.Normalize(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Reload through a fresh pass and check the canonical form took.
	require.NoError(t, env.shipments.Load(ctx))
	shipment, err := env.shipments.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, model.Amount(2500), shipment.Value)
	require.Equal(t, model.PriorityMedium, shipment.Priority)
	require.Equal(t, "s1", shipment.Key())
}

// Completing a maintenance record also updates the owning truck
func TestMaintenanceServiceComplete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	truck, err := env.trucks.Save(ctx, validTruck())
	require.NoError(t, err)

	record := model.NewMaintenanceRecord()
	record.TruckID = truck.Key()
	record.Type = "Oil change"
	record.ScheduledDate = model.NewDate(2024, time.July, 1)
	saved, err := env.maintenance.Save(ctx, record)
	require.NoError(t, err)

	performed := model.NewDate(2024, time.July, 15)
	completed, err := env.maintenance.Complete(ctx, saved.Key(), performed)
	require.NoError(t, err)
	require.Equal(t, model.MaintenanceCompleted, completed.Status)
	require.Equal(t, performed, completed.DatePerformed)

	view, err := env.trucks.Get(ctx, truck.Key())
	require.NoError(t, err)
	require.Equal(t, performed, view.LastMaintenanceDate)
}

// Completing a record whose truck is gone still completes the record
func TestMaintenanceServiceCompleteDanglingTruck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record := model.NewMaintenanceRecord()
	record.TruckID = "gone"
	record.Type = "Brake check"
	saved, err := env.maintenance.Save(ctx, record)
	require.NoError(t, err)

	completed, err := env.maintenance.Complete(ctx, saved.Key(), model.Today())
	require.NoError(t, err)
	require.Equal(t, model.MaintenanceCompleted, completed.Status)
}

// ListByTruck filters records to the owning truck
func TestMaintenanceServiceListByTruck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, truckID := range []string{"t1", "t1", "t2"} {
		record := model.NewMaintenanceRecord()
		record.TruckID = truckID
		record.Type = "Inspection"
		_, err := env.maintenance.Save(ctx, record)
		require.NoError(t, err)
	}

	require.Len(t, env.maintenance.ListByTruck(ctx, "t1"), 2)
	require.Len(t, env.maintenance.ListByTruck(ctx, "t2"), 1)
	require.Empty(t, env.maintenance.ListByTruck(ctx, "t3"))
}

// Cargo views carry derived totals
func TestCargoServiceViews(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item := model.NewCargoItem()
	item.Name = "Pallet straps"
	item.Quantity = 4
	item.UnitPrice = 12.5
	item.UnitWeight = 2.0

	saved, err := env.cargo.Save(ctx, item)
	require.NoError(t, err)

	view, err := env.cargo.Get(ctx, saved.Key())
	require.NoError(t, err)
	require.Equal(t, 50.0, view.TotalPrice)
	require.Equal(t, 8.0, view.TotalWeight)
}

// The dashboard aggregates counts across every collection
func TestDashboardServiceSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	truck := validTruck()
	truck.LastMaintenanceDate = model.Today().AddMonths(-12)
	_, err := env.trucks.Save(ctx, truck)
	require.NoError(t, err)

	driver := model.NewDriver()
	driver.FirstName = "Maria"
	driver.LastName = "Lopez"
	driver.LicenseNumber = "D123"
	_, err = env.drivers.Save(ctx, driver)
	require.NoError(t, err)

	shipment := model.NewShipment()
	shipment.Route = "A -> B"
	shipment.Customer = "Acme"
	shipment.Value = 2500
	_, err = env.shipments.Save(ctx, shipment)
	require.NoError(t, err)

	summary, err := env.dashboard.Summary(ctx)
	require.NoError(t, err)

	require.Equal(t, 1, summary.Trucks.Total)
	require.Equal(t, 1, summary.Trucks.ByStatus["OVERDUE"])
	require.Equal(t, 1, summary.Drivers.Total)
	require.Equal(t, 1, summary.Drivers.ByStatus["Non-Compliant"])
	require.Equal(t, 1, summary.Shipments.Total)
	require.Equal(t, model.Amount(2500), summary.Shipments.TotalValue)
	require.Equal(t, 1, summary.Shipments.ByStatus[model.ShipmentPending])
	require.Zero(t, summary.Maintenance.Total)
}
