package service

import (
	"context"
	"time"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/metrics"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/status"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// DriverView is a driver together with derived compliance and display
// fields, computed at read time.
type DriverView struct {
	*model.Driver
	ComplianceStatus string `json:"complianceStatus"`
	FullName         string `json:"fullName"`
	Endorsements     string `json:"endorsements"`
}

// DriverService defines the interface for driver operations
type DriverService interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []DriverView
	Get(ctx context.Context, id string) (DriverView, error)
	Save(ctx context.Context, driver *model.Driver) (*model.Driver, error)
	Delete(ctx context.Context, id string) error
}

// driverService implements DriverService
type driverService struct {
	collection *syncer.Collection[*model.Driver]
	notifier   *Notifier
}

// NewDriverService creates a new driver service
func NewDriverService(collection *syncer.Collection[*model.Driver], notifier *Notifier) DriverService {
	return &driverService{collection: collection, notifier: notifier}
}

// driverView derives the display fields for a driver
func driverView(today model.Date, d *model.Driver) DriverView {
	return DriverView{
		Driver:           d,
		ComplianceStatus: status.ForDriver(today, d).Label(),
		FullName:         d.FullName(),
		Endorsements:     d.Endorsements(),
	}
}

// Load replaces the local driver list with the remote collection contents
func (s *driverService) Load(ctx context.Context) error {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	_, err := s.collection.LoadAll(ctx)
	collector.RecordSyncOperation(metrics.SyncOperationLoad, err == nil, time.Since(startTime))
	if err != nil {
		return err
	}

	collector.SetGauge(metrics.GaugeDrivers, float64(s.collection.Len()))
	return nil
}

// List returns all drivers with derived statuses
func (s *driverService) List(_ context.Context) []DriverView {
	today := model.Today()
	drivers := s.collection.Snapshot()
	views := make([]DriverView, 0, len(drivers))
	for _, d := range drivers {
		views = append(views, driverView(today, d))
	}
	return views
}

// Get returns one driver with derived status
func (s *driverService) Get(_ context.Context, id string) (DriverView, error) {
	driver, ok := s.collection.Get(id)
	if !ok {
		return DriverView{}, ErrNotFound
	}
	return driverView(model.Today(), driver), nil
}

// Save validates and upserts a driver
func (s *driverService) Save(ctx context.Context, driver *model.Driver) (*model.Driver, error) {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	if err := driver.Validate(); err != nil {
		collector.RecordError(metrics.ErrorTypeValidation)
		return nil, NewValidationError(err.Error())
	}

	created := driver.Key() == ""
	err := s.collection.Save(ctx, driver)
	collector.RecordSyncOperation(metrics.SyncOperationSave, err == nil, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	collector.SetGauge(metrics.GaugeDrivers, float64(s.collection.Len()))
	s.notifier.EntitySaved(docstore.CollectionDrivers, driver.Key(), driver, created)
	return driver, nil
}

// Delete removes a driver locally and remotely
func (s *driverService) Delete(ctx context.Context, id string) error {
	if _, ok := s.collection.Get(id); !ok {
		return ErrNotFound
	}

	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	err := s.collection.Delete(ctx, id)
	collector.RecordSyncOperation(metrics.SyncOperationDelete, err == nil, time.Since(startTime))
	if err != nil {
		return err
	}

	collector.SetGauge(metrics.GaugeDrivers, float64(s.collection.Len()))
	s.notifier.EntityDeleted(docstore.CollectionDrivers, id)
	return nil
}
