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

// TruckView is a truck together with its derived maintenance status. The
// status is computed at read time from the stored dates and never persisted.
type TruckView struct {
	*model.Truck
	MaintenanceStatus  string      `json:"maintenanceStatus"`
	NextMaintenanceDue *model.Date `json:"nextMaintenanceDue,omitempty"`
	DisplayName        string      `json:"displayName"`
}

// TruckService defines the interface for truck operations
type TruckService interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []TruckView
	Get(ctx context.Context, id string) (TruckView, error)
	Save(ctx context.Context, truck *model.Truck) (*model.Truck, error)
	Delete(ctx context.Context, id string) error
	CompleteMaintenance(ctx context.Context, id string, performed model.Date) (*model.Truck, error)
}

// truckService implements TruckService
type truckService struct {
	collection *syncer.Collection[*model.Truck]
	notifier   *Notifier
}

// NewTruckService creates a new truck service
func NewTruckService(collection *syncer.Collection[*model.Truck], notifier *Notifier) TruckService {
	return &truckService{collection: collection, notifier: notifier}
}

// truckView derives the display fields for a truck
func truckView(today model.Date, t *model.Truck) TruckView {
	st, due := status.ForTruck(today, t)
	return TruckView{
		Truck:              t,
		MaintenanceStatus:  st.Label(),
		NextMaintenanceDue: due,
		DisplayName:        t.DisplayName(),
	}
}

// Load replaces the local truck list with the remote collection contents
func (s *truckService) Load(ctx context.Context) error {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	_, err := s.collection.LoadAll(ctx)
	collector.RecordSyncOperation(metrics.SyncOperationLoad, err == nil, time.Since(startTime))
	if err != nil {
		return err
	}

	collector.SetGauge(metrics.GaugeTrucks, float64(s.collection.Len()))
	return nil
}

// List returns all trucks with derived statuses
func (s *truckService) List(_ context.Context) []TruckView {
	today := model.Today()
	trucks := s.collection.Snapshot()
	views := make([]TruckView, 0, len(trucks))
	for _, t := range trucks {
		views = append(views, truckView(today, t))
	}
	return views
}

// Get returns one truck with derived status
func (s *truckService) Get(_ context.Context, id string) (TruckView, error) {
	truck, ok := s.collection.Get(id)
	if !ok {
		return TruckView{}, ErrNotFound
	}
	return truckView(model.Today(), truck), nil
}

// Save validates and upserts a truck
func (s *truckService) Save(ctx context.Context, truck *model.Truck) (*model.Truck, error) {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	if err := truck.Validate(); err != nil {
		collector.RecordError(metrics.ErrorTypeValidation)
		return nil, NewValidationError(err.Error())
	}
	if truck.MaintenanceIntervalMonths == 0 {
		truck.MaintenanceIntervalMonths = model.DefaultMaintenanceIntervalMonths
	}

	created := truck.Key() == ""
	err := s.collection.Save(ctx, truck)
	collector.RecordSyncOperation(metrics.SyncOperationSave, err == nil, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	collector.SetGauge(metrics.GaugeTrucks, float64(s.collection.Len()))
	s.notifier.EntitySaved(docstore.CollectionTrucks, truck.Key(), truck, created)
	return truck, nil
}

// Delete removes a truck locally and remotely
func (s *truckService) Delete(ctx context.Context, id string) error {
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

	collector.SetGauge(metrics.GaugeTrucks, float64(s.collection.Len()))
	s.notifier.EntityDeleted(docstore.CollectionTrucks, id)
	return nil
}

// CompleteMaintenance records maintenance performed on the given date
func (s *truckService) CompleteMaintenance(ctx context.Context, id string, performed model.Date) (*model.Truck, error) {
	truck, ok := s.collection.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if performed.IsZero() {
		performed = model.Today()
	}

	truck.MarkMaintenanceCompleted(performed)
	return s.Save(ctx, truck)
}
