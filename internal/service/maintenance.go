package service

import (
	"context"
	"time"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/metrics"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// MaintenanceRecordView is a record together with its derived overdue flag.
type MaintenanceRecordView struct {
	*model.MaintenanceRecord
	Overdue bool `json:"overdue"`
}

// MaintenanceService defines the interface for maintenance record operations
type MaintenanceService interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []MaintenanceRecordView
	ListByTruck(ctx context.Context, truckID string) []MaintenanceRecordView
	Get(ctx context.Context, id string) (MaintenanceRecordView, error)
	Save(ctx context.Context, record *model.MaintenanceRecord) (*model.MaintenanceRecord, error)
	Delete(ctx context.Context, id string) error
	// Complete marks the record performed and rolls the owning truck's last
	// maintenance date forward.
	Complete(ctx context.Context, id string, performed model.Date) (*model.MaintenanceRecord, error)
}

// maintenanceService implements MaintenanceService
type maintenanceService struct {
	collection *syncer.Collection[*model.MaintenanceRecord]
	trucks     TruckService
	notifier   *Notifier
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	collection *syncer.Collection[*model.MaintenanceRecord],
	trucks TruckService,
	notifier *Notifier,
) MaintenanceService {
	return &maintenanceService{collection: collection, trucks: trucks, notifier: notifier}
}

// recordView derives the display fields for a record
func recordView(today model.Date, r *model.MaintenanceRecord) MaintenanceRecordView {
	return MaintenanceRecordView{
		MaintenanceRecord: r,
		Overdue:           r.IsOverdue(today),
	}
}

// Load replaces the local record list with the remote collection contents
func (s *maintenanceService) Load(ctx context.Context) error {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	_, err := s.collection.LoadAll(ctx)
	collector.RecordSyncOperation(metrics.SyncOperationLoad, err == nil, time.Since(startTime))
	if err != nil {
		return err
	}

	collector.SetGauge(metrics.GaugeMaintenanceRecords, float64(s.collection.Len()))
	return nil
}

// List returns all maintenance records
func (s *maintenanceService) List(_ context.Context) []MaintenanceRecordView {
	today := model.Today()
	records := s.collection.Snapshot()
	views := make([]MaintenanceRecordView, 0, len(records))
	for _, r := range records {
		views = append(views, recordView(today, r))
	}
	return views
}

// ListByTruck returns the records referencing the given truck
func (s *maintenanceService) ListByTruck(_ context.Context, truckID string) []MaintenanceRecordView {
	today := model.Today()
	var views []MaintenanceRecordView
	for _, r := range s.collection.Snapshot() {
		if r.TruckID == truckID {
			views = append(views, recordView(today, r))
		}
	}
	return views
}

// Get returns one maintenance record
func (s *maintenanceService) Get(_ context.Context, id string) (MaintenanceRecordView, error) {
	record, ok := s.collection.Get(id)
	if !ok {
		return MaintenanceRecordView{}, ErrNotFound
	}
	return recordView(model.Today(), record), nil
}

// Save validates and upserts a maintenance record
func (s *maintenanceService) Save(ctx context.Context, record *model.MaintenanceRecord) (*model.MaintenanceRecord, error) {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	if err := record.Validate(); err != nil {
		collector.RecordError(metrics.ErrorTypeValidation)
		return nil, NewValidationError(err.Error())
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()

	created := record.Key() == ""
	err := s.collection.Save(ctx, record)
	collector.RecordSyncOperation(metrics.SyncOperationSave, err == nil, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	collector.SetGauge(metrics.GaugeMaintenanceRecords, float64(s.collection.Len()))
	s.notifier.EntitySaved(docstore.CollectionMaintenance, record.Key(), record, created)
	return record, nil
}

// Delete removes a maintenance record locally and remotely
func (s *maintenanceService) Delete(ctx context.Context, id string) error {
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

	collector.SetGauge(metrics.GaugeMaintenanceRecords, float64(s.collection.Len()))
	s.notifier.EntityDeleted(docstore.CollectionMaintenance, id)
	return nil
}

// Complete marks a record performed and updates the owning truck
func (s *maintenanceService) Complete(ctx context.Context, id string, performed model.Date) (*model.MaintenanceRecord, error) {
	record, ok := s.collection.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if performed.IsZero() {
		performed = model.Today()
	}

	record.MarkCompleted(performed)
	record, err := s.Save(ctx, record)
	if err != nil {
		return nil, err
	}

	// Roll the truck's schedule forward. A dangling truck reference is not
	// an error; the record keeps its own history either way.
	if _, err := s.trucks.CompleteMaintenance(ctx, record.TruckID, performed); err != nil && err != ErrNotFound {
		return nil, err
	}
	return record, nil
}
