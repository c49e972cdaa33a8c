package service

import (
	"context"
	"time"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/metrics"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// ShipmentService defines the interface for shipment operations
type ShipmentService interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []*model.Shipment
	Get(ctx context.Context, id string) (*model.Shipment, error)
	Save(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error)
	Delete(ctx context.Context, id string) error
	// Normalize rewrites every stored shipment in canonical form, migrating
	// legacy documents with string-typed values or missing identities.
	Normalize(ctx context.Context) (int, error)
}

// shipmentService implements ShipmentService
type shipmentService struct {
	collection *syncer.Collection[*model.Shipment]
	notifier   *Notifier
}

// NewShipmentService creates a new shipment service
func NewShipmentService(collection *syncer.Collection[*model.Shipment], notifier *Notifier) ShipmentService {
	return &shipmentService{collection: collection, notifier: notifier}
}

// Load replaces the local shipment list with the remote collection contents
func (s *shipmentService) Load(ctx context.Context) error {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	_, err := s.collection.LoadAll(ctx)
	collector.RecordSyncOperation(metrics.SyncOperationLoad, err == nil, time.Since(startTime))
	if err != nil {
		return err
	}

	collector.SetGauge(metrics.GaugeShipments, float64(s.collection.Len()))
	return nil
}

// List returns all shipments
func (s *shipmentService) List(_ context.Context) []*model.Shipment {
	return s.collection.Snapshot()
}

// Get returns one shipment
func (s *shipmentService) Get(_ context.Context, id string) (*model.Shipment, error) {
	shipment, ok := s.collection.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return shipment, nil
}

// Save validates and upserts a shipment
func (s *shipmentService) Save(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	if err := shipment.Validate(); err != nil {
		collector.RecordError(metrics.ErrorTypeValidation)
		return nil, NewValidationError(err.Error())
	}

	created := shipment.Key() == ""
	err := s.collection.Save(ctx, shipment)
	collector.RecordSyncOperation(metrics.SyncOperationSave, err == nil, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	collector.SetGauge(metrics.GaugeShipments, float64(s.collection.Len()))
	s.notifier.EntitySaved(docstore.CollectionShipments, shipment.Key(), shipment, created)
	return shipment, nil
}

// Delete removes a shipment locally and remotely
func (s *shipmentService) Delete(ctx context.Context, id string) error {
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

	collector.SetGauge(metrics.GaugeShipments, float64(s.collection.Len()))
	s.notifier.EntityDeleted(docstore.CollectionShipments, id)
	return nil
}

// Normalize reloads the collection and writes every shipment back. Decoding
// already coerces legacy field shapes into the canonical form, so a
// load-then-save pass leaves the whole collection canonical.
func (s *shipmentService) Normalize(ctx context.Context) (int, error) {
	shipments, err := s.collection.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	for _, shipment := range shipments {
		if err := s.collection.Save(ctx, shipment); err != nil {
			return 0, err
		}
	}
	return len(shipments), nil
}
