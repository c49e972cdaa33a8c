package service

import (
	"context"
	"time"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/metrics"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// CargoItemView is a cargo item together with its derived totals.
type CargoItemView struct {
	*model.CargoItem
	TotalPrice  float64 `json:"totalPrice"`
	TotalWeight float64 `json:"totalWeight"`
}

// CargoService defines the interface for cargo inventory operations
type CargoService interface {
	Load(ctx context.Context) error
	List(ctx context.Context) []CargoItemView
	Get(ctx context.Context, id string) (CargoItemView, error)
	Save(ctx context.Context, item *model.CargoItem) (*model.CargoItem, error)
	Delete(ctx context.Context, id string) error
}

// cargoService implements CargoService
type cargoService struct {
	collection *syncer.Collection[*model.CargoItem]
	notifier   *Notifier
}

// NewCargoService creates a new cargo service
func NewCargoService(collection *syncer.Collection[*model.CargoItem], notifier *Notifier) CargoService {
	return &cargoService{collection: collection, notifier: notifier}
}

// cargoView derives the totals for a cargo item
func cargoView(item *model.CargoItem) CargoItemView {
	return CargoItemView{
		CargoItem:   item,
		TotalPrice:  item.TotalPrice(),
		TotalWeight: item.TotalWeight(),
	}
}

// Load replaces the local cargo list with the remote collection contents
func (s *cargoService) Load(ctx context.Context) error {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	_, err := s.collection.LoadAll(ctx)
	collector.RecordSyncOperation(metrics.SyncOperationLoad, err == nil, time.Since(startTime))
	return err
}

// List returns all cargo items with derived totals
func (s *cargoService) List(_ context.Context) []CargoItemView {
	items := s.collection.Snapshot()
	views := make([]CargoItemView, 0, len(items))
	for _, item := range items {
		views = append(views, cargoView(item))
	}
	return views
}

// Get returns one cargo item with derived totals
func (s *cargoService) Get(_ context.Context, id string) (CargoItemView, error) {
	item, ok := s.collection.Get(id)
	if !ok {
		return CargoItemView{}, ErrNotFound
	}
	return cargoView(item), nil
}

// Save validates and upserts a cargo item
func (s *cargoService) Save(ctx context.Context, item *model.CargoItem) (*model.CargoItem, error) {
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	if err := item.Validate(); err != nil {
		collector.RecordError(metrics.ErrorTypeValidation)
		return nil, NewValidationError(err.Error())
	}

	created := item.Key() == ""
	err := s.collection.Save(ctx, item)
	collector.RecordSyncOperation(metrics.SyncOperationSave, err == nil, time.Since(startTime))
	if err != nil {
		return nil, err
	}

	s.notifier.EntitySaved(docstore.CollectionCargo, item.Key(), item, created)
	return item, nil
}

// Delete removes a cargo item locally and remotely
func (s *cargoService) Delete(ctx context.Context, id string) error {
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

	s.notifier.EntityDeleted(docstore.CollectionCargo, id)
	return nil
}
