package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
)

func newTruckCollection(store docstore.Store) *Collection[*model.Truck] {
	return NewCollection(store, docstore.CollectionTrucks, model.NewTruck, nil, nil)
}

// Saving a keyless entity allocates a key and persists the document
func TestCollectionSaveAllocatesKey(t *testing.T) {
	store := docstore.NewMemStore()
	collection := newTruckCollection(store)

	truck := model.NewTruck()
	truck.VIN = "VIN123"
	truck.Make = "Volvo"

	require.NoError(t, collection.Save(context.Background(), truck))
	require.NotEmpty(t, truck.Key())
	require.Equal(t, 1, store.Len(docstore.CollectionTrucks))
	require.Equal(t, 1, collection.Len())
}

// Saving twice under the same key replaces, never duplicates
func TestCollectionSaveUpserts(t *testing.T) {
	store := docstore.NewMemStore()
	collection := newTruckCollection(store)
	ctx := context.Background()

	truck := model.NewTruck()
	truck.VIN = "VIN123"
	require.NoError(t, collection.Save(ctx, truck))

	truck.Mileage = 125000
	require.NoError(t, collection.Save(ctx, truck))

	require.Equal(t, 1, collection.Len())
	require.Equal(t, 1, store.Len(docstore.CollectionTrucks))

	got, ok := collection.Get(truck.Key())
	require.True(t, ok)
	require.Equal(t, 125000.0, got.Mileage)
}

// LoadAll replaces the snapshot wholesale with the store contents
func TestCollectionLoadAllReplacesSnapshot(t *testing.T) {
	store := docstore.NewMemStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, docstore.CollectionTrucks, "t1", []byte(`{"vin":"VIN1","make":"Volvo"}`)))
	require.NoError(t, store.Set(ctx, docstore.CollectionTrucks, "t2", []byte(`{"vin":"VIN2","make":"Scania"}`)))

	collection := newTruckCollection(store)

	// Seed a stale local entry that is absent remotely.
	stale := model.NewTruck()
	stale.VIN = "STALE"
	require.NoError(t, collection.Save(ctx, stale))
	require.NoError(t, store.Delete(ctx, docstore.CollectionTrucks, stale.Key()))

	items, err := collection.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 2, collection.Len())

	_, ok := collection.Get(stale.Key())
	require.False(t, ok)
}

// A document without an embedded identity gets the storage key
func TestCollectionLoadAllAssignsKey(t *testing.T) {
	store := docstore.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, docstore.CollectionTrucks, "t1", []byte(`{"vin":"VIN1"}`)))

	collection := newTruckCollection(store)
	items, err := collection.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "t1", items[0].Key())
}

// Fields absent from the stored document keep the factory defaults
func TestCollectionLoadAllAppliesDefaults(t *testing.T) {
	store := docstore.NewMemStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, docstore.CollectionTrucks, "t1", []byte(`{"vin":"VIN1"}`)))

	collection := newTruckCollection(store)
	items, err := collection.LoadAll(ctx)
	require.NoError(t, err)
	require.True(t, items[0].Available)
	require.Equal(t, model.DefaultMaintenanceIntervalMonths, items[0].MaintenanceIntervalMonths)
}

// A fetch failure leaves the existing snapshot untouched
func TestCollectionLoadAllFailureKeepsSnapshot(t *testing.T) {
	store := docstore.NewMemStore()
	collection := newTruckCollection(store)
	ctx := context.Background()

	truck := model.NewTruck()
	truck.VIN = "VIN1"
	require.NoError(t, collection.Save(ctx, truck))

	store.FailNext = errors.New("store unavailable")
	_, err := collection.LoadAll(ctx)
	require.Error(t, err)
	require.Equal(t, 1, collection.Len())
}

// A remote write failure leaves the optimistic local state in place
func TestCollectionSaveFailureKeepsLocalState(t *testing.T) {
	store := docstore.NewMemStore()
	collection := newTruckCollection(store)
	ctx := context.Background()

	truck := model.NewTruck()
	truck.VIN = "VIN1"

	store.FailNext = errors.New("store unavailable")
	err := collection.Save(ctx, truck)
	require.Error(t, err)

	// The entity stays in the local snapshot despite the remote failure.
	_, ok := collection.Get(truck.Key())
	require.True(t, ok)
	require.Equal(t, 0, store.Len(docstore.CollectionTrucks))
}

// Delete removes locally even when the remote delete fails
func TestCollectionDeleteIsLocalFirst(t *testing.T) {
	store := docstore.NewMemStore()
	collection := newTruckCollection(store)
	ctx := context.Background()

	truck := model.NewTruck()
	truck.VIN = "VIN1"
	require.NoError(t, collection.Save(ctx, truck))

	store.FailNext = errors.New("store unavailable")
	err := collection.Delete(ctx, truck.Key())
	require.Error(t, err)

	_, ok := collection.Get(truck.Key())
	require.False(t, ok)
	// The remote document survives the failed delete.
	require.Equal(t, 1, store.Len(docstore.CollectionTrucks))
}

// Snapshot returns a copy; mutating it does not affect the collection
func TestCollectionSnapshotIsCopy(t *testing.T) {
	store := docstore.NewMemStore()
	collection := newTruckCollection(store)
	ctx := context.Background()

	truck := model.NewTruck()
	truck.VIN = "VIN1"
	require.NoError(t, collection.Save(ctx, truck))

	snapshot := collection.Snapshot()
	snapshot[0] = nil
	got, ok := collection.Get(truck.Key())
	require.True(t, ok)
	require.NotNil(t, got)
}

// Round trip: saved entities come back identical through a fresh collection
func TestCollectionRoundTrip(t *testing.T) {
	store := docstore.NewMemStore()
	ctx := context.Background()

	first := newTruckCollection(store)
	truck := model.NewTruck()
	truck.VIN = "VIN1"
	truck.Make = "Volvo"
	truck.LastMaintenanceDate = model.NewDate(2024, time.January, 31)
	require.NoError(t, first.Save(ctx, truck))

	second := newTruckCollection(store)
	items, err := second.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, truck.Key(), items[0].Key())
	require.Equal(t, "Volvo", items[0].Make)
	require.Equal(t, model.NewDate(2024, time.January, 31), items[0].LastMaintenanceDate)
}
