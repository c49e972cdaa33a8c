package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Maaz-R-Khan/truck-logistics-app/api/handlers"
	"github.com/Maaz-R-Khan/truck-logistics-app/config"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/cache"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/messagebus"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/service"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/syncer"
)

// newTestServer wires a server over an in-memory store with every downstream
// integration disabled.
func newTestServer(t *testing.T) (*Server, *docstore.MemStore) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	cacheClient, err := cache.NewRedisClient(&config.RedisConfig{})
	require.NoError(t, err)
	busClient, err := messagebus.NewClient(&config.MessageBusConfig{})
	require.NoError(t, err)
	searchClient, err := search.NewClient(&config.ElasticsearchConfig{})
	require.NoError(t, err)

	notifier := service.NewNotifier(busClient, searchClient, cacheClient, "fleet-events", log)

	store := docstore.NewMemStore()
	queue := syncer.NewKeyQueue(2)

	trucks := service.NewTruckService(
		syncer.NewCollection(store, docstore.CollectionTrucks, model.NewTruck, queue, log), notifier)
	drivers := service.NewDriverService(
		syncer.NewCollection(store, docstore.CollectionDrivers, model.NewDriver, queue, log), notifier)
	shipments := service.NewShipmentService(
		syncer.NewCollection(store, docstore.CollectionShipments, model.NewShipment, queue, log), notifier)
	maintenance := service.NewMaintenanceService(
		syncer.NewCollection(store, docstore.CollectionMaintenance, model.NewMaintenanceRecord, queue, log),
		trucks, notifier)
	cargo := service.NewCargoService(
		syncer.NewCollection(store, docstore.CollectionCargo, model.NewCargoItem, queue, log), notifier)
	dashboard := service.NewDashboardService(trucks, drivers, shipments, maintenance, cacheClient, log)

	services := handlers.Services{
		Trucks:      trucks,
		Drivers:     drivers,
		Shipments:   shipments,
		Maintenance: maintenance,
		Cargo:       cargo,
		Dashboard:   dashboard,
		Search:      searchClient,
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.Port = 0

	return NewServer(cfg, log, nil, services), store
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)
	w := doJSON(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "healthy")
}

// Creating a truck persists it and returns the allocated key
func TestCreateAndGetTruck(t *testing.T) {
	server, store := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/trucks", map[string]interface{}{
		"vin":   "VIN123",
		"make":  "Volvo",
		"model": "FH16",
		"year":  2020,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Truck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, 1, store.Len(docstore.CollectionTrucks))

	w = doJSON(t, server, http.MethodGet, "/api/v1/trucks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"maintenanceStatus":"Not configured"`)
}

// An invalid truck is rejected with a validation message
func TestCreateTruckValidation(t *testing.T) {
	server, store := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/trucks", map[string]interface{}{
		"make": "Volvo",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "vin is required")
	require.Equal(t, 0, store.Len(docstore.CollectionTrucks))
}

func TestGetTruckNotFound(t *testing.T) {
	server, _ := newTestServer(t)
	w := doJSON(t, server, http.MethodGet, "/api/v1/trucks/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// The maintenance status endpoint reports the derived classification
func TestTruckMaintenanceStatusEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/trucks", map[string]interface{}{
		"vin":                       "VIN123",
		"make":                      "Volvo",
		"model":                     "FH16",
		"year":                      2020,
		"lastMaintenanceDate":       "2020-01-01",
		"maintenanceIntervalMonths": 6,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Truck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, server, http.MethodGet, "/api/v1/trucks/"+created.ID+"/maintenance-status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"OVERDUE"`)
	require.Contains(t, w.Body.String(), `"nextMaintenanceDue":"2020-07-01"`)
}

// The compliance endpoint reports the derived driver classification
func TestDriverComplianceEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/drivers", map[string]interface{}{
		"firstName":     "Maria",
		"lastName":      "Lopez",
		"licenseNumber": "D123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Driver
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, server, http.MethodGet, "/api/v1/drivers/"+created.ID+"/compliance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"Non-Compliant"`)
}

// Deleting a truck removes it locally and remotely
func TestDeleteTruck(t *testing.T) {
	server, store := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/trucks", map[string]interface{}{
		"vin": "VIN123", "make": "Volvo", "model": "FH16", "year": 2020,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Truck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, server, http.MethodDelete, "/api/v1/trucks/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, 0, store.Len(docstore.CollectionTrucks))

	w = doJSON(t, server, http.MethodDelete, "/api/v1/trucks/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Sync reloads a collection from the store
func TestSyncCollectionEndpoint(t *testing.T) {
	server, store := newTestServer(t)

	// Seed the store behind the collection's back.
	require.NoError(t, store.Set(context.Background(), docstore.CollectionTrucks, "t1",
		[]byte(`{"vin":"VIN1","make":"Volvo","model":"FH16","year":2020}`)))

	w := doJSON(t, server, http.MethodGet, "/api/v1/trucks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", w.Body.String())

	w = doJSON(t, server, http.MethodPost, "/api/v1/sync/trucks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, server, http.MethodGet, "/api/v1/trucks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"truckId":"t1"`)
}

func TestSyncUnknownCollection(t *testing.T) {
	server, _ := newTestServer(t)
	w := doJSON(t, server, http.MethodPost, "/api/v1/sync/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// The dashboard aggregates across collections
func TestDashboardEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	w := doJSON(t, server, http.MethodPost, "/api/v1/shipments", map[string]interface{}{
		"route":    "Chicago -> Denver",
		"customer": "Acme",
		"value":    2500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, server, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalValue":2500`)
}

func TestSearchRequiresQuery(t *testing.T) {
	server, _ := newTestServer(t)
	w := doJSON(t, server, http.MethodGet, "/api/v1/search", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
