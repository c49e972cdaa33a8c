package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/cache"
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
)

const dashboardTTL = 30 * time.Second

// DashboardSummary aggregates fleet-wide counts by derived status.
type DashboardSummary struct {
	GeneratedAt time.Time `json:"generatedAt"`

	Trucks struct {
		Total     int            `json:"total"`
		Available int            `json:"available"`
		ByStatus  map[string]int `json:"byStatus"`
	} `json:"trucks"`

	Drivers struct {
		Total     int            `json:"total"`
		Available int            `json:"available"`
		ByStatus  map[string]int `json:"byStatus"`
	} `json:"drivers"`

	Shipments struct {
		Total      int            `json:"total"`
		TotalValue model.Amount   `json:"totalValue"`
		ByStatus   map[string]int `json:"byStatus"`
	} `json:"shipments"`

	Maintenance struct {
		Total   int `json:"total"`
		Overdue int `json:"overdue"`
	} `json:"maintenance"`
}

// DashboardService defines the interface for the fleet summary
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	trucks      TruckService
	drivers     DriverService
	shipments   ShipmentService
	maintenance MaintenanceService
	cache       cache.CacheClient
	log         *logrus.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	trucks TruckService,
	drivers DriverService,
	shipments ShipmentService,
	maintenance MaintenanceService,
	cacheClient cache.CacheClient,
	log *logrus.Logger,
) DashboardService {
	return &dashboardService{
		trucks:      trucks,
		drivers:     drivers,
		shipments:   shipments,
		maintenance: maintenance,
		cache:       cacheClient,
		log:         log,
	}
}

// Summary returns the fleet summary, serving a cached copy when one is fresh
func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var cached DashboardSummary
	if err := s.cache.GetDashboard(ctx, &cached); err == nil {
		return &cached, nil
	} else if err != cache.ErrCacheMiss {
		s.log.WithError(err).Warn("Failed to read dashboard cache")
	}

	summary := s.build(ctx)

	if err := s.cache.SetDashboard(ctx, summary, dashboardTTL); err != nil {
		s.log.WithError(err).Warn("Failed to cache dashboard summary")
	}
	return summary, nil
}

// build computes the summary from the in-memory collections
func (s *dashboardService) build(ctx context.Context) *DashboardSummary {
	summary := &DashboardSummary{GeneratedAt: time.Now()}
	summary.Trucks.ByStatus = make(map[string]int)
	summary.Drivers.ByStatus = make(map[string]int)
	summary.Shipments.ByStatus = make(map[string]int)

	for _, t := range s.trucks.List(ctx) {
		summary.Trucks.Total++
		if t.Available {
			summary.Trucks.Available++
		}
		summary.Trucks.ByStatus[t.MaintenanceStatus]++
	}

	for _, d := range s.drivers.List(ctx) {
		summary.Drivers.Total++
		if d.Available {
			summary.Drivers.Available++
		}
		summary.Drivers.ByStatus[d.ComplianceStatus]++
	}

	for _, sh := range s.shipments.List(ctx) {
		summary.Shipments.Total++
		summary.Shipments.TotalValue += sh.Value
		summary.Shipments.ByStatus[sh.Status]++
	}

	for _, r := range s.maintenance.List(ctx) {
		summary.Maintenance.Total++
		if r.Overdue {
			summary.Maintenance.Overdue++
		}
	}

	return summary
}
