package model

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMaintenanceIntervalMonths is applied to trucks that never had an
// interval configured.
const DefaultMaintenanceIntervalMonths = 6

// Truck represents a vehicle in the fleet. The VIN, when present, is the
// natural equality key; the ID is the document key in the trucks collection.
type Truck struct {
	ID          string  `json:"truckId"`
	VIN         string  `json:"vin"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Mileage     float64 `json:"mileage"`
	CapacityKg  int     `json:"capacityKg"`
	PlateNumber string  `json:"plateNumber"`
	Source      string  `json:"source"`
	Notes       string  `json:"notes"`

	Available        bool     `json:"available"`
	NeedsMaintenance bool     `json:"needsMaintenance"`
	Status           string   `json:"status,omitempty"`
	CurrentDriver    string   `json:"currentDriver,omitempty"`
	FuelMPG          *float64 `json:"fuelMpg,omitempty"`

	LastMaintenanceDate       Date `json:"lastMaintenanceDate"`
	MaintenanceIntervalMonths int  `json:"maintenanceIntervalMonths"`
}

// NewTruck creates a truck with the field defaults a freshly added vehicle
// gets.
func NewTruck() *Truck {
	return &Truck{
		Available:                 true,
		MaintenanceIntervalMonths: DefaultMaintenanceIntervalMonths,
	}
}

// Key returns the document key.
func (t *Truck) Key() string { return t.ID }

// SetKey assigns the document key.
func (t *Truck) SetKey(key string) { t.ID = key }

// NextMaintenanceDue returns the next due date, or nil when maintenance
// tracking is not configured for this truck.
func (t *Truck) NextMaintenanceDue() *Date {
	if t.LastMaintenanceDate.IsZero() || t.MaintenanceIntervalMonths <= 0 {
		return nil
	}
	due := t.LastMaintenanceDate.AddMonths(t.MaintenanceIntervalMonths)
	return &due
}

// MarkMaintenanceCompleted records that maintenance was performed on the
// given date and clears the maintenance flag.
func (t *Truck) MarkMaintenanceCompleted(performed Date) {
	t.LastMaintenanceDate = performed
	t.NeedsMaintenance = false
}

// DisplayName returns a label like "Volvo FH16 (VIN123)".
func (t *Truck) DisplayName() string {
	name := t.Make
	if name == "" {
		name = "Truck"
	}
	if t.Model != "" {
		name += " " + t.Model
	}
	if t.VIN != "" {
		name += " (" + t.VIN + ")"
	}
	return name
}

// Validate checks the fields a truck must carry before it is persisted.
func (t *Truck) Validate() error {
	if strings.TrimSpace(t.VIN) == "" {
		return fmt.Errorf("vin is required")
	}
	if strings.TrimSpace(t.Make) == "" {
		return fmt.Errorf("make is required")
	}
	if strings.TrimSpace(t.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if t.Year <= 1900 || t.Year > time.Now().Year()+1 {
		return fmt.Errorf("year %d is out of range", t.Year)
	}
	if t.CapacityKg < 0 {
		return fmt.Errorf("capacity must not be negative")
	}
	return nil
}
