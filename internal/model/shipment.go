package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Shipment priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Shipment statuses.
const (
	ShipmentPending   = "Pending"
	ShipmentAssigned  = "Assigned"
	ShipmentInTransit = "In Transit"
	ShipmentDelivered = "Delivered"
)

// Amount is a declared value in whole dollars. Legacy documents stored the
// value as either a number or a numeric string; both decode to the canonical
// integer form, and anything unparseable decodes to zero.
type Amount int64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	// Tolerate decimal forms like "1200.0" from older documents.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*a = Amount(int64(f))
		return nil
	}
	*a = 0
	return nil
}

// Shipment represents a load moving between two points. The ID is the
// document key in the shipments collection. Weight keeps its free-text form
// (unit suffixes included) as entered; Value is canonical whole dollars.
type Shipment struct {
	ID         string `json:"shipmentId"`
	Route      string `json:"route"`
	Customer   string `json:"customer"`
	Weight     string `json:"weight"`
	Value      Amount `json:"value"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	Assignment string `json:"assignment"`
	Delivery   string `json:"delivery"`
}

// NewShipment creates a shipment with the defaults a new booking gets.
func NewShipment() *Shipment {
	return &Shipment{
		Priority: PriorityMedium,
		Status:   ShipmentPending,
	}
}

// Key returns the document key.
func (s *Shipment) Key() string { return s.ID }

// SetKey assigns the document key.
func (s *Shipment) SetKey(key string) { s.ID = key }

// Validate checks the fields a shipment must carry before it is persisted.
func (s *Shipment) Validate() error {
	if strings.TrimSpace(s.Route) == "" {
		return fmt.Errorf("route is required")
	}
	if strings.TrimSpace(s.Customer) == "" {
		return fmt.Errorf("customer is required")
	}
	if s.Value < 0 {
		return fmt.Errorf("value must not be negative")
	}
	switch s.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
	default:
		return fmt.Errorf("unknown priority %q", s.Priority)
	}
	switch s.Status {
	case ShipmentPending, ShipmentAssigned, ShipmentInTransit, ShipmentDelivered:
	default:
		return fmt.Errorf("unknown status %q", s.Status)
	}
	return nil
}
