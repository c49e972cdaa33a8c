package model

import (
	"fmt"
	"strings"
	"time"
)

// Maintenance record statuses.
const (
	MaintenanceScheduled  = "Scheduled"
	MaintenanceInProgress = "In Progress"
	MaintenanceCompleted  = "Completed"
)

// MaintenanceRecord represents one maintenance job on a truck. The RecordID
// is the document key in the maintenance collection; TruckID references the
// owning truck by key.
type MaintenanceRecord struct {
	RecordID     string  `json:"recordId"`
	TruckID      string  `json:"truckId"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	MechanicName string  `json:"mechanicName"`
	Cost         float64 `json:"cost"`

	ScheduledDate Date `json:"scheduledDate"`
	DatePerformed Date `json:"datePerformed"`
	NextDueDate   Date `json:"nextDueDate"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewMaintenanceRecord creates a record in the scheduled state.
func NewMaintenanceRecord() *MaintenanceRecord {
	return &MaintenanceRecord{
		Status:    MaintenanceScheduled,
		CreatedAt: time.Now(),
	}
}

// Key returns the document key.
func (m *MaintenanceRecord) Key() string { return m.RecordID }

// SetKey assigns the document key.
func (m *MaintenanceRecord) SetKey(key string) { m.RecordID = key }

// IsOverdue reports whether the job is still scheduled past its date.
func (m *MaintenanceRecord) IsOverdue(today Date) bool {
	return strings.EqualFold(m.Status, MaintenanceScheduled) &&
		!m.ScheduledDate.IsZero() &&
		m.ScheduledDate.Before(today)
}

// MarkCompleted records the performed date and moves the job to completed.
func (m *MaintenanceRecord) MarkCompleted(performed Date) {
	m.DatePerformed = performed
	m.Status = MaintenanceCompleted
	m.UpdatedAt = time.Now()
}

// Validate checks the fields a record must carry before it is persisted.
func (m *MaintenanceRecord) Validate() error {
	if strings.TrimSpace(m.TruckID) == "" {
		return fmt.Errorf("truck id is required")
	}
	if strings.TrimSpace(m.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if m.Cost < 0 {
		return fmt.Errorf("cost must not be negative")
	}
	switch m.Status {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted:
	default:
		return fmt.Errorf("unknown status %q", m.Status)
	}
	return nil
}
