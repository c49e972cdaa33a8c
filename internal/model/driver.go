package model

import (
	"fmt"
	"strings"
)

// Driver represents a company driver. The ID is the document key in the
// drivers collection. AssignedTruckID is a weak reference by truck ID; it
// carries no ownership and may dangle if the truck is removed.
type Driver struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth Date   `json:"dateOfBirth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`

	LicenseNumber string `json:"licenseNumber"`
	LicenseState  string `json:"licenseState"`
	LicenseClass  string `json:"licenseClass"`
	LicenseExpiry Date   `json:"licenseExpiry"`

	MedicalCertExpiry Date `json:"medicalCertExpiry"`

	HireDate  Date   `json:"hireDate"`
	Status    string `json:"status"`
	Available bool   `json:"available"`

	AssignedTruckID string `json:"assignedTruckId,omitempty"`

	HazmatEndorsement  bool `json:"hazmatEndorsement"`
	TankersEndorsement bool `json:"tankersEndorsement"`
	DoublesEndorsement bool `json:"doublesEndorsement"`

	Rating     float64 `json:"rating"`
	TotalTrips int     `json:"totalTrips"`
	TotalMiles float64 `json:"totalMiles"`
	Notes      string  `json:"notes"`
}

// NewDriver creates a driver with the defaults a freshly hired driver gets.
func NewDriver() *Driver {
	return &Driver{
		Status:       "Active",
		Available:    true,
		LicenseClass: "Class A",
		Rating:       5.0,
	}
}

// Key returns the document key.
func (d *Driver) Key() string { return d.ID }

// SetKey assigns the document key.
func (d *Driver) SetKey(key string) { d.ID = key }

// FullName returns the driver's display name.
func (d *Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// SetRating clamps the rating into [0, 5].
func (d *Driver) SetRating(rating float64) {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	d.Rating = rating
}

// Endorsements returns a comma-separated list of held endorsements, or
// "None".
func (d *Driver) Endorsements() string {
	var parts []string
	if d.HazmatEndorsement {
		parts = append(parts, "HazMat")
	}
	if d.TankersEndorsement {
		parts = append(parts, "Tankers")
	}
	if d.DoublesEndorsement {
		parts = append(parts, "Doubles")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// Validate checks the fields a driver must carry before it is persisted.
func (d *Driver) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return fmt.Errorf("first and last name are required")
	}
	if strings.TrimSpace(d.LicenseNumber) == "" {
		return fmt.Errorf("license number is required")
	}
	if d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("rating %.1f is out of range", d.Rating)
	}
	return nil
}
