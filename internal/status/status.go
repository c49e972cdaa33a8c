// Package status derives human-facing status classifications from stored
// entity dates. Every function here is pure: the reference date is passed in
// explicitly and nothing is cached or persisted.
package status

import (
	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
)

// dueSoonWindowDays is the window, in days inclusive, within which an
// upcoming date counts as "soon".
const dueSoonWindowDays = 30

// Maintenance classifies a truck's maintenance position.
type Maintenance int

const (
	// MaintenanceNotConfigured means the truck has no last-maintenance date
	// or no positive interval.
	MaintenanceNotConfigured Maintenance = iota
	// MaintenanceOK means the next due date is more than 30 days out.
	MaintenanceOK
	// MaintenanceDueSoon means the next due date is within 30 days.
	MaintenanceDueSoon
	// MaintenanceOverdue means the next due date has passed.
	MaintenanceOverdue
)

// Label returns the display string for the classification.
func (m Maintenance) Label() string {
	switch m {
	case MaintenanceOK:
		return "OK"
	case MaintenanceDueSoon:
		return "Due Soon"
	case MaintenanceOverdue:
		return "OVERDUE"
	default:
		return "Not configured"
	}
}

// TruckMaintenance derives the maintenance classification for a truck from
// its last maintenance date and interval. The returned date is the next due
// date, nil when not configured. Month arithmetic is calendar-exact: adding
// N months preserves the day-of-month, clamped to the last valid day of the
// resulting month.
func TruckMaintenance(today model.Date, last model.Date, intervalMonths int) (Maintenance, *model.Date) {
	if last.IsZero() || intervalMonths <= 0 {
		return MaintenanceNotConfigured, nil
	}
	due := last.AddMonths(intervalMonths)
	switch days := today.DaysUntil(due); {
	case days < 0:
		return MaintenanceOverdue, &due
	case days <= dueSoonWindowDays:
		return MaintenanceDueSoon, &due
	default:
		return MaintenanceOK, &due
	}
}

// ForTruck derives the maintenance classification from the truck's fields.
func ForTruck(today model.Date, t *model.Truck) (Maintenance, *model.Date) {
	return TruckMaintenance(today, t.LastMaintenanceDate, t.MaintenanceIntervalMonths)
}

// DaysUntilMaintenance returns the whole days until the truck's next due
// date, negative when overdue. The second result is false when maintenance
// tracking is not configured.
func DaysUntilMaintenance(today model.Date, t *model.Truck) (int, bool) {
	_, due := ForTruck(today, t)
	if due == nil {
		return 0, false
	}
	return today.DaysUntil(*due), true
}

// Compliance classifies a driver's license and medical certificate position.
type Compliance int

const (
	// Compliant means both documents are valid and more than 30 days out.
	Compliant Compliance = iota
	// ExpiringSoon means both documents are valid but at least one expires
	// within 30 days.
	ExpiringSoon
	// LicenseExpired means only the license is expired or missing.
	LicenseExpired
	// MedicalExpired means only the medical certificate is expired or
	// missing.
	MedicalExpired
	// NonCompliant means both documents are expired or missing.
	NonCompliant
)

// Label returns the display string for the classification.
func (c Compliance) Label() string {
	switch c {
	case Compliant:
		return "Compliant"
	case ExpiringSoon:
		return "Expiring Soon"
	case LicenseExpired:
		return "License Expired"
	case MedicalExpired:
		return "Medical Expired"
	default:
		return "Non-Compliant"
	}
}

// DriverCompliance derives the compliance classification from the two expiry
// dates. A date counts as valid only when it is set and today is strictly
// before it; a never-set expiry is treated the same as an expired one.
func DriverCompliance(today model.Date, licenseExpiry, medicalExpiry model.Date) Compliance {
	licenseValid := !licenseExpiry.IsZero() && today.Before(licenseExpiry)
	medicalValid := !medicalExpiry.IsZero() && today.Before(medicalExpiry)

	switch {
	case licenseValid && medicalValid:
		if today.DaysUntil(licenseExpiry) <= dueSoonWindowDays ||
			today.DaysUntil(medicalExpiry) <= dueSoonWindowDays {
			return ExpiringSoon
		}
		return Compliant
	case !licenseValid && !medicalValid:
		return NonCompliant
	case !licenseValid:
		return LicenseExpired
	default:
		return MedicalExpired
	}
}

// ForDriver derives the compliance classification from the driver's fields.
func ForDriver(today model.Date, d *model.Driver) Compliance {
	return DriverCompliance(today, d.LicenseExpiry, d.MedicalCertExpiry)
}
