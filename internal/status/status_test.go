package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/model"
)

func date(y int, m time.Month, d int) model.Date {
	return model.NewDate(y, m, d)
}

// A truck with no last maintenance date is not configured
func TestTruckMaintenanceNotConfiguredWithoutDate(t *testing.T) {
	st, due := TruckMaintenance(date(2024, time.July, 15), model.Date{}, 6)
	require.Equal(t, MaintenanceNotConfigured, st)
	require.Nil(t, due)
	require.Equal(t, "Not configured", st.Label())
}

// A truck with no positive interval is not configured
func TestTruckMaintenanceNotConfiguredWithoutInterval(t *testing.T) {
	last := date(2024, time.January, 1)
	for _, interval := range []int{0, -3} {
		st, due := TruckMaintenance(date(2024, time.July, 15), last, interval)
		require.Equal(t, MaintenanceNotConfigured, st)
		require.Nil(t, due)
	}
}

// A past due date classifies as overdue
func TestTruckMaintenanceOverdue(t *testing.T) {
	// Last maintenance January 1st on a six month interval is due July 1st.
	st, due := TruckMaintenance(date(2024, time.July, 15), date(2024, time.January, 1), 6)
	require.Equal(t, MaintenanceOverdue, st)
	require.NotNil(t, due)
	require.Equal(t, date(2024, time.July, 1), *due)
	require.Equal(t, "OVERDUE", st.Label())
}

// A due date within thirty days classifies as due soon, boundaries included
func TestTruckMaintenanceDueSoonBoundaries(t *testing.T) {
	last := date(2024, time.January, 1)
	due := last.AddMonths(6)

	// Due today still counts as due soon, not overdue.
	st, _ := TruckMaintenance(due, last, 6)
	require.Equal(t, MaintenanceDueSoon, st)

	// Exactly thirty days out is still due soon.
	st, _ = TruckMaintenance(date(2024, time.June, 1), last, 6)
	require.Equal(t, MaintenanceDueSoon, st)

	// Thirty-one days out is OK.
	st, _ = TruckMaintenance(date(2024, time.May, 31), last, 6)
	require.Equal(t, MaintenanceOK, st)
}

// Month arithmetic clamps to the last valid day of the target month
func TestTruckMaintenanceDueDateClamped(t *testing.T) {
	// January 31 plus one month lands on leap day in 2024.
	_, due := TruckMaintenance(date(2024, time.January, 1), date(2024, time.January, 31), 1)
	require.NotNil(t, due)
	require.Equal(t, date(2024, time.February, 29), *due)

	// Same addition in a non-leap year clamps to February 28.
	_, due = TruckMaintenance(date(2023, time.January, 1), date(2023, time.January, 31), 1)
	require.NotNil(t, due)
	require.Equal(t, date(2023, time.February, 28), *due)
}

// ForTruck reads the truck's own fields
func TestForTruck(t *testing.T) {
	truck := model.NewTruck()
	truck.LastMaintenanceDate = date(2024, time.January, 1)
	truck.MaintenanceIntervalMonths = 6

	st, due := ForTruck(date(2024, time.July, 15), truck)
	require.Equal(t, MaintenanceOverdue, st)
	require.Equal(t, date(2024, time.July, 1), *due)
}

// DaysUntilMaintenance is negative when overdue and absent when unconfigured
func TestDaysUntilMaintenance(t *testing.T) {
	truck := model.NewTruck()
	truck.LastMaintenanceDate = date(2024, time.January, 1)
	truck.MaintenanceIntervalMonths = 6

	days, ok := DaysUntilMaintenance(date(2024, time.July, 15), truck)
	require.True(t, ok)
	require.Equal(t, -14, days)

	days, ok = DaysUntilMaintenance(date(2024, time.July, 15), model.NewTruck())
	require.False(t, ok)
	require.Zero(t, days)
}

// Both documents valid and far out classifies as compliant
func TestDriverCompliant(t *testing.T) {
	today := date(2024, time.July, 15)
	c := DriverCompliance(today, date(2025, time.July, 15), date(2025, time.January, 15))
	require.Equal(t, Compliant, c)
	require.Equal(t, "Compliant", c.Label())
}

// Either document expiring within thirty days classifies as expiring soon
func TestDriverExpiringSoon(t *testing.T) {
	today := date(2024, time.July, 15)

	// License ten days out.
	c := DriverCompliance(today, date(2024, time.July, 25), date(2025, time.January, 15))
	require.Equal(t, ExpiringSoon, c)

	// Medical thirty days out, license far out.
	c = DriverCompliance(today, date(2025, time.July, 15), date(2024, time.August, 14))
	require.Equal(t, ExpiringSoon, c)
}

// An expired license with a valid medical certificate classifies precisely
func TestDriverLicenseExpired(t *testing.T) {
	today := date(2024, time.July, 15)
	c := DriverCompliance(today, date(2024, time.July, 1), date(2025, time.January, 15))
	require.Equal(t, LicenseExpired, c)
	require.Equal(t, "License Expired", c.Label())
}

// An expired medical certificate with a valid license classifies precisely
func TestDriverMedicalExpired(t *testing.T) {
	today := date(2024, time.July, 15)
	c := DriverCompliance(today, date(2025, time.July, 15), date(2024, time.July, 1))
	require.Equal(t, MedicalExpired, c)
}

// Expiring today means expired; validity requires today strictly before
func TestDriverExpiryIsExclusive(t *testing.T) {
	today := date(2024, time.July, 15)
	c := DriverCompliance(today, today, date(2025, time.January, 15))
	require.Equal(t, LicenseExpired, c)
}

// A missing expiry date is treated the same as an expired one
func TestDriverMissingDates(t *testing.T) {
	today := date(2024, time.July, 15)

	c := DriverCompliance(today, model.Date{}, date(2025, time.January, 15))
	require.Equal(t, LicenseExpired, c)

	c = DriverCompliance(today, date(2025, time.July, 15), model.Date{})
	require.Equal(t, MedicalExpired, c)

	c = DriverCompliance(today, model.Date{}, model.Date{})
	require.Equal(t, NonCompliant, c)
	require.Equal(t, "Non-Compliant", c.Label())
}

// Both documents expired classifies as non-compliant
func TestDriverNonCompliant(t *testing.T) {
	today := date(2024, time.July, 15)
	c := DriverCompliance(today, date(2024, time.June, 1), date(2024, time.May, 1))
	require.Equal(t, NonCompliant, c)
}

// ForDriver reads the driver's own fields
func TestForDriver(t *testing.T) {
	driver := model.NewDriver()
	driver.LicenseExpiry = date(2025, time.July, 15)
	driver.MedicalCertExpiry = date(2025, time.July, 15)

	require.Equal(t, Compliant, ForDriver(date(2024, time.July, 15), driver))
}
