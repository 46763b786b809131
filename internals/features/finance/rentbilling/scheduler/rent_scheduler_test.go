package scheduler_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	billmodel "rentalku_backend/internals/features/finance/rentbilling/model"
	"rentalku_backend/internals/features/finance/rentbilling/scheduler"
	propmodel "rentalku_backend/internals/features/properties/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&propmodel.Property{},
		&propmodel.Tenant{},
		&propmodel.RentalUnit{},
		&billmodel.Invoice{},
		&billmodel.InvoiceSequence{},
		&billmodel.BillingSettings{},
	))
	return db
}

func seedSettings(t *testing.T, db *gorm.DB, mutate func(*billmodel.BillingSettings)) {
	t.Helper()
	s := billmodel.BillingSettings{
		BillingSettingsID:               1,
		BillingSettingsAutoGenerateRent: true,
		BillingSettingsGenerationDay:    1,
		BillingSettingsRentDueDays:      7,
		BillingSettingsUtilitiesAmount:  decimal.Zero,
		BillingSettingsTimezone:         "UTC",
	}
	if mutate != nil {
		mutate(&s)
	}
	require.NoError(t, db.Create(&s).Error)
}

func seedOccupiedUnit(t *testing.T, db *gorm.DB, number string) {
	t.Helper()
	prop := propmodel.Property{PropertyName: "Seaside"}
	require.NoError(t, db.Create(&prop).Error)
	tn := propmodel.Tenant{TenantName: "ahmed"}
	require.NoError(t, db.Create(&tn).Error)
	tenantID := tn.TenantID
	unit := propmodel.RentalUnit{
		RentalUnitPropertyID: prop.PropertyID,
		RentalUnitTenantID:   &tenantID,
		RentalUnitNumber:     number,
		RentalUnitFloor:      1,
		RentalUnitRentAmount: decimal.RequireFromString("500"),
		RentalUnitCurrency:   "MVR",
		RentalUnitStatus:     propmodel.UnitStatusOccupied,
	}
	require.NoError(t, db.Create(&unit).Error)
	require.NotEqual(t, uuid.Nil, unit.RentalUnitID)
}

func TestSchedulerStartAndStatus(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, nil)

	s := scheduler.NewRentScheduler(db)
	require.NoError(t, s.Start())
	defer s.Stop()

	status := s.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastRun)
	require.NotNil(t, status.NextRun)
	assert.True(t, status.NextRun.After(time.Now().Add(-time.Minute)))
	// day 1 at 09:00
	assert.Equal(t, 1, status.NextRun.Day())
	assert.Equal(t, 9, status.NextRun.Hour())
}

func TestSchedulerStartInvalidSettings(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, func(s *billmodel.BillingSettings) {
		s.BillingSettingsGenerationDay = 0
	})

	s := scheduler.NewRentScheduler(db)
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation day")
	assert.Nil(t, s.Status().NextRun)
}

func TestSchedulerStartInvalidTimezone(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, func(s *billmodel.BillingSettings) {
		s.BillingSettingsTimezone = "Mars/Olympus"
	})

	s := scheduler.NewRentScheduler(db)
	require.Error(t, s.Start())
}

func TestSchedulerStartMissingSettingsRow(t *testing.T) {
	db := setupTestDB(t)
	s := scheduler.NewRentScheduler(db)
	require.Error(t, s.Start())
}

func TestSchedulerTriggerManually(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, func(s *billmodel.BillingSettings) {
		// manual trigger must work even with auto-generate off
		s.BillingSettingsAutoGenerateRent = false
	})
	seedOccupiedUnit(t, db, "A1")

	s := scheduler.NewRentScheduler(db)

	result, err := s.TriggerManually(2025, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.GeneratedCount)
	require.Len(t, result.Invoices, 1)
	assert.Equal(t, "INV-202506-001", result.Invoices[0].InvoiceNumber)

	status := s.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastRun)
}

func TestSchedulerTriggerManuallyOffsetOverride(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, nil)
	seedOccupiedUnit(t, db, "A1")

	s := scheduler.NewRentScheduler(db)

	result, err := s.TriggerManually(2025, 6, 14)
	require.NoError(t, err)
	require.Len(t, result.Invoices, 1)
	inv := result.Invoices[0]
	assert.Equal(t, inv.InvoiceDate.AddDate(0, 0, 14), inv.InvoiceDue)
}

func TestSchedulerRestartPicksUpNewDay(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, nil)

	s := scheduler.NewRentScheduler(db)
	require.NoError(t, s.Start())
	defer s.Stop()

	require.NoError(t, db.Model(&billmodel.BillingSettings{}).
		Where("billing_settings_id = ?", 1).
		Update("billing_settings_generation_day", 15).Error)

	require.NoError(t, s.Restart())
	status := s.Status()
	require.NotNil(t, status.NextRun)
	assert.Equal(t, 15, status.NextRun.Day())
}

func TestSchedulerStopClearsNextRun(t *testing.T) {
	db := setupTestDB(t)
	seedSettings(t, db, nil)

	s := scheduler.NewRentScheduler(db)
	require.NoError(t, s.Start())
	s.Stop()
	assert.Nil(t, s.Status().NextRun)
}
