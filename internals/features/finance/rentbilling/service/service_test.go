package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	billmodel "rentalku_backend/internals/features/finance/rentbilling/model"
	propmodel "rentalku_backend/internals/features/properties/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps the in-memory DB alive across the pool
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

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func defaultSettings() billmodel.BillingSettings {
	return billmodel.BillingSettings{
		BillingSettingsID:               1,
		BillingSettingsAutoGenerateRent: true,
		BillingSettingsGenerationDay:    1,
		BillingSettingsRentDueDays:      7,
		BillingSettingsIncludeUtilities: false,
		BillingSettingsUtilitiesAmount:  decimal.Zero,
		BillingSettingsTimezone:         "UTC",
	}
}

func seedProperty(t *testing.T, db *gorm.DB, name string) propmodel.Property {
	p := propmodel.Property{PropertyName: name, PropertyAddress: "Boduthakurufaanu Magu"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedTenant(t *testing.T, db *gorm.DB, name string) propmodel.Tenant {
	email := name + "@example.mv"
	tn := propmodel.Tenant{TenantName: name, TenantEmail: &email}
	require.NoError(t, db.Create(&tn).Error)
	return tn
}

func seedUnit(t *testing.T, db *gorm.DB, prop propmodel.Property, tenantID *uuid.UUID, number string, floor int16, rent string, status propmodel.RentalUnitStatus) propmodel.RentalUnit {
	u := propmodel.RentalUnit{
		RentalUnitPropertyID: prop.PropertyID,
		RentalUnitTenantID:   tenantID,
		RentalUnitNumber:     number,
		RentalUnitFloor:      floor,
		RentalUnitStatus:     status,
		RentalUnitRentAmount: decimal.RequireFromString(rent),
		RentalUnitCurrency:   "MVR",
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}
