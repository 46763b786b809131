package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billmodel "rentalku_backend/internals/features/finance/rentbilling/model"
	"rentalku_backend/internals/features/finance/rentbilling/service"
	propmodel "rentalku_backend/internals/features/properties/model"
)

func TestListBillableUnits(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn := seedTenant(t, db, "aisha")

	seedUnit(t, db, prop, &tn.TenantID, "A1", 1, "500", propmodel.UnitStatusOccupied)
	seedUnit(t, db, prop, nil, "A2", 1, "500", propmodel.UnitStatusAvailable)
	seedUnit(t, db, prop, &tn.TenantID, "A3", 2, "700", propmodel.UnitStatusMaintenance)
	seedUnit(t, db, prop, nil, "A4", 2, "700", propmodel.UnitStatusOccupied) // data error, still listed

	units, err := service.ListBillableUnits(db)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "A1", units[0].RentalUnitNumber)
	require.NotNil(t, units[0].Property)
	assert.Equal(t, "Seaside", units[0].Property.PropertyName)
	require.NotNil(t, units[0].Tenant)
	assert.Equal(t, "aisha", units[0].Tenant.TenantName)
	assert.Equal(t, "A4", units[1].RentalUnitNumber)
	assert.Nil(t, units[1].RentalUnitTenantID)
}

func TestListBillableUnits_Empty(t *testing.T) {
	db := setupTestDB(t)
	units, err := service.ListBillableUnits(db)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestRunMonthlyGeneration_EndToEnd(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn := seedTenant(t, db, "hassan")
	unit := seedUnit(t, db, prop, &tn.TenantID, "A1", 2, "500", propmodel.UnitStatusOccupied)

	opts := service.GenerationOptions{
		Manual: true,
		Now:    func() time.Time { return time.Date(2025, 6, 10, 11, 30, 0, 0, time.UTC) },
	}
	result, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, opts)
	require.NoError(t, err)

	require.Equal(t, 1, result.GeneratedCount)
	assert.Empty(t, result.Errors)
	assert.Zero(t, result.SkippedCount)

	inv := result.Invoices[0]
	assert.Equal(t, "INV-202506-001", inv.InvoiceNumber)
	assert.Equal(t, unit.RentalUnitID, inv.InvoiceRentalUnitID)
	assert.Equal(t, prop.PropertyID, inv.InvoicePropertyID)
	assert.Equal(t, tn.TenantID, inv.InvoiceTenantID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), inv.InvoicePeriodStart)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), inv.InvoicePeriodEnd)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), inv.InvoiceDate)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), inv.InvoiceDue)
	assert.True(t, inv.InvoiceTotal.Equal(decimal.RequireFromString("500")))
	assert.True(t, inv.InvoiceTax.IsZero())
	assert.Equal(t, "MVR", inv.InvoiceCurrency)
	assert.Equal(t, billmodel.InvoiceStatusDraft, inv.InvoiceStatus)
	assert.False(t, inv.InvoiceIsAutoGenerated, "manual run is not auto-generated")
	assert.Nil(t, inv.InvoiceCreatedBy)

	items, err := inv.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rent for A1, Floor 2", items[0].Description)
}

func TestRunMonthlyGeneration_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn1 := seedTenant(t, db, "ali")
	tn2 := seedTenant(t, db, "mariyam")
	seedUnit(t, db, prop, &tn1.TenantID, "A1", 1, "500", propmodel.UnitStatusOccupied)
	seedUnit(t, db, prop, &tn2.TenantID, "B2", 2, "800", propmodel.UnitStatusOccupied)

	opts := service.GenerationOptions{Manual: true}

	first, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, first.GeneratedCount)

	second, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, opts)
	require.NoError(t, err)
	assert.Zero(t, second.GeneratedCount)
	assert.Equal(t, 2, second.SkippedCount)
	assert.Empty(t, second.Errors)

	// a different month is a fresh period, not a duplicate
	third, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 7, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, third.GeneratedCount)
}

func TestRunMonthlyGeneration_PerUnitIsolation(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn1 := seedTenant(t, db, "ibrahim")
	tn3 := seedTenant(t, db, "fathimath")
	seedUnit(t, db, prop, &tn1.TenantID, "U1", 1, "400", propmodel.UnitStatusOccupied)
	broken := seedUnit(t, db, prop, &tn1.TenantID, "U2", 1, "400", propmodel.UnitStatusOccupied)
	seedUnit(t, db, prop, &tn3.TenantID, "U3", 1, "400", propmodel.UnitStatusOccupied)

	// strip the tenant from U2 after the fact: occupied-without-tenant
	require.NoError(t, db.Model(&broken).UpdateColumn("rental_unit_tenant_id", nil).Error)

	result, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, service.GenerationOptions{Manual: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.GeneratedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "U2", result.Errors[0].Unit)
	assert.Contains(t, result.Errors[0].Message, "no tenant")

	numbers := make([]string, 0, len(result.Invoices))
	for _, inv := range result.Invoices {
		numbers = append(numbers, inv.InvoiceNumber)
	}
	assert.ElementsMatch(t, []string{"INV-202506-001", "INV-202506-002"}, numbers)
}

func TestRunMonthlyGeneration_UtilitiesFoldIntoLine(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Hiyaa")
	tn := seedTenant(t, db, "zahir")
	seedUnit(t, db, prop, &tn.TenantID, "C3", 3, "1000", propmodel.UnitStatusOccupied)

	settings := defaultSettings()
	settings.BillingSettingsIncludeUtilities = true
	settings.BillingSettingsUtilitiesAmount = decimal.RequireFromString("50")

	result, err := service.RunMonthlyGeneration(db, settings, 2025, 6, service.GenerationOptions{Manual: true})
	require.NoError(t, err)
	require.Equal(t, 1, result.GeneratedCount)

	inv := result.Invoices[0]
	assert.True(t, inv.InvoiceTotal.Equal(decimal.RequireFromString("1050")))
	items, err := inv.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rent for C3, Floor 3 (including utilities)", items[0].Description)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("1050")))
}

func TestRunMonthlyGeneration_AutoGenerateGate(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn := seedTenant(t, db, "nashida")
	seedUnit(t, db, prop, &tn.TenantID, "A1", 1, "500", propmodel.UnitStatusOccupied)

	settings := defaultSettings()
	settings.BillingSettingsAutoGenerateRent = false

	// scheduled path short-circuits
	result, err := service.RunMonthlyGeneration(db, settings, 2025, 6, service.GenerationOptions{Manual: false})
	require.NoError(t, err)
	assert.Zero(t, result.GeneratedCount)
	assert.Empty(t, result.Errors)

	// manual path ignores the gate
	result, err = service.RunMonthlyGeneration(db, settings, 2025, 6, service.GenerationOptions{Manual: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.GeneratedCount)
	assert.False(t, result.Invoices[0].InvoiceIsAutoGenerated)
}

func TestRunMonthlyGeneration_NoBillableUnits(t *testing.T) {
	db := setupTestDB(t)
	result, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, service.GenerationOptions{Manual: true})
	require.NoError(t, err)
	assert.Zero(t, result.GeneratedCount)
	assert.Empty(t, result.Invoices)
	assert.Empty(t, result.Errors)
}

func TestRunMonthlyGeneration_InvalidSettings(t *testing.T) {
	db := setupTestDB(t)
	settings := defaultSettings()
	settings.BillingSettingsRentDueDays = 0

	_, err := service.RunMonthlyGeneration(db, settings, 2025, 6, service.GenerationOptions{Manual: true})
	assert.Error(t, err)
}

func TestRunMonthlyGeneration_ScheduledMarksAutoGenerated(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn := seedTenant(t, db, "waheed")
	seedUnit(t, db, prop, &tn.TenantID, "A1", 1, "500", propmodel.UnitStatusOccupied)

	result, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, service.GenerationOptions{Manual: false})
	require.NoError(t, err)
	require.Equal(t, 1, result.GeneratedCount)
	assert.True(t, result.Invoices[0].InvoiceIsAutoGenerated)
}

func TestExistsForPeriod(t *testing.T) {
	db := setupTestDB(t)
	prop := seedProperty(t, db, "Seaside")
	tn := seedTenant(t, db, "sana")
	unit := seedUnit(t, db, prop, &tn.TenantID, "A1", 1, "500", propmodel.UnitStatusOccupied)

	_, err := service.RunMonthlyGeneration(db, defaultSettings(), 2025, 6, service.GenerationOptions{Manual: true})
	require.NoError(t, err)

	start, end, err := service.ComputePeriod(2025, 6)
	require.NoError(t, err)
	ok, err := service.ExistsForPeriod(db, unit.RentalUnitID, start, end)
	require.NoError(t, err)
	assert.True(t, ok)

	// exact-match semantics: a different month does not collide
	start, end, err = service.ComputePeriod(2025, 7)
	require.NoError(t, err)
	ok, err = service.ExistsForPeriod(db, unit.RentalUnitID, start, end)
	require.NoError(t, err)
	assert.False(t, ok)
}
