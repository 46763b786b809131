package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billmodel "rentalku_backend/internals/features/finance/rentbilling/model"
	propmodel "rentalku_backend/internals/features/properties/model"
)

// =======================================================
// RESULT TYPES
// =======================================================

type UnitError struct {
	Unit    string `json:"unit"`
	Message string `json:"message"`
}

type BatchResult struct {
	GeneratedCount int                 `json:"generated_count"`
	SkippedCount   int                 `json:"skipped_count"`
	Invoices       []billmodel.Invoice `json:"invoices"`
	Errors         []UnitError         `json:"errors"`
}

// GenerationOptions parameterizes one batch run.
type GenerationOptions struct {
	// Manual bypasses the auto-generate gate (operator intent wins).
	Manual bool
	// DueDateOffsetDays overrides the settings default when > 0.
	DueDateOffsetDays int
	// CreatedBy is nil for system-generated invoices.
	CreatedBy *uuid.UUID

	// optional delivery ports; nil skips render/send
	Renderer DocumentRenderer
	Sender   DocumentSender

	// Now overrides the clock; nil means time.Now (tests pin the invoice date)
	Now func() time.Time
}

// =======================================================
// OCCUPANCY RESOLVER
// =======================================================

// ListBillableUnits returns every occupied unit, property and tenant
// preloaded. Occupied units with no tenant are included so the orchestrator
// can report them as data errors instead of silently dropping them.
func ListBillableUnits(db *gorm.DB) ([]propmodel.RentalUnit, error) {
	var units []propmodel.RentalUnit
	err := db.Preload("Property").Preload("Tenant").
		Where("rental_unit_status = ?", propmodel.UnitStatusOccupied).
		Order("rental_unit_number ASC").
		Find(&units).Error
	if err != nil {
		return nil, fmt.Errorf("list billable units: %w", err)
	}
	return units, nil
}

// =======================================================
// DUPLICATE GUARD
// =======================================================

// ExistsForPeriod reports whether the unit already has an invoice covering
// exactly this period. Exact boundary match — a different month for the same
// unit is allowed.
func ExistsForPeriod(db *gorm.DB, unitID uuid.UUID, periodStart, periodEnd time.Time) (bool, error) {
	var n int64
	err := db.Model(&billmodel.Invoice{}).
		Where("invoice_rental_unit_id = ?", unitID).
		Where("invoice_period_start = ?", periodStart).
		Where("invoice_period_end = ?", periodEnd).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// =======================================================
// BATCH ORCHESTRATOR
// =======================================================

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// RunMonthlyGeneration generates one draft rent invoice per billable unit for
// (year, month). Per-unit failures are collected, never fatal; only errors in
// the orchestration itself (settings, period math, unit query) propagate.
func RunMonthlyGeneration(db *gorm.DB, settings billmodel.BillingSettings, year, month int, opts GenerationOptions) (BatchResult, error) {
	result := BatchResult{
		Invoices: []billmodel.Invoice{},
		Errors:   []UnitError{},
	}

	if err := settings.Validate(); err != nil {
		return result, fmt.Errorf("billing settings: %w", err)
	}

	// scheduled runs honor the on/off switch before touching any unit
	if !opts.Manual && !settings.BillingSettingsAutoGenerateRent {
		log.Printf("[RENT-GEN] auto-generate disabled, skipping scheduled run for %s", YearMonthKey(year, month))
		return result, nil
	}

	offsetDays := opts.DueDateOffsetDays
	if offsetDays == 0 {
		offsetDays = settings.BillingSettingsRentDueDays
	}

	periodStart, periodEnd, err := ComputePeriod(year, month)
	if err != nil {
		return result, err
	}
	invoiceDate := today(opts.Now)
	dueDate, err := ComputeDueDate(invoiceDate, offsetDays)
	if err != nil {
		return result, err
	}

	units, err := ListBillableUnits(db)
	if err != nil {
		return result, err
	}
	if len(units) == 0 {
		log.Printf("[RENT-GEN] no billable units for %s", YearMonthKey(year, month))
		return result, nil
	}

	for _, unit := range units {
		if err := generateForUnit(db, unit, settings, opts, periodStart, periodEnd, invoiceDate, dueDate, &result); err != nil {
			result.Errors = append(result.Errors, UnitError{
				Unit:    unit.RentalUnitNumber,
				Message: err.Error(),
			})
		}
	}

	log.Printf("[RENT-GEN] %s done: generated=%d skipped=%d errors=%d",
		YearMonthKey(year, month), result.GeneratedCount, result.SkippedCount, len(result.Errors))
	return result, nil
}

// generateForUnit is the per-unit boundary: everything that can fail for one
// unit fails here and is reported against that unit only.
func generateForUnit(
	db *gorm.DB,
	unit propmodel.RentalUnit,
	settings billmodel.BillingSettings,
	opts GenerationOptions,
	periodStart, periodEnd, invoiceDate, dueDate time.Time,
	result *BatchResult,
) error {
	// occupied-without-tenant is a data error, not fatal to the batch
	if unit.RentalUnitTenantID == nil {
		return fmt.Errorf("occupied unit has no tenant assigned")
	}

	dup, err := ExistsForPeriod(db, unit.RentalUnitID, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("duplicate check: %w", err)
	}
	if dup {
		result.SkippedCount++
		return nil
	}

	item := BuildLineItem(unit, settings.BillingSettingsIncludeUtilities, settings.BillingSettingsUtilitiesAmount)
	subtotal := item.Amount

	inv := billmodel.Invoice{
		InvoicePropertyID:      unit.RentalUnitPropertyID,
		InvoiceRentalUnitID:    unit.RentalUnitID,
		InvoiceTenantID:        *unit.RentalUnitTenantID,
		InvoiceDate:            invoiceDate,
		InvoiceDue:             dueDate,
		InvoicePeriodStart:     periodStart,
		InvoicePeriodEnd:       periodEnd,
		InvoiceSubtotal:        subtotal,
		InvoiceTax:             decimal.Zero,
		InvoiceTotal:           subtotal,
		InvoiceCurrency:        unit.RentalUnitCurrency,
		InvoiceStatus:          billmodel.InvoiceStatusDraft,
		InvoiceIsAutoGenerated: !opts.Manual,
		InvoiceCreatedBy:       opts.CreatedBy,
	}
	if err := inv.SetItems([]billmodel.InvoiceItem{item}); err != nil {
		return fmt.Errorf("encode line items: %w", err)
	}

	// number allocation and insert share one transaction; the unique indexes
	// on number and (unit, period) reject any concurrent second writer
	err = db.Transaction(func(tx *gorm.DB) error {
		number, err := NextInvoiceNumber(tx, periodStart.Year(), int(periodStart.Month()))
		if err != nil {
			return fmt.Errorf("allocate invoice number: %w", err)
		}
		inv.InvoiceNumber = number
		return tx.Create(&inv).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice already exists for this period (concurrent run): %v", err)
		}
		return fmt.Errorf("persist invoice: %w", err)
	}

	result.GeneratedCount++
	result.Invoices = append(result.Invoices, inv)

	deliverInvoice(inv, unit, opts)
	return nil
}

// deliverInvoice pushes the invoice through the optional render/send ports.
// Delivery failures are logged, never counted against the batch — the
// invoice itself is already safely persisted.
func deliverInvoice(inv billmodel.Invoice, unit propmodel.RentalUnit, opts GenerationOptions) {
	if opts.Renderer == nil || opts.Sender == nil {
		return
	}
	if unit.Tenant == nil || unit.Tenant.TenantEmail == nil {
		log.Printf("[RENT-GEN] %s: no tenant email, skipping delivery", inv.InvoiceNumber)
		return
	}
	doc, err := opts.Renderer.Render(inv)
	if err != nil {
		log.Printf("[RENT-GEN] %s: render failed: %v", inv.InvoiceNumber, err)
		return
	}
	if err := opts.Sender.Send(doc, *unit.Tenant.TenantEmail); err != nil {
		log.Printf("[RENT-GEN] %s: delivery failed: %v", inv.InvoiceNumber, err)
	}
}

// today returns the current date truncated to midnight UTC, matching the
// date-typed columns.
func today(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	now := clock().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
