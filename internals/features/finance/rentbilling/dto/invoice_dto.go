package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/finance/rentbilling/model"
	"rentalku_backend/internals/features/finance/rentbilling/service"
)

// Manual generation request. Month/year are free — backfilling a past month
// is supported and the duplicate guard makes re-runs no-ops.
type GenerateRentDTO struct {
	Month             int `json:"month" validate:"required,min=1,max=12"`
	Year              int `json:"year" validate:"required,min=2000,max=2100"`
	DueDateOffsetDays int `json:"due_date_offset_days,omitempty" validate:"omitempty,min=1,max=90"`
}

type InvoiceResponse struct {
	InvoiceID     uuid.UUID `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`

	InvoicePropertyID   uuid.UUID `json:"invoice_property_id"`
	InvoiceRentalUnitID uuid.UUID `json:"invoice_rental_unit_id"`
	InvoiceTenantID     uuid.UUID `json:"invoice_tenant_id"`

	InvoiceDate        time.Time `json:"invoice_date"`
	InvoiceDueDate     time.Time `json:"invoice_due_date"`
	InvoicePeriodStart time.Time `json:"invoice_period_start"`
	InvoicePeriodEnd   time.Time `json:"invoice_period_end"`

	InvoiceItems    []model.InvoiceItem `json:"invoice_items"`
	InvoiceSubtotal decimal.Decimal     `json:"invoice_subtotal"`
	InvoiceTax      decimal.Decimal     `json:"invoice_tax"`
	InvoiceTotal    decimal.Decimal     `json:"invoice_total"`
	InvoiceCurrency string              `json:"invoice_currency"`

	InvoiceStatus          model.InvoiceStatus `json:"invoice_status"`
	InvoiceIsAutoGenerated bool                `json:"invoice_is_auto_generated"`
	InvoiceCreatedBy       *uuid.UUID          `json:"invoice_created_by,omitempty"`

	InvoiceCreatedAt time.Time `json:"invoice_created_at"`
}

// BatchResultResponse is the operator-facing summary: what was generated,
// what was skipped, and which units failed with what message.
type BatchResultResponse struct {
	GeneratedCount int                 `json:"generated_count"`
	SkippedCount   int                 `json:"skipped_count"`
	Invoices       []InvoiceResponse   `json:"invoices"`
	Errors         []service.UnitError `json:"errors"`
}

func ToInvoiceResponse(m model.Invoice) InvoiceResponse {
	items, err := m.Items()
	if err != nil {
		items = nil // corrupted items column; the amounts below still stand
	}
	return InvoiceResponse{
		InvoiceID:              m.InvoiceID,
		InvoiceNumber:          m.InvoiceNumber,
		InvoicePropertyID:      m.InvoicePropertyID,
		InvoiceRentalUnitID:    m.InvoiceRentalUnitID,
		InvoiceTenantID:        m.InvoiceTenantID,
		InvoiceDate:            m.InvoiceDate,
		InvoiceDueDate:         m.InvoiceDue,
		InvoicePeriodStart:     m.InvoicePeriodStart,
		InvoicePeriodEnd:       m.InvoicePeriodEnd,
		InvoiceItems:           items,
		InvoiceSubtotal:        m.InvoiceSubtotal,
		InvoiceTax:             m.InvoiceTax,
		InvoiceTotal:           m.InvoiceTotal,
		InvoiceCurrency:        m.InvoiceCurrency,
		InvoiceStatus:          m.InvoiceStatus,
		InvoiceIsAutoGenerated: m.InvoiceIsAutoGenerated,
		InvoiceCreatedBy:       m.InvoiceCreatedBy,
		InvoiceCreatedAt:       m.InvoiceCreatedAt,
	}
}

func ToInvoiceResponses(ms []model.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToInvoiceResponse(m))
	}
	return out
}

func ToBatchResultResponse(r service.BatchResult) BatchResultResponse {
	return BatchResultResponse{
		GeneratedCount: r.GeneratedCount,
		SkippedCount:   r.SkippedCount,
		Invoices:       ToInvoiceResponses(r.Invoices),
		Errors:         r.Errors,
	}
}
