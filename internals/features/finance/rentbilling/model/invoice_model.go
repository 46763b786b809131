package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM invoice_status -----------------------------------------------------
// The generator only ever writes draft; the other states are moved by the
// payment/collection flows.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// --- LINE ITEM (stored as JSONB) ---------------------------------------------
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// --- MODEL invoices ----------------------------------------------------------
type Invoice struct {
	InvoiceID     uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;primaryKey"`
	InvoiceNumber string    `json:"invoice_number" gorm:"column:invoice_number;type:varchar(24);not null;uniqueIndex:uq_invoices_number"`

	// denormalized at creation from the unit's associations
	InvoicePropertyID   uuid.UUID `json:"invoice_property_id" gorm:"column:invoice_property_id;type:uuid;not null;index:idx_invoices_property"`
	InvoiceRentalUnitID uuid.UUID `json:"invoice_rental_unit_id" gorm:"column:invoice_rental_unit_id;type:uuid;not null;uniqueIndex:uq_invoices_unit_period,priority:1"`
	InvoiceTenantID     uuid.UUID `json:"invoice_tenant_id" gorm:"column:invoice_tenant_id;type:uuid;not null;index:idx_invoices_tenant"`

	InvoiceDate time.Time `json:"invoice_date" gorm:"column:invoice_date;type:date;not null"`
	InvoiceDue  time.Time `json:"invoice_due_date" gorm:"column:invoice_due_date;type:date;not null"`

	// the calendar month this invoice covers; the unique index with the unit
	// id is the idempotency backstop
	InvoicePeriodStart time.Time `json:"invoice_period_start" gorm:"column:invoice_period_start;type:date;not null;uniqueIndex:uq_invoices_unit_period,priority:2;index:idx_invoices_period_start"`
	InvoicePeriodEnd   time.Time `json:"invoice_period_end" gorm:"column:invoice_period_end;type:date;not null;uniqueIndex:uq_invoices_unit_period,priority:3"`

	InvoiceItems    datatypes.JSON  `json:"invoice_items" gorm:"column:invoice_items;not null"`
	InvoiceSubtotal decimal.Decimal `json:"invoice_subtotal" gorm:"column:invoice_subtotal;type:numeric(12,2);not null"`
	InvoiceTax      decimal.Decimal `json:"invoice_tax" gorm:"column:invoice_tax;type:numeric(12,2);not null;default:0"`
	InvoiceTotal    decimal.Decimal `json:"invoice_total" gorm:"column:invoice_total;type:numeric(12,2);not null"`
	InvoiceCurrency string          `json:"invoice_currency" gorm:"column:invoice_currency;type:char(3);not null;default:'MVR'"`

	InvoiceStatus          InvoiceStatus `json:"invoice_status" gorm:"column:invoice_status;type:varchar(12);not null;default:'draft';index:idx_invoices_status"`
	InvoiceIsAutoGenerated bool          `json:"invoice_is_auto_generated" gorm:"column:invoice_is_auto_generated;not null;default:false"`
	InvoiceCreatedBy       *uuid.UUID    `json:"invoice_created_by,omitempty" gorm:"column:invoice_created_by;type:uuid"` // nil = system

	InvoiceCreatedAt time.Time      `json:"invoice_created_at" gorm:"column:invoice_created_at;not null;autoCreateTime"`
	InvoiceUpdatedAt time.Time      `json:"invoice_updated_at" gorm:"column:invoice_updated_at;not null;autoUpdateTime"`
	InvoiceDeletedAt gorm.DeletedAt `json:"invoice_deleted_at,omitempty" gorm:"column:invoice_deleted_at;index"`
}

func (Invoice) TableName() string { return "invoices" }

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.InvoiceID == uuid.Nil {
		i.InvoiceID = uuid.New()
	}
	if i.InvoiceNumber == "" {
		return fmt.Errorf("invoice_number is required")
	}
	if i.InvoiceRentalUnitID == uuid.Nil {
		return fmt.Errorf("invoice_rental_unit_id is required")
	}
	return nil
}

// SetItems serializes the line items into the JSON column.
func (i *Invoice) SetItems(items []InvoiceItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	i.InvoiceItems = datatypes.JSON(raw)
	return nil
}

// Items decodes the JSON column back into line items.
func (i *Invoice) Items() ([]InvoiceItem, error) {
	var items []InvoiceItem
	if len(i.InvoiceItems) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(i.InvoiceItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}
