package model

import (
	"time"
)

// InvoiceSequence is the per-month counter behind invoice numbers. One row
// per "YYYYMM"; bumped inside the same transaction that inserts the invoice
// so allocate-then-insert cannot race another writer into a duplicate number.
type InvoiceSequence struct {
	InvoiceSequenceYearMonth string `json:"invoice_sequence_year_month" gorm:"column:invoice_sequence_year_month;type:char(6);primaryKey"`
	InvoiceSequenceLastValue int    `json:"invoice_sequence_last_value" gorm:"column:invoice_sequence_last_value;not null;default:0"`

	InvoiceSequenceCreatedAt time.Time `json:"invoice_sequence_created_at" gorm:"column:invoice_sequence_created_at;not null;autoCreateTime"`
	InvoiceSequenceUpdatedAt time.Time `json:"invoice_sequence_updated_at" gorm:"column:invoice_sequence_updated_at;not null;autoUpdateTime"`
}

func (InvoiceSequence) TableName() string { return "invoice_sequences" }
