package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentalku_backend/internals/features/finance/rentbilling/model"
)

const invoiceNumberPrefix = "INV-"

// YearMonthKey is the "YYYYMM" key invoice sequences are scoped by.
func YearMonthKey(year, month int) string {
	return fmt.Sprintf("%04d%02d", year, month)
}

// NextInvoiceNumber allocates the next INV-{YYYYMM}-{NNN} inside tx. The
// counter row is bumped with an atomic in-place UPDATE, so as long as tx also
// inserts the invoice, two concurrent batches cannot hand out the same
// number. A missing counter row is seeded from the highest already-issued
// suffix for that month, which keeps backfilled months and pre-counter data
// honest.
func NextInvoiceNumber(tx *gorm.DB, year, month int) (string, error) {
	ym := YearMonthKey(year, month)
	prefix := invoiceNumberPrefix + ym

	bumped := false
	for attempt := 0; attempt < 3 && !bumped; attempt++ {
		res := tx.Model(&model.InvoiceSequence{}).
			Where("invoice_sequence_year_month = ?", ym).
			UpdateColumn("invoice_sequence_last_value", gorm.Expr("invoice_sequence_last_value + 1"))
		if res.Error != nil {
			return "", res.Error
		}
		if res.RowsAffected > 0 {
			bumped = true
			break
		}

		// no counter yet for this month: seed from issued numbers
		base, err := maxIssuedSequence(tx, prefix)
		if err != nil {
			return "", err
		}
		seed := model.InvoiceSequence{
			InvoiceSequenceYearMonth: ym,
			InvoiceSequenceLastValue: base + 1,
		}
		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed)
		if res.Error != nil {
			return "", res.Error
		}
		if res.RowsAffected > 0 {
			bumped = true
		}
		// conflict means another writer seeded it first; retry the UPDATE
	}
	if !bumped {
		return "", fmt.Errorf("could not allocate invoice sequence for %s", ym)
	}

	var seq model.InvoiceSequence
	if err := tx.First(&seq, "invoice_sequence_year_month = ?", ym).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%03d", prefix, seq.InvoiceSequenceLastValue), nil
}

// maxIssuedSequence scans existing invoice numbers for the month and returns
// the highest numeric suffix. The suffix is parsed as an integer on purpose:
// string order would rank INV-202501-099 above INV-202501-100. Soft-deleted
// invoices still count — their numbers were issued.
func maxIssuedSequence(tx *gorm.DB, prefix string) (int, error) {
	var numbers []string
	if err := tx.Unscoped().Model(&model.Invoice{}).
		Where("invoice_number LIKE ?", prefix+"-%").
		Pluck("invoice_number", &numbers).Error; err != nil {
		return 0, err
	}
	max := 0
	for _, num := range numbers {
		suffix := strings.TrimPrefix(num, prefix+"-")
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue // foreign format, not ours to count
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}
