package service

import (
	"fmt"
	"time"
)

// ComputePeriod returns the first and last calendar day of (year, month).
// time.Date normalizes day 0 of the next month to the last day of this one,
// so variable month lengths and leap years come out right.
func ComputePeriod(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month must be within 1-12, got %d", month)
	}
	if year < 2000 || year > 2100 {
		return time.Time{}, time.Time{}, fmt.Errorf("year must be within 2000-2100, got %d", year)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// ComputeDueDate adds offsetDays calendar days to the invoice date.
// A non-positive offset is a configuration error, not a default.
func ComputeDueDate(invoiceDate time.Time, offsetDays int) (time.Time, error) {
	if offsetDays <= 0 {
		return time.Time{}, fmt.Errorf("due date offset must be positive, got %d", offsetDays)
	}
	return invoiceDate.AddDate(0, 0, offsetDays), nil
}
