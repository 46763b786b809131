package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	billmodel "rentalku_backend/internals/features/finance/rentbilling/model"
	propmodel "rentalku_backend/internals/features/properties/model"
)

// BuildLineItem composes the single rent charge line for a unit. When
// utilities are included they fold into the same line (one combined amount,
// unit price mirrors it) rather than a second line.
func BuildLineItem(unit propmodel.RentalUnit, includeUtilities bool, utilitiesAmount decimal.Decimal) billmodel.InvoiceItem {
	desc := fmt.Sprintf("Rent for %s, Floor %d", unit.RentalUnitNumber, unit.RentalUnitFloor)
	amount := unit.RentalUnitRentAmount

	if includeUtilities && utilitiesAmount.IsPositive() {
		desc += " (including utilities)"
		amount = amount.Add(utilitiesAmount)
	}

	return billmodel.InvoiceItem{
		Description: desc,
		Quantity:    1,
		UnitPrice:   amount,
		Amount:      amount,
	}
}
