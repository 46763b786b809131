package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/properties/model"
)

// Create: a unit starts available; assigning a tenant and flipping status to
// occupied normally happens on update (move-in).
type RentalUnitCreateDTO struct {
	RentalUnitPropertyID uuid.UUID               `json:"rental_unit_property_id" validate:"required"`
	RentalUnitTenantID   *uuid.UUID              `json:"rental_unit_tenant_id,omitempty"`
	RentalUnitNumber     string                  `json:"rental_unit_number" validate:"required,max=40"`
	RentalUnitFloor      int16                   `json:"rental_unit_floor"`
	RentalUnitStatus     *model.RentalUnitStatus `json:"rental_unit_status,omitempty"`
	RentalUnitRentAmount decimal.Decimal         `json:"rental_unit_rent_amount" validate:"required"`
	RentalUnitCurrency   *string                 `json:"rental_unit_currency,omitempty" validate:"omitempty,len=3"`
}

type RentalUnitUpdateDTO struct {
	RentalUnitTenantID   *uuid.UUID              `json:"rental_unit_tenant_id,omitempty"`
	RentalUnitNumber     *string                 `json:"rental_unit_number,omitempty" validate:"omitempty,max=40"`
	RentalUnitFloor      *int16                  `json:"rental_unit_floor,omitempty"`
	RentalUnitStatus     *model.RentalUnitStatus `json:"rental_unit_status,omitempty"`
	RentalUnitRentAmount *decimal.Decimal        `json:"rental_unit_rent_amount,omitempty"`
	RentalUnitCurrency   *string                 `json:"rental_unit_currency,omitempty" validate:"omitempty,len=3"`

	// move-out: explicitly clear the tenant reference
	ClearTenant bool `json:"clear_tenant,omitempty"`
}

type RentalUnitResponse struct {
	RentalUnitID         uuid.UUID              `json:"rental_unit_id"`
	RentalUnitPropertyID uuid.UUID              `json:"rental_unit_property_id"`
	RentalUnitTenantID   *uuid.UUID             `json:"rental_unit_tenant_id,omitempty"`
	RentalUnitNumber     string                 `json:"rental_unit_number"`
	RentalUnitFloor      int16                  `json:"rental_unit_floor"`
	RentalUnitStatus     model.RentalUnitStatus `json:"rental_unit_status"`
	RentalUnitRentAmount decimal.Decimal        `json:"rental_unit_rent_amount"`
	RentalUnitCurrency   string                 `json:"rental_unit_currency"`

	Property *PropertyResponse `json:"property,omitempty"`
	Tenant   *TenantResponse   `json:"tenant,omitempty"`

	RentalUnitCreatedAt time.Time `json:"rental_unit_created_at"`
	RentalUnitUpdatedAt time.Time `json:"rental_unit_updated_at"`
}

func (in RentalUnitCreateDTO) ToModel() (model.RentalUnit, error) {
	m := model.RentalUnit{
		RentalUnitPropertyID: in.RentalUnitPropertyID,
		RentalUnitTenantID:   in.RentalUnitTenantID,
		RentalUnitNumber:     strings.TrimSpace(in.RentalUnitNumber),
		RentalUnitFloor:      in.RentalUnitFloor,
		RentalUnitStatus:     model.UnitStatusAvailable,
		RentalUnitRentAmount: in.RentalUnitRentAmount,
		RentalUnitCurrency:   "MVR",
	}
	if in.RentalUnitStatus != nil {
		if !in.RentalUnitStatus.Valid() {
			return m, fmt.Errorf("invalid rental_unit_status: %s", *in.RentalUnitStatus)
		}
		m.RentalUnitStatus = *in.RentalUnitStatus
	}
	if in.RentalUnitCurrency != nil {
		m.RentalUnitCurrency = strings.ToUpper(strings.TrimSpace(*in.RentalUnitCurrency))
	}
	if m.RentalUnitRentAmount.IsNegative() {
		return m, fmt.Errorf("rental_unit_rent_amount must not be negative")
	}
	return m, nil
}

func ApplyRentalUnitUpdate(m *model.RentalUnit, in RentalUnitUpdateDTO) error {
	if in.ClearTenant {
		m.RentalUnitTenantID = nil
	} else if in.RentalUnitTenantID != nil {
		m.RentalUnitTenantID = in.RentalUnitTenantID
	}
	if in.RentalUnitNumber != nil {
		m.RentalUnitNumber = strings.TrimSpace(*in.RentalUnitNumber)
	}
	if in.RentalUnitFloor != nil {
		m.RentalUnitFloor = *in.RentalUnitFloor
	}
	if in.RentalUnitStatus != nil {
		if !in.RentalUnitStatus.Valid() {
			return fmt.Errorf("invalid rental_unit_status: %s", *in.RentalUnitStatus)
		}
		m.RentalUnitStatus = *in.RentalUnitStatus
	}
	if in.RentalUnitRentAmount != nil {
		if in.RentalUnitRentAmount.IsNegative() {
			return fmt.Errorf("rental_unit_rent_amount must not be negative")
		}
		m.RentalUnitRentAmount = *in.RentalUnitRentAmount
	}
	if in.RentalUnitCurrency != nil {
		m.RentalUnitCurrency = strings.ToUpper(strings.TrimSpace(*in.RentalUnitCurrency))
	}
	return nil
}

func ToRentalUnitResponse(m model.RentalUnit) RentalUnitResponse {
	out := RentalUnitResponse{
		RentalUnitID:         m.RentalUnitID,
		RentalUnitPropertyID: m.RentalUnitPropertyID,
		RentalUnitTenantID:   m.RentalUnitTenantID,
		RentalUnitNumber:     m.RentalUnitNumber,
		RentalUnitFloor:      m.RentalUnitFloor,
		RentalUnitStatus:     m.RentalUnitStatus,
		RentalUnitRentAmount: m.RentalUnitRentAmount,
		RentalUnitCurrency:   m.RentalUnitCurrency,
		RentalUnitCreatedAt:  m.RentalUnitCreatedAt,
		RentalUnitUpdatedAt:  m.RentalUnitUpdatedAt,
	}
	if m.Property != nil {
		p := ToPropertyResponse(*m.Property)
		out.Property = &p
	}
	if m.Tenant != nil {
		t := ToTenantResponse(*m.Tenant)
		out.Tenant = &t
	}
	return out
}

func ToRentalUnitResponses(ms []model.RentalUnit) []RentalUnitResponse {
	out := make([]RentalUnitResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRentalUnitResponse(m))
	}
	return out
}
