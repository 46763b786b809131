package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"rentalku_backend/internals/features/finance/rentbilling/model"
)

// Partial update; changing the generation day or timezone takes effect only
// after the scheduler restart endpoint is hit.
type BillingSettingsUpdateDTO struct {
	AutoGenerateRent *bool            `json:"auto_generate_rent,omitempty"`
	GenerationDay    *int             `json:"generation_day,omitempty" validate:"omitempty,min=1,max=31"`
	RentDueDays      *int             `json:"rent_due_days,omitempty" validate:"omitempty,min=1,max=90"`
	IncludeUtilities *bool            `json:"include_utilities,omitempty"`
	UtilitiesAmount  *decimal.Decimal `json:"utilities_amount,omitempty"`
	Timezone         *string          `json:"timezone,omitempty" validate:"omitempty,max=64"`
}

type BillingSettingsResponse struct {
	AutoGenerateRent bool            `json:"auto_generate_rent"`
	GenerationDay    int             `json:"generation_day"`
	RentDueDays      int             `json:"rent_due_days"`
	IncludeUtilities bool            `json:"include_utilities"`
	UtilitiesAmount  decimal.Decimal `json:"utilities_amount"`
	Timezone         string          `json:"timezone"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func ApplyBillingSettingsUpdate(m *model.BillingSettings, in BillingSettingsUpdateDTO) {
	if in.AutoGenerateRent != nil {
		m.BillingSettingsAutoGenerateRent = *in.AutoGenerateRent
	}
	if in.GenerationDay != nil {
		m.BillingSettingsGenerationDay = *in.GenerationDay
	}
	if in.RentDueDays != nil {
		m.BillingSettingsRentDueDays = *in.RentDueDays
	}
	if in.IncludeUtilities != nil {
		m.BillingSettingsIncludeUtilities = *in.IncludeUtilities
	}
	if in.UtilitiesAmount != nil {
		m.BillingSettingsUtilitiesAmount = *in.UtilitiesAmount
	}
	if in.Timezone != nil {
		m.BillingSettingsTimezone = *in.Timezone
	}
}

func ToBillingSettingsResponse(m model.BillingSettings) BillingSettingsResponse {
	return BillingSettingsResponse{
		AutoGenerateRent: m.BillingSettingsAutoGenerateRent,
		GenerationDay:    m.BillingSettingsGenerationDay,
		RentDueDays:      m.BillingSettingsRentDueDays,
		IncludeUtilities: m.BillingSettingsIncludeUtilities,
		UtilitiesAmount:  m.BillingSettingsUtilitiesAmount,
		Timezone:         m.BillingSettingsTimezone,
		UpdatedAt:        m.BillingSettingsUpdatedAt,
	}
}
