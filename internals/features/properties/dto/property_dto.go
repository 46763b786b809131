package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"rentalku_backend/internals/features/properties/model"
)

type PropertyCreateDTO struct {
	PropertyName    string  `json:"property_name" validate:"required,min=2,max=120"`
	PropertyAddress string  `json:"property_address" validate:"required"`
	PropertyCity    *string `json:"property_city,omitempty" validate:"omitempty,max=80"`
}

type PropertyUpdateDTO struct {
	PropertyName    *string `json:"property_name,omitempty" validate:"omitempty,min=2,max=120"`
	PropertyAddress *string `json:"property_address,omitempty"`
	PropertyCity    *string `json:"property_city,omitempty" validate:"omitempty,max=80"`
}

type PropertyResponse struct {
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	PropertyAddress string    `json:"property_address"`
	PropertyCity    *string   `json:"property_city,omitempty"`

	PropertyCreatedAt time.Time `json:"property_created_at"`
	PropertyUpdatedAt time.Time `json:"property_updated_at"`
}

func (in PropertyCreateDTO) ToModel() model.Property {
	return model.Property{
		PropertyName:    strings.TrimSpace(in.PropertyName),
		PropertyAddress: strings.TrimSpace(in.PropertyAddress),
		PropertyCity:    in.PropertyCity,
	}
}

func ApplyPropertyUpdate(m *model.Property, in PropertyUpdateDTO) {
	if in.PropertyName != nil {
		m.PropertyName = strings.TrimSpace(*in.PropertyName)
	}
	if in.PropertyAddress != nil {
		m.PropertyAddress = strings.TrimSpace(*in.PropertyAddress)
	}
	if in.PropertyCity != nil {
		m.PropertyCity = in.PropertyCity
	}
}

func ToPropertyResponse(m model.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:        m.PropertyID,
		PropertyName:      m.PropertyName,
		PropertyAddress:   m.PropertyAddress,
		PropertyCity:      m.PropertyCity,
		PropertyCreatedAt: m.PropertyCreatedAt,
		PropertyUpdatedAt: m.PropertyUpdatedAt,
	}
}

func ToPropertyResponses(ms []model.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPropertyResponse(m))
	}
	return out
}
