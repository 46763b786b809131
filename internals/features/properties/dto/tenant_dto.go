package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"rentalku_backend/internals/features/properties/model"
)

type TenantCreateDTO struct {
	TenantName  string  `json:"tenant_name" validate:"required,min=2,max=120"`
	TenantEmail *string `json:"tenant_email,omitempty" validate:"omitempty,email"`
	TenantPhone *string `json:"tenant_phone,omitempty" validate:"omitempty,max=40"`
}

type TenantUpdateDTO struct {
	TenantName  *string `json:"tenant_name,omitempty" validate:"omitempty,min=2,max=120"`
	TenantEmail *string `json:"tenant_email,omitempty" validate:"omitempty,email"`
	TenantPhone *string `json:"tenant_phone,omitempty" validate:"omitempty,max=40"`
}

type TenantResponse struct {
	TenantID    uuid.UUID `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	TenantEmail *string   `json:"tenant_email,omitempty"`
	TenantPhone *string   `json:"tenant_phone,omitempty"`

	TenantCreatedAt time.Time `json:"tenant_created_at"`
	TenantUpdatedAt time.Time `json:"tenant_updated_at"`
}

func (in TenantCreateDTO) ToModel() model.Tenant {
	return model.Tenant{
		TenantName:  strings.TrimSpace(in.TenantName),
		TenantEmail: in.TenantEmail,
		TenantPhone: in.TenantPhone,
	}
}

func ApplyTenantUpdate(m *model.Tenant, in TenantUpdateDTO) {
	if in.TenantName != nil {
		m.TenantName = strings.TrimSpace(*in.TenantName)
	}
	if in.TenantEmail != nil {
		m.TenantEmail = in.TenantEmail
	}
	if in.TenantPhone != nil {
		m.TenantPhone = in.TenantPhone
	}
}

func ToTenantResponse(m model.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:        m.TenantID,
		TenantName:      m.TenantName,
		TenantEmail:     m.TenantEmail,
		TenantPhone:     m.TenantPhone,
		TenantCreatedAt: m.TenantCreatedAt,
		TenantUpdatedAt: m.TenantUpdatedAt,
	}
}

func ToTenantResponses(ms []model.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTenantResponse(m))
	}
	return out
}
