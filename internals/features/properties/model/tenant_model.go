package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	TenantID    uuid.UUID `json:"tenant_id" gorm:"column:tenant_id;type:uuid;primaryKey"`
	TenantName  string    `json:"tenant_name" gorm:"column:tenant_name;type:varchar(120);not null"`
	TenantEmail *string   `json:"tenant_email,omitempty" gorm:"column:tenant_email;type:varchar(160)"`
	TenantPhone *string   `json:"tenant_phone,omitempty" gorm:"column:tenant_phone;type:varchar(40)"`

	TenantCreatedAt time.Time      `json:"tenant_created_at" gorm:"column:tenant_created_at;not null;autoCreateTime"`
	TenantUpdatedAt time.Time      `json:"tenant_updated_at" gorm:"column:tenant_updated_at;not null;autoUpdateTime"`
	TenantDeletedAt gorm.DeletedAt `json:"tenant_deleted_at,omitempty" gorm:"column:tenant_deleted_at;index"`
}

func (Tenant) TableName() string { return "tenants" }

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.TenantID == uuid.Nil {
		t.TenantID = uuid.New()
	}
	return nil
}
