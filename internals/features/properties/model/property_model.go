package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	PropertyID      uuid.UUID `json:"property_id" gorm:"column:property_id;type:uuid;primaryKey"`
	PropertyName    string    `json:"property_name" gorm:"column:property_name;type:varchar(120);not null"`
	PropertyAddress string    `json:"property_address" gorm:"column:property_address;type:text;not null"`
	PropertyCity    *string   `json:"property_city,omitempty" gorm:"column:property_city;type:varchar(80)"`

	PropertyCreatedAt time.Time      `json:"property_created_at" gorm:"column:property_created_at;not null;autoCreateTime"`
	PropertyUpdatedAt time.Time      `json:"property_updated_at" gorm:"column:property_updated_at;not null;autoUpdateTime"`
	PropertyDeletedAt gorm.DeletedAt `json:"property_deleted_at,omitempty" gorm:"column:property_deleted_at;index"`
}

func (Property) TableName() string { return "properties" }

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	return nil
}
