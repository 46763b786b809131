package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- ENUM rental_unit_status -------------------------------------------------
type RentalUnitStatus string

const (
	UnitStatusAvailable   RentalUnitStatus = "available"
	UnitStatusOccupied    RentalUnitStatus = "occupied"
	UnitStatusMaintenance RentalUnitStatus = "maintenance"
	UnitStatusReserved    RentalUnitStatus = "reserved"
)

func (s RentalUnitStatus) Valid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusOccupied, UnitStatusMaintenance, UnitStatusReserved:
		return true
	}
	return false
}

// --- MODEL rental_units ------------------------------------------------------
type RentalUnit struct {
	RentalUnitID         uuid.UUID        `json:"rental_unit_id" gorm:"column:rental_unit_id;type:uuid;primaryKey"`
	RentalUnitPropertyID uuid.UUID        `json:"rental_unit_property_id" gorm:"column:rental_unit_property_id;type:uuid;not null;index:idx_rental_units_property;uniqueIndex:uq_rental_units_property_number,priority:1"`
	RentalUnitTenantID   *uuid.UUID       `json:"rental_unit_tenant_id,omitempty" gorm:"column:rental_unit_tenant_id;type:uuid;index:idx_rental_units_tenant"`
	RentalUnitNumber     string           `json:"rental_unit_number" gorm:"column:rental_unit_number;type:varchar(40);not null;uniqueIndex:uq_rental_units_property_number,priority:2"`
	RentalUnitFloor      int16            `json:"rental_unit_floor" gorm:"column:rental_unit_floor;type:smallint;not null;default:0"`
	RentalUnitStatus     RentalUnitStatus `json:"rental_unit_status" gorm:"column:rental_unit_status;type:varchar(20);not null;default:'available';index:idx_rental_units_status"`
	RentalUnitRentAmount decimal.Decimal  `json:"rental_unit_rent_amount" gorm:"column:rental_unit_rent_amount;type:numeric(12,2);not null"`
	RentalUnitCurrency   string           `json:"rental_unit_currency" gorm:"column:rental_unit_currency;type:char(3);not null;default:'MVR'"`

	RentalUnitCreatedAt time.Time      `json:"rental_unit_created_at" gorm:"column:rental_unit_created_at;not null;autoCreateTime"`
	RentalUnitUpdatedAt time.Time      `json:"rental_unit_updated_at" gorm:"column:rental_unit_updated_at;not null;autoUpdateTime"`
	RentalUnitDeletedAt gorm.DeletedAt `json:"rental_unit_deleted_at,omitempty" gorm:"column:rental_unit_deleted_at;index"`

	// eager-load targets for invoice denormalization
	Property *Property `json:"property,omitempty" gorm:"foreignKey:RentalUnitPropertyID;references:PropertyID"`
	Tenant   *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:RentalUnitTenantID;references:TenantID"`
}

func (RentalUnit) TableName() string { return "rental_units" }

func (u *RentalUnit) BeforeCreate(tx *gorm.DB) error {
	if u.RentalUnitID == uuid.Nil {
		u.RentalUnitID = uuid.New()
	}
	if u.RentalUnitPropertyID == uuid.Nil {
		return fmt.Errorf("rental_unit_property_id is required")
	}
	return nil
}

func (u *RentalUnit) BeforeSave(tx *gorm.DB) error {
	if u.RentalUnitStatus != "" && !u.RentalUnitStatus.Valid() {
		return fmt.Errorf("invalid rental_unit_status: %s", u.RentalUnitStatus)
	}
	if u.RentalUnitUpdatedAt.IsZero() {
		u.RentalUnitUpdatedAt = time.Now()
	}
	return nil
}
