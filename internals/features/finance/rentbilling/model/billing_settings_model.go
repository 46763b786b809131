package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillingSettings is the single settings row the generator reads once per
// invocation. The scheduler re-reads it only on restart.
type BillingSettings struct {
	BillingSettingsID int `json:"billing_settings_id" gorm:"column:billing_settings_id;primaryKey"`

	BillingSettingsAutoGenerateRent  bool            `json:"billing_settings_auto_generate_rent" gorm:"column:billing_settings_auto_generate_rent;not null;default:true"`
	BillingSettingsGenerationDay     int             `json:"billing_settings_generation_day" gorm:"column:billing_settings_generation_day;not null;default:1"`
	BillingSettingsRentDueDays       int             `json:"billing_settings_rent_due_days" gorm:"column:billing_settings_rent_due_days;not null;default:7"`
	BillingSettingsIncludeUtilities  bool            `json:"billing_settings_include_utilities" gorm:"column:billing_settings_include_utilities;not null;default:false"`
	BillingSettingsUtilitiesAmount   decimal.Decimal `json:"billing_settings_utilities_amount" gorm:"column:billing_settings_utilities_amount;type:numeric(12,2);not null;default:0"`
	BillingSettingsTimezone          string          `json:"billing_settings_timezone" gorm:"column:billing_settings_timezone;type:varchar(64);not null;default:'Indian/Maldives'"`

	BillingSettingsCreatedAt time.Time `json:"billing_settings_created_at" gorm:"column:billing_settings_created_at;not null;autoCreateTime"`
	BillingSettingsUpdatedAt time.Time `json:"billing_settings_updated_at" gorm:"column:billing_settings_updated_at;not null;autoUpdateTime"`
}

func (BillingSettings) TableName() string { return "billing_settings" }

// Validate surfaces configuration errors before they reach the scheduler or
// the generator.
func (s *BillingSettings) Validate() error {
	if s.BillingSettingsGenerationDay < 1 || s.BillingSettingsGenerationDay > 31 {
		return fmt.Errorf("generation day must be within 1-31, got %d", s.BillingSettingsGenerationDay)
	}
	if s.BillingSettingsRentDueDays <= 0 {
		return fmt.Errorf("rent due days must be positive, got %d", s.BillingSettingsRentDueDays)
	}
	if s.BillingSettingsUtilitiesAmount.IsNegative() {
		return errors.New("utilities amount must not be negative")
	}
	return nil
}

// LoadBillingSettings fetches the settings row. Exactly one row exists
// (see EnsureBillingSettings).
func LoadBillingSettings(db *gorm.DB) (BillingSettings, error) {
	var s BillingSettings
	if err := db.First(&s, "billing_settings_id = ?", 1).Error; err != nil {
		return s, fmt.Errorf("load billing settings: %w", err)
	}
	return s, nil
}

// EnsureBillingSettings seeds the defaults row on first boot.
func EnsureBillingSettings(db *gorm.DB) error {
	var n int64
	if err := db.Model(&BillingSettings{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return db.Create(&BillingSettings{
		BillingSettingsID:               1,
		BillingSettingsAutoGenerateRent: true,
		BillingSettingsGenerationDay:    1,
		BillingSettingsRentDueDays:      7,
		BillingSettingsUtilitiesAmount:  decimal.Zero,
		BillingSettingsTimezone:         "Indian/Maldives",
	}).Error
}
