package properties

import (
	"encoding/json"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/properties/model"
)

type TenantSeed struct {
	TenantName  string  `json:"tenant_name"`
	TenantEmail *string `json:"tenant_email,omitempty"`
	TenantPhone *string `json:"tenant_phone,omitempty"`
}

type UnitSeed struct {
	RentalUnitNumber   string      `json:"rental_unit_number"`
	RentalUnitFloor    int16       `json:"rental_unit_floor"`
	RentalUnitStatus   string      `json:"rental_unit_status"`
	RentalUnitRent     string      `json:"rental_unit_rent_amount"`
	RentalUnitCurrency string      `json:"rental_unit_currency"`
	Tenant             *TenantSeed `json:"tenant,omitempty"`
}

type PropertySeed struct {
	PropertyName    string     `json:"property_name"`
	PropertyAddress string     `json:"property_address"`
	PropertyCity    *string    `json:"property_city,omitempty"`
	Units           []UnitSeed `json:"units"`
}

// SeedPropertiesFromJSON loads demo properties, units and tenants. Properties
// already present (by name) are skipped, so reruns are safe.
func SeedPropertiesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading seed file:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var seeds []PropertySeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Printf("❌ Failed to decode seed file: %v", err)
		return
	}

	for _, p := range seeds {
		var existing model.Property
		if err := db.Where("property_name = ?", p.PropertyName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Property %q already seeded, skipping", p.PropertyName)
			continue
		}

		prop := model.Property{
			PropertyName:    p.PropertyName,
			PropertyAddress: p.PropertyAddress,
			PropertyCity:    p.PropertyCity,
		}
		if err := db.Create(&prop).Error; err != nil {
			log.Printf("❌ Failed to insert property %q: %v", p.PropertyName, err)
			continue
		}

		for _, u := range p.Units {
			rent, err := decimal.NewFromString(u.RentalUnitRent)
			if err != nil {
				log.Printf("❌ Bad rent amount %q for unit %s: %v", u.RentalUnitRent, u.RentalUnitNumber, err)
				continue
			}

			unit := model.RentalUnit{
				RentalUnitPropertyID: prop.PropertyID,
				RentalUnitNumber:     u.RentalUnitNumber,
				RentalUnitFloor:      u.RentalUnitFloor,
				RentalUnitStatus:     model.RentalUnitStatus(u.RentalUnitStatus),
				RentalUnitRentAmount: rent,
				RentalUnitCurrency:   u.RentalUnitCurrency,
			}

			if u.Tenant != nil {
				tenant := model.Tenant{
					TenantName:  u.Tenant.TenantName,
					TenantEmail: u.Tenant.TenantEmail,
					TenantPhone: u.Tenant.TenantPhone,
				}
				if err := db.Create(&tenant).Error; err != nil {
					log.Printf("❌ Failed to insert tenant %q: %v", u.Tenant.TenantName, err)
					continue
				}
				id := tenant.TenantID
				unit.RentalUnitTenantID = &id
			}

			if err := db.Create(&unit).Error; err != nil {
				log.Printf("❌ Failed to insert unit %s: %v", u.RentalUnitNumber, err)
			}
		}

		log.Printf("✅ Seeded property %q with %d units", p.PropertyName, len(p.Units))
	}
}
