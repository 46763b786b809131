package seeds

import (
	"gorm.io/gorm"

	properties "rentalku_backend/internals/seeds/properties"
)

// RunDemoSeeds loads the demo dataset. Intended for local development only;
// gated behind SEED_DEMO_DATA at the call site.
func RunDemoSeeds(db *gorm.DB) {
	properties.SeedPropertiesFromJSON(db, "internals/seeds/properties/data_properties.json")
}
