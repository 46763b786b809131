package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoute "rentalku_backend/internals/features/finance/rentbilling/route"
	"rentalku_backend/internals/features/finance/rentbilling/scheduler"
	propertiesRoute "rentalku_backend/internals/features/properties/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, sched *scheduler.RentScheduler) {
	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	propertiesRoute.PropertyAdminRoutes(admin, db)
	billingRoute.RentBillingAdminRoutes(admin, db, sched)
}
