package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/rentbilling/controller"
	"rentalku_backend/internals/features/finance/rentbilling/scheduler"
	"rentalku_backend/internals/middlewares"
)

// RentBillingAdminRoutes mounts the generation trigger/status endpoints, the
// invoice read API and the billing settings API.
func RentBillingAdminRoutes(admin fiber.Router, db *gorm.DB, sched *scheduler.RentScheduler) {
	genH := &controller.GenerationHandler{DB: db, Scheduler: sched}
	invH := &controller.InvoiceHandler{DB: db}
	setH := &controller.BillingSettingsHandler{DB: db}

	gen := admin.Group("/rent-generation")
	gen.Post("/trigger", middlewares.GenerationRateLimiter(), genH.TriggerGeneration)
	gen.Get("/status", genH.GenerationStatus)
	gen.Post("/restart", genH.RestartScheduler)

	inv := admin.Group("/invoices")
	inv.Get("/", invH.ListInvoices)
	inv.Get("/:id", invH.GetInvoice)

	set := admin.Group("/billing-settings")
	set.Get("/", setH.GetSettings)
	set.Put("/", setH.UpdateSettings)
}
