package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/properties/controller"
)

// PropertyAdminRoutes mounts property / tenant / rental-unit CRUD under the
// admin group.
func PropertyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	propH := &controller.PropertyHandler{DB: db}
	tenH := &controller.TenantHandler{DB: db}
	unitH := &controller.RentalUnitHandler{DB: db}

	props := admin.Group("/properties")
	props.Post("/", propH.CreateProperty)
	props.Get("/", propH.ListProperties)
	props.Get("/:id", propH.GetProperty)
	props.Put("/:id", propH.UpdateProperty)
	props.Delete("/:id", propH.DeleteProperty)

	tenants := admin.Group("/tenants")
	tenants.Post("/", tenH.CreateTenant)
	tenants.Get("/", tenH.ListTenants)
	tenants.Get("/:id", tenH.GetTenant)
	tenants.Put("/:id", tenH.UpdateTenant)
	tenants.Delete("/:id", tenH.DeleteTenant)

	units := admin.Group("/rental-units")
	units.Post("/", unitH.CreateRentalUnit)
	units.Get("/", unitH.ListRentalUnits)
	units.Get("/:id", unitH.GetRentalUnit)
	units.Put("/:id", unitH.UpdateRentalUnit)
	units.Delete("/:id", unitH.DeleteRentalUnit)
}
