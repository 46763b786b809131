package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/properties/dto"
	"rentalku_backend/internals/features/properties/model"
	helper "rentalku_backend/internals/helpers"
)

type TenantHandler struct {
	DB *gorm.DB
}

func (h *TenantHandler) CreateTenant(c *fiber.Ctx) error {
	var in dto.TenantCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	m := in.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "tenant created", dto.ToTenantResponse(m))
}

func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Tenant{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("tenant_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Tenant
	if err := q.Order("tenant_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "tenants", dto.ToTenantResponses(rows),
		helper.BuildPagination(total, pg.Page, pg.PerPage))
}

func (h *TenantHandler) GetTenant(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Tenant
	if err := h.DB.First(&m, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "tenant", dto.ToTenantResponse(m))
}

func (h *TenantHandler) UpdateTenant(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.TenantUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var m model.Tenant
	if err := h.DB.First(&m, "tenant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyTenantUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "tenant updated", dto.ToTenantResponse(m))
}

func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	// refuse while any unit still points at this tenant
	var n int64
	if err := h.DB.Model(&model.RentalUnit{}).
		Where("rental_unit_tenant_id = ?", id).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "tenant is still assigned to a rental unit")
	}

	res := h.DB.Delete(&model.Tenant{}, "tenant_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
	}
	return helper.JsonDeleted(c, "tenant deleted", fiber.Map{"tenant_id": id})
}
