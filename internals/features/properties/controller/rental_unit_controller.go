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

type RentalUnitHandler struct {
	DB *gorm.DB
}

func (h *RentalUnitHandler) CreateRentalUnit(c *fiber.Ctx) error {
	var in dto.RentalUnitCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	m, err := in.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// property must exist
	var exists int64
	if err := h.DB.Model(&model.Property{}).
		Where("property_id = ?", m.RentalUnitPropertyID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "property not found")
	}

	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "unit number already exists on this property")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "rental unit created", dto.ToRentalUnitResponse(m))
}

func (h *RentalUnitHandler) ListRentalUnits(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.RentalUnit{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		st := model.RentalUnitStatus(s)
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status filter")
		}
		q = q.Where("rental_unit_status = ?", st)
	}
	if pid := strings.TrimSpace(c.Query("property_id")); pid != "" {
		q = q.Where("rental_unit_property_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.RentalUnit
	if err := q.Preload("Property").Preload("Tenant").
		Order("rental_unit_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "rental units", dto.ToRentalUnitResponses(rows),
		helper.BuildPagination(total, pg.Page, pg.PerPage))
}

func (h *RentalUnitHandler) GetRentalUnit(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.RentalUnit
	if err := h.DB.Preload("Property").Preload("Tenant").
		First(&m, "rental_unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "rental unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "rental unit", dto.ToRentalUnitResponse(m))
}

func (h *RentalUnitHandler) UpdateRentalUnit(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.RentalUnitUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var m model.RentalUnit
	if err := h.DB.First(&m, "rental_unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "rental unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := dto.ApplyRentalUnitUpdate(&m, in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// an occupied unit needs a tenant; the invoice generator treats the
	// inverse as a data error, so block it at the door here
	if m.RentalUnitStatus == model.UnitStatusOccupied && m.RentalUnitTenantID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "an occupied unit requires a tenant")
	}
	if m.RentalUnitTenantID != nil {
		var exists int64
		if err := h.DB.Model(&model.Tenant{}).
			Where("tenant_id = ?", *m.RentalUnitTenantID).
			Count(&exists).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if exists == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant not found")
		}
	}

	if err := h.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "unit number already exists on this property")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "rental unit updated", dto.ToRentalUnitResponse(m))
}

func (h *RentalUnitHandler) DeleteRentalUnit(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.RentalUnit{}, "rental_unit_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "rental unit not found")
	}
	return helper.JsonDeleted(c, "rental unit deleted", fiber.Map{"rental_unit_id": id})
}
