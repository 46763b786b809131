package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/properties/dto"
	"rentalku_backend/internals/features/properties/model"
	helper "rentalku_backend/internals/helpers"
)

type PropertyHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint"))
}

func (h *PropertyHandler) CreateProperty(c *fiber.Ctx) error {
	var in dto.PropertyCreateDTO
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
	return helper.JsonCreated(c, "property created", dto.ToPropertyResponse(m))
}

func (h *PropertyHandler) ListProperties(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Property{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("property_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Property
	if err := q.Order("property_created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "properties", dto.ToPropertyResponses(rows),
		helper.BuildPagination(total, pg.Page, pg.PerPage))
}

func (h *PropertyHandler) GetProperty(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Property
	if err := h.DB.First(&m, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "property", dto.ToPropertyResponse(m))
}

func (h *PropertyHandler) UpdateProperty(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.PropertyUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var m model.Property
	if err := h.DB.First(&m, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyPropertyUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "property updated", dto.ToPropertyResponse(m))
}

func (h *PropertyHandler) DeleteProperty(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.Property{}, "property_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "property not found")
	}
	return helper.JsonDeleted(c, "property deleted", fiber.Map{"property_id": id})
}
