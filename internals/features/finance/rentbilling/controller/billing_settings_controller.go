package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/rentbilling/dto"
	"rentalku_backend/internals/features/finance/rentbilling/model"
	helper "rentalku_backend/internals/helpers"
)

type BillingSettingsHandler struct {
	DB *gorm.DB
}

func (h *BillingSettingsHandler) GetSettings(c *fiber.Ctx) error {
	s, err := model.LoadBillingSettings(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "billing settings", dto.ToBillingSettingsResponse(s))
}

// UpdateSettings validates the merged row before saving; a day/timezone
// change only reaches the cron entry via the restart endpoint.
func (h *BillingSettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.BillingSettingsUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	s, err := model.LoadBillingSettings(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyBillingSettingsUpdate(&s, in)
	if err := s.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if s.BillingSettingsTimezone != "" {
		if _, err := time.LoadLocation(s.BillingSettingsTimezone); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown timezone")
		}
	}

	if err := h.DB.Save(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "billing settings updated", dto.ToBillingSettingsResponse(s))
}
