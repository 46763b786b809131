package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/rentbilling/dto"
	"rentalku_backend/internals/features/finance/rentbilling/scheduler"
	helper "rentalku_backend/internals/helpers"
)

type GenerationHandler struct {
	DB        *gorm.DB
	Scheduler *scheduler.RentScheduler
}

// TriggerGeneration — POST /rent-generation/trigger
// Manual path: bypasses the auto-generate gate, accepts any month/year.
func (h *GenerationHandler) TriggerGeneration(c *fiber.Ctx) error {
	var in dto.GenerateRentDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fe := helper.ValidateStruct(in); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	result, err := h.Scheduler.TriggerManually(in.Year, in.Month, in.DueDateOffsetDays)
	if err != nil {
		// batch-level failure: surface whatever partial summary exists
		if result.GeneratedCount > 0 || len(result.Errors) > 0 {
			return helper.JsonErrorWithData(c, fiber.StatusInternalServerError, err.Error(),
				dto.ToBatchResultResponse(result))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "rent generation finished", dto.ToBatchResultResponse(result))
}

// GenerationStatus — GET /rent-generation/status
func (h *GenerationHandler) GenerationStatus(c *fiber.Ctx) error {
	return helper.JsonOK(c, "generation status", h.Scheduler.Status())
}

// RestartScheduler — POST /rent-generation/restart
// Re-reads the generation-day setting and re-registers the cron entry.
func (h *GenerationHandler) RestartScheduler(c *fiber.Ctx) error {
	if err := h.Scheduler.Restart(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonOK(c, "scheduler restarted", h.Scheduler.Status())
}
