package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentalku_backend/internals/features/finance/rentbilling/dto"
	"rentalku_backend/internals/features/finance/rentbilling/model"
	"rentalku_backend/internals/features/finance/rentbilling/service"
	helper "rentalku_backend/internals/helpers"
)

// Read-only API over generated invoices. Status transitions and payment
// marking live in the collection flows, not here.
type InvoiceHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func (h *InvoiceHandler) ListInvoices(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Invoice{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("invoice_status = ?", s)
	}
	if uid := strings.TrimSpace(c.Query("rental_unit_id")); uid != "" {
		q = q.Where("invoice_rental_unit_id = ?", uid)
	}
	if tid := strings.TrimSpace(c.Query("tenant_id")); tid != "" {
		q = q.Where("invoice_tenant_id = ?", tid)
	}

	// ?month=&year= narrows to one billing period
	monthStr, yearStr := strings.TrimSpace(c.Query("month")), strings.TrimSpace(c.Query("year"))
	if monthStr != "" && yearStr != "" {
		month, _ := strconv.Atoi(monthStr)
		year, _ := strconv.Atoi(yearStr)
		start, end, err := service.ComputePeriod(year, month)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("invoice_period_start = ? AND invoice_period_end = ?", start, end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.Invoice
	if err := q.Order("invoice_number DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "invoices", dto.ToInvoiceResponses(rows),
		helper.BuildPagination(total, pg.Page, pg.PerPage))
}

func (h *InvoiceHandler) GetInvoice(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Invoice
	if err := h.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "invoice", dto.ToInvoiceResponse(m))
}
