package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	applog "hemline/internal/log"
	"hemline/internal/services"
	"hemline/internal/validate"
)

type AllocationHandler struct {
	Alloc *services.AllocationService
}

type registerSizesReq struct {
	GarmentID string               `json:"garmentId"`
	Sizes     []services.SizeStock `json:"sizes"`
}

// POST /api/v1/sizes/register
func (h *AllocationHandler) RegisterSizes(c *fiber.Ctx) error {
	var req registerSizesReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if err := h.Alloc.RegisterSizes(req.GarmentID, req.Sizes); err != nil {
		return fail(c, "sizes.register.fail", err)
	}
	applog.Audit(c, "sizes.register", map[string]any{"garment_id": req.GarmentID, "count": len(req.Sizes)})
	return c.JSON(fiber.Map{"message": "sizes registered"})
}

// GET /api/v1/garments/:id/stock-detail
func (h *AllocationHandler) StockDetail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid garment id"})
	}

	d, err := h.Alloc.StockDetail(id)
	if err != nil {
		return fail(c, "sizes.detail.fail", err)
	}

	body := fiber.Map{
		"garmentId":      d.GarmentID,
		"stockTotal":     d.StockTotal,
		"stockAssigned":  d.StockAssigned,
		"stockAvailable": d.StockAvailable,
		"assignedSizes":  d.AssignedSizes,
	}
	if d.FullyAllocated {
		// Over-allocation is possible (the ledger accepts writes past the
		// ceiling); the wire payload clamps remaining stock at zero.
		body["stockAvailable"] = 0
		body["message"] = "all declared stock is assigned"
		body["error"] = "garment fully allocated"
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}
	body["message"] = fmt.Sprintf("%d units available to assign", d.StockAvailable)
	return c.JSON(body)
}
