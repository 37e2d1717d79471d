package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "hemline/internal/log"
	"hemline/internal/repos"
	"hemline/internal/services"
	"hemline/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type createOrderReq struct {
	CustomerID      string              `json:"customerId"`
	PaymentMethodID string              `json:"paymentMethodId"`
	Address         string              `json:"address"`
	Coordinates     string              `json:"coordinates"`
	ContactNumber   string              `json:"contactNumber"`
	Total           float64             `json:"total"`
	LineItems       []services.LineItem `json:"lineItems"`
}

// POST /api/v1/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}

	orderID, err := h.Orders.Create(services.CreateOrderInput{
		CustomerID:      req.CustomerID,
		PaymentMethodID: req.PaymentMethodID,
		Address:         req.Address,
		Coordinates:     req.Coordinates,
		ContactNumber:   req.ContactNumber,
		Total:           req.Total,
		Items:           req.LineItems,
	})
	if err != nil {
		return fail(c, "orders.create.fail", err)
	}
	applog.Audit(c, "orders.create", map[string]any{"order_id": orderID, "items": len(req.LineItems)})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "order created", "orderId": orderID})
}

// GET /api/v1/orders?customerId&statusId&minTotal&maxTotal&dateFrom&dateTo
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var f repos.OrderFilter

	if v := strings.TrimSpace(c.Query("customerId")); v != "" {
		id, ok := validate.ID(v)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customerId"})
		}
		f.CustomerID = id
	}
	if v := strings.TrimSpace(c.Query("statusId")); v != "" {
		id, ok := validate.ID(v)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid statusId"})
		}
		f.StatusID = id
	}
	if v := strings.TrimSpace(c.Query("minTotal")); v != "" {
		amt, ok := validate.Money(v)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid minTotal"})
		}
		f.MinTotal = &amt
	}
	if v := strings.TrimSpace(c.Query("maxTotal")); v != "" {
		amt, ok := validate.Money(v)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid maxTotal"})
		}
		f.MaxTotal = &amt
	}
	f.DateFrom = strings.TrimSpace(c.Query("dateFrom"))
	f.DateTo = strings.TrimSpace(c.Query("dateTo"))

	orders, err := h.Orders.List(f)
	if err != nil {
		return fail(c, "orders.list.fail", err)
	}
	return c.JSON(orders)
}

// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}
	o, err := h.Orders.Get(id)
	if err != nil {
		return fail(c, "orders.get.fail", err)
	}
	return c.JSON(o)
}

type setStatusReq struct {
	StatusID string `json:"statusId"`
}

// PUT /api/v1/orders/:id/status
func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid order id"})
	}
	var req setStatusReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}

	if err := h.Orders.SetStatus(id, req.StatusID); err != nil {
		return fail(c, "orders.status.fail", err)
	}
	applog.Audit(c, "orders.status", map[string]any{"order_id": id, "status": req.StatusID})
	return c.JSON(fiber.Map{"message": "status updated", "orderId": id})
}
