package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	applog "hemline/internal/log"
	"hemline/internal/services"
	"hemline/internal/validate"
)

// CatalogHandler serves the pass-through surface: lookup lists, garment
// CRUD and filters, standalone image upload, customer registration.
type CatalogHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/categories
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	out, err := h.Catalog.Lookups.Categories()
	if err != nil {
		return fail(c, "categories.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/sizes
func (h *CatalogHandler) Sizes(c *fiber.Ctx) error {
	out, err := h.Catalog.Lookups.Sizes()
	if err != nil {
		return fail(c, "sizes.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/colors
func (h *CatalogHandler) Colors(c *fiber.Ctx) error {
	out, err := h.Catalog.Lookups.Colors()
	if err != nil {
		return fail(c, "colors.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/payment-methods
func (h *CatalogHandler) PaymentMethods(c *fiber.Ctx) error {
	out, err := h.Catalog.Lookups.PaymentMethods()
	if err != nil {
		return fail(c, "payments.list.fail", err)
	}
	return c.JSON(out)
}

// POST /api/v1/garments
func (h *CatalogHandler) CreateGarment(c *fiber.Ctx) error {
	var in services.GarmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	g, err := h.Catalog.CreateGarment(in)
	if err != nil {
		return fail(c, "garments.create.fail", err)
	}
	applog.Audit(c, "garments.create", map[string]any{"garment_id": g.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "garment registered", "garment": g})
}

// GET /api/v1/garments
func (h *CatalogHandler) ListGarments(c *fiber.Ctx) error {
	out, err := h.Catalog.Garments.List()
	if err != nil {
		return fail(c, "garments.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/garments/:id
func (h *CatalogHandler) GetGarment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid garment id"})
	}
	g, err := h.Catalog.GetGarment(id)
	if err != nil {
		return fail(c, "garments.get.fail", err)
	}
	return c.JSON(g)
}

// PUT /api/v1/garments/:id
func (h *CatalogHandler) UpdateGarment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid garment id"})
	}
	var in services.GarmentInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if err := h.Catalog.UpdateGarment(id, in); err != nil {
		return fail(c, "garments.update.fail", err)
	}
	applog.Audit(c, "garments.update", map[string]any{"garment_id": id})
	return c.JSON(fiber.Map{"message": "garment updated"})
}

// DELETE /api/v1/garments/:id
func (h *CatalogHandler) DeleteGarment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid garment id"})
	}
	if err := h.Catalog.DeleteGarment(id); err != nil {
		return fail(c, "garments.delete.fail", err)
	}
	applog.Audit(c, "garments.delete", map[string]any{"garment_id": id})
	return c.JSON(fiber.Map{"message": "garment deleted"})
}

// GET /api/v1/garments/size/:sizeId
func (h *CatalogHandler) GarmentsBySize(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("sizeId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid size id"})
	}
	out, err := h.Catalog.Garments.ListBySize(id)
	if err != nil {
		return fail(c, "garments.by_size.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/garments/price/:max
func (h *CatalogHandler) GarmentsByMaxPrice(c *fiber.Ctx) error {
	max, ok := validate.Money(c.Params("max"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid price"})
	}
	out, err := h.Catalog.Garments.ListByMaxPrice(max)
	if err != nil {
		return fail(c, "garments.by_price.fail", err)
	}
	return c.JSON(out)
}

// GET /api/v1/garments/category/:categoryId
func (h *CatalogHandler) GarmentsByCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("categoryId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}
	out, err := h.Catalog.Garments.ListByCategory(id)
	if err != nil {
		return fail(c, "garments.by_category.fail", err)
	}
	return c.JSON(out)
}

// POST /api/v1/upload-image, multipart with a single file under "image".
func (h *CatalogHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "an image file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file"})
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file"})
	}

	url, err := h.Catalog.UploadImage(c.Context(), services.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return fail(c, "upload.fail", err)
	}
	applog.Info(c, "upload.ok", map[string]any{"file": fh.Filename})
	return c.JSON(fiber.Map{"url": url})
}

// POST /api/v1/customers/register
func (h *CatalogHandler) RegisterCustomer(c *fiber.Ctx) error {
	var in services.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
	}
	if email, ok := validate.Email(in.Email); ok {
		in.Email = email
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	if in.Phone != "" {
		if phone, ok := validate.Phone(in.Phone); ok {
			in.Phone = phone
		} else {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid phone"})
		}
	}

	cust, err := h.Catalog.RegisterCustomer(in)
	if err != nil {
		return fail(c, "customers.register.fail", err)
	}
	applog.Audit(c, "customers.register", map[string]any{"customer_id": cust.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "customer registered", "customer": cust})
}
