package handlers

import (
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"

	applog "hemline/internal/log"
	"hemline/internal/services"
)

type VariantHandler struct {
	Variants *services.VariantService
}

// POST /api/v1/garments/colors, multipart form with garmentId, a JSON
// array of color ids under "colors", and one file per color under "images".
func (h *VariantHandler) RegisterColors(c *fiber.Ctx) error {
	garmentID := c.FormValue("garmentId")

	var colorIDs []string
	if raw := c.FormValue("colors"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &colorIDs); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "colors must be a JSON array of color ids"})
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart form data is required"})
	}
	uploads := make([]services.Upload, 0, len(colorIDs))
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file " + fh.Filename})
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read uploaded file " + fh.Filename})
		}
		uploads = append(uploads, services.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	records, err := h.Variants.RegisterColors(c.Context(), garmentID, colorIDs, uploads)
	if err != nil {
		return fail(c, "variants.register.fail", err)
	}
	applog.Audit(c, "variants.register", map[string]any{
		"garment_id": garmentID,
		"submitted":  len(colorIDs),
		"stored":     len(records),
	})
	return c.JSON(fiber.Map{"message": "color variants registered", "records": records})
}
