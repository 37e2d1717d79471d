package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"hemline/internal/config"
	"hemline/internal/http/handlers"
	applog "hemline/internal/log"
	"hemline/internal/repos"
	"hemline/internal/storage"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Image store: GCS bucket when configured, local media dir otherwise.
	var store storage.ObjectStore
	if cfg.GCSBucket != "" {
		gcsStore, err := storage.NewGCSStore(context.Background(), cfg.GCSBucket)
		if err != nil {
			log.Fatal(err)
		}
		defer gcsStore.Close()
		store = gcsStore
		log.Printf("[storage] images -> gs://%s", cfg.GCSBucket)
	} else {
		store = storage.NewLocalStore(cfg.MediaDir, cfg.MediaBase)
		log.Printf("[storage] images -> %s", cfg.MediaDir)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	// Multipart image uploads need headroom beyond the fiber default
	app.Server().MaxRequestBodySize = 16 << 20 // 16 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigin}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/media/")
		},
	}))

	// ---------- Media (local image store only) ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Warn(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Warn(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(mediaDir, clean), true)
	})

	// ---------- API ----------
	deps := handlers.NewDeps(db, store)
	api := app.Group("/api/v1")

	// Lookups
	api.Get("/categories", deps.CatalogHandler.Categories)
	api.Get("/sizes", deps.CatalogHandler.Sizes)
	api.Get("/colors", deps.CatalogHandler.Colors)
	api.Get("/payment-methods", deps.CatalogHandler.PaymentMethods)

	// Allocation ledger
	api.Post("/sizes/register", deps.AllocationHandler.RegisterSizes)
	api.Get("/garments/:id/stock-detail", deps.AllocationHandler.StockDetail)

	// Color variants
	api.Post("/garments/colors", deps.VariantHandler.RegisterColors)

	// Garment catalog (specific paths before :id)
	api.Get("/garments/size/:sizeId", deps.CatalogHandler.GarmentsBySize)
	api.Get("/garments/price/:max", deps.CatalogHandler.GarmentsByMaxPrice)
	api.Get("/garments/category/:categoryId", deps.CatalogHandler.GarmentsByCategory)
	api.Get("/garments", deps.CatalogHandler.ListGarments)
	api.Post("/garments", deps.CatalogHandler.CreateGarment)
	api.Get("/garments/:id", deps.CatalogHandler.GetGarment)
	api.Put("/garments/:id", deps.CatalogHandler.UpdateGarment)
	api.Delete("/garments/:id", deps.CatalogHandler.DeleteGarment)

	// Images & customers
	api.Post("/upload-image", deps.CatalogHandler.UploadImage)
	api.Post("/customers/register", deps.CatalogHandler.RegisterCustomer)

	// Orders
	api.Post("/orders", deps.OrderHandler.Create)
	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Put("/orders/:id/status", deps.OrderHandler.SetStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
