package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"hemline/internal/http/handlers"
	"hemline/internal/repos"
)

type stubStore struct{ calls int }

func (s *stubStore) Upload(_ context.Context, objectPath string, _ []byte, _ string) (string, error) {
	s.calls++
	return "https://cdn.test/" + objectPath, nil
}

// newTestApp spins up the API over an in-memory store with the default
// seeds (garments shirt-linen-01/trouser-chino-01/dress-midi-01, customer
// c-demo, the full status and payment-method sets).
func newTestApp(t *testing.T) (*fiber.App, *stubStore) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	store := &stubStore{}

	app := fiber.New()
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, store)
	api := app.Group("/api/v1")
	api.Post("/sizes/register", deps.AllocationHandler.RegisterSizes)
	api.Get("/garments/:id/stock-detail", deps.AllocationHandler.StockDetail)
	api.Post("/garments/colors", deps.VariantHandler.RegisterColors)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Get("/orders", deps.OrderHandler.List)
	api.Get("/orders/:id", deps.OrderHandler.Get)
	api.Put("/orders/:id/status", deps.OrderHandler.SetStatus)

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterSizesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	// empty sizes list rejected up front
	resp := doJSON(t, app, "POST", "/api/v1/sizes/register", map[string]any{
		"garmentId": "dress-midi-01", "sizes": []any{},
	})
	if resp.StatusCode != 400 {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/v1/sizes/register", map[string]any{
		"garmentId": "dress-midi-01",
		"sizes":     []map[string]any{{"sizeId": "S", "stock": 3}, {"sizeId": "M", "stock": 2}},
	})
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var detail struct {
		StockAssigned  int `json:"stockAssigned"`
		StockAvailable int `json:"stockAvailable"`
	}
	resp = doJSON(t, app, "GET", "/api/v1/garments/dress-midi-01/stock-detail", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &detail)
	if detail.StockAssigned != 5 || detail.StockAvailable != 3 {
		t.Fatalf("want assigned=5 available=3, got %+v", detail)
	}
}

func TestStockDetailEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	// seeded shirt: total 20, S=5 M=8 assigned
	var detail struct {
		GarmentID      string `json:"garmentId"`
		StockTotal     int    `json:"stockTotal"`
		StockAvailable int    `json:"stockAvailable"`
		AssignedSizes  []any  `json:"assignedSizes"`
	}
	resp := doJSON(t, app, "GET", "/api/v1/garments/shirt-linen-01/stock-detail", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &detail)
	if detail.StockTotal != 20 || detail.StockAvailable != 7 || len(detail.AssignedSizes) != 2 {
		t.Fatalf("bad detail: %+v", detail)
	}

	// unknown garment
	resp = doJSON(t, app, "GET", "/api/v1/garments/no-such/stock-detail", nil)
	if resp.StatusCode != 404 {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}

	// fully allocate the dress; the detail turns into a flagged 400
	resp = doJSON(t, app, "POST", "/api/v1/sizes/register", map[string]any{
		"garmentId": "dress-midi-01",
		"sizes":     []map[string]any{{"sizeId": "S", "stock": 8}},
	})
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/api/v1/garments/dress-midi-01/stock-detail", nil)
	if resp.StatusCode != 400 {
		t.Fatalf("fully allocated detail must be 400, got %d", resp.StatusCode)
	}
	var full struct {
		Error          string `json:"error"`
		StockAvailable int    `json:"stockAvailable"`
	}
	decode(t, resp, &full)
	if full.Error == "" || full.StockAvailable != 0 {
		t.Fatalf("want error and clamped stockAvailable=0, got %+v", full)
	}
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	var created struct {
		OrderID string `json:"orderId"`
	}
	resp := doJSON(t, app, "POST", "/api/v1/orders", map[string]any{
		"customerId":      "c-demo",
		"paymentMethodId": "cash",
		"address":         "12 Rose St",
		"coordinates":     "40.4,-3.7",
		"contactNumber":   "+1 555 0100",
		"total":           129.30,
		"lineItems": []map[string]any{
			{"garmentId": "shirt-linen-01", "quantity": 2, "unitPrice": 39.90},
			{"garmentId": "trouser-chino-01", "quantity": 1, "unitPrice": 49.50},
		},
	})
	if resp.StatusCode != 201 {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	decode(t, resp, &created)
	if created.OrderID == "" {
		t.Fatal("no orderId in response")
	}

	var order struct {
		StatusID string `json:"statusId"`
		Items    []struct {
			GarmentID string  `json:"garmentId"`
			Subtotal  float64 `json:"subtotal"`
		} `json:"items"`
	}
	resp = doJSON(t, app, "GET", "/api/v1/orders/"+created.OrderID, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &order)
	if order.StatusID != "NEW" || len(order.Items) != 2 {
		t.Fatalf("bad order: %+v", order)
	}
	if order.Items[0].GarmentID != "shirt-linen-01" || order.Items[0].Subtotal != 79.80 {
		t.Fatalf("bad first item: %+v", order.Items[0])
	}

	// unknown status -> 404, order untouched
	resp = doJSON(t, app, "PUT", "/api/v1/orders/"+created.OrderID+"/status", map[string]any{"statusId": "TELEPORTED"})
	if resp.StatusCode != 404 {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
	// missing status -> 400
	resp = doJSON(t, app, "PUT", "/api/v1/orders/"+created.OrderID+"/status", map[string]any{})
	if resp.StatusCode != 400 {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	// valid transition
	resp = doJSON(t, app, "PUT", "/api/v1/orders/"+created.OrderID+"/status", map[string]any{"statusId": "CONFIRMED"})
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var listed []struct {
		ID string `json:"id"`
	}
	resp = doJSON(t, app, "GET", "/api/v1/orders?statusId=CONFIRMED", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &listed)
	if len(listed) != 1 || listed[0].ID != created.OrderID {
		t.Fatalf("bad filtered list: %+v", listed)
	}

	// malformed filter value
	resp = doJSON(t, app, "GET", "/api/v1/orders?minTotal=abc", nil)
	if resp.StatusCode != 400 {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestVariantEndpointLengthMismatch(t *testing.T) {
	app, store := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("garmentId", "shirt-linen-01")
	_ = w.WriteField("colors", `["black","white"]`)
	fw, err := w.CreateFormFile("images", "black.jpg")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.Copy(fw, strings.NewReader("fake image bytes"))
	_ = w.Close()

	req := httptest.NewRequest("POST", "/api/v1/garments/colors", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("want 400 on 2 colors / 1 image, got %d", resp.StatusCode)
	}
	if store.calls != 0 {
		t.Fatalf("mismatch must not upload anything, got %d", store.calls)
	}
}

func TestVariantEndpointSuccess(t *testing.T) {
	app, store := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("garmentId", "shirt-linen-01")
	_ = w.WriteField("colors", `["black","white"]`)
	for _, name := range []string{"black.jpg", "white.jpg"} {
		fw, err := w.CreateFormFile("images", name)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = io.Copy(fw, strings.NewReader("fake image bytes"))
	}
	_ = w.Close()

	req := httptest.NewRequest("POST", "/api/v1/garments/colors", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var out struct {
		Records []struct {
			ColorID  string `json:"colorId"`
			ImageURL string `json:"imageUrl"`
		} `json:"records"`
	}
	decode(t, resp, &out)
	if len(out.Records) != 2 || out.Records[0].ColorID != "black" || out.Records[1].ColorID != "white" {
		t.Fatalf("bad records: %+v", out.Records)
	}
	if store.calls != 2 {
		t.Fatalf("want 2 uploads, got %d", store.calls)
	}
}
