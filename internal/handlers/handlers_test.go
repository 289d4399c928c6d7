package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TKNasansor/TKNLIFT/internal/handlers"
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// setupApp builds a Fiber app over a store seeded with one building and one
// part, with the same routes the server registers.
func setupApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	initial := store.NewState()
	initial.Buildings = append(initial.Buildings, models.Building{
		ID:             "b1",
		Name:           "Gül Apartmanı",
		MaintenanceFee: decimal.NewFromInt(500),
		ElevatorCount:  2,
		ContactInfo:    "0532 111 22 33",
	})
	initial.Parts = append(initial.Parts, models.Part{
		ID:       "p1",
		Name:     "Halat",
		Quantity: 5,
		Price:    decimal.NewFromInt(250),
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	s := store.New(initial, nil, log)
	h := handlers.NewHandler(s, log)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/buildings", h.ListBuildings)
	api.Post("/buildings", h.CreateBuilding)
	api.Get("/buildings/:id", h.GetBuilding)
	api.Put("/buildings/:id", h.UpdateBuilding)
	api.Delete("/buildings/:id", h.DeleteBuilding)
	api.Post("/buildings/:id/parts", h.InstallPart)
	api.Post("/buildings/:id/maintenance", h.ToggleMaintenance)
	api.Post("/buildings/:id/payments", h.CreatePayment)
	api.Get("/buildings/:id/fault-form", h.FaultForm)
	api.Get("/parts", h.ListParts)
	api.Post("/parts/increase-prices", h.IncreasePrices)
	api.Get("/session/user", h.CurrentUser)
	api.Post("/session/user", h.SetUser)
	api.Get("/notifications", h.Notifications)

	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	if _, err := io.Copy(rec.Body, resp.Body); err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return rec
}

func TestCreateAndListBuildings(t *testing.T) {
	app, _ := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/buildings", map[string]interface{}{
		"name":           "Menekşe Apartmanı",
		"maintenanceFee": 750,
		"elevatorCount":  1,
	})
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, app, "GET", "/api/buildings", nil)
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var buildings []models.Building
	if err := json.Unmarshal(rec.Body.Bytes(), &buildings); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(buildings) != 2 {
		t.Fatalf("Expected 2 buildings, got %d", len(buildings))
	}
	if buildings[1].Name != "Menekşe Apartmanı" {
		t.Errorf("Expected new building in list, got %q", buildings[1].Name)
	}
	if buildings[1].ID == "" {
		t.Error("Expected server-assigned building ID")
	}
}

func TestCreateBuildingRequiresName(t *testing.T) {
	app, _ := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/buildings", map[string]interface{}{
		"elevatorCount": 1,
	})
	if rec.Code != 400 {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetBuildingNotFound(t *testing.T) {
	app, _ := setupApp(t)

	rec := doJSON(t, app, "GET", "/api/buildings/nope", nil)
	if rec.Code != 404 {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["ok"] != false {
		t.Errorf("Expected ok=false in error envelope, got %v", body["ok"])
	}
}

func TestInstallPartInsufficientStock(t *testing.T) {
	app, s := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/buildings/b1/parts", map[string]interface{}{
		"partId":   "p1",
		"quantity": 99,
	})
	if rec.Code != 409 {
		t.Fatalf("Expected status 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := s.State().Parts[0].Quantity; got != 5 {
		t.Errorf("Expected stock unchanged at 5, got %d", got)
	}
}

func TestInstallPartBillsBuilding(t *testing.T) {
	app, s := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/buildings/b1/parts", map[string]interface{}{
		"partId":   "p1",
		"quantity": 2,
	})
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	st := s.State()
	if !st.Buildings[0].Debt.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected debt 500, got %s", st.Buildings[0].Debt)
	}
	if st.Parts[0].Quantity != 3 {
		t.Errorf("Expected stock 3, got %d", st.Parts[0].Quantity)
	}
}

func TestPaymentUnknownBuilding(t *testing.T) {
	app, _ := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/buildings/nope/payments", map[string]interface{}{
		"amount":     100,
		"date":       "2025-03-15",
		"receivedBy": "Admin User",
	})
	if rec.Code != 404 {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}

func TestToggleMaintenanceReturnsReceipt(t *testing.T) {
	app, s := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/buildings/b1/maintenance", map[string]interface{}{
		"showReceipt": true,
	})
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	receipt, _ := body["receiptHtml"].(string)
	if !strings.Contains(receipt, "Gül Apartmanı") {
		t.Errorf("Expected receipt HTML with building name, got %q", receipt)
	}

	st := s.State()
	if !st.Buildings[0].IsMaintained {
		t.Error("Expected building marked as maintained")
	}
	if !st.Buildings[0].Debt.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected debt 1000 after billing, got %s", st.Buildings[0].Debt)
	}
}

func TestFaultFormIsHTML(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/api/buildings/b1/fault-form?reporterName=Ali+Veli", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html content type, got %q", ct)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if !strings.Contains(string(raw), "Gül Apartmanı") {
		t.Error("Expected fault form to carry the building name")
	}
}

func TestIncreasePricesRounding(t *testing.T) {
	app, s := setupApp(t)

	rec := doJSON(t, app, "POST", "/api/parts/increase-prices", map[string]interface{}{
		"percentage": 10,
	})
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	// 250 +10% = 275, rounded to the nearest 50
	if got := s.State().Parts[0].Price; !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Expected price 300, got %s", got)
	}
}

func TestSessionUserFlow(t *testing.T) {
	app, _ := setupApp(t)

	rec := doJSON(t, app, "GET", "/api/session/user", nil)
	if rec.Code != 204 {
		t.Fatalf("Expected status 204 with no current user, got %d", rec.Code)
	}

	rec = doJSON(t, app, "POST", "/api/session/user", map[string]interface{}{
		"name": "Teknisyen 1",
	})
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, app, "GET", "/api/session/user", nil)
	if rec.Code != 200 {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var user models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if user.ID != "2" {
		t.Errorf("Expected seeded user id 2, got %q", user.ID)
	}
}
