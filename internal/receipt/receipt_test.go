package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"500", "500"},
		{"1500", "1.500"},
		{"1234567", "1.234.567"},
		{"1500.5", "1.500,5"},
		{"1500.50", "1.500,5"},
		{"-2500", "-2.500"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", c.in, err)
		}
		assert.Equal(t, c.want, FormatMoney(d), "input %s", c.in)
	}
}

func TestRenderMaintenanceReplacesTokens(t *testing.T) {
	building := models.Building{
		ID:                  "b1",
		Name:                "Gül Apartmanı",
		MaintenanceFee:      decimal.NewFromInt(500),
		ElevatorCount:       2,
		Debt:                decimal.NewFromInt(1000),
		ContactInfo:         "0532 111 22 33",
		LastMaintenanceDate: "2025-03-15",
		LastMaintenanceTime: "10:30",
	}
	settings := models.DefaultSettings()

	html := RenderMaintenance(MaintenanceInput{
		Building:   building,
		Settings:   settings,
		Technician: "Teknisyen 1",
		Now:        time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	})

	assert.NotContains(t, html, "{{")
	assert.Contains(t, html, "Gül Apartmanı")
	assert.Contains(t, html, "Teknisyen 1")
	assert.Contains(t, html, "TKNLİFT")
	// fee 500 x 2 elevators, previous debt backed out of post-billing 1000
	assert.Contains(t, html, "1.000")
	assert.Contains(t, html, "Önceki Borç")
	assert.Contains(t, html, ">0 ₺<")
}

func TestRenderMaintenancePartsSection(t *testing.T) {
	building := models.Building{
		Name:           "Gül Apartmanı",
		MaintenanceFee: decimal.NewFromInt(500),
		ElevatorCount:  1,
		Debt:           decimal.NewFromInt(1250),
	}

	html := RenderMaintenance(MaintenanceInput{
		Building: building,
		Settings: models.DefaultSettings(),
		Parts: []PartLine{{
			Name:       "Halat",
			Quantity:   3,
			UnitPrice:  decimal.NewFromInt(250),
			TotalPrice: decimal.NewFromInt(750),
		}},
		Now: time.Now(),
	})

	assert.Contains(t, html, "Bu Bakımda Takılan Parçalar")
	assert.Contains(t, html, "Halat")
	assert.Contains(t, html, "750 ₺")
}

func TestRenderMaintenanceNoPartsOmitsSection(t *testing.T) {
	html := RenderMaintenance(MaintenanceInput{
		Building: models.Building{Name: "Bina", MaintenanceFee: decimal.NewFromInt(100), ElevatorCount: 1, Debt: decimal.NewFromInt(100)},
		Settings: models.DefaultSettings(),
		Now:      time.Now(),
	})
	assert.NotContains(t, html, "Bu Bakımda Takılan Parçalar")
	assert.NotContains(t, html, "Parça Bedeli")
}

func TestRenderMaintenanceSettingsTemplateOverride(t *testing.T) {
	settings := models.DefaultSettings()
	settings.ReceiptTemplate = "<p>{{BUILDING_NAME}} / {{NEW_TOTAL_DEBT}}</p>"

	html := RenderMaintenance(MaintenanceInput{
		Building: models.Building{Name: "Bina", Debt: decimal.NewFromInt(2000)},
		Settings: settings,
		Now:      time.Now(),
	})
	assert.Equal(t, "<p>Bina / 2.000</p>", html)
}

func TestRenderFaultForm(t *testing.T) {
	html := RenderFaultForm(FaultFormInput{
		Building:      models.Building{Name: "Gül Apartmanı"},
		Settings:      models.DefaultSettings(),
		ReporterName:  "Ali Veli",
		ReporterPhone: "0555 444 33 22",
		ApartmentNo:   "7",
		Description:   "Asansör 3. katta kalıyor",
	})

	assert.NotContains(t, html, "{{")
	assert.Contains(t, html, "ARIZA")
	assert.Contains(t, html, "Ali Veli")
	assert.Contains(t, html, "Asansör 3. katta kalıyor")
}

func TestFormatAddress(t *testing.T) {
	addr := models.Address{Mahalle: "Merkez Mahalle", Sokak: "Ana Cadde", Il: "İstanbul", Ilce: "Kadıköy", BinaNo: "12"}
	got := FormatAddress(addr)
	assert.True(t, strings.HasSuffix(got, "Kadıköy/İstanbul"), got)

	assert.Equal(t, "Adres belirtilmemiş", FormatAddress(models.Address{}))
}
