// receipt.go
//
// Token-replacement rendering of maintenance receipts and fault report
// forms. Templates are plain HTML with {{TOKEN}} placeholders; operators can
// override the embedded defaults through the settings document.

package receipt

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/shopspring/decimal"
)

//go:embed templates/receipt.html
var defaultReceiptTemplate string

//go:embed templates/fault_form.html
var defaultFaultFormTemplate string

// PartLine is one billed part row on a receipt.
type PartLine struct {
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// MaintenanceInput carries everything a maintenance receipt shows. Building
// must be the post-billing value; the previous debt line is derived by
// backing the fee and parts cost out of its debt.
type MaintenanceInput struct {
	Building   models.Building
	Settings   models.AppSettings
	Technician string
	Parts      []PartLine
	Now        time.Time
}

// FaultFormInput carries the fields of a citizen fault report form.
type FaultFormInput struct {
	Building      models.Building
	Settings      models.AppSettings
	ReporterName  string
	ReporterPhone string
	ApartmentNo   string
	Description   string
}

// RenderMaintenance renders the maintenance receipt HTML.
func RenderMaintenance(in MaintenanceInput) string {
	b := in.Building
	s := in.Settings

	fee := b.MaintenanceFee.Mul(decimal.NewFromInt(int64(b.ElevatorCount)))
	partsCost := decimal.Zero
	for _, p := range in.Parts {
		partsCost = partsCost.Add(p.TotalPrice)
	}
	previousDebt := b.Debt.Sub(fee).Sub(partsCost)

	tpl := s.ReceiptTemplate
	if tpl == "" {
		tpl = defaultReceiptTemplate
	}

	date := b.LastMaintenanceDate
	if date == "" {
		date = in.Now.Format("02.01.2006")
	}
	clock := b.LastMaintenanceTime
	if clock == "" {
		clock = in.Now.Format("15:04")
	}
	technician := in.Technician
	if technician == "" {
		technician = "Teknisyen"
	}
	responsible := b.BuildingResponsible
	if responsible == "" {
		responsible = "Belirtilmemiş"
	}

	note := b.MaintenanceReceiptNote
	if note == "" {
		note = s.DefaultMaintenanceNote
	}

	r := strings.NewReplacer(
		"{{WATERMARK}}", watermark(s),
		"{{LOGO}}", logoImg(s),
		"{{COMPANY_NAME}}", s.CompanyName,
		"{{COMPANY_SLOGAN}}", s.CompanySlogan,
		"{{COMPANY_ADDRESS}}", FormatAddress(s.CompanyAddress),
		"{{COMPANY_PHONE}}", s.CompanyPhone,
		"{{CERTIFICATIONS}}", "TSE • CE • ISO",
		"{{BUILDING_NAME}}", b.Name,
		"{{BUILDING_ADDRESS}}", FormatAddress(b.Address),
		"{{BUILDING_RESPONSIBLE}}", responsible,
		"{{CONTACT_PHONE}}", b.ContactInfo,
		"{{ELEVATOR_COUNT}}", fmt.Sprintf("%d", b.ElevatorCount),
		"{{MAINTENANCE_DATE}}", date,
		"{{MAINTENANCE_TIME}}", clock,
		"{{TECHNICIAN_NAME}}", technician,
		"{{MAINTENANCE_FEE_PER_ELEVATOR}}", FormatMoney(b.MaintenanceFee),
		"{{THIS_MAINTENANCE_FEE}}", FormatMoney(fee),
		"{{PREVIOUS_DEBT}}", FormatMoney(previousDebt),
		"{{NEW_TOTAL_DEBT}}", FormatMoney(b.Debt),
		"{{PARTS_COST_ROW}}", partsCostRow(partsCost),
		"{{PARTS_SECTION}}", partsSection(in.Parts),
		"{{NOTES_SECTION}}", notesSection(note),
		"{{CERTIFICATES_IMAGES}}", certificateImgs(s.Certificates),
	)
	return r.Replace(tpl)
}

// RenderFaultForm renders the printable fault report form.
func RenderFaultForm(in FaultFormInput) string {
	s := in.Settings
	b := in.Building

	tpl := s.FaultReportTemplate
	if tpl == "" {
		tpl = defaultFaultFormTemplate
	}

	companyName := s.CompanyName
	if companyName == "" {
		companyName = "Asansör Bakım Servisi"
	}

	r := strings.NewReplacer(
		"{{LOGO}}", logoImg(s),
		"{{COMPANY_NAME}}", companyName,
		"{{COMPANY_ADDRESS}}", FormatAddress(s.CompanyAddress),
		"{{COMPANY_PHONE}}", s.CompanyPhone,
		"{{BUILDING_NAME}}", b.Name,
		"{{BUILDING_ADDRESS}}", FormatAddress(b.Address),
		"{{REPORTER_NAME}}", in.ReporterName,
		"{{REPORTER_PHONE}}", in.ReporterPhone,
		"{{APARTMENT_NO}}", in.ApartmentNo,
		"{{DESCRIPTION}}", in.Description,
	)
	return r.Replace(tpl)
}

// FormatAddress renders a postal address on one line, Turkish style.
func FormatAddress(a models.Address) string {
	if a.Mahalle == "" && a.Sokak == "" && a.Il == "" {
		return "Adres belirtilmemiş"
	}
	return fmt.Sprintf("%s %s %s, %s/%s", a.Mahalle, a.Sokak, a.BinaNo, a.Ilce, a.Il)
}

// FormatMoney renders an amount with Turkish digit grouping: dot for
// thousands, comma for decimals, no trailing zero fraction.
func FormatMoney(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	frac = strings.TrimRight(frac, "0")
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}

func watermark(s models.AppSettings) string {
	if s.Logo != "" {
		return fmt.Sprintf(
			`<div class="watermark" style="background-image: url(%s); background-size: contain; background-repeat: no-repeat; background-position: center;">%s</div>`,
			s.Logo, s.CompanyName)
	}
	name := s.CompanyName
	if name == "" {
		name = "BAKIM FİŞİ"
	}
	return fmt.Sprintf(`<div class="watermark">%s</div>`, name)
}

func logoImg(s models.AppSettings) string {
	if s.Logo == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" alt="Logo" class="logo">`, s.Logo)
}

func partsCostRow(total decimal.Decimal) string {
	if !total.IsPositive() {
		return ""
	}
	return fmt.Sprintf(`<div class="calc-row"><span>Bu Bakımda Takılan Parça Bedeli:</span><span>%s ₺</span></div>`,
		FormatMoney(total))
}

func partsSection(parts []PartLine) string {
	if len(parts) == 0 {
		return ""
	}
	var rows strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&rows, `<tr><td>%s</td><td>%d</td><td>%s ₺</td><td>%s ₺</td></tr>`,
			p.Name, p.Quantity, FormatMoney(p.UnitPrice), FormatMoney(p.TotalPrice))
	}
	return fmt.Sprintf(`<div class="parts-section"><h3>Bu Bakımda Takılan Parçalar</h3><table class="parts-table"><thead><tr><th>Parça Adı</th><th>Miktar</th><th>Birim Fiyat</th><th>Toplam</th></tr></thead><tbody>%s</tbody></table></div>`,
		rows.String())
}

func notesSection(note string) string {
	if note == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="notes-section"><h3>Notlar</h3><p>%s</p></div>`, note)
}

func certificateImgs(certs []string) string {
	var b strings.Builder
	for _, c := range certs {
		fmt.Fprintf(&b, `<img src="%s" alt="Sertifika" class="certificate" />`, c)
	}
	return b.String()
}
