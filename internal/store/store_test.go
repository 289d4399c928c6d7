package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStamp() stamp {
	n := 0
	return stamp{
		now: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
		newID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func seededState() State {
	st := NewState()
	st.Buildings = []models.Building{{
		ID:             "b1",
		Name:           "Gül Apartmanı",
		MaintenanceFee: decimal.NewFromInt(500),
		ElevatorCount:  2,
		Debt:           decimal.Zero,
		ContactInfo:    "0532 111 22 33",
	}}
	st.Parts = []models.Part{{
		ID:       "p1",
		Name:     "Halat",
		Quantity: 10,
		Price:    decimal.NewFromInt(250),
	}}
	return st
}

func TestAddBuildingAssignsIDAndLogs(t *testing.T) {
	st := NewState()
	e := testStamp()

	next, result := Apply(st, AddBuilding{Building: models.Building{Name: "Yeni Bina"}}, e)
	require.True(t, result.Applied)
	require.Len(t, next.Buildings, 1)
	assert.NotEmpty(t, next.Buildings[0].ID)
	require.Len(t, next.Updates, 1)
	assert.Equal(t, "Bina Eklendi", next.Updates[0].Action)
	assert.Equal(t, "Bilinmeyen", next.Updates[0].User)
}

func TestUpdateBuildingMissingStillLogs(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, UpdateBuilding{Building: models.Building{ID: "nope", Name: "Hayalet Bina"}}, e)
	require.True(t, result.Applied)
	assert.Equal(t, st.Buildings, next.Buildings)
	require.Len(t, next.Updates, 1)
	assert.Equal(t, "Bina Güncellendi", next.Updates[0].Action)
	assert.Contains(t, next.Updates[0].Details, "Hayalet Bina")
}

func TestInstallPartInsufficientStock(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, InstallPart{BuildingID: "b1", PartID: "p1", Quantity: 11}, e)
	require.False(t, result.Applied)
	assert.Equal(t, ReasonInsufficientStock, result.Reason)
	assert.Equal(t, st, next)
}

func TestInstallPartDebtAndLedger(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, InstallPart{BuildingID: "b1", PartID: "p1", Quantity: 3, InstallDate: "2025-03-15"}, e)
	require.True(t, result.Applied)

	assert.Equal(t, 7, next.Parts[0].Quantity)
	assert.True(t, next.Buildings[0].Debt.Equal(decimal.NewFromInt(750)))

	require.Len(t, next.DebtRecords, 1)
	record := next.DebtRecords[0]
	assert.Equal(t, models.DebtPart, record.Type)
	assert.True(t, record.NewDebt.Equal(record.PreviousDebt.Add(record.Amount)))

	require.Len(t, next.PartInstallations, 1)
	assert.Equal(t, record.RelatedRecordID, next.PartInstallations[0].ID)
}

func TestInstallPartRejectOrder(t *testing.T) {
	st := seededState()
	e := testStamp()

	// Missing building wins over missing part
	_, result := Apply(st, InstallPart{BuildingID: "nope", PartID: "nope", Quantity: 1}, e)
	assert.Equal(t, ReasonBuildingNotFound, result.Reason)

	_, result = Apply(st, InstallPart{BuildingID: "b1", PartID: "nope", Quantity: 1}, e)
	assert.Equal(t, ReasonPartNotFound, result.Reason)
}

func TestToggleMaintenanceBilling(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, ToggleMaintenance{BuildingID: "b1", ShowReceipt: true}, e)
	require.True(t, result.Applied)
	assert.NotEmpty(t, result.ReceiptHTML)

	b := next.Buildings[0]
	assert.True(t, b.IsMaintained)
	assert.True(t, b.Debt.Equal(decimal.NewFromInt(1000)), "fee is 500 per elevator across 2 elevators")
	assert.Equal(t, "2025-03-15", b.LastMaintenanceDate)
	assert.Equal(t, "10:30", b.LastMaintenanceTime)

	require.Len(t, next.MaintenanceRecords, 1)
	require.Len(t, next.MaintenanceHistory, 1)
	require.Len(t, next.DebtRecords, 1)
	require.Len(t, next.ArchivedReceipts, 1)

	recordID := next.MaintenanceRecords[0].ID
	assert.Equal(t, recordID, next.MaintenanceHistory[0].RelatedRecordID)
	assert.Equal(t, recordID, next.DebtRecords[0].RelatedRecordID)
	assert.Equal(t, recordID, next.ArchivedReceipts[0].RelatedRecordID)
	assert.Equal(t, "completed", next.MaintenanceRecords[0].Status)

	assert.Equal(t, "Bakım Tamamlandı", next.Updates[0].Action)
}

func TestToggleMaintenanceWithoutReceiptOnlyFlips(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, ToggleMaintenance{BuildingID: "b1", ShowReceipt: false}, e)
	require.True(t, result.Applied)
	assert.Empty(t, result.ReceiptHTML)
	assert.True(t, next.Buildings[0].IsMaintained)
	assert.True(t, next.Buildings[0].Debt.IsZero())
	assert.Empty(t, next.MaintenanceRecords)

	// Toggling again flips back without clearing stamps
	again, result := Apply(next, ToggleMaintenance{BuildingID: "b1", ShowReceipt: false}, e)
	require.True(t, result.Applied)
	assert.False(t, again.Buildings[0].IsMaintained)
}

func TestToggleThenRevertRoundTrip(t *testing.T) {
	st := seededState()
	e := testStamp()

	billed, result := Apply(st, ToggleMaintenance{BuildingID: "b1", ShowReceipt: true}, e)
	require.True(t, result.Applied)

	reverted, result := Apply(billed, RevertMaintenance{BuildingID: "b1"}, e)
	require.True(t, result.Applied)

	b := reverted.Buildings[0]
	assert.False(t, b.IsMaintained)
	assert.Empty(t, b.LastMaintenanceDate)
	assert.True(t, b.Debt.IsZero())

	assert.Empty(t, reverted.MaintenanceRecords)
	assert.Empty(t, reverted.MaintenanceHistory)
	assert.Empty(t, reverted.DebtRecords)
	assert.Empty(t, reverted.ArchivedReceipts)
}

func TestRevertWithoutRecordStillFlips(t *testing.T) {
	st := seededState()
	st.Buildings[0].IsMaintained = true
	st.Buildings[0].Debt = decimal.NewFromInt(300)
	e := testStamp()

	next, result := Apply(st, RevertMaintenance{BuildingID: "b1"}, e)
	require.True(t, result.Applied)
	assert.False(t, next.Buildings[0].IsMaintained)
	// No record means no ledger correction
	assert.True(t, next.Buildings[0].Debt.Equal(decimal.NewFromInt(300)))
}

func TestRevertClampsDebtAtZero(t *testing.T) {
	st := seededState()
	e := testStamp()

	billed, _ := Apply(st, ToggleMaintenance{BuildingID: "b1", ShowReceipt: true}, e)

	// Pay off part of the debt before the revert
	paid, result := Apply(billed, AddPayment{
		BuildingID: "b1",
		Amount:     decimal.NewFromInt(800),
		Date:       "2025-03-15",
		ReceivedBy: "Admin User",
	}, e)
	require.True(t, result.Applied)
	assert.True(t, paid.Buildings[0].Debt.Equal(decimal.NewFromInt(200)))

	reverted, result := Apply(paid, RevertMaintenance{BuildingID: "b1"}, e)
	require.True(t, result.Applied)
	assert.True(t, reverted.Buildings[0].Debt.IsZero())
}

func TestIncreasePricesRoundsToNearestFifty(t *testing.T) {
	st := seededState()
	st.Parts = []models.Part{
		{ID: "p1", Name: "Halat", Price: decimal.NewFromInt(437)},
		{ID: "p2", Name: "Buton", Price: decimal.NewFromInt(100)},
	}
	e := testStamp()

	next, result := Apply(st, IncreasePrices{Percentage: decimal.NewFromInt(10)}, e)
	require.True(t, result.Applied)
	// 437 * 1.10 = 480.7 -> 500
	assert.True(t, next.Parts[0].Price.Equal(decimal.NewFromInt(500)), "got %s", next.Parts[0].Price)
	// 100 * 1.10 = 110 -> 100
	assert.True(t, next.Parts[1].Price.Equal(decimal.NewFromInt(100)), "got %s", next.Parts[1].Price)
}

func TestPaymentClampsDebtAtZero(t *testing.T) {
	st := seededState()
	st.Buildings[0].Debt = decimal.NewFromInt(100)
	e := testStamp()

	next, result := Apply(st, AddPayment{
		BuildingID: "b1",
		Amount:     decimal.NewFromInt(250),
		Date:       "2025-03-15",
		ReceivedBy: "Admin User",
	}, e)
	require.True(t, result.Applied)
	assert.True(t, next.Buildings[0].Debt.IsZero())

	require.Len(t, next.DebtRecords, 1)
	assert.True(t, next.DebtRecords[0].PreviousDebt.Equal(decimal.NewFromInt(100)))
	assert.True(t, next.DebtRecords[0].NewDebt.IsZero())
	require.Len(t, next.Payments, 1)
	require.Len(t, next.Incomes, 1)
}

func TestUpdatesLogCappedAtFifty(t *testing.T) {
	st := NewState()
	e := testStamp()

	for i := 0; i < 60; i++ {
		st, _ = Apply(st, AddUpdate{
			Action:    "Test",
			User:      "Admin User",
			Timestamp: e.iso(),
			Details:   fmt.Sprintf("entry %d", i),
		}, e)
	}

	require.Len(t, st.Updates, 50)
	// Newest first, oldest entries dropped
	assert.Equal(t, "entry 59", st.Updates[0].Details)
	assert.Equal(t, "entry 10", st.Updates[49].Details)
}

func TestSetUserTwiceKeepsOriginalID(t *testing.T) {
	st := NewState()
	e := testStamp()

	first, result := Apply(st, SetUser{Name: "Yeni Teknisyen"}, e)
	require.True(t, result.Applied)
	require.NotNil(t, first.CurrentUser)
	createdID := first.CurrentUser.ID
	require.Len(t, first.Users, 4)

	second, result := Apply(first, SetUser{Name: "Yeni Teknisyen"}, e)
	require.True(t, result.Applied)
	assert.Equal(t, createdID, second.CurrentUser.ID)
	assert.Len(t, second.Users, 4)
}

func TestSetUserMatchesSeedAccountByName(t *testing.T) {
	st := NewState()
	e := testStamp()

	next, result := Apply(st, SetUser{Name: "Admin User"}, e)
	require.True(t, result.Applied)
	assert.Equal(t, "1", next.CurrentUser.ID)
	assert.Len(t, next.Users, 3)
}

func TestMarkPartAsPaidDiscriminatesByKind(t *testing.T) {
	st := seededState()
	e := testStamp()

	installed, _ := Apply(st, InstallPart{BuildingID: "b1", PartID: "p1", Quantity: 1, InstallDate: "2025-03-15"}, e)
	instID := installed.PartInstallations[0].ID

	// Wrong kind does not find the inventory installation
	_, result := Apply(installed, MarkPartAsPaid{InstallationID: instID, IsManual: true}, e)
	assert.Equal(t, ReasonInstallationNotFound, result.Reason)

	next, result := Apply(installed, MarkPartAsPaid{InstallationID: instID, IsManual: false}, e)
	require.True(t, result.Applied)
	assert.True(t, next.PartInstallations[0].IsPaid)
	assert.NotEmpty(t, next.PartInstallations[0].PaymentDate)
	// Marking paid never moves the debt
	assert.True(t, next.Buildings[0].Debt.Equal(installed.Buildings[0].Debt))
}

func TestSendWhatsAppBuildsLinks(t *testing.T) {
	st := seededState()
	st.SMSTemplates = []models.SMSTemplate{{ID: "t1", Name: "Borç Hatırlatma", Content: "Borcunuz var"}}
	e := testStamp()

	next, result := Apply(st, SendWhatsApp{TemplateID: "t1", BuildingIDs: []string{"b1"}}, e)
	require.True(t, result.Applied)
	require.Len(t, result.Links, 1)
	assert.Equal(t, "https://wa.me/9005321112233?text=Bor%C3%A7unuz+var", result.Links[0])
	assert.Equal(t, "WhatsApp Mesajları Açıldı", next.Updates[0].Action)
}

func TestSendBulkSMSUnknownTemplate(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, SendBulkSMS{TemplateID: "nope", BuildingIDs: []string{"b1"}}, e)
	require.False(t, result.Applied)
	assert.Equal(t, ReasonTemplateNotFound, result.Reason)
	assert.Equal(t, st, next)
}

func TestResetAllMaintenance(t *testing.T) {
	st := seededState()
	st.Buildings = append(st.Buildings, models.Building{ID: "b2", Name: "Lale Apartmanı", IsMaintained: true, LastMaintenanceDate: "2025-01-01"})
	st.Buildings[0].IsMaintained = true
	e := testStamp()

	next, result := Apply(st, ResetAllMaintenance{}, e)
	require.True(t, result.Applied)
	for _, b := range next.Buildings {
		assert.False(t, b.IsMaintained)
		assert.Empty(t, b.LastMaintenanceDate)
	}
	assert.NotEmpty(t, next.LastMaintenanceReset)
}

func TestReportFaultFlagsAndNotifies(t *testing.T) {
	st := seededState()
	e := testStamp()

	next, result := Apply(st, ReportFault{
		BuildingID:  "b1",
		Description: "Kapı açılmıyor",
		Severity:    models.SeverityHigh,
		ReportedBy:  "Kapıcı",
	}, e)
	require.True(t, result.Applied)
	assert.True(t, next.Buildings[0].IsDefective)
	assert.Equal(t, models.SeverityHigh, next.Buildings[0].FaultSeverity)
	assert.Equal(t, 1, next.UnreadNotifications)
	require.Len(t, next.Notifications, 1)
}

func TestMaintenanceClearsDefectiveFlag(t *testing.T) {
	st := seededState()
	st.Buildings[0].IsDefective = true
	e := testStamp()

	next, result := Apply(st, ToggleMaintenance{BuildingID: "b1", ShowReceipt: true}, e)
	require.True(t, result.Applied)
	assert.False(t, next.Buildings[0].IsDefective)
}

func TestUnknownCommandRejected(t *testing.T) {
	st := NewState()
	e := testStamp()

	_, result := Apply(st, unknownCommand{}, e)
	require.False(t, result.Applied)
	assert.Equal(t, ReasonUnsupported, result.Reason)
}

type unknownCommand struct{}

func (unknownCommand) Kind() Kind { return Kind("BOGUS") }
