// command.go
//
// The closed command set of the domain state store. Every mutation of the
// business state is one of these tagged values; the kind strings double as
// the wire discriminator and the audit/log vocabulary.

package store

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/shopspring/decimal"
)

// Kind discriminates commands.
type Kind string

const (
	KindAddBuilding            Kind = "ADD_BUILDING"
	KindUpdateBuilding         Kind = "UPDATE_BUILDING"
	KindDeleteBuilding         Kind = "DELETE_BUILDING"
	KindAddPart                Kind = "ADD_PART"
	KindUpdatePart             Kind = "UPDATE_PART"
	KindDeletePart             Kind = "DELETE_PART"
	KindIncreasePrices         Kind = "INCREASE_PRICES"
	KindInstallPart            Kind = "INSTALL_PART"
	KindInstallManualPart      Kind = "INSTALL_MANUAL_PART"
	KindMarkPartAsPaid         Kind = "MARK_PART_AS_PAID"
	KindToggleMaintenance      Kind = "TOGGLE_MAINTENANCE"
	KindRevertMaintenance      Kind = "REVERT_MAINTENANCE"
	KindResetAllMaintenance    Kind = "RESET_ALL_MAINTENANCE"
	KindAddMaintenanceRecord   Kind = "ADD_MAINTENANCE_RECORD"
	KindAddUpdate              Kind = "ADD_UPDATE"
	KindAddIncome              Kind = "ADD_INCOME"
	KindAddPayment             Kind = "ADD_PAYMENT"
	KindSetUser                Kind = "SET_USER"
	KindDeleteUser             Kind = "DELETE_USER"
	KindAddNotification        Kind = "ADD_NOTIFICATION"
	KindClearNotifications     Kind = "CLEAR_NOTIFICATIONS"
	KindToggleSidebar          Kind = "TOGGLE_SIDEBAR"
	KindUpdateSettings         Kind = "UPDATE_SETTINGS"
	KindAddFaultReport         Kind = "ADD_FAULT_REPORT"
	KindResolveFaultReport     Kind = "RESOLVE_FAULT_REPORT"
	KindReportFault            Kind = "REPORT_FAULT"
	KindAddPrinter             Kind = "ADD_PRINTER"
	KindUpdatePrinter          Kind = "UPDATE_PRINTER"
	KindDeletePrinter          Kind = "DELETE_PRINTER"
	KindAddSMSTemplate         Kind = "ADD_SMS_TEMPLATE"
	KindUpdateSMSTemplate      Kind = "UPDATE_SMS_TEMPLATE"
	KindDeleteSMSTemplate      Kind = "DELETE_SMS_TEMPLATE"
	KindSendBulkSMS            Kind = "SEND_BULK_SMS"
	KindSendWhatsApp           Kind = "SEND_WHATSAPP"
	KindAddProposal            Kind = "ADD_PROPOSAL"
	KindUpdateProposal         Kind = "UPDATE_PROPOSAL"
	KindDeleteProposal         Kind = "DELETE_PROPOSAL"
	KindAddProposalTemplate    Kind = "ADD_PROPOSAL_TEMPLATE"
	KindUpdateProposalTemplate Kind = "UPDATE_PROPOSAL_TEMPLATE"
	KindDeleteProposalTemplate Kind = "DELETE_PROPOSAL_TEMPLATE"
	KindAddQRCode              Kind = "ADD_QR_CODE_DATA"
	KindUpdateAutoSave         Kind = "UPDATE_AUTO_SAVE_DATA"
)

// Command is one named transition of the state store.
type Command interface {
	Kind() Kind
}

type AddBuilding struct {
	Building models.Building // submitted id is ignored, a new one is generated
}

type UpdateBuilding struct {
	Building models.Building
}

type DeleteBuilding struct {
	ID string
}

type AddPart struct {
	Part models.Part
}

type UpdatePart struct {
	Part models.Part
}

type DeletePart struct {
	ID string
}

// IncreasePrices raises every part price by a percentage and rounds the
// result to the nearest 50 currency units.
type IncreasePrices struct {
	Percentage decimal.Decimal
}

type InstallPart struct {
	BuildingID  string
	PartID      string
	Quantity    int
	InstallDate string
}

type InstallManualPart struct {
	BuildingID  string
	PartName    string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	InstallDate string
}

type MarkPartAsPaid struct {
	InstallationID string
	IsManual       bool
}

// ToggleMaintenance either bills and documents a maintenance visit
// (ShowReceipt true) or just flips the maintained flag (ShowReceipt false).
type ToggleMaintenance struct {
	BuildingID  string
	ShowReceipt bool
}

type RevertMaintenance struct {
	BuildingID string
}

type ResetAllMaintenance struct{}

type AddMaintenanceRecord struct {
	BuildingID      string
	PerformedBy     string
	MaintenanceDate string
	MaintenanceTime string
	ElevatorCount   int
	TotalFee        decimal.Decimal
	Notes           string
}

type AddUpdate struct {
	Action    string
	User      string
	Timestamp string
	Details   string
}

type AddIncome struct {
	Income models.Income
}

type AddPayment struct {
	BuildingID string
	Amount     decimal.Decimal
	Date       string
	ReceivedBy string
	Notes      string
}

type SetUser struct {
	Name string
}

type DeleteUser struct {
	ID string
}

type AddNotification struct {
	Message string
}

type ClearNotifications struct{}

type ToggleSidebar struct{}

type UpdateSettings struct {
	Patch models.SettingsPatch
}

type AddFaultReport struct {
	BuildingID      string
	ReporterName    string
	ReporterSurname string
	ReporterPhone   string
	ApartmentNo     string
	Description     string
}

type ResolveFaultReport struct {
	ID string
}

type ReportFault struct {
	BuildingID  string
	Description string
	Severity    models.Severity
	ReportedBy  string
}

type AddPrinter struct {
	Printer models.Printer
}

type UpdatePrinter struct {
	Printer models.Printer
}

type DeletePrinter struct {
	ID string
}

type AddSMSTemplate struct {
	Template models.SMSTemplate
}

type UpdateSMSTemplate struct {
	Template models.SMSTemplate
}

type DeleteSMSTemplate struct {
	ID string
}

type SendBulkSMS struct {
	TemplateID  string
	BuildingIDs []string
}

// SendWhatsApp formats one wa.me deep link per reachable building; the links
// are returned on the Result, never opened or sent by the store.
type SendWhatsApp struct {
	TemplateID  string
	BuildingIDs []string
}

type AddProposal struct {
	Proposal models.Proposal
}

type UpdateProposal struct {
	Proposal models.Proposal
}

type DeleteProposal struct {
	ID string
}

type AddProposalTemplate struct {
	Template models.ProposalTemplate
}

type UpdateProposalTemplate struct {
	Template models.ProposalTemplate
}

type DeleteProposalTemplate struct {
	ID string
}

type AddQRCode struct {
	Data models.QRCodeData
}

type UpdateAutoSave struct {
	Data models.AutoSaveData
}

func (AddBuilding) Kind() Kind            { return KindAddBuilding }
func (UpdateBuilding) Kind() Kind         { return KindUpdateBuilding }
func (DeleteBuilding) Kind() Kind         { return KindDeleteBuilding }
func (AddPart) Kind() Kind                { return KindAddPart }
func (UpdatePart) Kind() Kind             { return KindUpdatePart }
func (DeletePart) Kind() Kind             { return KindDeletePart }
func (IncreasePrices) Kind() Kind         { return KindIncreasePrices }
func (InstallPart) Kind() Kind            { return KindInstallPart }
func (InstallManualPart) Kind() Kind      { return KindInstallManualPart }
func (MarkPartAsPaid) Kind() Kind         { return KindMarkPartAsPaid }
func (ToggleMaintenance) Kind() Kind      { return KindToggleMaintenance }
func (RevertMaintenance) Kind() Kind      { return KindRevertMaintenance }
func (ResetAllMaintenance) Kind() Kind    { return KindResetAllMaintenance }
func (AddMaintenanceRecord) Kind() Kind   { return KindAddMaintenanceRecord }
func (AddUpdate) Kind() Kind              { return KindAddUpdate }
func (AddIncome) Kind() Kind              { return KindAddIncome }
func (AddPayment) Kind() Kind             { return KindAddPayment }
func (SetUser) Kind() Kind                { return KindSetUser }
func (DeleteUser) Kind() Kind             { return KindDeleteUser }
func (AddNotification) Kind() Kind        { return KindAddNotification }
func (ClearNotifications) Kind() Kind     { return KindClearNotifications }
func (ToggleSidebar) Kind() Kind          { return KindToggleSidebar }
func (UpdateSettings) Kind() Kind         { return KindUpdateSettings }
func (AddFaultReport) Kind() Kind         { return KindAddFaultReport }
func (ResolveFaultReport) Kind() Kind     { return KindResolveFaultReport }
func (ReportFault) Kind() Kind            { return KindReportFault }
func (AddPrinter) Kind() Kind             { return KindAddPrinter }
func (UpdatePrinter) Kind() Kind          { return KindUpdatePrinter }
func (DeletePrinter) Kind() Kind          { return KindDeletePrinter }
func (AddSMSTemplate) Kind() Kind         { return KindAddSMSTemplate }
func (UpdateSMSTemplate) Kind() Kind      { return KindUpdateSMSTemplate }
func (DeleteSMSTemplate) Kind() Kind      { return KindDeleteSMSTemplate }
func (SendBulkSMS) Kind() Kind            { return KindSendBulkSMS }
func (SendWhatsApp) Kind() Kind           { return KindSendWhatsApp }
func (AddProposal) Kind() Kind            { return KindAddProposal }
func (UpdateProposal) Kind() Kind         { return KindUpdateProposal }
func (DeleteProposal) Kind() Kind         { return KindDeleteProposal }
func (AddProposalTemplate) Kind() Kind    { return KindAddProposalTemplate }
func (UpdateProposalTemplate) Kind() Kind { return KindUpdateProposalTemplate }
func (DeleteProposalTemplate) Kind() Kind { return KindDeleteProposalTemplate }
func (AddQRCode) Kind() Kind              { return KindAddQRCode }
func (UpdateAutoSave) Kind() Kind         { return KindUpdateAutoSave }
