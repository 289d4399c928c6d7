package models

import (
	"github.com/shopspring/decimal"
)

// Severity grades a reported fault.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Label is an optional color tag on a building.
type Label string

const (
	LabelGreen  Label = "green"
	LabelBlue   Label = "blue"
	LabelYellow Label = "yellow"
	LabelRed    Label = "red"
)

// Address is a Turkish postal address shared by buildings and the company.
type Address struct {
	Mahalle   string   `json:"mahalle"`
	Sokak     string   `json:"sokak"`
	Il        string   `json:"il"`
	Ilce      string   `json:"ilce"`
	BinaNo    string   `json:"binaNo"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Building is a managed customer building. Debt is a running ledger target:
// increases are unchecked, decreases clamp at zero at payment/revert time.
type Building struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	MaintenanceFee         decimal.Decimal `json:"maintenanceFee"` // per elevator
	ElevatorCount          int             `json:"elevatorCount"`
	Debt                   decimal.Decimal `json:"debt"`
	ContactInfo            string          `json:"contactInfo"`
	Address                Address         `json:"address"`
	Notes                  string          `json:"notes"`
	IsMaintained           bool            `json:"isMaintained"`
	LastMaintenanceDate    string          `json:"lastMaintenanceDate,omitempty"`
	LastMaintenanceTime    string          `json:"lastMaintenanceTime,omitempty"`
	IsDefective            bool            `json:"isDefective,omitempty"`
	DefectiveNote          string          `json:"defectiveNote,omitempty"`
	FaultSeverity          Severity        `json:"faultSeverity,omitempty"`
	FaultTimestamp         string          `json:"faultTimestamp,omitempty"`
	FaultReportedBy        string          `json:"faultReportedBy,omitempty"`
	Label                  Label           `json:"label,omitempty"`
	BuildingResponsible    string          `json:"buildingResponsible,omitempty"`
	MaintenanceReceiptNote string          `json:"maintenanceReceiptNote,omitempty"`
}

// Part is an inventory-tracked spare part. Quantity decreases only through
// installation and is never driven below zero.
type Part struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// PartInstallation records an inventory part applied to a building.
type PartInstallation struct {
	ID                   string `json:"id"`
	BuildingID           string `json:"buildingId"`
	PartID               string `json:"partId"`
	Quantity             int    `json:"quantity"`
	InstallDate          string `json:"installDate"`
	InstalledBy          string `json:"installedBy"`
	IsPaid               bool   `json:"isPaid"`
	PaymentDate          string `json:"paymentDate,omitempty"`
	RelatedMaintenanceID string `json:"relatedMaintenanceId,omitempty"`
}

// ManualPartInstallation records a free-text part with no inventory backing.
type ManualPartInstallation struct {
	ID                   string          `json:"id"`
	BuildingID           string          `json:"buildingId"`
	PartName             string          `json:"partName"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unitPrice"`
	TotalPrice           decimal.Decimal `json:"totalPrice"`
	InstallDate          string          `json:"installDate"`
	InstalledBy          string          `json:"installedBy"`
	IsPaid               bool            `json:"isPaid"`
	PaymentDate          string          `json:"paymentDate,omitempty"`
	RelatedMaintenanceID string          `json:"relatedMaintenanceId,omitempty"`
}

// DebtType classifies a ledger entry.
type DebtType string

const (
	DebtMaintenance DebtType = "maintenance"
	DebtPart        DebtType = "part"
	DebtPayment     DebtType = "payment"
)

// DebtRecord is an append-only ledger entry snapshotting the debt before and
// after the originating operation. It is the source of truth for why a
// building's debt is what it is.
type DebtRecord struct {
	ID              string          `json:"id"`
	BuildingID      string          `json:"buildingId"`
	Date            string          `json:"date"`
	Type            DebtType        `json:"type"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousDebt    decimal.Decimal `json:"previousDebt"`
	NewDebt         decimal.Decimal `json:"newDebt"`
	PerformedBy     string          `json:"performedBy,omitempty"`
	RelatedRecordID string          `json:"relatedRecordId,omitempty"`
}

// MaintenanceRecord is a completed maintenance event.
type MaintenanceRecord struct {
	ID              string          `json:"id"`
	BuildingID      string          `json:"buildingId"`
	PerformedBy     string          `json:"performedBy"`
	MaintenanceDate string          `json:"maintenanceDate"`
	MaintenanceTime string          `json:"maintenanceTime"`
	ElevatorCount   int             `json:"elevatorCount"`
	TotalFee        decimal.Decimal `json:"totalFee"`
	Status          string          `json:"status"`
	Priority        Severity        `json:"priority"`
}

// MaintenanceHistory mirrors a MaintenanceRecord under its historical shape.
// The two run in parallel and are linked through RelatedRecordID; both are
// kept so existing snapshots keep loading.
type MaintenanceHistory struct {
	ID              string          `json:"id"`
	BuildingID      string          `json:"buildingId"`
	MaintenanceDate string          `json:"maintenanceDate"`
	MaintenanceTime string          `json:"maintenanceTime"`
	PerformedBy     string          `json:"performedBy"`
	MaintenanceFee  decimal.Decimal `json:"maintenanceFee"`
	Notes           string          `json:"notes,omitempty"`
	RelatedRecordID string          `json:"relatedRecordId,omitempty"`
}

// ArchivedReceipt is a frozen HTML snapshot of a rendered receipt, immutable
// after creation.
type ArchivedReceipt struct {
	ID              string `json:"id"`
	BuildingID      string `json:"buildingId"`
	HTMLContent     string `json:"htmlContent"`
	CreatedDate     string `json:"createdDate"`
	CreatedBy       string `json:"createdBy"`
	MaintenanceDate string `json:"maintenanceDate"`
	BuildingName    string `json:"buildingName"`
	RelatedRecordID string `json:"relatedRecordId,omitempty"`
}

// Update is a human-readable audit log entry. The log is capped at 50 entries
// and never drives a control decision.
type Update struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

// FaultStatus is the one-way lifecycle of a citizen fault report.
type FaultStatus string

const (
	FaultPending  FaultStatus = "pending"
	FaultResolved FaultStatus = "resolved"
)

// FaultReport is a citizen-submitted fault report.
type FaultReport struct {
	ID              string      `json:"id"`
	BuildingID      string      `json:"buildingId"`
	ReporterName    string      `json:"reporterName"`
	ReporterSurname string      `json:"reporterSurname"`
	ReporterPhone   string      `json:"reporterPhone"`
	ApartmentNo     string      `json:"apartmentNo"`
	Description     string      `json:"description"`
	Timestamp       string      `json:"timestamp"`
	Status          FaultStatus `json:"status"`
}

// Payment is a received payment against a building's debt.
type Payment struct {
	ID         string          `json:"id"`
	BuildingID string          `json:"buildingId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	ReceivedBy string          `json:"receivedBy"`
	Notes      string          `json:"notes,omitempty"`
}

// Income mirrors a Payment in the income book.
type Income struct {
	ID         string          `json:"id"`
	BuildingID string          `json:"buildingId"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	ReceivedBy string          `json:"receivedBy"`
}

// User is an operator of the system.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Printer is a configured receipt printer.
type Printer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IPAddress string `json:"ipAddress"`
	Port      int    `json:"port"`
	IsDefault bool   `json:"isDefault"`
	Type      string `json:"type"` // thermal, inkjet, laser
}

// SMSTemplate is a reusable message template for bulk SMS / WhatsApp.
type SMSTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ProposalType classifies proposal documents and their templates.
type ProposalType string

const (
	ProposalInstallation ProposalType = "installation"
	ProposalMaintenance  ProposalType = "maintenance"
	ProposalRevision     ProposalType = "revision"
)

// TemplateField is a fillable field declared by a proposal template.
type TemplateField struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"` // text, number, date, textarea
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
}

// ProposalTemplate is a document template proposals are generated from.
type ProposalTemplate struct {
	ID             string          `json:"id"`
	Type           ProposalType    `json:"type"`
	Name           string          `json:"name"`
	Content        string          `json:"content"`
	Fields         []TemplateField `json:"fields,omitempty"`
	FileAttachment string          `json:"fileAttachment,omitempty"`
	DocumentFile   string          `json:"documentFile,omitempty"`
	FillableFields []TemplateField `json:"fillableFields,omitempty"`
}

// ProposalItem is a priced line item on a proposal.
type ProposalItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// Proposal is an offer document for installation, maintenance or revision work.
type Proposal struct {
	ID                  string            `json:"id"`
	Type                ProposalType      `json:"type"`
	TemplateID          string            `json:"templateId"`
	BuildingName        string            `json:"buildingName"`
	BuildingID          string            `json:"buildingId,omitempty"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	FieldValues         map[string]any    `json:"fieldValues,omitempty"`
	TemplateFieldValues map[string]any    `json:"templateFieldValues,omitempty"`
	Items               []ProposalItem    `json:"items,omitempty"`
	TotalAmount         decimal.Decimal   `json:"totalAmount"`
	CreatedDate         string            `json:"createdDate"`
	CreatedBy           string            `json:"createdBy"`
	Status              string            `json:"status"` // draft, sent, accepted, rejected
	PDFAttachment       string            `json:"pdfAttachment,omitempty"`
	GeneratedDocument   string            `json:"generatedDocument,omitempty"`
}

// QRCodeData is the content behind a building QR code.
type QRCodeData struct {
	ID            string         `json:"id"`
	BuildingID    string         `json:"buildingId"`
	Content       string         `json:"content"`
	CustomFields  map[string]any `json:"customFields,omitempty"`
	GeneratedDate string         `json:"generatedDate"`
	IsActive      bool           `json:"isActive"`
	LogoURL       string         `json:"logoUrl,omitempty"`
	CompanyName   string         `json:"companyName,omitempty"`
}

// AutoSaveData is a draft form snapshot keyed by form type.
type AutoSaveData struct {
	ID        string         `json:"id"`
	FormType  string         `json:"formType"`
	FormData  map[string]any `json:"formData,omitempty"`
	Timestamp string         `json:"timestamp"`
	UserID    string         `json:"userId"`
}
