// state.go
//
// Authoritative in-memory state of the elevator maintenance business:
// every collection the company keeps books on, plus session-local surface
// state that never reaches the persisted snapshot.

package store

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
)

// State is the full domain snapshot. Transitions never mutate a State in
// place; they return a new value sharing unmodified slices.
type State struct {
	Buildings              []models.Building               `json:"buildings"`
	Parts                  []models.Part                   `json:"parts"`
	PartInstallations      []models.PartInstallation       `json:"partInstallations"`
	ManualPartInstallations []models.ManualPartInstallation `json:"manualPartInstallations"`
	Updates                []models.Update                 `json:"updates"`
	Incomes                []models.Income                 `json:"incomes"`
	Users                  []models.User                   `json:"users"`
	Settings               models.AppSettings              `json:"settings"`
	LastMaintenanceReset   string                          `json:"lastMaintenanceReset,omitempty"`
	FaultReports           []models.FaultReport            `json:"faultReports"`
	MaintenanceHistory     []models.MaintenanceHistory     `json:"maintenanceHistory"`
	MaintenanceRecords     []models.MaintenanceRecord      `json:"maintenanceRecords"`
	Printers               []models.Printer                `json:"printers"`
	SMSTemplates           []models.SMSTemplate            `json:"smsTemplates"`
	Proposals              []models.Proposal               `json:"proposals"`
	ProposalTemplates      []models.ProposalTemplate       `json:"proposalTemplates"`
	Payments               []models.Payment                `json:"payments"`
	DebtRecords            []models.DebtRecord             `json:"debtRecords"`
	QRCodes                []models.QRCodeData             `json:"qrCodes"`
	AutoSaveData           []models.AutoSaveData           `json:"autoSaveData"`
	ArchivedReceipts       []models.ArchivedReceipt        `json:"archivedReceipts"`

	// Session-local fields, stripped before persistence.
	CurrentUser         *models.User `json:"currentUser,omitempty"`
	SidebarOpen         bool         `json:"sidebarOpen"`
	Notifications       []string     `json:"notifications,omitempty"`
	UnreadNotifications int          `json:"unreadNotifications"`
}

// NewState returns the state a fresh installation starts with: default
// settings and the seed operator accounts.
func NewState() State {
	return State{
		Users: []models.User{
			{ID: "1", Name: "Admin User"},
			{ID: "2", Name: "Teknisyen 1"},
			{ID: "3", Name: "Teknisyen 2"},
		},
		Settings:    models.DefaultSettings(),
		SidebarOpen: true,
	}
}

// Persistable strips session-local fields so the stored document only carries
// durable business state.
func (s State) Persistable() State {
	s.CurrentUser = nil
	s.SidebarOpen = true
	s.Notifications = nil
	s.UnreadNotifications = 0
	return s
}

// actor names the user a transition runs as, falling back to the label the
// audit log has always used for an unselected operator.
func (s State) actor() string {
	if s.CurrentUser != nil {
		return s.CurrentUser.Name
	}
	return "Bilinmeyen"
}

func (s State) findBuilding(id string) (models.Building, bool) {
	for _, b := range s.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Building{}, false
}

func (s State) findPart(id string) (models.Part, bool) {
	for _, p := range s.Parts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Part{}, false
}

// LatestArchivedReceipt returns the newest archived receipt for a building,
// by creation date, or false when none exists.
func (s State) LatestArchivedReceipt(buildingID string) (models.ArchivedReceipt, bool) {
	best := -1
	for i, r := range s.ArchivedReceipts {
		if r.BuildingID != buildingID {
			continue
		}
		if best == -1 || r.CreatedDate >= s.ArchivedReceipts[best].CreatedDate {
			best = i
		}
	}
	if best == -1 {
		return models.ArchivedReceipt{}, false
	}
	return s.ArchivedReceipts[best], true
}
