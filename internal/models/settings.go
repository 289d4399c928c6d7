package models

// AppSettings is the company-wide configuration document.
type AppSettings struct {
	AppTitle                     string   `json:"appTitle"`
	Logo                         string   `json:"logo,omitempty"`
	CompanyName                  string   `json:"companyName"`
	CompanyPhone                 string   `json:"companyPhone"`
	CompanyAddress               Address  `json:"companyAddress"`
	CompanySlogan                string   `json:"companySlogan,omitempty"`
	Certificates                 []string `json:"certificates,omitempty"`
	ReceiptTemplate              string   `json:"receiptTemplate,omitempty"`
	DefaultMaintenanceNote       string   `json:"defaultMaintenanceNote,omitempty"`
	InstallationProposalTemplate string   `json:"installationProposalTemplate,omitempty"`
	MaintenanceProposalTemplate  string   `json:"maintenanceProposalTemplate,omitempty"`
	RevisionProposalTemplate     string   `json:"revisionProposalTemplate,omitempty"`
	FaultReportTemplate          string   `json:"faultReportTemplate,omitempty"`
	AutoSaveInterval             int      `json:"autoSaveInterval"` // seconds
}

// SettingsPatch carries a partial settings update; nil fields are left alone.
type SettingsPatch struct {
	AppTitle                     *string   `json:"appTitle,omitempty"`
	Logo                         *string   `json:"logo,omitempty"`
	CompanyName                  *string   `json:"companyName,omitempty"`
	CompanyPhone                 *string   `json:"companyPhone,omitempty"`
	CompanyAddress               *Address  `json:"companyAddress,omitempty"`
	CompanySlogan                *string   `json:"companySlogan,omitempty"`
	Certificates                 *[]string `json:"certificates,omitempty"`
	ReceiptTemplate              *string   `json:"receiptTemplate,omitempty"`
	DefaultMaintenanceNote       *string   `json:"defaultMaintenanceNote,omitempty"`
	InstallationProposalTemplate *string   `json:"installationProposalTemplate,omitempty"`
	MaintenanceProposalTemplate  *string   `json:"maintenanceProposalTemplate,omitempty"`
	RevisionProposalTemplate     *string   `json:"revisionProposalTemplate,omitempty"`
	FaultReportTemplate          *string   `json:"faultReportTemplate,omitempty"`
	AutoSaveInterval             *int      `json:"autoSaveInterval,omitempty"`
}

// Apply merges the patch into the settings document.
func (p SettingsPatch) Apply(s AppSettings) AppSettings {
	if p.AppTitle != nil {
		s.AppTitle = *p.AppTitle
	}
	if p.Logo != nil {
		s.Logo = *p.Logo
	}
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.CompanyPhone != nil {
		s.CompanyPhone = *p.CompanyPhone
	}
	if p.CompanyAddress != nil {
		s.CompanyAddress = *p.CompanyAddress
	}
	if p.CompanySlogan != nil {
		s.CompanySlogan = *p.CompanySlogan
	}
	if p.Certificates != nil {
		s.Certificates = *p.Certificates
	}
	if p.ReceiptTemplate != nil {
		s.ReceiptTemplate = *p.ReceiptTemplate
	}
	if p.DefaultMaintenanceNote != nil {
		s.DefaultMaintenanceNote = *p.DefaultMaintenanceNote
	}
	if p.InstallationProposalTemplate != nil {
		s.InstallationProposalTemplate = *p.InstallationProposalTemplate
	}
	if p.MaintenanceProposalTemplate != nil {
		s.MaintenanceProposalTemplate = *p.MaintenanceProposalTemplate
	}
	if p.RevisionProposalTemplate != nil {
		s.RevisionProposalTemplate = *p.RevisionProposalTemplate
	}
	if p.FaultReportTemplate != nil {
		s.FaultReportTemplate = *p.FaultReportTemplate
	}
	if p.AutoSaveInterval != nil {
		s.AutoSaveInterval = *p.AutoSaveInterval
	}
	return s
}

// DefaultSettings returns the settings document a fresh installation starts with.
func DefaultSettings() AppSettings {
	return AppSettings{
		AppTitle:     "Asansör Bakım Takip",
		CompanyName:  "TKNLİFT",
		CompanyPhone: "0555 123 45 67",
		CompanyAddress: Address{
			Mahalle: "Merkez Mahalle",
			Sokak:   "Ana Cadde",
			Il:      "İstanbul",
			Ilce:    "Kadıköy",
			BinaNo:  "123",
		},
		CompanySlogan:          "Güvenli Yükselişin Adresi",
		DefaultMaintenanceNote: "Bu bakım sırasında asansörün genel durumu kontrol edilmiş, gerekli ayarlamalar yapılmıştır.",
		AutoSaveInterval:       60,
	}
}
