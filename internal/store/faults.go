package store

import (
	"fmt"

	"github.com/TKNasansor/TKNLIFT/internal/models"
)

// applyAddFaultReport files a citizen-submitted fault report. The report is
// attributed to "Sistem" in the audit log since no operator is involved.
func applyAddFaultReport(st State, cmd AddFaultReport, e stamp) (State, Result) {
	if _, ok := st.findBuilding(cmd.BuildingID); !ok {
		return st, rejected(ReasonBuildingNotFound)
	}

	report := models.FaultReport{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		ReporterName:    cmd.ReporterName,
		ReporterSurname: cmd.ReporterSurname,
		ReporterPhone:   cmd.ReporterPhone,
		ApartmentNo:     cmd.ApartmentNo,
		Description:     cmd.Description,
		Timestamp:       e.iso(),
		Status:          models.FaultPending,
	}

	next := st
	next.FaultReports = append(append([]models.FaultReport{}, st.FaultReports...), report)
	next.Updates = prependUpdate(st.Updates,
		e.update("Sistem", "Arıza Bildirimi Alındı",
			fmt.Sprintf("%s %s tarafından arıza bildirimi yapıldı.", cmd.ReporterName, cmd.ReporterSurname)))
	next.UnreadNotifications = st.UnreadNotifications + 1
	return next, applied()
}

// applyResolveFaultReport marks a report resolved. The lifecycle is one-way.
func applyResolveFaultReport(st State, cmd ResolveFaultReport, e stamp) (State, Result) {
	found := false
	reports := make([]models.FaultReport, len(st.FaultReports))
	for i, r := range st.FaultReports {
		if r.ID == cmd.ID {
			r.Status = models.FaultResolved
			found = true
		}
		reports[i] = r
	}
	if !found {
		return st, rejected(ReasonFaultReportNotFound)
	}

	next := st
	next.FaultReports = reports
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Arıza Çözüldü", "Arıza bildirimi çözüldü olarak işaretlendi."))
	return next, applied()
}

// applyReportFault flags a building defective with severity and reporter
// metadata, and notifies operators. The flag clears on the next completed
// maintenance.
func applyReportFault(st State, cmd ReportFault, e stamp) (State, Result) {
	building, ok := st.findBuilding(cmd.BuildingID)
	if !ok {
		return st, rejected(ReasonBuildingNotFound)
	}

	next := st
	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		if b.ID == cmd.BuildingID {
			b.IsDefective = true
			b.DefectiveNote = cmd.Description
			b.FaultSeverity = cmd.Severity
			b.FaultTimestamp = e.iso()
			b.FaultReportedBy = cmd.ReportedBy
		}
		buildings[i] = b
	}
	next.Buildings = buildings
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Bina Arızalı Olarak İşaretlendi",
			fmt.Sprintf("%s binası arızalı olarak işaretlendi. Bildiren: %s", building.Name, cmd.ReportedBy)))
	next.Notifications = prependNotification(st.Notifications,
		fmt.Sprintf("%s binası arızalı olarak işaretlendi!", building.Name))
	next.UnreadNotifications = st.UnreadNotifications + 1
	return next, applied()
}
