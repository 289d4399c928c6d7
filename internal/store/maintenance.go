package store

import (
	"fmt"
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/receipt"
	"github.com/shopspring/decimal"
)

// applyToggleMaintenance is the widest transition in the store. With
// ShowReceipt it bills the visit: fee = maintenanceFee * elevatorCount, a
// MaintenanceRecord and its MaintenanceHistory twin are created under a
// shared record id, a maintenance DebtRecord raises the debt, the receipt is
// rendered and archived, and the building is stamped maintained. Without
// ShowReceipt only the maintained flag toggles. There is no dedup guard:
// calling the billing branch twice bills twice.
func applyToggleMaintenance(st State, cmd ToggleMaintenance, e stamp) (State, Result) {
	building, ok := st.findBuilding(cmd.BuildingID)
	if !ok {
		return st, rejected(ReasonBuildingNotFound)
	}

	maintenanceDate := e.date()
	maintenanceTime := e.clock()
	fee := building.MaintenanceFee.Mul(decimal.NewFromInt(int64(building.ElevatorCount)))

	if !cmd.ShowReceipt {
		next := st
		buildings := make([]models.Building, len(st.Buildings))
		for i, b := range st.Buildings {
			if b.ID == cmd.BuildingID {
				if !b.IsMaintained {
					b.LastMaintenanceDate = maintenanceDate
					b.LastMaintenanceTime = maintenanceTime
				}
				b.IsMaintained = !b.IsMaintained
				b.IsDefective = false
			}
			buildings[i] = b
		}
		next.Buildings = buildings

		action := "Bakım İşaretlendi"
		details := fmt.Sprintf("%s binası bakım yapıldı olarak işaretlendi.", building.Name)
		if building.IsMaintained {
			action = "Bakım Geri Alındı"
			details = fmt.Sprintf("%s binası bakım geri alındı.", building.Name)
		}
		next.Updates = prependUpdate(st.Updates, e.update(st.actor(), action, details))
		return next, applied()
	}

	recordID := e.newID()
	newDebt := building.Debt.Add(fee)

	record := models.MaintenanceRecord{
		ID:              recordID,
		BuildingID:      cmd.BuildingID,
		PerformedBy:     st.actor(),
		MaintenanceDate: maintenanceDate,
		MaintenanceTime: maintenanceTime,
		ElevatorCount:   building.ElevatorCount,
		TotalFee:        fee, // maintenance only, parts are billed separately
		Status:          "completed",
		Priority:        models.SeverityMedium,
	}

	history := models.MaintenanceHistory{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		MaintenanceDate: maintenanceDate,
		MaintenanceTime: maintenanceTime,
		PerformedBy:     st.actor(),
		MaintenanceFee:  fee,
		RelatedRecordID: recordID,
	}

	debtRecord := models.DebtRecord{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		Date:            maintenanceDate,
		Type:            models.DebtMaintenance,
		Description:     fmt.Sprintf("Bakım ücreti (%d asansör)", building.ElevatorCount),
		Amount:          fee,
		PreviousDebt:    building.Debt,
		NewDebt:         newDebt,
		PerformedBy:     st.actor(),
		RelatedRecordID: recordID,
	}

	updated := building
	updated.IsMaintained = true
	updated.LastMaintenanceDate = maintenanceDate
	updated.LastMaintenanceTime = maintenanceTime
	updated.Debt = newDebt
	updated.IsDefective = false

	next := st
	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		if b.ID == cmd.BuildingID {
			buildings[i] = updated
		} else {
			buildings[i] = b
		}
	}
	next.Buildings = buildings
	next.MaintenanceRecords = append(append([]models.MaintenanceRecord{}, st.MaintenanceRecords...), record)
	next.MaintenanceHistory = append(append([]models.MaintenanceHistory{}, st.MaintenanceHistory...), history)
	next.DebtRecords = append([]models.DebtRecord{debtRecord}, st.DebtRecords...)

	html := receipt.RenderMaintenance(receipt.MaintenanceInput{
		Building:   updated,
		Settings:   st.Settings,
		Technician: st.actor(),
		Parts:      st.unbilledPartLines(cmd.BuildingID),
		Now:        e.now,
	})

	archived := models.ArchivedReceipt{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		HTMLContent:     html,
		CreatedDate:     e.iso(),
		CreatedBy:       st.actor(),
		MaintenanceDate: maintenanceDate,
		BuildingName:    building.Name,
		RelatedRecordID: recordID,
	}
	next.ArchivedReceipts = append(append([]models.ArchivedReceipt{}, st.ArchivedReceipts...), archived)

	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Bakım Tamamlandı",
			fmt.Sprintf("%s binasının bakımı tamamlandı ve fiş oluşturuldu.", building.Name)))

	result := applied()
	result.ReceiptHTML = html
	return next, result
}

// unbilledPartLines lists installed parts not yet paid and not tied to an
// earlier maintenance receipt, resolved to priced lines.
func (s State) unbilledPartLines(buildingID string) []receipt.PartLine {
	var lines []receipt.PartLine
	for _, inst := range s.PartInstallations {
		if inst.BuildingID != buildingID || inst.IsPaid || inst.RelatedMaintenanceID != "" {
			continue
		}
		part, ok := s.findPart(inst.PartID)
		if !ok {
			continue
		}
		lines = append(lines, receipt.PartLine{
			Name:       part.Name,
			Quantity:   inst.Quantity,
			UnitPrice:  part.Price,
			TotalPrice: part.Price.Mul(decimal.NewFromInt(int64(inst.Quantity))),
		})
	}
	for _, inst := range s.ManualPartInstallations {
		if inst.BuildingID != buildingID || inst.IsPaid || inst.RelatedMaintenanceID != "" {
			continue
		}
		lines = append(lines, receipt.PartLine{
			Name:       inst.PartName,
			Quantity:   inst.Quantity,
			UnitPrice:  inst.UnitPrice,
			TotalPrice: inst.TotalPrice,
		})
	}
	return lines
}

// applyRevertMaintenance undoes the latest billed visit: the fee comes back
// off the debt (clamped at zero) and the record, its history twin, the debt
// record and the archived receipt all go away through the shared record id.
// When no record exists the building is still flipped to unmaintained with
// no ledger correction; that asymmetry is long-standing behavior.
func applyRevertMaintenance(st State, cmd RevertMaintenance, e stamp) (State, Result) {
	building, ok := st.findBuilding(cmd.BuildingID)
	if !ok {
		return st, rejected(ReasonBuildingNotFound)
	}
	if !building.IsMaintained {
		return st, applied()
	}

	last, found := st.latestMaintenanceRecord(cmd.BuildingID)

	next := st
	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		if b.ID == cmd.BuildingID {
			b.IsMaintained = false
			b.LastMaintenanceDate = ""
			b.LastMaintenanceTime = ""
			if found {
				b.Debt = clampToZero(b.Debt.Sub(last.TotalFee))
			}
		}
		buildings[i] = b
	}
	next.Buildings = buildings

	if found {
		records := make([]models.MaintenanceRecord, 0, len(st.MaintenanceRecords))
		for _, r := range st.MaintenanceRecords {
			if r.ID != last.ID {
				records = append(records, r)
			}
		}
		next.MaintenanceRecords = records

		history := make([]models.MaintenanceHistory, 0, len(st.MaintenanceHistory))
		for _, h := range st.MaintenanceHistory {
			if h.RelatedRecordID != last.ID {
				history = append(history, h)
			}
		}
		next.MaintenanceHistory = history

		debts := make([]models.DebtRecord, 0, len(st.DebtRecords))
		for _, d := range st.DebtRecords {
			if d.RelatedRecordID != last.ID {
				debts = append(debts, d)
			}
		}
		next.DebtRecords = debts

		receipts := make([]models.ArchivedReceipt, 0, len(st.ArchivedReceipts))
		for _, r := range st.ArchivedReceipts {
			if r.RelatedRecordID != last.ID {
				receipts = append(receipts, r)
			}
		}
		next.ArchivedReceipts = receipts
	}

	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Bakım Geri Alındı", fmt.Sprintf("%s binasının bakımı geri alındı.", building.Name)))
	return next, applied()
}

// latestMaintenanceRecord picks the newest record for a building by
// maintenance date, preferring the later entry on equal dates.
func (s State) latestMaintenanceRecord(buildingID string) (models.MaintenanceRecord, bool) {
	best := -1
	var bestDate time.Time
	for i, r := range s.MaintenanceRecords {
		if r.BuildingID != buildingID {
			continue
		}
		date, err := time.Parse("2006-01-02", r.MaintenanceDate)
		if err != nil {
			continue
		}
		if best == -1 || !date.Before(bestDate) {
			best = i
			bestDate = date
		}
	}
	if best == -1 {
		return models.MaintenanceRecord{}, false
	}
	return s.MaintenanceRecords[best], true
}

func applyResetAllMaintenance(st State, _ ResetAllMaintenance, e stamp) (State, Result) {
	next := st
	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		b.IsMaintained = false
		b.LastMaintenanceDate = ""
		b.LastMaintenanceTime = ""
		buildings[i] = b
	}
	next.Buildings = buildings
	next.LastMaintenanceReset = e.iso()
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Tüm Bakımlar Sıfırlandı", "Tüm binaların bakım durumu sıfırlandı."))
	return next, applied()
}

// applyAddMaintenanceRecord backfills a record directly, without billing or
// receipt; used for importing visits performed outside the system.
func applyAddMaintenanceRecord(st State, cmd AddMaintenanceRecord, e stamp) (State, Result) {
	record := models.MaintenanceRecord{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		PerformedBy:     cmd.PerformedBy,
		MaintenanceDate: cmd.MaintenanceDate,
		MaintenanceTime: cmd.MaintenanceTime,
		ElevatorCount:   cmd.ElevatorCount,
		TotalFee:        cmd.TotalFee,
		Status:          "completed",
		Priority:        models.SeverityMedium,
	}

	history := models.MaintenanceHistory{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		MaintenanceDate: cmd.MaintenanceDate,
		MaintenanceTime: cmd.MaintenanceTime,
		PerformedBy:     cmd.PerformedBy,
		MaintenanceFee:  cmd.TotalFee,
		Notes:           cmd.Notes,
		RelatedRecordID: record.ID,
	}

	next := st
	next.MaintenanceRecords = append(append([]models.MaintenanceRecord{}, st.MaintenanceRecords...), record)
	next.MaintenanceHistory = append(append([]models.MaintenanceHistory{}, st.MaintenanceHistory...), history)
	return next, applied()
}
