package store

import (
	"fmt"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/shopspring/decimal"
)

func applyAddPart(st State, cmd AddPart, e stamp) (State, Result) {
	p := cmd.Part
	p.ID = e.newID()

	next := st
	next.Parts = append(append([]models.Part{}, st.Parts...), p)
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Parça Eklendi", fmt.Sprintf("%s parçası stoğa eklendi.", p.Name)))
	return next, applied()
}

func applyUpdatePart(st State, cmd UpdatePart, e stamp) (State, Result) {
	next := st
	parts := make([]models.Part, len(st.Parts))
	for i, p := range st.Parts {
		if p.ID == cmd.Part.ID {
			parts[i] = cmd.Part
		} else {
			parts[i] = p
		}
	}
	next.Parts = parts
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Parça Güncellendi", fmt.Sprintf("%s parçası güncellendi.", cmd.Part.Name)))
	return next, applied()
}

func applyDeletePart(st State, cmd DeletePart, e stamp) (State, Result) {
	name := "Bilinmeyen"
	if p, ok := st.findPart(cmd.ID); ok {
		name = p.Name
	}

	next := st
	parts := make([]models.Part, 0, len(st.Parts))
	for _, p := range st.Parts {
		if p.ID != cmd.ID {
			parts = append(parts, p)
		}
	}
	next.Parts = parts
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Parça Silindi", fmt.Sprintf("%s parçası stoktan silindi.", name)))
	return next, applied()
}

// applyIncreasePrices bulk-raises every part price and rounds each result to
// the nearest multiple of 50. The rounding makes the operation non-linear:
// applying 10% twice is not the same as applying 21% once.
func applyIncreasePrices(st State, cmd IncreasePrices, e stamp) (State, Result) {
	factor := decimal.NewFromInt(1).Add(cmd.Percentage.Div(decimal.NewFromInt(100)))

	next := st
	parts := make([]models.Part, len(st.Parts))
	for i, p := range st.Parts {
		p.Price = roundTo50(p.Price.Mul(factor))
		parts[i] = p
	}
	next.Parts = parts
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Fiyat Artışı",
			fmt.Sprintf("Tüm parça fiyatları %%%s artırıldı ve en yakın 50'nin katına yuvarlandı.", cmd.Percentage.String())))
	return next, applied()
}

// applyInstallPart applies an inventory part to a building. Both sides must
// exist and stock must cover the quantity; otherwise nothing happens.
func applyInstallPart(st State, cmd InstallPart, e stamp) (State, Result) {
	part, partOK := st.findPart(cmd.PartID)
	building, buildingOK := st.findBuilding(cmd.BuildingID)
	if !buildingOK {
		return st, rejected(ReasonBuildingNotFound)
	}
	if !partOK {
		return st, rejected(ReasonPartNotFound)
	}
	if part.Quantity < cmd.Quantity {
		return st, rejected(ReasonInsufficientStock)
	}

	installationID := e.newID()
	totalCost := part.Price.Mul(decimal.NewFromInt(int64(cmd.Quantity)))
	newDebt := building.Debt.Add(totalCost)

	installation := models.PartInstallation{
		ID:          installationID,
		BuildingID:  cmd.BuildingID,
		PartID:      cmd.PartID,
		Quantity:    cmd.Quantity,
		InstallDate: cmd.InstallDate,
		InstalledBy: st.actor(),
	}

	next := st

	parts := make([]models.Part, len(st.Parts))
	for i, p := range st.Parts {
		if p.ID == cmd.PartID {
			p.Quantity -= cmd.Quantity
		}
		parts[i] = p
	}
	next.Parts = parts

	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		if b.ID == cmd.BuildingID {
			b.Debt = newDebt
		}
		buildings[i] = b
	}
	next.Buildings = buildings

	next.PartInstallations = append(append([]models.PartInstallation{}, st.PartInstallations...), installation)

	debtRecord := models.DebtRecord{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		Date:            cmd.InstallDate,
		Type:            models.DebtPart,
		Description:     fmt.Sprintf("%d adet %s takıldı", cmd.Quantity, part.Name),
		Amount:          totalCost,
		PreviousDebt:    building.Debt,
		NewDebt:         newDebt,
		PerformedBy:     st.actor(),
		RelatedRecordID: installationID,
	}
	next.DebtRecords = append([]models.DebtRecord{debtRecord}, st.DebtRecords...)

	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Parça Takıldı",
			fmt.Sprintf("%s binasına %d adet %s takıldı.", building.Name, cmd.Quantity, part.Name)))
	return next, applied()
}

// applyInstallManualPart is the free-text variant: no inventory is checked or
// touched, only the building has to exist.
func applyInstallManualPart(st State, cmd InstallManualPart, e stamp) (State, Result) {
	building, ok := st.findBuilding(cmd.BuildingID)
	if !ok {
		return st, rejected(ReasonBuildingNotFound)
	}

	installationID := e.newID()
	newDebt := building.Debt.Add(cmd.TotalPrice)

	installation := models.ManualPartInstallation{
		ID:          installationID,
		BuildingID:  cmd.BuildingID,
		PartName:    cmd.PartName,
		Quantity:    cmd.Quantity,
		UnitPrice:   cmd.UnitPrice,
		TotalPrice:  cmd.TotalPrice,
		InstallDate: cmd.InstallDate,
		InstalledBy: st.actor(),
	}

	next := st
	next.ManualPartInstallations = append(append([]models.ManualPartInstallation{}, st.ManualPartInstallations...), installation)

	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		if b.ID == cmd.BuildingID {
			b.Debt = newDebt
		}
		buildings[i] = b
	}
	next.Buildings = buildings

	debtRecord := models.DebtRecord{
		ID:              e.newID(),
		BuildingID:      cmd.BuildingID,
		Date:            cmd.InstallDate,
		Type:            models.DebtPart,
		Description:     fmt.Sprintf("%d adet %s takıldı (Manuel)", cmd.Quantity, cmd.PartName),
		Amount:          cmd.TotalPrice,
		PreviousDebt:    building.Debt,
		NewDebt:         newDebt,
		PerformedBy:     st.actor(),
		RelatedRecordID: installationID,
	}
	next.DebtRecords = append([]models.DebtRecord{debtRecord}, st.DebtRecords...)

	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Manuel Parça Takıldı",
			fmt.Sprintf("%s binasına %d adet %s takıldı (Manuel).", building.Name, cmd.Quantity, cmd.PartName)))
	return next, applied()
}

// applyMarkPartAsPaid stamps the installation paid. No debt moves here;
// settling debt is AddPayment's job.
func applyMarkPartAsPaid(st State, cmd MarkPartAsPaid, e stamp) (State, Result) {
	next := st
	if cmd.IsManual {
		found := false
		installations := make([]models.ManualPartInstallation, len(st.ManualPartInstallations))
		for i, inst := range st.ManualPartInstallations {
			if inst.ID == cmd.InstallationID {
				inst.IsPaid = true
				inst.PaymentDate = e.iso()
				found = true
			}
			installations[i] = inst
		}
		if !found {
			return st, rejected(ReasonInstallationNotFound)
		}
		next.ManualPartInstallations = installations
		return next, applied()
	}

	found := false
	installations := make([]models.PartInstallation, len(st.PartInstallations))
	for i, inst := range st.PartInstallations {
		if inst.ID == cmd.InstallationID {
			inst.IsPaid = true
			inst.PaymentDate = e.iso()
			found = true
		}
		installations[i] = inst
	}
	if !found {
		return st, rejected(ReasonInstallationNotFound)
	}
	next.PartInstallations = installations
	return next, applied()
}
