package store

import (
	"fmt"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/TKNasansor/TKNLIFT/internal/receipt"
)

// applyAddPayment books a payment against a building: the payment and a
// matching income entry are prepended, the debt drops clamped at zero, and
// the ledger records the before/after balance.
func applyAddPayment(st State, cmd AddPayment, e stamp) (State, Result) {
	building, ok := st.findBuilding(cmd.BuildingID)
	if !ok {
		return st, rejected(ReasonBuildingNotFound)
	}

	newDebt := clampToZero(building.Debt.Sub(cmd.Amount))

	payment := models.Payment{
		ID:         e.newID(),
		BuildingID: cmd.BuildingID,
		Amount:     cmd.Amount,
		Date:       cmd.Date,
		ReceivedBy: cmd.ReceivedBy,
		Notes:      cmd.Notes,
	}

	income := models.Income{
		ID:         e.newID(),
		BuildingID: cmd.BuildingID,
		Amount:     cmd.Amount,
		Date:       cmd.Date,
		ReceivedBy: cmd.ReceivedBy,
	}

	description := "Ödeme alındı"
	if cmd.Notes != "" {
		description = fmt.Sprintf("Ödeme alındı - %s", cmd.Notes)
	}
	debtRecord := models.DebtRecord{
		ID:           e.newID(),
		BuildingID:   cmd.BuildingID,
		Date:         cmd.Date,
		Type:         models.DebtPayment,
		Description:  description,
		Amount:       cmd.Amount,
		PreviousDebt: building.Debt,
		NewDebt:      newDebt,
		PerformedBy:  cmd.ReceivedBy,
	}

	next := st
	buildings := make([]models.Building, len(st.Buildings))
	for i, b := range st.Buildings {
		if b.ID == cmd.BuildingID {
			b.Debt = newDebt
		}
		buildings[i] = b
	}
	next.Buildings = buildings
	next.Payments = append([]models.Payment{payment}, st.Payments...)
	next.Incomes = append([]models.Income{income}, st.Incomes...)
	next.DebtRecords = append([]models.DebtRecord{debtRecord}, st.DebtRecords...)
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Ödeme Alındı",
			fmt.Sprintf("%s binasından %s ₺ ödeme alındı.", building.Name, receipt.FormatMoney(cmd.Amount))))
	return next, applied()
}

// applyAddIncome books income outside the payment flow; no debt is touched.
func applyAddIncome(st State, cmd AddIncome, e stamp) (State, Result) {
	income := cmd.Income
	income.ID = e.newID()

	next := st
	next.Incomes = append(append([]models.Income{}, st.Incomes...), income)
	next.Updates = prependUpdate(st.Updates,
		e.update(st.actor(), "Gelir Eklendi",
			fmt.Sprintf("%s ₺ gelir kaydedildi.", receipt.FormatMoney(income.Amount))))
	return next, applied()
}
