package store

// Apply runs a single command against a state value and returns the next
// state with the outcome. It is pure: time and identity come from the stamp,
// and the input state is never mutated.
func Apply(st State, cmd Command, e stamp) (State, Result) {
	switch c := cmd.(type) {
	case AddBuilding:
		return applyAddBuilding(st, c, e)
	case UpdateBuilding:
		return applyUpdateBuilding(st, c, e)
	case DeleteBuilding:
		return applyDeleteBuilding(st, c, e)
	case AddPart:
		return applyAddPart(st, c, e)
	case UpdatePart:
		return applyUpdatePart(st, c, e)
	case DeletePart:
		return applyDeletePart(st, c, e)
	case IncreasePrices:
		return applyIncreasePrices(st, c, e)
	case InstallPart:
		return applyInstallPart(st, c, e)
	case InstallManualPart:
		return applyInstallManualPart(st, c, e)
	case MarkPartAsPaid:
		return applyMarkPartAsPaid(st, c, e)
	case ToggleMaintenance:
		return applyToggleMaintenance(st, c, e)
	case RevertMaintenance:
		return applyRevertMaintenance(st, c, e)
	case ResetAllMaintenance:
		return applyResetAllMaintenance(st, c, e)
	case AddMaintenanceRecord:
		return applyAddMaintenanceRecord(st, c, e)
	case AddUpdate:
		return applyAddUpdate(st, c, e)
	case AddIncome:
		return applyAddIncome(st, c, e)
	case AddPayment:
		return applyAddPayment(st, c, e)
	case SetUser:
		return applySetUser(st, c, e)
	case DeleteUser:
		return applyDeleteUser(st, c, e)
	case AddNotification:
		return applyAddNotification(st, c, e)
	case ClearNotifications:
		return applyClearNotifications(st, c, e)
	case ToggleSidebar:
		return applyToggleSidebar(st, c, e)
	case UpdateSettings:
		return applyUpdateSettings(st, c, e)
	case AddFaultReport:
		return applyAddFaultReport(st, c, e)
	case ResolveFaultReport:
		return applyResolveFaultReport(st, c, e)
	case ReportFault:
		return applyReportFault(st, c, e)
	case AddPrinter:
		return applyAddPrinter(st, c, e)
	case UpdatePrinter:
		return applyUpdatePrinter(st, c, e)
	case DeletePrinter:
		return applyDeletePrinter(st, c, e)
	case AddSMSTemplate:
		return applyAddSMSTemplate(st, c, e)
	case UpdateSMSTemplate:
		return applyUpdateSMSTemplate(st, c, e)
	case DeleteSMSTemplate:
		return applyDeleteSMSTemplate(st, c, e)
	case SendBulkSMS:
		return applySendBulkSMS(st, c, e)
	case SendWhatsApp:
		return applySendWhatsApp(st, c, e)
	case AddProposal:
		return applyAddProposal(st, c, e)
	case UpdateProposal:
		return applyUpdateProposal(st, c, e)
	case DeleteProposal:
		return applyDeleteProposal(st, c, e)
	case AddProposalTemplate:
		return applyAddProposalTemplate(st, c, e)
	case UpdateProposalTemplate:
		return applyUpdateProposalTemplate(st, c, e)
	case DeleteProposalTemplate:
		return applyDeleteProposalTemplate(st, c, e)
	case AddQRCode:
		return applyAddQRCode(st, c, e)
	case UpdateAutoSave:
		return applyUpdateAutoSave(st, c, e)
	default:
		return st, rejected(ReasonUnsupported)
	}
}
