package store

// Reason explains why a command was rejected. The previous generation of this
// system dropped invalid commands silently; the explicit reason lets callers
// tell "nothing to do" from "your input was invalid" without changing the
// all-or-nothing application guarantee.
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonUnsupported          Reason = "unsupported command"
	ReasonBuildingNotFound     Reason = "building not found"
	ReasonPartNotFound         Reason = "part not found"
	ReasonInsufficientStock    Reason = "insufficient stock"
	ReasonInstallationNotFound Reason = "installation not found"
	ReasonFaultReportNotFound  Reason = "fault report not found"
	ReasonTemplateNotFound     Reason = "template not found"
)

// Result reports the outcome of one transition. When Applied is false the
// snapshot is guaranteed unchanged.
type Result struct {
	Applied bool
	Reason  Reason

	// ReceiptHTML carries the rendered receipt when ToggleMaintenance ran
	// with ShowReceipt set.
	ReceiptHTML string

	// Links carries wa.me deep links produced by SendWhatsApp.
	Links []string
}

func applied() Result {
	return Result{Applied: true}
}

func rejected(r Reason) Result {
	return Result{Reason: r}
}
