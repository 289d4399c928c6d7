package store

import (
	"time"

	"github.com/TKNasansor/TKNLIFT/internal/models"
	"github.com/shopspring/decimal"
)

// maxUpdates caps the audit log; the oldest entries fall off first.
const maxUpdates = 50

// maxNotifications caps the transient notification list.
const maxNotifications = 10

// stamp carries the clock and id source a transition runs with, so tests can
// pin both.
type stamp struct {
	now   time.Time
	newID func() string
}

func (e stamp) iso() string {
	return e.now.UTC().Format(time.RFC3339)
}

func (e stamp) date() string {
	return e.now.Format("2006-01-02")
}

func (e stamp) clock() string {
	return e.now.Format("15:04")
}

func (e stamp) update(actor, action, details string) models.Update {
	return models.Update{
		ID:        e.newID(),
		Action:    action,
		User:      actor,
		Timestamp: e.iso(),
		Details:   details,
	}
}

// prependUpdate pushes an audit entry to the front of the log and evicts
// beyond the cap.
func prependUpdate(updates []models.Update, u models.Update) []models.Update {
	out := make([]models.Update, 0, len(updates)+1)
	out = append(out, u)
	out = append(out, updates...)
	if len(out) > maxUpdates {
		out = out[:maxUpdates]
	}
	return out
}

func prependNotification(notifications []string, msg string) []string {
	out := make([]string, 0, len(notifications)+1)
	out = append(out, msg)
	out = append(out, notifications...)
	if len(out) > maxNotifications {
		out = out[:maxNotifications]
	}
	return out
}

// roundTo50 rounds an amount to the nearest multiple of 50 currency units.
// This is the company's price-list rule, not generic rounding.
func roundTo50(d decimal.Decimal) decimal.Decimal {
	fifty := decimal.NewFromInt(50)
	return d.Div(fifty).Round(0).Mul(fifty)
}

// clampToZero floors an amount at zero; debt is never allowed to go negative.
func clampToZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
