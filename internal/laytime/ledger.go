package laytime

import (
	"time"

	"laytime-calculator/internal/model"
)

// LedgerRow is one row of per-entry output.
// This is the primary artifact for "what happened" at each port.
//
// Under the span policy From and To are both the event time and Hours is the
// time elapsed since the previous event. Under the interval policy Hours is
// the row's own from/to duration.
type LedgerRow struct {
	Index int

	Location model.Location
	Date     model.Date
	From     model.Clock
	To       model.Clock
	Note     string

	Start time.Time
	End   time.Time

	Hours    float64
	CumHours float64
}

// Result is the laytime account for one voyage.
// Values are kept at full precision; rounding is left to the report layer.
type Result struct {
	Policy DurationPolicy
	Terms  model.FreeTimeTerms

	PolHours      float64
	PodHours      float64
	TotalHours    float64
	TotalDays     float64
	DetentionDays float64
	TotalCost     float64

	Ledger []LedgerRow
}

// LedgerFor returns the rows recorded for one location.
func (r *Result) LedgerFor(loc model.Location) []LedgerRow {
	out := make([]LedgerRow, 0, len(r.Ledger))
	for _, row := range r.Ledger {
		if row.Location == loc {
			out = append(out, row)
		}
	}
	return out
}
