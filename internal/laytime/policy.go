package laytime

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"laytime-calculator/internal/model"
)

// DurationPolicy selects how a port log is turned into elapsed hours.
// Both interpretations exist in the field; the caller picks one per call.
type DurationPolicy string

const (
	// PolicySpan measures first-to-last event after sorting by timestamp.
	PolicySpan DurationPolicy = "span"
	// PolicyIntervalSum adds up independent from/to rows, wrapping past midnight.
	PolicyIntervalSum DurationPolicy = "interval_sum"
)

// PolicyInfo describes a policy for listings.
type PolicyInfo struct {
	Policy      DurationPolicy
	Description string
	RowShape    string
}

func Policies() []PolicyInfo {
	return []PolicyInfo{
		{
			Policy:      PolicySpan,
			Description: "Sort events by date and time; duration is the last timestamp minus the first. Zero or one event yields zero.",
			RowShape:    "events: date, time, note",
		},
		{
			Policy:      PolicyIntervalSum,
			Description: "Each row has from/to on its date; duration is the sum of (to - from), adding 24h when to is earlier than from.",
			RowShape:    "rows: date, from, to, note",
		},
	}
}

func ParsePolicy(s string) (DurationPolicy, error) {
	switch DurationPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicySpan:
		return PolicySpan, nil
	case PolicyIntervalSum:
		return PolicyIntervalSum, nil
	default:
		return "", &model.InvalidInputError{Field: "policy", Reason: fmt.Sprintf("unsupported duration policy %q", s)}
	}
}

// ComputeDuration returns the elapsed hours of one port log under the given
// policy, together with a ledger row per entry. The log is not modified.
func ComputeDuration(log model.PortLog, policy DurationPolicy) (float64, []LedgerRow, error) {
	switch policy {
	case PolicySpan:
		if len(log.Rows) > 0 {
			return 0, nil, &model.InvalidInputError{
				Field:  string(log.Location),
				Reason: "carries from/to rows; the span policy needs timestamped events",
			}
		}
		h, rows := spanHours(log)
		return h, rows, nil
	case PolicyIntervalSum:
		if len(log.Events) > 0 {
			return 0, nil, &model.InvalidInputError{
				Field:  string(log.Location),
				Reason: "carries timestamped events; the interval_sum policy needs from/to rows",
			}
		}
		h, rows := intervalSumHours(log)
		return h, rows, nil
	default:
		return 0, nil, &model.InvalidInputError{Field: "policy", Reason: fmt.Sprintf("unsupported duration policy %q", policy)}
	}
}

func spanHours(log model.PortLog) (float64, []LedgerRow) {
	events := make([]model.VoyageEvent, len(log.Events))
	copy(events, log.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp().Before(events[j].Timestamp())
	})

	rows := make([]LedgerRow, 0, len(events))
	cum := 0.0
	for i, e := range events {
		step := 0.0
		if i > 0 {
			step = e.Timestamp().Sub(events[i-1].Timestamp()).Hours()
		}
		cum += step
		ts := e.Timestamp()
		rows = append(rows, LedgerRow{
			Index:    i,
			Location: log.Location,
			Date:     e.Date,
			From:     e.Time,
			To:       e.Time,
			Note:     e.Note,
			Start:    ts,
			End:      ts,
			Hours:    step,
			CumHours: cum,
		})
	}
	if len(events) < 2 {
		return 0, rows
	}
	span := events[len(events)-1].Timestamp().Sub(events[0].Timestamp()).Hours()
	return span, rows
}

func intervalSumHours(log model.PortLog) (float64, []LedgerRow) {
	rows := make([]LedgerRow, 0, len(log.Rows))
	total := 0.0
	for i, r := range log.Rows {
		start := r.Date.Time().Add(r.From.Duration())
		end := r.Date.Time().Add(r.To.Duration())
		if r.To < r.From {
			end = end.Add(24 * time.Hour)
		}
		h := end.Sub(start).Hours()
		total += h
		rows = append(rows, LedgerRow{
			Index:    i,
			Location: log.Location,
			Date:     r.Date,
			From:     r.From,
			To:       r.To,
			Note:     r.Note,
			Start:    start,
			End:      end,
			Hours:    h,
			CumHours: total,
		})
	}
	return total, rows
}
