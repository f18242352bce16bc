package laytime

import (
	"laytime-calculator/internal/model"
)

const hoursPerDay = 24.0

type Engine struct{}

func New() *Engine { return &Engine{} }

// Compute turns the POL and POD logs into billable port time and cost.
// Empty logs are valid and count as zero hours.
func (e *Engine) Compute(pol, pod model.PortLog, terms model.FreeTimeTerms, policy DurationPolicy) (*Result, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if pol.Location == "" {
		pol.Location = model.LocationPOL
	}
	if pod.Location == "" {
		pod.Location = model.LocationPOD
	}
	if err := pol.Validate(); err != nil {
		return nil, err
	}
	if err := pod.Validate(); err != nil {
		return nil, err
	}

	polHours, polRows, err := ComputeDuration(pol, policy)
	if err != nil {
		return nil, err
	}
	podHours, podRows, err := ComputeDuration(pod, policy)
	if err != nil {
		return nil, err
	}

	totalHours := polHours + podHours
	totalDays := totalHours / hoursPerDay
	detentionDays := DetentionDays(totalDays, terms.FreeTimeDays)

	ledger := make([]LedgerRow, 0, len(polRows)+len(podRows))
	ledger = append(ledger, polRows...)
	ledger = append(ledger, podRows...)

	return &Result{
		Policy:        policy,
		Terms:         terms,
		PolHours:      polHours,
		PodHours:      podHours,
		TotalHours:    totalHours,
		TotalDays:     totalDays,
		DetentionDays: detentionDays,
		TotalCost:     detentionDays * terms.RatePerDay,
		Ledger:        ledger,
	}, nil
}

// DetentionDays is the port time exceeding the free time, never negative.
func DetentionDays(totalDays, freeTimeDays float64) float64 {
	d := totalDays - freeTimeDays
	if d < 0 {
		return 0
	}
	return d
}
