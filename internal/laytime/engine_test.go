package laytime

import (
	"errors"
	"testing"
	"time"

	"laytime-calculator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeMonth(m int) time.Month { return time.Month(m) }

func TestCompute_SameDayUnderFreeTime(t *testing.T) {
	t.Parallel()
	pol := model.PortLog{Events: []model.VoyageEvent{
		ev(2025, 10, 20, 8, 0, "Arrival / NOR"),
		ev(2025, 10, 20, 14, 30, "Departure"),
	}}
	terms := model.FreeTimeTerms{FreeTimeDays: 1, RatePerDay: 30_000_000}

	res, err := New().Compute(pol, model.PortLog{}, terms, PolicySpan)
	require.NoError(t, err)

	assert.InDelta(t, 6.5, res.PolHours, 1e-9)
	assert.Equal(t, 0.0, res.PodHours)
	assert.InDelta(t, 6.5, res.TotalHours, 1e-9)
	assert.InDelta(t, 0.2708, res.TotalDays, 1e-4)
	assert.Equal(t, 0.0, res.DetentionDays)
	assert.Equal(t, 0.0, res.TotalCost)
	assert.Len(t, res.LedgerFor(model.LocationPOL), 2)
	assert.Empty(t, res.LedgerFor(model.LocationPOD))
}

func TestCompute_IntervalPolicyWithDetention(t *testing.T) {
	t.Parallel()
	pol := model.PortLog{Rows: []model.IntervalRow{row(9, 0, 17, 0), row(20, 0, 5, 0)}}
	pod := model.PortLog{Rows: []model.IntervalRow{row(0, 0, 23, 0), row(23, 0, 0, 0)}}
	terms := model.FreeTimeTerms{FreeTimeDays: 1, RatePerDay: 24_000_000}

	res, err := New().Compute(pol, pod, terms, PolicyIntervalSum)
	require.NoError(t, err)

	assert.InDelta(t, 17.0, res.PolHours, 1e-9)
	assert.InDelta(t, 24.0, res.PodHours, 1e-9)
	assert.InDelta(t, 41.0, res.TotalHours, 1e-9)
	assert.InDelta(t, 41.0/24, res.TotalDays, 1e-12)
	assert.InDelta(t, 17.0/24, res.DetentionDays, 1e-12)
	assert.InDelta(t, 17_000_000, res.TotalCost, 1e-6)
	assert.Equal(t, PolicyIntervalSum, res.Policy)
	assert.Equal(t, model.LocationPOD, res.Ledger[2].Location)
}

func TestCompute_EmptyLogsAreZero(t *testing.T) {
	t.Parallel()
	res, err := New().Compute(model.PortLog{}, model.PortLog{}, model.FreeTimeTerms{FreeTimeDays: 2, RatePerDay: 1}, PolicySpan)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.TotalHours)
	assert.Equal(t, 0.0, res.DetentionDays)
	assert.Equal(t, 0.0, res.TotalCost)
}

func TestCompute_NegativeTermsRejected(t *testing.T) {
	t.Parallel()
	var inv *model.InvalidInputError

	_, err := New().Compute(model.PortLog{}, model.PortLog{}, model.FreeTimeTerms{FreeTimeDays: -1}, PolicySpan)
	require.Error(t, err)
	assert.True(t, errors.As(err, &inv))
	assert.Equal(t, "free_time_days", inv.Field)

	_, err = New().Compute(model.PortLog{}, model.PortLog{}, model.FreeTimeTerms{RatePerDay: -1}, PolicySpan)
	require.Error(t, err)
	assert.True(t, errors.As(err, &inv))
}

func TestCompute_CostLinearInRate(t *testing.T) {
	t.Parallel()
	pol := model.PortLog{Rows: []model.IntervalRow{row(0, 0, 12, 0), row(12, 0, 0, 0), row(0, 0, 12, 0)}}
	base, err := New().Compute(pol, model.PortLog{}, model.FreeTimeTerms{FreeTimeDays: 0.5, RatePerDay: 1_000_000}, PolicyIntervalSum)
	require.NoError(t, err)
	tripled, err := New().Compute(pol, model.PortLog{}, model.FreeTimeTerms{FreeTimeDays: 0.5, RatePerDay: 3_000_000}, PolicyIntervalSum)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, base.DetentionDays, 1e-12)
	assert.InDelta(t, 3*base.TotalCost, tripled.TotalCost, 1e-6)
}

func TestDetentionDays_NeverNegative(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ total, free float64 }{
		{0, 0}, {0, 5}, {1.5, 2}, {2, 2}, {3.25, 1},
	} {
		got := DetentionDays(tc.total, tc.free)
		assert.GreaterOrEqual(t, got, 0.0)
		if tc.total > tc.free {
			assert.InDelta(t, tc.total-tc.free, got, 1e-12)
		}
	}
}
