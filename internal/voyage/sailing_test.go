package voyage

import (
	"testing"

	"laytime-calculator/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeSailing(t *testing.T) {
	t.Parallel()
	s := ComputeSailing(route(), ownerVessel())
	assert.InDelta(t, 100.0, s.LadenHours, 1e-9)
	assert.InDelta(t, 100.0, s.BallastHours, 1e-9)
	assert.InDelta(t, 200.0, s.Hours, 1e-9)
	assert.InDelta(t, 10.0, VoyageDays(s, route().PortDays), 1e-9)
}

func TestComputeSailing_ZeroSpeedIsZero(t *testing.T) {
	t.Parallel()
	v := ownerVessel()
	v.BallastSpeedKnots = 0
	assert.Equal(t, Sailing{}, ComputeSailing(route(), v))

	v = ownerVessel()
	v.LadenSpeedKnots = 0
	assert.Equal(t, Sailing{}, ComputeSailing(route(), v))
}

func TestComputeConsumption(t *testing.T) {
	t.Parallel()
	s := Sailing{LadenHours: 60, BallastHours: 40, Hours: 100}

	single := ComputeConsumption(s, 3, model.ConsumptionRates{Rate: 10})
	assert.InDelta(t, 100*10+3*10, single, 1e-9)

	split := ComputeConsumption(s, 3, model.ConsumptionRates{Rate: 999, Split: true, Laden: 12, Ballast: 8, Port: 50})
	assert.InDelta(t, 60*12+40*8+3*50, split, 1e-9)
}
