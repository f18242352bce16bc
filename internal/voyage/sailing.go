package voyage

import "laytime-calculator/internal/model"

// Sailing is the time spent under way on each leg.
type Sailing struct {
	LadenHours   float64
	BallastHours float64
	Hours        float64
}

// ComputeSailing divides each leg's distance by its speed. When either speed
// is zero the data is treated as incomplete and all hours are zero.
func ComputeSailing(route model.RouteParams, vessel model.VesselParams) Sailing {
	if vessel.LadenSpeedKnots <= 0 || vessel.BallastSpeedKnots <= 0 {
		return Sailing{}
	}
	laden := route.LadenDistanceNM / vessel.LadenSpeedKnots
	ballast := route.BallastDistanceNM / vessel.BallastSpeedKnots
	return Sailing{
		LadenHours:   laden,
		BallastHours: ballast,
		Hours:        laden + ballast,
	}
}

// ComputeConsumption applies the consumption rate(s) to sailing and port time.
// The single-rate form uses the same rate for sailing hours and port days.
func ComputeConsumption(s Sailing, portDays float64, rates model.ConsumptionRates) float64 {
	if rates.Split {
		return s.LadenHours*rates.Laden + s.BallastHours*rates.Ballast + portDays*rates.Port
	}
	return s.Hours*rates.Rate + portDays*rates.Rate
}

// VoyageDays is sailing time in days plus the days spent in port.
func VoyageDays(s Sailing, portDays float64) float64 {
	return s.Hours/hoursPerDay + portDays
}
