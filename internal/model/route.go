package model

// RouteParams describes one round voyage and the prices that apply to it.
// Units:
// - distances: nautical miles
// - PortDays: days spent in port over the voyage
// - prices and costs: Rp (BunkerPrice per volume unit, FreshWaterPrice per ton)
type RouteParams struct {
	LadenDistanceNM   float64
	BallastDistanceNM float64
	PortDays          float64
	BunkerPrice       float64
	FreshWaterPrice   float64
	PortCostPerCall   float64
	PremiumPerMile    float64
	AssistTug         float64
	OtherCost         float64
}

func (r RouteParams) TotalDistanceNM() float64 {
	return r.LadenDistanceNM + r.BallastDistanceNM
}

func (r RouteParams) Validate() error {
	checks := []struct {
		field string
		v     float64
	}{
		{"laden_distance_nm", r.LadenDistanceNM},
		{"ballast_distance_nm", r.BallastDistanceNM},
		{"port_days", r.PortDays},
		{"bunker_price", r.BunkerPrice},
		{"fresh_water_price", r.FreshWaterPrice},
		{"port_cost_per_call", r.PortCostPerCall},
		{"premium_per_mile", r.PremiumPerMile},
		{"assist_tug", r.AssistTug},
		{"other_cost", r.OtherCost},
	}
	for _, c := range checks {
		if err := requireNonNegative(c.field, c.v); err != nil {
			return err
		}
	}
	return nil
}

// FreeTimeTerms are the contractual laytime allowance and the penalty rate
// once it is exhausted.
type FreeTimeTerms struct {
	FreeTimeDays float64
	RatePerDay   float64 // Rp per day
}

func (t FreeTimeTerms) Validate() error {
	if err := requireNonNegative("free_time_days", t.FreeTimeDays); err != nil {
		return err
	}
	return requireNonNegative("rate_per_day", t.RatePerDay)
}

// ValidateCargo rejects a negative cargo quantity. Zero is allowed.
func ValidateCargo(tons float64) error {
	return requireNonNegative("cargo_tons", tons)
}
