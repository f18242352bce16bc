package voyage

import "laytime-calculator/internal/model"

func ownerVessel() model.VesselParams {
	return model.VesselParams{
		Name:              "TB Sinar 01 / BG Sinar 3001",
		LadenSpeedKnots:   4,
		BallastSpeedKnots: 5,
		Consumption:       model.ConsumptionRates{Rate: 100},
		Costs: model.OwnerCosts{
			LoanInstallment: 750_000_000,
			Crew:            90_000_000,
			Insurance:       30_000_000,
			Docking:         60_000_000,
			Maintenance:     45_000_000,
			Certification:   6_000_000,
			PurchasePrice:   45_000_000_000,
		},
	}
}

func charterVessel() model.VesselParams {
	v := ownerVessel()
	v.Name = "TB Charter 7"
	v.Costs = model.CharterCosts{Hire: 600_000_000}
	return v
}

// 400/4 + 500/5 = 200 sailing hours; 200/24 + 1.6667 = 10 voyage days.
func route() model.RouteParams {
	return model.RouteParams{
		LadenDistanceNM:   400,
		BallastDistanceNM: 500,
		PortDays:          10 - 200.0/24,
		BunkerPrice:       15_000,
		FreshWaterPrice:   50_000,
		PortCostPerCall:   25_000_000,
		PremiumPerMile:    10_000,
		AssistTug:         12_000_000,
		OtherCost:         5_000_000,
	}
}
