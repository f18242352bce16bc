package voyage

import "laytime-calculator/internal/model"

// Result is the voyage cost estimate for one vessel on one route.
type Result struct {
	Vessel    string
	Mode      model.CostMode
	CargoTons float64

	Sailing          Sailing
	SailingHours     float64
	VoyageDays       float64
	TotalConsumption float64

	Breakdown  Breakdown
	TotalCost  float64
	CostPerTon float64

	Scenarios []ProfitScenario
}


type Estimator struct{}

func NewEstimator() *Estimator { return &Estimator{} }

// Estimate computes sailing time, consumption, cost, cost per ton and the
// profit scenarios. The cost mode follows the vessel's cost basis.
func (e *Estimator) Estimate(vessel model.VesselParams, route model.RouteParams, cargoTons float64) (*Result, error) {
	if err := vessel.Validate(); err != nil {
		return nil, err
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	if err := model.ValidateCargo(cargoTons); err != nil {
		return nil, err
	}

	sailing := ComputeSailing(route, vessel)
	days := VoyageDays(sailing, route.PortDays)
	consumption := ComputeConsumption(sailing, route.PortDays, vessel.Consumption)

	breakdown, total, err := ComputeCost(vessel, route, days, consumption)
	if err != nil {
		return nil, err
	}

	costPerTon := 0.0
	if cargoTons > 0 {
		costPerTon = total / cargoTons
	}

	return &Result{
		Vessel:           vessel.Name,
		Mode:             vessel.Mode(),
		CargoTons:        cargoTons,
		Sailing:          sailing,
		SailingHours:     sailing.Hours,
		VoyageDays:       days,
		TotalConsumption: consumption,
		Breakdown:        breakdown,
		TotalCost:        total,
		CostPerTon:       costPerTon,
		Scenarios:        ProfitScenarios(costPerTon, cargoTons, total),
	}, nil
}
