package model

// CostMode tells whether the vessel's fixed costs come from ownership or a
// charter. Keep these values stable; they appear in config files and CSV output.
type CostMode string

const (
	CostModeOwner   CostMode = "owner"
	CostModeCharter CostMode = "charter"
)

// CostBasis is the vessel's fixed-cost structure. It has exactly two
// implementations, OwnerCosts and CharterCosts.
type CostBasis interface {
	Mode() CostMode
	validate() error
	isCostBasis()
}

// OwnerCosts are monthly line items of an owned vessel, plus the purchase
// price that is depreciated over the vessel's economic life.
// Units: Rp per month, PurchasePrice in Rp.
type OwnerCosts struct {
	LoanInstallment float64
	Crew            float64
	Insurance       float64
	Docking         float64
	Maintenance     float64
	Certification   float64
	PurchasePrice   float64
}

func (OwnerCosts) Mode() CostMode { return CostModeOwner }
func (OwnerCosts) isCostBasis()   {}

func (o OwnerCosts) validate() error {
	checks := []struct {
		field string
		v     float64
	}{
		{"owner.loan_installment", o.LoanInstallment},
		{"owner.crew", o.Crew},
		{"owner.insurance", o.Insurance},
		{"owner.docking", o.Docking},
		{"owner.maintenance", o.Maintenance},
		{"owner.certification", o.Certification},
		{"owner.purchase_price", o.PurchasePrice},
	}
	for _, c := range checks {
		if err := requireNonNegative(c.field, c.v); err != nil {
			return err
		}
	}
	return nil
}

// CharterCosts is a chartered vessel: a single monthly hire in Rp.
type CharterCosts struct {
	Hire float64
}

func (CharterCosts) Mode() CostMode { return CostModeCharter }
func (CharterCosts) isCostBasis()   {}

func (c CharterCosts) validate() error {
	return requireNonNegative("charter.hire", c.Hire)
}

// ConsumptionRates are fuel burn rates in volume per hour.
// With Split unset, Rate applies to sailing and port time alike. With Split
// set, Laden/Ballast/Port are used instead and Rate is ignored.
type ConsumptionRates struct {
	Rate    float64
	Split   bool
	Laden   float64
	Ballast float64
	Port    float64
}

// VesselParams defines the physical and economic parameters of a tug/barge set.
// Units:
// - speeds: knots
// - consumption: see ConsumptionRates
type VesselParams struct {
	Name              string
	LadenSpeedKnots   float64
	BallastSpeedKnots float64
	Consumption       ConsumptionRates
	Costs             CostBasis
}

// VesselProfile is a named vessel as the caller keeps it. The calculators
// only ever receive it by value.
type VesselProfile struct {
	ID     string
	Params VesselParams
}

func (v VesselParams) Mode() CostMode {
	if v.Costs == nil {
		return ""
	}
	return v.Costs.Mode()
}

func (v VesselParams) Validate() error {
	if err := requireNonNegative("laden_speed_knots", v.LadenSpeedKnots); err != nil {
		return err
	}
	if err := requireNonNegative("ballast_speed_knots", v.BallastSpeedKnots); err != nil {
		return err
	}
	c := v.Consumption
	if err := requireNonNegative("consumption.rate", c.Rate); err != nil {
		return err
	}
	if c.Split {
		if err := requireNonNegative("consumption.laden", c.Laden); err != nil {
			return err
		}
		if err := requireNonNegative("consumption.ballast", c.Ballast); err != nil {
			return err
		}
		if err := requireNonNegative("consumption.port", c.Port); err != nil {
			return err
		}
	}
	if v.Costs == nil {
		return invalid("costs", "must be either owner or charter")
	}
	return v.Costs.validate()
}
