package voyage

import (
	"fmt"

	"laytime-calculator/internal/model"
)

const (
	hoursPerDay = 24.0

	// DaysPerMonth converts monthly amounts to a daily rate.
	DaysPerMonth = 30.0
	// DepreciationYears is the economic life used to amortize the purchase price.
	DepreciationYears = 15.0
	// FreshWaterTonsPerDay is the daily fresh water allowance.
	FreshWaterTonsPerDay = 2.0
	// PortCallsPerVoyage counts one call at each end.
	PortCallsPerVoyage = 2.0
)

// Cost line labels. Keep these stable; they key the breakdown map and CSV.
const (
	LabelBunker        = "Bunker"
	LabelFreshWater    = "Fresh Water"
	LabelPortCost      = "Port Cost"
	LabelPremium       = "Premium"
	LabelAssistTug     = "Assist Tug"
	LabelAngsuran      = "Angsuran"
	LabelCrew          = "Crew"
	LabelInsurance     = "Asuransi"
	LabelDocking       = "Docking"
	LabelMaintenance   = "Perawatan"
	LabelCertification = "Sertifikat"
	LabelDepreciation  = "Depresiasi"
	LabelCharterHire   = "Charter Hire"
	LabelOther         = "Other"
)

// CostLine is one labelled amount in Rp.
type CostLine struct {
	Label  string
	Amount float64
	// General lines apply regardless of the cost mode.
	General bool
}

// Breakdown keeps cost lines in report order.
type Breakdown []CostLine

func (b Breakdown) Total() float64 {
	sum := 0.0
	for _, l := range b {
		sum += l.Amount
	}
	return sum
}

func (b Breakdown) Map() map[string]float64 {
	out := make(map[string]float64, len(b))
	for _, l := range b {
		out[l.Label] += l.Amount
	}
	return out
}

// Amount is the sum of the lines with the given label, 0 when absent.
func (b Breakdown) Amount(label string) float64 {
	return b.Map()[label]
}

// ProrateMonthly converts a monthly amount to the cost of voyageDays.
func ProrateMonthly(monthly, voyageDays float64) float64 {
	return (monthly / DaysPerMonth) * voyageDays
}

// Depreciation amortizes the purchase price over DepreciationYears and
// prorates the resulting monthly amount like any other monthly item.
func Depreciation(purchasePrice, voyageDays float64) float64 {
	return (((purchasePrice / DepreciationYears) / 12) / DaysPerMonth) * voyageDays
}

// ComputeCost returns the general and mode-specific cost lines of a voyage.
func ComputeCost(vessel model.VesselParams, route model.RouteParams, voyageDays, consumption float64) (Breakdown, float64, error) {
	b := Breakdown{
		{Label: LabelBunker, Amount: consumption * route.BunkerPrice, General: true},
		{Label: LabelFreshWater, Amount: voyageDays * FreshWaterTonsPerDay * route.FreshWaterPrice, General: true},
		{Label: LabelPortCost, Amount: route.PortCostPerCall * PortCallsPerVoyage, General: true},
		{Label: LabelPremium, Amount: route.PremiumPerMile * route.TotalDistanceNM(), General: true},
		{Label: LabelAssistTug, Amount: route.AssistTug, General: true},
	}

	switch c := vessel.Costs.(type) {
	case model.OwnerCosts:
		b = append(b,
			CostLine{Label: LabelAngsuran, Amount: ProrateMonthly(c.LoanInstallment, voyageDays)},
			CostLine{Label: LabelCrew, Amount: ProrateMonthly(c.Crew, voyageDays)},
			CostLine{Label: LabelInsurance, Amount: ProrateMonthly(c.Insurance, voyageDays)},
			CostLine{Label: LabelDocking, Amount: ProrateMonthly(c.Docking, voyageDays)},
			CostLine{Label: LabelMaintenance, Amount: ProrateMonthly(c.Maintenance, voyageDays)},
			CostLine{Label: LabelCertification, Amount: ProrateMonthly(c.Certification, voyageDays)},
			CostLine{Label: LabelDepreciation, Amount: Depreciation(c.PurchasePrice, voyageDays)},
		)
	case model.CharterCosts:
		b = append(b,
			CostLine{Label: LabelCharterHire, Amount: ProrateMonthly(c.Hire, voyageDays)},
			CostLine{Label: LabelOther, Amount: route.OtherCost},
		)
	default:
		return nil, 0, &model.InvalidInputError{Field: "costs", Reason: fmt.Sprintf("unsupported cost basis %T", vessel.Costs)}
	}

	return b, b.Total(), nil
}
