package voyage

const (
	// WithholdingTaxRate is the 1.2% withholding applied to freight revenue.
	WithholdingTaxRate = 0.012

	ProfitStepPct = 5
	MaxProfitPct  = 50
)

// ProfitScenario is one row of the freight pricing table.
type ProfitScenario struct {
	ProfitPct     float64
	FreightPerTon float64
	Revenue       float64
	Tax           float64
	NetProfit     float64
}

// ProfitScenarios prices freight at 0%, 5%, ... 50% over cost per ton.
// It always returns 11 rows in ascending profit order.
func ProfitScenarios(costPerTon, cargoTons, totalCost float64) []ProfitScenario {
	out := make([]ProfitScenario, 0, MaxProfitPct/ProfitStepPct+1)
	for p := 0; p <= MaxProfitPct; p += ProfitStepPct {
		pct := float64(p)
		freight := costPerTon * (1 + pct/100)
		revenue := freight * cargoTons
		tax := revenue * WithholdingTaxRate
		out = append(out, ProfitScenario{
			ProfitPct:     pct,
			FreightPerTon: freight,
			Revenue:       revenue,
			Tax:           tax,
			NetProfit:     revenue - tax - totalCost,
		})
	}
	return out
}
