package report

import (
	"fmt"

	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/voyage"
)

// Line is one label/value pair of a rendered summary.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// InfoLines is the general information block of a laytime report.
func InfoLines(meta Meta, r *laytime.Result) []Line {
	return []Line{
		{"Tug Boat", meta.TugBoat},
		{"Barge", meta.Barge},
		{"Port of Loading (POL)", meta.POL},
		{"Port of Discharge (POD)", meta.POD},
		{"Shipper", meta.Shipper},
		{"Laycan", meta.Laycan},
		{"Prorata (Free Time)", fmt.Sprintf("%.2f Hari", r.Terms.FreeTimeDays)},
		{"Rate Demurrage", FormatRupiah(r.Terms.RatePerDay) + " / Hari"},
	}
}

// LaytimeSummary is the final calculation block of a laytime report.
func LaytimeSummary(r *laytime.Result) []Line {
	return []Line{
		{"Durasi POL", FormatDuration(r.PolHours)},
		{"Durasi POD", FormatDuration(r.PodHours)},
		{"Total Durasi (POL+POD)", FormatDuration(r.TotalHours)},
		{"Free Time (Prorata)", FormatDays(r.Terms.FreeTimeDays)},
		{"Detention / Demurrage Days", FormatDays(r.DetentionDays)},
		{"Total Biaya Demurrage", FormatRupiah(r.TotalCost)},
	}
}

// VoyageSummary lists the headline figures and every cost line.
func VoyageSummary(r *voyage.Result) []Line {
	lines := []Line{
		{"Vessel", r.Vessel},
		{"Mode", string(r.Mode)},
		{"Sailing Time", FormatDuration(r.SailingHours)},
		{"Voyage Days", FormatDays(r.VoyageDays)},
		{"Total Consumption", fmt.Sprintf("%.2f", r.TotalConsumption)},
		{"Cargo", fmt.Sprintf("%.2f MT", r.CargoTons)},
	}
	for _, l := range r.Breakdown {
		lines = append(lines, Line{l.Label, FormatRupiah(l.Amount)})
	}
	return append(lines,
		Line{"Total Cost", FormatRupiah(r.TotalCost)},
		Line{"Cost per Ton", FormatRupiah(r.CostPerTon)},
	)
}

// ScenarioRow is a profit scenario formatted for display.
type ScenarioRow struct {
	Profit    string `json:"profit"`
	Freight   string `json:"freight_per_ton"`
	Revenue   string `json:"revenue"`
	Tax       string `json:"tax"`
	NetProfit string `json:"net_profit"`
}

func ScenarioRows(scenarios []voyage.ProfitScenario) []ScenarioRow {
	out := make([]ScenarioRow, len(scenarios))
	for i, s := range scenarios {
		out[i] = ScenarioRow{
			Profit:    FormatPercent(s.ProfitPct),
			Freight:   FormatRupiah(s.FreightPerTon),
			Revenue:   FormatRupiah(s.Revenue),
			Tax:       FormatRupiah(s.Tax),
			NetProfit: FormatRupiah(s.NetProfit),
		}
	}
	return out
}
