package main

import (
	"flag"
	"fmt"
	"time"

	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/report"
	"laytime-calculator/internal/voyage"
)

// Demo:
// - Build small POL/POD logs and run them through both duration policies
// - Prorate owner costs and depreciation for a 10 day voyage
// - Price freight at a 20% margin to show how the scenario table is built
func main() {
	outCSV := flag.String("out", "", "Optional path to write the laytime ledger CSV (e.g. results/ledger.csv)")
	flag.Parse()

	day := model.NewDate(2025, time.October, 20)
	engine := laytime.New()

	// 1. span policy, POD empty
	pol := model.PortLog{Events: []model.VoyageEvent{
		{Date: day, Time: model.NewClock(8, 0), Note: "Arrived"},
		{Date: day, Time: model.NewClock(14, 30), Note: "Completed loading"},
	}}
	terms := model.FreeTimeTerms{FreeTimeDays: 1, RatePerDay: 30_000_000}
	res, err := engine.Compute(pol, model.PortLog{}, terms, laytime.PolicySpan)
	if err != nil {
		panic(err)
	}
	fmt.Println("1. span policy")
	for _, l := range report.LaytimeSummary(res) {
		fmt.Printf("   %-28s %s\n", l.Label, l.Value)
	}

	// 2. interval policy with a midnight wrap
	rows := model.PortLog{Rows: []model.IntervalRow{
		{Date: day, From: model.NewClock(9, 0), To: model.NewClock(17, 0), Note: "Loading"},
		{Date: day, From: model.NewClock(20, 0), To: model.NewClock(5, 0), Note: "Loading (night)"},
	}}
	res, err = engine.Compute(rows, model.PortLog{}, terms, laytime.PolicyIntervalSum)
	if err != nil {
		panic(err)
	}
	fmt.Println("\n2. interval_sum policy")
	for _, r := range res.Ledger {
		fmt.Printf("   %s %s-%s %-16s %5.2fh  cum=%5.2fh\n", r.Date, r.From, r.To, r.Note, r.Hours, r.CumHours)
	}
	fmt.Printf("   POL total %s\n", report.FormatDuration(res.PolHours))

	// 3. and 4. owner cost prorating
	fmt.Println("\n3. owner costs over 10 voyage days")
	fmt.Printf("   %-28s %s\n", voyage.LabelAngsuran, report.FormatRupiah(voyage.ProrateMonthly(750_000_000, 10)))
	fmt.Printf("   %-28s %s\n", voyage.LabelDepreciation, report.FormatRupiah(voyage.Depreciation(45_000_000_000, 10)))

	// 5. freight at 20% over cost
	const costPerTon, cargo = 100_000.0, 7_500.0
	fmt.Println("\n5. profit scenarios")
	for _, s := range report.ScenarioRows(voyage.ProfitScenarios(costPerTon, cargo, costPerTon*cargo)) {
		fmt.Printf("   %-4s freight=%-14s revenue=%-18s tax=%-16s net=%s\n", s.Profit, s.Freight, s.Revenue, s.Tax, s.NetProfit)
	}

	if *outCSV != "" {
		if err := laytime.WriteLedgerCSVFile(*outCSV, res.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
