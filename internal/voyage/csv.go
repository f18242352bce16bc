package voyage

import (
	"encoding/csv"
	"io"
	"strconv"
)

func WriteBreakdownCSV(out io.Writer, b Breakdown) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"label", "group", "amount"}); err != nil {
		return err
	}
	for _, l := range b {
		group := "mode"
		if l.General {
			group = "general"
		}
		if err := w.Write([]string{l.Label, group, fmtFloat(l.Amount)}); err != nil {
			return err
		}
	}
	if err := w.Write([]string{"Total", "", fmtFloat(b.Total())}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func WriteScenariosCSV(out io.Writer, scenarios []ProfitScenario) error {
	w := csv.NewWriter(out)
	header := []string{"profit_pct", "freight_per_ton", "revenue", "tax", "net_profit"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range scenarios {
		row := []string{
			strconv.FormatFloat(s.ProfitPct, 'f', 0, 64),
			fmtFloat(s.FreightPerTon),
			fmtFloat(s.Revenue),
			fmtFloat(s.Tax),
			fmtFloat(s.NetProfit),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
