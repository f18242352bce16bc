package main

import (
	"fmt"
	"io"
	"path/filepath"

	"laytime-calculator/internal/config"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/report"
	"laytime-calculator/internal/voyage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	voyageConfig  string
	voyageProfile bool
	voyageCSV     string
	voyageScenCSV string
	voyageXLSX    string
)

var voyageCmd = &cobra.Command{
	Use:   "voyage",
	Short: "Estimate voyage cost, cost per ton and freight scenarios",
	Example: `  laytime voyage --config examples/jobs/voyage_owner.yaml
  laytime voyage --config examples/jobs/voyage_owner.yaml --profile --csv results/breakdown.csv
  laytime voyage --config examples/jobs/voyage_charter.yaml --scenarios-csv results/scenarios.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg *config.VoyageConfig
			err error
		)
		if voyageProfile {
			store := data.NewVesselStore(vesselDir)
			cfg, err = config.LoadUncheckedWith(voyageConfig, func(ref string) (config.VesselConfig, error) {
				return store.Get(stripExt(ref))
			})
		} else {
			cfg, err = config.LoadUnchecked(voyageConfig)
		}
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		vessel, err := cfg.Vessel.ToModel()
		if err != nil {
			return err
		}

		res, err := voyage.NewEstimator().Estimate(vessel, cfg.Route.ToModel(), cfg.CargoTons)
		if err != nil {
			return err
		}
		zap.S().Debugw("voyage estimated", "vessel", res.Vessel, "mode", res.Mode)

		out := cmd.OutOrStdout()
		printLines(out, "Voyage Estimate", report.VoyageSummary(res))
		printScenarios(out, res.Scenarios)

		if voyageCSV != "" {
			err := writeFile(voyageCSV, func(w io.Writer) error {
				return voyage.WriteBreakdownCSV(w, res.Breakdown)
			})
			if err != nil {
				return err
			}
			cmd.Printf("Wrote cost breakdown to %s\n", voyageCSV)
		}
		if voyageScenCSV != "" {
			err := writeFile(voyageScenCSV, func(w io.Writer) error {
				return voyage.WriteScenariosCSV(w, res.Scenarios)
			})
			if err != nil {
				return err
			}
			cmd.Printf("Wrote %d freight scenarios to %s\n", len(res.Scenarios), voyageScenCSV)
		}
		if voyageXLSX != "" {
			err := writeFile(voyageXLSX, func(w io.Writer) error {
				return report.WriteVoyageWorkbook(w, cfg.Meta, res)
			})
			if err != nil {
				return err
			}
			cmd.Printf("Wrote workbook to %s\n", voyageXLSX)
		}
		return nil
	},
}

func init() {
	voyageCmd.Flags().StringVarP(&voyageConfig, "config", "c", "", "Path to voyage job YAML")
	voyageCmd.Flags().BoolVar(&voyageProfile, "profile", false, "Treat vessel_file as a profile id in --vessel-dir")
	voyageCmd.Flags().StringVar(&voyageCSV, "csv", "", "Optional path to write the cost breakdown CSV")
	voyageCmd.Flags().StringVar(&voyageScenCSV, "scenarios-csv", "", "Optional path to write the freight scenarios CSV")
	voyageCmd.Flags().StringVar(&voyageXLSX, "xlsx", "", "Optional path to write the XLSX report")
	_ = voyageCmd.MarkFlagRequired("config")
}

func printScenarios(w io.Writer, scenarios []voyage.ProfitScenario) {
	fmt.Fprintf(w, "%-8s %-20s %-22s %-20s %-22s\n", "profit", "freight/ton", "revenue", "tax", "net profit")
	for _, r := range report.ScenarioRows(scenarios) {
		fmt.Fprintf(w, "%-8s %-20s %-22s %-20s %-22s\n", r.Profit, r.Freight, r.Revenue, r.Tax, r.NetProfit)
	}
}

func stripExt(id string) string {
	return id[:len(id)-len(filepath.Ext(id))]
}
