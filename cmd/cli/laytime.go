package main

import (
	"io"
	"path/filepath"
	"strings"

	"laytime-calculator/internal/config"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/laytime"
	"laytime-calculator/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	laytimeConfig string
	laytimePolicy string
	laytimeCSV    string
	laytimeXLSX   string
)

var laytimeCmd = &cobra.Command{
	Use:   "laytime",
	Short: "Compute port time and demurrage from POL/POD logs",
	Example: `  laytime laytime --config examples/jobs/laytime_interval.yaml
  laytime laytime --config examples/jobs/laytime_span.yaml --csv results/ledger.csv --xlsx results/report.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLaytimeConfig(laytimeConfig)
		if err != nil {
			return err
		}
		if laytimePolicy != "" {
			cfg.Policy = laytimePolicy
		}
		job, err := cfg.ToModel()
		if err != nil {
			return err
		}

		res, err := laytime.New().Compute(job.POL, job.POD, job.Terms, job.Policy)
		if err != nil {
			return err
		}
		zap.S().Debugw("laytime computed", "policy", job.Policy, "rows", len(res.Ledger))

		out := cmd.OutOrStdout()
		printLines(out, "Informasi Umum", report.InfoLines(job.Meta, res))
		printPortActivity(out, res)
		printLines(out, "Perhitungan Akhir ("+string(res.Policy)+")", report.LaytimeSummary(res))

		if laytimeCSV != "" {
			if err := laytime.WriteLedgerCSVFile(laytimeCSV, res.Ledger); err != nil {
				return err
			}
			cmd.Printf("Wrote %d ledger rows to %s\n", len(res.Ledger), laytimeCSV)
		}
		if laytimeXLSX != "" {
			err := writeFile(laytimeXLSX, func(w io.Writer) error {
				return report.WriteLaytimeWorkbook(w, job.Meta, res)
			})
			if err != nil {
				return err
			}
			cmd.Printf("Wrote workbook to %s\n", laytimeXLSX)
		}
		return nil
	},
}

func init() {
	laytimeCmd.Flags().StringVarP(&laytimeConfig, "config", "c", "", "Path to laytime job (YAML, or JSON in the API request shape)")
	laytimeCmd.Flags().StringVar(&laytimePolicy, "policy", "", "Override the job's duration policy (span, interval_sum)")
	laytimeCmd.Flags().StringVar(&laytimeCSV, "csv", "", "Optional path to write the ledger CSV")
	laytimeCmd.Flags().StringVar(&laytimeXLSX, "xlsx", "", "Optional path to write the XLSX report")
	_ = laytimeCmd.MarkFlagRequired("config")
}

func loadLaytimeConfig(path string) (*config.LaytimeConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return data.LoadLaytimeJSON(path)
	}
	return config.LoadLaytime(path)
}
