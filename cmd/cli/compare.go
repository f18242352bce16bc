package main

import (
	"fmt"
	"strings"

	"laytime-calculator/internal/config"
	"laytime-calculator/internal/data"
	"laytime-calculator/internal/model"
	"laytime-calculator/internal/report"
	"laytime-calculator/internal/voyage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	compareConfig  string
	compareVessels string
)

var compareCmd = &cobra.Command{
	Use:     "compare",
	Short:   "Rank vessel profiles by cost per ton on one route",
	Example: `  laytime compare --config examples/jobs/voyage_owner.yaml --vessels tb_sinar_01,tb_charter_07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadUnchecked(compareConfig)
		if err != nil {
			return err
		}
		route := cfg.Route.ToModel()
		if err := route.Validate(); err != nil {
			return err
		}
		if err := model.ValidateCargo(cfg.CargoTons); err != nil {
			return err
		}

		store := data.NewVesselStore(vesselDir)
		var profiles []model.VesselProfile
		for _, id := range splitList(compareVessels) {
			p, err := store.Profile(id)
			if err != nil {
				zap.S().Warnw("skipping vessel", "id", id, "error", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", id, err)
				continue
			}
			profiles = append(profiles, p)
		}

		ranked := voyage.NewEstimator().Compare(profiles, route, cfg.CargoTons)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s %-18s %-8s %-10s %-22s %-22s %-18s\n", "rank", "vessel", "mode", "days", "bunker", "total", "per ton")
		for i, r := range ranked {
			if r.Err != nil {
				fmt.Fprintf(out, "%-4s %-18s %v\n", "-", r.ProfileID, r.Err)
				continue
			}
			fmt.Fprintf(out, "%-4d %-18s %-8s %-10.2f %-22s %-22s %-18s\n",
				i+1,
				r.ProfileID,
				r.Result.Mode,
				r.Result.VoyageDays,
				report.FormatRupiah(r.Result.Breakdown.Amount(voyage.LabelBunker)),
				report.FormatRupiah(r.Result.TotalCost),
				report.FormatRupiah(r.Result.CostPerTon),
			)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareConfig, "config", "c", "", "Voyage job YAML providing route and cargo")
	compareCmd.Flags().StringVar(&compareVessels, "vessels", "", "Comma-separated vessel profile ids")
	_ = compareCmd.MarkFlagRequired("config")
	_ = compareCmd.MarkFlagRequired("vessels")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
