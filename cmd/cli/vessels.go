package main

import (
	"fmt"

	"laytime-calculator/internal/data"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var vesselsCmd = &cobra.Command{
	Use:   "vessels",
	Short: "Inspect vessel profiles",
}

var vesselsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vessel profiles in --vessel-dir",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := data.NewVesselStore(vesselDir).List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s %-24s %-8s %-8s %-8s\n", "id", "name", "mode", "laden", "ballast")
		for _, p := range profiles {
			fmt.Fprintf(out, "%-18s %-24s %-8s %-8.1f %-8.1f\n",
				p.ID, p.Vessel.Name, p.Vessel.Mode, p.Vessel.LadenSpeedKnots, p.Vessel.BallastSpeedKnots)
		}
		return nil
	},
}

var vesselsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one vessel profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := data.NewVesselStore(vesselDir).Get(stripExt(args[0]))
		if err != nil {
			return err
		}
		raw, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

func init() {
	vesselsCmd.AddCommand(vesselsListCmd)
	vesselsCmd.AddCommand(vesselsShowCmd)
}
