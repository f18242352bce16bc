package main

import (
	"os"

	"laytime-calculator/internal/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel  string
	vesselDir string
)

var rootCmd = &cobra.Command{
	Use:           "laytime",
	Short:         "Barge laytime, demurrage and voyage cost calculator",
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.InitLog(log.ParseLevel(logLevel))
		zap.ReplaceGlobals(logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.AddCommand(laytimeCmd)
	rootCmd.AddCommand(voyageCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(vesselsCmd)

	defaultDir := os.Getenv("VESSEL_DIR")
	if defaultDir == "" {
		defaultDir = "examples/vessels"
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&vesselDir, "vessel-dir", defaultDir, "Directory of vessel profile YAML files")
}
