package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/log"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "neuroterm",
	Short: "Terminal BCI demo monitor",
	Long: `neuroterm synthesizes multi-band EEG signal data and shows it on a
terminal dashboard: waveform, frequency spectrum, band powers, mental
command, and mocked health predictions.

No hardware is involved: the signal is generated from a scenario
schedule, replayed from a session CSV, or adapted from an external
process's text output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(flagLogLevel)
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
