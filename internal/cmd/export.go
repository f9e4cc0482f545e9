package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/export"
	"github.com/brainviz/neuroterm/internal/log"
)

var exportCmd = &cobra.Command{
	Use:   "export <in.csv> <out.edf>",
	Short: "Convert a session CSV to EDF",
	Long: `export converts a recorded session into EDF (European Data Format)
so it can be opened in standard EEG/polysomnography tools.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	records, err := dataset.LoadFile(args[0])
	if err != nil {
		return err
	}

	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteEDF(f, records, config.SamplingRate, time.Now()); err != nil {
		return err
	}

	log.Info("edf written", "file", args[1], "records", len(records))
	return nil
}
