package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/app"
	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/feed"
	"github.com/brainviz/neuroterm/internal/log"
)

var (
	flagSpeed float64
	flagLoop  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file.csv>",
	Short: "Dashboard over a recorded session file",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().Float64Var(&flagSpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&flagLoop, "loop", false, "Loop the session when it ends")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	records, err := dataset.LoadFile(args[0])
	if err != nil {
		return err
	}
	log.Info("session loaded", "file", args[0], "records", len(records))

	source, err := feed.NewReplayFeed(records, flagSpeed, flagLoop)
	if err != nil {
		return err
	}

	model := app.New(source, app.Options{
		FeedName: "REPLAY",
		Rate:     config.SamplingRate,
	})
	return runDashboard(model)
}
