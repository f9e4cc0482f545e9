package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/app"
	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/feed"
)

var watchCmd = &cobra.Command{
	Use:   "watch -- <command> [args...]",
	Short: "Dashboard over an external BCI process's text output",
	Long: `watch launches the given command and adapts its output lines into
samples. Recognized patterns: "Cursor Position: (x, y)", LED ON/OFF,
BEEP/BUZZER, and "Detected: <COMMAND>".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	source := feed.NewProcessFeed(args[0], args[1:]...)
	model := app.New(source, app.Options{
		FeedName: "EXTERN",
		Rate:     config.SamplingRate,
	})
	return runDashboard(model)
}
