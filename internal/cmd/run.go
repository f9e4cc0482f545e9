package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/app"
	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/feed"
)

var (
	flagSeed     int64
	flagNoise    float64
	flagSchedule string
	flagRecord   string
	flagNoBlinks bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Live dashboard over the synthetic signal generator",
	RunE:  runLive,
}

func init() {
	runCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Random seed (fixed seed reproduces the stream)")
	runCmd.Flags().Float64Var(&flagNoise, "noise", config.NoiseSigma, "Gaussian noise std dev (uV)")
	runCmd.Flags().StringVar(&flagSchedule, "schedule", "", "Scenario schedule YAML (default: built-in demo session)")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to this CSV file")
	runCmd.Flags().BoolVar(&flagNoBlinks, "no-blinks", false, "Disable blink artifact injection")
	rootCmd.AddCommand(runCmd)
}

func loadScheduleFlag() (*eeg.Schedule, error) {
	if flagSchedule == "" {
		return eeg.DefaultSchedule(), nil
	}
	return eeg.LoadSchedule(flagSchedule)
}

func runLive(cmd *cobra.Command, args []string) error {
	schedule, err := loadScheduleFlag()
	if err != nil {
		return err
	}

	synth, err := eeg.NewSynthesizer(schedule, eeg.SynthConfig{
		SamplingRate: config.SamplingRate,
		NoiseSigma:   flagNoise,
		Seed:         flagSeed,
		Blinks:       !flagNoBlinks,
	})
	if err != nil {
		return err
	}

	source := feed.NewSynthFeed(synth, config.SamplingRate)
	model := app.New(source, app.Options{
		FeedName:   "LIVE",
		Rate:       config.SamplingRate,
		RecordPath: flagRecord,
	})

	return runDashboard(model)
}

func runDashboard(model app.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	if err := model.StartFeed(p); err != nil {
		return err
	}

	_, err := p.Run()
	return err
}
