package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/config"
	"github.com/brainviz/neuroterm/internal/dataset"
	"github.com/brainviz/neuroterm/internal/eeg"
	"github.com/brainviz/neuroterm/internal/feed"
	"github.com/brainviz/neuroterm/internal/log"
)

var (
	flagOutput string
	flagSplit  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic session CSV",
	Long: `generate synthesizes the demo session and writes it as CSV. With
--split it instead writes the three specialized single-prediction
datasets (visual, motor, attention), each over its own scenario sweep.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "sample_eeg_data.csv", "Output file (or directory with --split)")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Random seed")
	generateCmd.Flags().Float64Var(&flagNoise, "noise", config.NoiseSigma, "Gaussian noise std dev (uV)")
	generateCmd.Flags().StringVar(&flagSchedule, "schedule", "", "Scenario schedule YAML (default: built-in demo session)")
	generateCmd.Flags().BoolVar(&flagSplit, "split", false, "Write the three specialized datasets instead")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if flagSplit {
		dir := "."
		if cmd.Flags().Changed("output") {
			dir = flagOutput
		}
		return generateSplit(dir)
	}

	schedule, err := loadScheduleFlag()
	if err != nil {
		return err
	}
	return writeSession(flagOutput, schedule, dataset.VariantFull, true)
}

func generateSplit(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	sets := []struct {
		name     string
		schedule *eeg.Schedule
		variant  dataset.Variant
	}{
		{"visual_impairment_data.csv", eeg.VisualSchedule(), dataset.VariantVisual},
		{"motor_impairment_data.csv", eeg.MotorSchedule(), dataset.VariantMotor},
		{"attention_deficit_data.csv", eeg.AttentionSchedule(), dataset.VariantAttention},
	}
	for _, s := range sets {
		// The specialized sweeps carry no blink artifacts.
		if err := writeSession(filepath.Join(dir, s.name), s.schedule, s.variant, false); err != nil {
			return err
		}
	}
	return nil
}

func writeSession(path string, schedule *eeg.Schedule, variant dataset.Variant, blinks bool) error {
	synth, err := eeg.NewSynthesizer(schedule, eeg.SynthConfig{
		SamplingRate: config.SamplingRate,
		NoiseSigma:   flagNoise,
		Seed:         flagSeed,
		Blinks:       blinks,
	})
	if err != nil {
		return err
	}

	records, err := feed.Session(synth)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := dataset.NewWriter(f, variant)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Info("session written", "file", path, "variant", variant.String(),
		"records", len(records), "rate", config.SamplingRate)
	return nil
}
