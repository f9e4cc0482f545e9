package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brainviz/neuroterm/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", config.AppName, config.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
