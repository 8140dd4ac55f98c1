package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "raider",
	Short: "Raider - farm list scheduler",
	Long:  `Manages farm lists for a Travian-style world: targets, troop compositions, travel-time scheduling, and map scanning.`,
}

var flagDir string

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "data directory (default ~/.raider)")
}
