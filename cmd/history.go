package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the scan history size",
	Run: func(cmd *cobra.Command, args []string) {
		history := openHistory()
		defer history.Close()

		fmt.Printf("%d coordinates in scan history\n", history.Count())
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the scan history so tiles can be re-scanned",
	Run: func(cmd *cobra.Command, args []string) {
		history := openHistory()
		defer history.Close()

		n := history.Clear()
		fmt.Printf("Cleared %d entries from scan history\n", n)
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
