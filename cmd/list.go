package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabe/raider/internal/display"
)

var listCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "Show the active farm list",
	Long:  `Show the active list as a table, every list with --all, or one farm's details by id.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showAll, _ := cmd.Flags().GetBool("all")

		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fatal(fmt.Errorf("invalid farm id %q", args[0]))
			}
			farm, ok := store.GetFarm(id)
			if !ok {
				fatal(fmt.Errorf("farm #%d not found in list %s", id, store.ActiveList()))
			}
			display.WriteFarmDetails(os.Stdout, store.Tribe(), farm)
			return
		}

		if showAll {
			for _, name := range store.ListNames() {
				l, _ := store.List(name)
				display.WriteFarmTable(os.Stdout, name, l.Farms)
				fmt.Println()
			}
			return
		}

		display.WriteFarmTable(os.Stdout, store.ActiveList(), store.Farms())
	},
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Show every list")

	rootCmd.AddCommand(listCmd)
}
