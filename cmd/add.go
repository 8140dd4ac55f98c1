package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <x> <y>",
	Short: "Add a farm target",
	Long:  `Add a farm target to the active list (or --list). Without --troops the list's default composition is used.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		x, err := strconv.Atoi(args[1])
		if err != nil {
			fatal(fmt.Errorf("invalid x coordinate %q", args[1]))
		}
		y, err := strconv.Atoi(args[2])
		if err != nil {
			fatal(fmt.Errorf("invalid y coordinate %q", args[2]))
		}

		troopsSpec, _ := cmd.Flags().GetString("troops")
		notes, _ := cmd.Flags().GetString("notes")
		listName, _ := cmd.Flags().GetString("list")

		var troops map[string]int
		if troopsSpec != "" {
			troops, err = parseTroops(troopsSpec)
			if err != nil {
				fatal(err)
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		var id int
		if listName == "" {
			listName = store.ActiveList()
			id, err = store.AddFarm(name, x, y, troops, notes)
		} else {
			id, err = store.AddFarmToList(listName, name, x, y, troops, notes)
		}
		if err != nil {
			fatal(err)
		}

		fmt.Printf("Added farm #%d to %s: %s (%d|%d)\n", id, listName, name, x, y)
	},
}

func init() {
	addCmd.Flags().StringP("troops", "t", "", "Troop composition, e.g. t1=10,t4=2")
	addCmd.Flags().StringP("notes", "n", "", "Free-form notes")
	addCmd.Flags().StringP("list", "l", "", "Target list (default: active list)")

	rootCmd.AddCommand(addCmd)
}
