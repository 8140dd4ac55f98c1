package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a farm from the active list",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal(fmt.Errorf("invalid farm id %q", args[0]))
		}

		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		if !store.RemoveFarm(id) {
			fatal(fmt.Errorf("farm #%d not found in list %s", id, store.ActiveList()))
		}
		fmt.Printf("Removed farm #%d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
