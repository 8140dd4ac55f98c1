package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a farm",
	Long:  `Flip a farm's enabled flag. Disabled farms are skipped by raids and waves but stay in the list.`,
	Args:  cobra.ExactArgs(1),
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

		if !store.ToggleFarm(id) {
			fatal(fmt.Errorf("farm #%d not found in list %s", id, store.ActiveList()))
		}

		farm, _ := store.GetFarm(id)
		state := "disabled"
		if farm != nil && farm.Enabled {
			state = "enabled"
		}
		fmt.Printf("Farm #%d %s\n", id, state)
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
