package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var troopsCmd = &cobra.Command{
	Use:   "troops [id] <composition>",
	Short: "Set a farm's troops, or the list default",
	Long: `Set the troop composition for one farm, e.g.:

  raider troops 3 t1=20,t4=2

or the active list's default composition for newly added farms:

  raider troops --default t1=10`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		useDefault, _ := cmd.Flags().GetBool("default")

		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		if useDefault {
			if len(args) != 1 {
				fatal(fmt.Errorf("usage: raider troops --default <composition>"))
			}
			troops, err := parseTroops(args[0])
			if err != nil {
				fatal(err)
			}
			store.SetDefaultTroops(troops)
			fmt.Printf("Default troops for %s set\n", store.ActiveList())
			return
		}

		if len(args) != 2 {
			fatal(fmt.Errorf("usage: raider troops <id> <composition>"))
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fatal(fmt.Errorf("invalid farm id %q", args[0]))
		}
		troops, err := parseTroops(args[1])
		if err != nil {
			fatal(err)
		}

		if !store.UpdateFarmTroops(id, troops) {
			fatal(fmt.Errorf("farm #%d not found in list %s", id, store.ActiveList()))
		}
		fmt.Printf("Troops for farm #%d updated\n", id)
	},
}

func init() {
	troopsCmd.Flags().Bool("default", false, "Set the active list's default composition")

	rootCmd.AddCommand(troopsCmd)
}
