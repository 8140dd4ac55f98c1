package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabe/raider/internal/storage"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage farm lists",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		active := store.ActiveList()
		for _, name := range store.ListNames() {
			l, _ := store.List(name)
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Printf("%s %s (%d farms)\n", marker, name, len(l.Farms))
		}
	},
}

var listsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new farm list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		troopsSpec, _ := cmd.Flags().GetString("troops")
		var troops map[string]int
		if troopsSpec != "" {
			var err error
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

		if err := store.CreateList(args[0], troops); err != nil {
			fatal(err)
		}
		fmt.Printf("Created list %s\n", args[0])
	},
}

var listsSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Make a list the active list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		if err := store.SwitchActiveList(args[0]); err != nil {
			fatal(err)
		}
		fmt.Printf("Active list: %s\n", args[0])
	},
}

var listsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a list and all of its farms",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		store := openStore(cfg)
		defer store.Close()

		if err := store.DeleteList(args[0]); err != nil {
			if errors.Is(err, storage.ErrActiveList) {
				fatal(fmt.Errorf("%w (switch to another list first)", err))
			}
			fatal(err)
		}
		fmt.Printf("Deleted list %s\n", args[0])
	},
}

var listsMoveCmd = &cobra.Command{
	Use:   "move <id> <to-list>",
	Short: "Move a farm from the active list to another list",
	Long:  `Move a farm to another list. The farm gets a fresh id from the destination list's counter.`,
	Args:  cobra.ExactArgs(2),
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

		newID, err := store.MoveFarmToList(id, store.ActiveList(), args[1])
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Moved farm #%d to %s as #%d\n", id, args[1], newID)
	},
}

func init() {
	listsCreateCmd.Flags().StringP("troops", "t", "", "Default troop composition for the list")

	listsCmd.AddCommand(listsCreateCmd)
	listsCmd.AddCommand(listsSwitchCmd)
	listsCmd.AddCommand(listsDeleteCmd)
	listsCmd.AddCommand(listsMoveCmd)

	rootCmd.AddCommand(listsCmd)
}
