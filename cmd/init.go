package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gabe/raider/internal/config"
	"github.com/gabe/raider/internal/models"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long:  `Create the data directory with a default config.toml, setting the tribe, server speed, and home village coordinates.`,
	Run: func(cmd *cobra.Command, args []string) {
		tribe, _ := cmd.Flags().GetString("tribe")
		speed, _ := cmd.Flags().GetInt("speed")
		home, _ := cmd.Flags().GetString("home")

		if !models.Tribe(tribe).Valid() {
			fatal(fmt.Errorf("unknown tribe %q (romans, gauls, teutons)", tribe))
		}
		homeX, homeY := 0, 0
		if home != "" {
			var err error
			homeX, homeY, err = parseCoords(home)
			if err != nil {
				fatal(err)
			}
		}

		path, err := configPath()
		if err != nil {
			fatal(err)
		}

		cfg := config.DefaultConfig()
		cfg.Server.Tribe = tribe
		cfg.Server.ServerSpeed = speed
		cfg.Server.HomeX = homeX
		cfg.Server.HomeY = homeY

		if _, err := loadConfig(); err == nil {
			// Config exists; overwrite only the server section.
			existing, err := config.Load(path)
			if err == nil {
				existing.Server = cfg.Server
				cfg = existing
			}
		}

		if err := config.Save(path, cfg); err != nil {
			fatal(err)
		}

		store := openStore(cfg)
		if err := store.Close(); err != nil {
			fatal(err)
		}

		success := color.New(color.FgGreen, color.Bold)
		success.Printf("✓ Initialized %s\n", path)
		fmt.Printf("  tribe: %s | server speed: %dx | home: (%d|%d)\n", tribe, speed, homeX, homeY)
	},
}

func init() {
	initCmd.Flags().String("tribe", "romans", "Tribe (romans, gauls, teutons)")
	initCmd.Flags().Int("speed", 1, "Server speed multiplier")
	initCmd.Flags().String("home", "", "Home village coordinates as x,y")

	rootCmd.AddCommand(initCmd)
}
