package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gabe/raider/internal/display"
	"github.com/gabe/raider/internal/models"
	"github.com/gabe/raider/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the map for farm targets",
	Long: `Walk the tiles around a center point ring by ring, classify each one,
and add tiles passing the filter to a farm list. Tiles already in any
list or in scan history are skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		log := newLogger(cfg)
		defer log.Sync()

		store := openStore(cfg)
		defer store.Close()
		history := openHistory()
		defer history.Close()

		filter := models.ScanFilter{
			Radius:                 cfg.Scan.Radius,
			MaxPopulation:          cfg.Scan.MaxPopulation,
			IncludeNatars:          cfg.Scan.IncludeNatars,
			IncludePlayerVillages:  cfg.Scan.IncludePlayerVillages,
			IncludeUnoccupiedOases: cfg.Scan.IncludeUnoccupiedOases,
			IncludeOccupiedOases:   cfg.Scan.IncludeOccupiedOases,
			ExcludeAlliances:       cfg.Scan.ExcludeAlliances,
			ExcludePlayers:         cfg.Scan.ExcludePlayers,
		}

		if v, _ := cmd.Flags().GetInt("radius"); v > 0 {
			filter.Radius = v
		}
		if cmd.Flags().Changed("max-pop") {
			filter.MaxPopulation, _ = cmd.Flags().GetInt("max-pop")
		}
		if cmd.Flags().Changed("no-natars") {
			filter.IncludeNatars = false
		}
		if cmd.Flags().Changed("no-villages") {
			filter.IncludePlayerVillages = false
		}
		if cmd.Flags().Changed("no-oases") {
			filter.IncludeUnoccupiedOases = false
			filter.IncludeOccupiedOases = false
		}

		centerX, centerY := store.Home()
		if center, _ := cmd.Flags().GetString("center"); center != "" {
			centerX, centerY, err = parseCoords(center)
			if err != nil {
				fatal(err)
			}
		}

		targetList, _ := cmd.Flags().GetString("list")
		if targetList == "" {
			targetList = store.ActiveList()
		}

		tiles, secs := scan.EstimateScanTime(filter.Radius)
		fmt.Printf("Scanning %d tiles around (%d|%d), radius %d (~%ds)\n",
			tiles, centerX, centerY, filter.Radius, secs)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scanner := scan.New(store, history, scan.NewDryRunClassifier(log), log)
		stats, err := scanner.Scan(ctx, centerX, centerY, filter, targetList)
		if err != nil && ctx.Err() == nil {
			fatal(err)
		}

		display.WriteScanSummary(os.Stdout, stats)
	},
}

func init() {
	scanCmd.Flags().IntP("radius", "r", 0, "Scan radius in tiles (default from config)")
	scanCmd.Flags().Int("max-pop", 0, "Maximum population (0 keeps only unknown)")
	scanCmd.Flags().String("center", "", "Scan center as x,y (default: home village)")
	scanCmd.Flags().StringP("list", "l", "", "Target list (default: active list)")
	scanCmd.Flags().Bool("no-natars", false, "Exclude Natar tiles")
	scanCmd.Flags().Bool("no-villages", false, "Exclude player villages")
	scanCmd.Flags().Bool("no-oases", false, "Exclude oases")

	rootCmd.AddCommand(scanCmd)
}
