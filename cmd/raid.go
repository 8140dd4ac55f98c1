package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gabe/raider/internal/display"
	"github.com/gabe/raider/internal/raid"
)

var raidCmd = &cobra.Command{
	Use:   "raid",
	Short: "Send one raid wave to every enabled farm",
	Long:  `Dispatch a single raid to every enabled farm with troops, regardless of schedule, then report sent/failed/skipped counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fatal(err)
		}
		log := newLogger(cfg)
		defer log.Sync()

		store := openStore(cfg)
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		scheduler := raid.New(store, raid.NewDryRunDispatcher(log), newEstimator(store), log,
			raid.WithBackoff(cfg.Raid.BackoffDuration()),
			raid.WithDispatchDelay(cfg.Raid.Delay()),
		)

		stats := scheduler.RunWave(ctx)
		display.WriteWaveSummary(os.Stdout, stats)
	},
}

func init() {
	rootCmd.AddCommand(raidCmd)
}
