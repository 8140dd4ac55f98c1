package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gabe/raider/internal/models"
	"github.com/gabe/raider/internal/raid"
	"github.com/gabe/raider/internal/tui"
	"github.com/gabe/raider/internal/watch"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Run the continuous raid scheduler",
	Long: `Raid every enabled farm and re-raid each one as its troops return,
based on round-trip travel time. Runs until interrupted. With --tui, shows
a live countdown view (q to stop).`,
	Run: func(cmd *cobra.Command, args []string) {
		useTUI, _ := cmd.Flags().GetBool("tui")

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
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		opts := []raid.Option{
			raid.WithPollInterval(cfg.Raid.Poll()),
			raid.WithBackoff(cfg.Raid.BackoffDuration()),
			raid.WithDispatchDelay(cfg.Raid.Delay()),
		}

		if !useTUI {
			scheduler := raid.New(store, raid.NewDryRunDispatcher(log), newEstimator(store), log, opts...)
			stats := scheduler.Run(ctx)
			fmt.Printf("Stopped: %d sent, %d failed\n", stats.Sent, stats.Failed)
			return
		}

		reload, err := watch.File(ctx, store.Path())
		if err != nil {
			log.Warn("store watcher unavailable")
			reload = nil
		}

		program := tui.NewProgram(tui.New(store.SnapshotFarms, cancel, reload))

		opts = append(opts, raid.WithOnDispatch(func(target *models.FarmTarget, ok bool) {
			program.Send(tui.DispatchMsg{Farm: target.Name, OK: ok})
		}))
		scheduler := raid.New(store, raid.NewDryRunDispatcher(log), newEstimator(store), log, opts...)

		done := make(chan raid.LoopStats, 1)
		go func() {
			done <- scheduler.Run(ctx)
		}()

		if _, err := program.Run(); err != nil {
			fatal(err)
		}
		cancel()

		stats := <-done
		fmt.Printf("Stopped: %d sent, %d failed\n", stats.Sent, stats.Failed)
	},
}

func init() {
	autoCmd.Flags().Bool("tui", false, "Show the live countdown view")

	rootCmd.AddCommand(autoCmd)
}
