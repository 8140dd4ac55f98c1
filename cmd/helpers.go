package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabe/raider/internal/config"
	"github.com/gabe/raider/internal/gamedata"
	"github.com/gabe/raider/internal/logger"
	"github.com/gabe/raider/internal/models"
	"github.com/gabe/raider/internal/storage"
	"github.com/gabe/raider/internal/travel"
)

func raiderDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".raider"), nil
}

func configPath() (string, error) {
	dir, err := raiderDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func farmsPath() (string, error) {
	dir, err := raiderDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "farm_list.json"), nil
}

func historyPath() (string, error) {
	dir, err := raiderDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scan_history.json"), nil
}

func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return config.LoadOrCreate(path)
}

func newLogger(cfg *config.Config) logger.Logger {
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return log
}

// openStore opens the farm store and adopts the server identity from
// config. A corrupt state file degrades to an empty store with a
// warning rather than an exit.
func openStore(cfg *config.Config) *storage.FarmStore {
	path, err := farmsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.NewFarmStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	store.SetServerSettings(models.Tribe(cfg.Server.Tribe), cfg.Server.ServerSpeed,
		cfg.Server.HomeX, cfg.Server.HomeY)
	return store
}

func openHistory() *storage.HistoryStore {
	path, err := historyPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	history, err := storage.NewHistoryStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return history
}

// parseTroops parses "t1=10,t2=5" into a troop composition. Slot keys
// are validated against the rally-point roster.
func parseTroops(spec string) (map[string]int, error) {
	troops := make(map[string]int)
	if strings.TrimSpace(spec) == "" {
		return troops, nil
	}

	valid := make(map[string]bool)
	for _, k := range gamedata.SlotKeys() {
		valid[k] = true
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid troop entry %q (want slot=count)", part)
		}
		slot := strings.TrimSpace(kv[0])
		if !valid[slot] {
			return nil, fmt.Errorf("unknown troop slot %q", slot)
		}
		count, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid troop count %q", kv[1])
		}
		troops[slot] = count
	}
	return troops, nil
}

// parseCoords parses "x,y" into a coordinate pair.
func parseCoords(spec string) (int, int, error) {
	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinates %q (want x,y)", spec)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q", parts[1])
	}
	return x, y, nil
}

func newEstimator(store *storage.FarmStore) travel.Estimator {
	homeX, homeY := store.Home()
	return travel.Estimator{
		HomeX:       homeX,
		HomeY:       homeY,
		Tribe:       store.Tribe(),
		ServerSpeed: store.ServerSpeed(),
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
