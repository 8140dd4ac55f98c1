// Package config holds the raider configuration, loaded once at
// startup and passed explicitly to the components that need it.
package config

import "time"

// Config is the top-level raider configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Raid    RaidConfig    `toml:"raid"`
	Scan    ScanConfig    `toml:"scan"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig identifies the game world and the home village.
type ServerConfig struct {
	Tribe       string `toml:"tribe"`
	ServerSpeed int    `toml:"server_speed"`
	HomeX       int    `toml:"home_x"`
	HomeY       int    `toml:"home_y"`
}

// RaidConfig tunes the scheduling loop. Durations are strings parsed
// with time.ParseDuration.
type RaidConfig struct {
	PollInterval  string `toml:"poll_interval"`
	Backoff       string `toml:"backoff"`
	DispatchDelay string `toml:"dispatch_delay"`
}

// ScanConfig holds the default scan filter.
type ScanConfig struct {
	Radius                 int      `toml:"radius"`
	MaxPopulation          int      `toml:"max_population"`
	IncludeNatars          bool     `toml:"include_natars"`
	IncludePlayerVillages  bool     `toml:"include_player_villages"`
	IncludeUnoccupiedOases bool     `toml:"include_unoccupied_oases"`
	IncludeOccupiedOases   bool     `toml:"include_occupied_oases"`
	ExcludeAlliances       []string `toml:"exclude_alliances"`
	ExcludePlayers         []string `toml:"exclude_players"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Poll returns the parsed poll interval, falling back to the default.
func (r RaidConfig) Poll() time.Duration {
	return parseDuration(r.PollInterval, 7*time.Second)
}

// BackoffDuration returns the parsed retry backoff.
func (r RaidConfig) BackoffDuration() time.Duration {
	return parseDuration(r.Backoff, 60*time.Second)
}

// Delay returns the parsed inter-dispatch delay.
func (r RaidConfig) Delay() time.Duration {
	return parseDuration(r.DispatchDelay, 500*time.Millisecond)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
