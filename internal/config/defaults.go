package config

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Tribe:       "romans",
			ServerSpeed: 1,
		},
		Raid: RaidConfig{
			PollInterval:  "7s",
			Backoff:       "60s",
			DispatchDelay: "500ms",
		},
		Scan: ScanConfig{
			Radius:                 10,
			MaxPopulation:          50,
			IncludeNatars:          true,
			IncludePlayerVillages:  true,
			IncludeUnoccupiedOases: true,
			IncludeOccupiedOases:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
