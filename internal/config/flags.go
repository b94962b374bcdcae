package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagTimestep = flag.Float64("timestep", 0, "Fixed simulation timestep in seconds")
	flagTicks    = flag.Int("ticks", 0, "Number of simulation ticks to run (0 = unbounded)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTimestep > 0 {
		cfg.Playback.FixedTimestep = *flagTimestep
	}
	if *flagTicks > 0 {
		cfg.Playback.MaxTicks = *flagTicks
	}
}
