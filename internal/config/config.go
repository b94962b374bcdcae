// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Playback  PlaybackConfig  `yaml:"playback"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PlaybackConfig holds simulation loop settings.
type PlaybackConfig struct {
	// FixedTimestep is the simulation tick length in seconds.
	FixedTimestep float64 `yaml:"fixed_timestep"`
	// MaxTicks bounds a demo run; 0 means run until interrupted.
	MaxTicks int `yaml:"max_ticks"`
}

// AnimationConfig holds animator component defaults applied when an entity
// does not specify its own.
type AnimationConfig struct {
	DefaultSpeed         float64 `yaml:"default_speed"`
	DefaultLooping       bool    `yaml:"default_looping"`
	DefaultBlendDuration float64 `yaml:"default_blend_duration"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			FixedTimestep: 1.0 / 60.0,
			MaxTicks:      0,
		},
		Animation: AnimationConfig{
			DefaultSpeed:         1.0,
			DefaultLooping:       true,
			DefaultBlendDuration: 0.3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
