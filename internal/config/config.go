package config

import (
	"path/filepath"
	"time"
)

type Config struct {
	Home    string        `yaml:"home" validate:"required"`
	Game    string        `yaml:"game" validate:"required"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Daemon  DaemonConfig  `yaml:"daemon"`
}

// PathsConfig holds the folder names inside the game directory. Absolute
// values are used as they are.
type PathsConfig struct {
	Live    string `yaml:"live" validate:"required"`    // live save folder, e.g. "Saves"
	Backups string `yaml:"backups" validate:"required"` // backup root, e.g. "BSaves"
	Scratch string `yaml:"scratch" validate:"required"` // pre-restore copy, e.g. "Saves_tmp"
	Lock    string `yaml:"lock" validate:"required"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

type DaemonConfig struct {
	Schedule string      `yaml:"schedule"` // cron spec, empty disables
	Watch    WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Mode            string        `yaml:"mode" validate:"oneof=auto poll fsnotify off"`
	PollInterval    time.Duration `yaml:"pollInterval" validate:"gte=0"`    // e.g. 30s
	DebounceWindow  time.Duration `yaml:"debounceWindow" validate:"gte=0"`  // e.g. 5s
	StabilityWindow time.Duration `yaml:"stabilityWindow" validate:"gte=0"` // e.g. 2s
}

// Paths are the resolved absolute locations the archiver works on.
type Paths struct {
	Live    string
	Backups string
	Scratch string
	Lock    string
}

// GameDir returns the game directory all relative paths are resolved against.
func (c *Config) GameDir() string {
	return filepath.Join(c.Home, c.Game)
}

// Resolve turns the configured folder names into cleaned paths.
func (c *Config) Resolve() Paths {
	base := c.GameDir()
	return Paths{
		Live:    resolve(base, c.Paths.Live),
		Backups: resolve(base, c.Paths.Backups),
		Scratch: resolve(base, c.Paths.Scratch),
		Lock:    resolve(base, c.Paths.Lock),
	}
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
