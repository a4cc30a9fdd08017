package config

import (
	"os"
	"time"
)

// Default returns the built-in configuration for Project Zomboid saves under
// the user's home directory.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(mapEnvKey("HOME"))
	}

	return &Config{
		Home: home,
		Game: "Zomboid",
		Paths: PathsConfig{
			Live:    "Saves",
			Backups: "BSaves",
			Scratch: "Saves_tmp",
			Lock:    ".save-archiver.lock",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
		Daemon: DaemonConfig{
			Schedule: "@every 30m",
			Watch: WatchConfig{
				Mode:            "auto",
				PollInterval:    30 * time.Second,
				DebounceWindow:  5 * time.Second,
				StabilityWindow: 2 * time.Second,
			},
		},
	}
}
