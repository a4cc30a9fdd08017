package main

import (
	"github.com/spf13/cobra"

	"github.com/raoulx24/save-archiver/internal/archiver"
	"github.com/raoulx24/save-archiver/internal/config"
	"github.com/raoulx24/save-archiver/internal/logging"
)

const defaultConfigFile = "config.yaml"

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	home       string
	game       string
	logLevel   string
	logFormat  string
}

// app is what a command needs once configuration is loaded.
type app struct {
	cfg      *config.Config
	paths    config.Paths
	log      logging.Logger
	archiver *archiver.Archiver
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "save-archiver",
		Short: "Back up and restore game save folders",
		Long: `save-archiver copies the live save folder of a game into timestamped
backup sessions and restores any of them on demand. Sessions are numbered from
the oldest (0, 1, ...) or from the newest (-1, -2, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file (default ./"+defaultConfigFile+" when present)")
	pf.StringVar(&opts.home, "home", "", "home directory holding the game folder")
	pf.StringVar(&opts.game, "game", "", "game folder name below home")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "log format: text, json, auto")

	root.AddCommand(
		newBackupCmd(opts),
		newRestoreCmd(opts),
		newListCmd(opts),
		newDaemonCmd(opts),
	)
	return root
}

// loadConfig reads the config file and applies flag overrides.
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadOptional(defaultConfigFile)
	}
	if err != nil {
		return nil, err
	}

	if o.home != "" {
		cfg.Home = o.home
	}
	if o.game != "" {
		cfg.Game = o.game
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads configuration and builds the logger and archiver.
func (o *options) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Logging, cmd.ErrOrStderr())
	paths := cfg.Resolve()
	log.Debug("configuration loaded", "game", cfg.GameDir(), "live", paths.Live, "backups", paths.Backups)

	return &app{
		cfg:      cfg,
		paths:    paths,
		log:      log,
		archiver: archiver.New(paths, log, nil),
	}, nil
}
