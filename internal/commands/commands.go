package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/akasprzok/graphdrawer/internal/config"
	"github.com/akasprzok/graphdrawer/internal/dataset"
	"github.com/akasprzok/graphdrawer/internal/logging"
	"github.com/akasprzok/graphdrawer/internal/settings"
	"github.com/sirupsen/logrus"
)

// Context is handed to every command's Run method.
type Context struct {
	Config    *config.Config
	Log       *logrus.Logger
	LogToFile bool
	Loader    dataset.Loader
	Store     settings.Store
	Out       io.Writer
}

var Cli struct {
	Config   string `help:"Path to graphdrawer.yaml." type:"path" name:"config" short:"c"`
	LogLevel string `help:"Log level, overrides the config file." name:"log-level"`
	LogFile  string `help:"Write logs to this file instead of stderr." type:"path" name:"log-file"`

	Plot    PlotCmd    `cmd:"" help:"Plot CSV columns on one or two y axes."`
	Columns ColumnsCmd `cmd:"" help:"List the columns of a CSV file."`
	Colors  ColorsCmd  `cmd:"" help:"Show the colors given to left and right axis series."`
	TUI     TUICmd     `cmd:"" name:"tui" default:"withargs" help:"Interactive plotter."`
}

// NewContext loads the configuration and sets up logging and settings
// storage. Flags override the config file. The returned closer releases the
// log file.
func NewContext(configPath, logLevel, logFile string) (*Context, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}

	settingsPath := cfg.SettingsPath
	if settingsPath == "" {
		settingsPath, err = settings.DefaultPath()
		if err != nil {
			closer.Close()
			return nil, nil, fmt.Errorf("locating settings: %w", err)
		}
	}

	return &Context{
		Config:    cfg,
		Log:       logger,
		LogToFile: cfg.Log.File != "",
		Loader:    dataset.NewLoader(),
		Store:     settings.NewFileStore(settingsPath, logger.WithField("component", "settings")),
		Out:       os.Stdout,
	}, closer, nil
}
