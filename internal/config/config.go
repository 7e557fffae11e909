// Package config loads application configuration with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akasprzok/graphdrawer/internal/charts"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GRAPHDRAWER_PALETTE.
const EnvPrefix = "GRAPHDRAWER"

type Config struct {
	Palette      string      `mapstructure:"palette"`
	SettingsPath string      `mapstructure:"settings_path"`
	Chart        ChartConfig `mapstructure:"chart"`
	Log          LogConfig   `mapstructure:"log"`
}

type ChartConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("palette", "tol")
	v.SetDefault("settings_path", "")
	v.SetDefault("chart.width", charts.DefaultImageWidth)
	v.SetDefault("chart.height", charts.DefaultImageHeight)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads graphdrawer.yaml from path when given, otherwise from the
// working directory or the user config directory. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	var cfg Config

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("graphdrawer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "graphdrawer"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return nil, fmt.Errorf("chart size must be positive, got %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	return &cfg, nil
}
