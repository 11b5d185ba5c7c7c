package main

import (
	"strings"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/dashboard"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "DASHBOARD"

	cfgKeyAPIURL   = "api-url"
	cfgKeyInterval = "interval"
	cfgKeyTimeout  = "timeout"
	cfgKeyLogLevel = "log-level"
)

type cliConfig struct {
	APIURL   string
	Interval time.Duration
	Timeout  time.Duration
	LogLevel logging.Level
}

// loadConfig resolves settings with flag > DASHBOARD_* env > default precedence.
func loadConfig(cmd *cobra.Command) (cliConfig, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, dashboard.DefaultAPIURL)
	v.SetDefault(cfgKeyInterval, dashboard.DefaultPollInterval)
	v.SetDefault(cfgKeyTimeout, 10*time.Second)
	v.SetDefault(cfgKeyLogLevel, "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cliConfig{}, err
	}

	return cliConfig{
		APIURL:   v.GetString(cfgKeyAPIURL),
		Interval: v.GetDuration(cfgKeyInterval),
		Timeout:  v.GetDuration(cfgKeyTimeout),
		LogLevel: parseLevel(v.GetString(cfgKeyLogLevel)),
	}, nil
}

func parseLevel(raw string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "error":
		return logging.LevelError
	default:
		return logging.LevelWarn
	}
}
