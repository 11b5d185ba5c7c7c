package main

import (
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/dashboard"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

// session carries what every subcommand needs once flags are resolved.
type session struct {
	cfg      cliConfig
	api      dashboard.API
	renderer *dashboard.Renderer
	logger   *logging.Logger
}

func newRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:           "ipl-dashboard",
		Short:         "Terminal dashboard for IPL standings, fixtures and live scores",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s.cfg = cfg
			s.logger = logging.NewConsole(cfg.LogLevel)
			s.api = dashboard.NewClient(cfg.APIURL, cfg.Timeout)
			s.renderer = dashboard.NewRenderer()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String(cfgKeyAPIURL, dashboard.DefaultAPIURL, "query service base URL")
	flags.Duration(cfgKeyInterval, dashboard.DefaultPollInterval, "live match polling interval")
	flags.Duration(cfgKeyTimeout, 10*time.Second, "per-request timeout")
	flags.String(cfgKeyLogLevel, "warn", "log level (debug|info|warn|error)")

	root.AddCommand(
		newHomeCmd(s),
		newStandingsCmd(s),
		newScheduleCmd(s),
		newMatchCmd(s),
		newTeamsCmd(s),
	)
	return root
}
