package main

import (
	"io"
	"sync"

	"github.com/riskibarqy/ipl-dashboard/internal/dashboard"
	"github.com/spf13/cobra"
)

const clearScreen = "\033[H\033[2J"

func newHomeCmd(s *session) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show the live match and the next three fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			data, err := dashboard.LoadHome(ctx, s.api)
			if err != nil {
				return err
			}
			if err := renderHome(s.renderer, out, data); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			var mu sync.Mutex
			poller := dashboard.NewLivePoller(s.api.Live, dashboard.PollerConfig{
				Interval: s.cfg.Interval,
				Logger:   s.logger,
				OnUpdate: func(live *dashboard.LiveMatch) {
					mu.Lock()
					defer mu.Unlock()
					data.Live = live
					_, _ = io.WriteString(out, clearScreen)
					if err := renderHome(s.renderer, out, data); err != nil {
						s.logger.Warn("render home failed", "error", err)
					}
				},
			})
			poller.Start(ctx)
			defer poller.Stop()

			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling the live match")
	return cmd
}

func renderHome(r *dashboard.Renderer, w io.Writer, data dashboard.HomeData) error {
	if err := r.Live(w, data.Live); err != nil {
		return err
	}
	return r.Upcoming(w, data.Upcoming)
}

func newStandingsCmd(s *session) *cobra.Command {
	var field, order string

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Show the points table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := sortStateFromFlags(field, order)
			if err != nil {
				return err
			}

			entries, err := s.api.PointsTable(cmd.Context())
			if err != nil {
				return err
			}
			return s.renderer.Standings(cmd.OutOrStdout(), entries, state)
		},
	}
	cmd.Flags().StringVar(&field, "sort", string(dashboard.SortByPoints), "sort column (played|won|lost|tied|noResult|points|netRunRate)")
	cmd.Flags().StringVar(&order, "order", "", "sort order (asc|desc)")
	return cmd
}

func sortStateFromFlags(field, order string) (dashboard.SortState, error) {
	sortField, err := dashboard.ParseSortField(field)
	if err != nil {
		return dashboard.SortState{}, err
	}
	state := dashboard.DefaultSortState()
	if sortField != state.Field {
		state = state.Toggle(sortField)
	}
	if order != "" {
		direction, err := dashboard.ParseSortDirection(order)
		if err != nil {
			return dashboard.SortState{}, err
		}
		state.Direction = direction
	}
	return state, nil
}

func newScheduleCmd(s *session) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show fixtures grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := dashboard.ParseScheduleFilter(filter)
			if err != nil {
				return err
			}

			matches, err := s.api.Schedule(cmd.Context())
			if err != nil {
				return err
			}
			return s.renderer.Schedule(cmd.OutOrStdout(), matches, parsed)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(dashboard.FilterAll), "fixture filter (all|upcoming|completed)")
	return cmd
}

func newMatchCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Show a single match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := s.api.Match(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return s.renderer.Match(cmd.OutOrStdout(), match)
		},
	}
}

func newTeamsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List the franchises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := s.api.Teams(cmd.Context())
			if err != nil {
				return err
			}
			return s.renderer.Teams(cmd.OutOrStdout(), teams)
		},
	}
}
