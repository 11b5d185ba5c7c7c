package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/id"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	LiveOutcomeUpserted     = "upserted"
	LiveOutcomeMarkedNoLive = "marked_no_live"
	LiveOutcomeAbsent       = "absent"
)

// RunReport summarizes one reconciliation run. Steps after a failure are left at zero.
type RunReport struct {
	TeamsCreated      int               `json:"teams_created"`
	TeamsBootstrapped bool              `json:"teams_bootstrapped"`
	StandingsUpserted int               `json:"standings_upserted"`
	StandingsSkipped  int               `json:"standings_skipped"`
	MatchesUpserted   int               `json:"matches_upserted"`
	MatchesSkipped    int               `json:"matches_skipped"`
	LiveOutcome       string            `json:"live_outcome,omitempty"`
	Origins           map[string]Origin `json:"origins"`
	DurationMs        int64             `json:"duration_ms"`
}

type ReconcileService struct {
	extractor    Extractor
	teamRepo     team.Repository
	standingRepo standing.Repository
	matchRepo    match.Repository
	liveRepo     livematch.Repository
	ids          id.Generator
	logger       *logging.Logger
	now          func() time.Time

	upserts metric.Int64Counter
	skipped metric.Int64Counter
}

func NewReconcileService(
	extractor Extractor,
	teamRepo team.Repository,
	standingRepo standing.Repository,
	matchRepo match.Repository,
	liveRepo livematch.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	meter := otel.Meter("ipl-dashboard/internal/usecase")
	upserts, err := meter.Int64Counter("ipl.reconcile.upserts", metric.WithDescription("Rows written by reconciliation."))
	if err != nil {
		logger.Warn("create reconcile upserts counter failed", "error", err)
	}
	skipped, err := meter.Int64Counter("ipl.reconcile.skipped", metric.WithDescription("Scraped records skipped for unknown teams."))
	if err != nil {
		logger.Warn("create reconcile skipped counter failed", "error", err)
	}

	return &ReconcileService{
		extractor:    extractor,
		teamRepo:     teamRepo,
		standingRepo: standingRepo,
		matchRepo:    matchRepo,
		liveRepo:     liveRepo,
		ids:          ids,
		logger:       logger,
		now:          time.Now,
		upserts:      upserts,
		skipped:      skipped,
	}
}

// SetClock overrides the time source used for live snapshots.
func (s *ReconcileService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// ReconcileAll runs bootstrap, standings, schedule and live in that order. The first
// failing step ends the run; writes from earlier steps are kept.
func (s *ReconcileService) ReconcileAll(ctx context.Context) (RunReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.ReconcileAll")
	defer span.End()

	started := time.Now()
	report := RunReport{Origins: make(map[string]Origin, 4)}

	steps := []struct {
		name string
		run  func(context.Context, *RunReport, *team.NameIndex) error
	}{
		{name: "teams", run: s.bootstrapTeams},
		{name: "standings", run: s.reconcileStandings},
		{name: "schedule", run: s.reconcileSchedule},
		{name: "live", run: s.reconcileLive},
	}

	index := team.NameIndex{}
	for _, step := range steps {
		if err := step.run(ctx, &report, &index); err != nil {
			report.DurationMs = time.Since(started).Milliseconds()
			s.logger.ErrorContext(ctx, "reconcile run aborted", "step", step.name, "error", err)
			return report, fmt.Errorf("reconcile %s: %w", step.name, err)
		}
	}

	report.DurationMs = time.Since(started).Milliseconds()
	s.logger.InfoContext(ctx, "reconcile run completed",
		"teams_created", report.TeamsCreated,
		"standings_upserted", report.StandingsUpserted,
		"standings_skipped", report.StandingsSkipped,
		"matches_upserted", report.MatchesUpserted,
		"matches_skipped", report.MatchesSkipped,
		"live_outcome", report.LiveOutcome,
		"duration_ms", report.DurationMs,
	)
	return report, nil
}

// bootstrapTeams inserts teams only into an empty store and then loads the name index
// shared by the later steps.
func (s *ReconcileService) bootstrapTeams(ctx context.Context, report *RunReport, index *team.NameIndex) error {
	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count teams: %w", err)
	}

	if count == 0 {
		res, err := s.extractor.FetchTeams(ctx)
		if err != nil {
			return fmt.Errorf("fetch teams: %w", err)
		}
		s.noteOrigin(ctx, report, "teams", res.Origin, res.FallbackCause)

		for _, item := range res.Teams {
			teamID, err := s.ids.NewID()
			if err != nil {
				return err
			}
			short := item.ShortName
			if short == "" {
				short = team.DeriveShortName(item.Name)
			}
			if err := s.teamRepo.Create(ctx, team.Team{
				ID:        teamID,
				Name:      item.Name,
				ShortName: short,
				LogoURL:   item.LogoURL,
			}); err != nil {
				return fmt.Errorf("create team name=%s: %w", item.Name, err)
			}
			report.TeamsCreated++
			s.countUpsert(ctx, "team")
		}
		report.TeamsBootstrapped = true
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	*index = team.IndexByName(teams)
	return nil
}

func (s *ReconcileService) reconcileStandings(ctx context.Context, report *RunReport, index *team.NameIndex) error {
	res, err := s.extractor.FetchStandings(ctx)
	if err != nil {
		return fmt.Errorf("fetch standings: %w", err)
	}
	s.noteOrigin(ctx, report, "standings", res.Origin, res.FallbackCause)

	for _, item := range res.Standings {
		t, ok := index.Resolve(item.TeamName)
		if !ok {
			s.logger.WarnContext(ctx, "skipping standings entry for unknown team", "team", item.TeamName)
			report.StandingsSkipped++
			s.countSkip(ctx, "standings")
			continue
		}

		rowID, err := s.ids.NewID()
		if err != nil {
			return err
		}
		if err := s.standingRepo.UpsertByTeam(ctx, standing.Entry{
			ID:         rowID,
			TeamID:     t.ID,
			Played:     item.Played,
			Won:        item.Won,
			Lost:       item.Lost,
			Tied:       item.Tied,
			NoResult:   item.NoResult,
			Points:     item.Points,
			NetRunRate: item.NetRunRate,
		}); err != nil {
			return fmt.Errorf("upsert standings team=%s: %w", item.TeamName, err)
		}
		report.StandingsUpserted++
		s.countUpsert(ctx, "standing")
	}
	return nil
}

func (s *ReconcileService) reconcileSchedule(ctx context.Context, report *RunReport, index *team.NameIndex) error {
	res, err := s.extractor.FetchSchedule(ctx)
	if err != nil {
		return fmt.Errorf("fetch schedule: %w", err)
	}
	s.noteOrigin(ctx, report, "schedule", res.Origin, res.FallbackCause)

	for _, item := range res.Matches {
		home, homeOK := index.Resolve(item.HomeTeamName)
		away, awayOK := index.Resolve(item.AwayTeamName)
		if !homeOK || !awayOK {
			s.logger.WarnContext(ctx, "skipping match with unknown team",
				"match_number", item.MatchNumber,
				"home_team", item.HomeTeamName,
				"away_team", item.AwayTeamName,
			)
			report.MatchesSkipped++
			s.countSkip(ctx, "schedule")
			continue
		}

		if err := s.matchRepo.Upsert(ctx, match.Match{
			ID:            match.IDFromNumber(item.MatchNumber),
			MatchNumber:   item.MatchNumber,
			Date:          item.Date,
			Time:          item.Time,
			Venue:         item.Venue,
			HomeTeamID:    home.ID,
			AwayTeamID:    away.ID,
			HomeTeamScore: item.HomeTeamScore,
			AwayTeamScore: item.AwayTeamScore,
			Result:        item.Result,
			Status:        item.Status,
		}); err != nil {
			return fmt.Errorf("upsert match number=%d: %w", item.MatchNumber, err)
		}
		report.MatchesUpserted++
		s.countUpsert(ctx, "match")
	}
	return nil
}

func (s *ReconcileService) reconcileLive(ctx context.Context, report *RunReport, index *team.NameIndex) error {
	res, err := s.extractor.FetchLiveMatch(ctx)
	if err != nil {
		return fmt.Errorf("fetch live match: %w", err)
	}
	s.noteOrigin(ctx, report, "live", res.Origin, res.FallbackCause)

	if res.Live == nil {
		existed, err := s.liveRepo.UpdateStatus(ctx, livematch.StatusNoLiveMatch)
		if err != nil {
			return fmt.Errorf("mark no live match: %w", err)
		}
		if existed {
			report.LiveOutcome = LiveOutcomeMarkedNoLive
			s.countUpsert(ctx, "live_match")
		} else {
			report.LiveOutcome = LiveOutcomeAbsent
		}
		return nil
	}

	live := res.Live
	matchID, err := s.resolveLiveMatchID(ctx, index, live)
	if err != nil {
		return err
	}

	status := live.Status
	if status == "" {
		status = livematch.StatusLive
	}
	if err := s.liveRepo.Upsert(ctx, livematch.LiveMatch{
		ID:             livematch.CurrentID,
		MatchID:        matchID,
		Status:         status,
		HomeTeam:       live.HomeTeamName,
		AwayTeam:       live.AwayTeamName,
		HomeScore:      live.HomeScore,
		AwayScore:      live.AwayScore,
		Venue:          live.Venue,
		Overs:          live.Overs,
		CurrentBatsmen: live.CurrentBatsmen,
		CurrentBowler:  live.CurrentBowler,
		LastWicket:     live.LastWicket,
		RecentOvers:    live.RecentOvers,
		RequiredRate:   live.RequiredRate,
		UpdatedAt:      s.now().UTC(),
	}); err != nil {
		return fmt.Errorf("upsert live match: %w", err)
	}
	report.LiveOutcome = LiveOutcomeUpserted
	s.countUpsert(ctx, "live_match")
	return nil
}

// resolveLiveMatchID is best effort: unknown teams or no LIVE fixture leave the id empty.
func (s *ReconcileService) resolveLiveMatchID(ctx context.Context, index *team.NameIndex, live *ExternalLiveMatch) (string, error) {
	home, homeOK := index.Resolve(live.HomeTeamName)
	away, awayOK := index.Resolve(live.AwayTeamName)
	if !homeOK || !awayOK {
		s.logger.WarnContext(ctx, "live match teams not resolved",
			"home_team", live.HomeTeamName,
			"away_team", live.AwayTeamName,
		)
		return "", nil
	}

	item, found, err := s.matchRepo.FindByTeams(ctx, home.ID, away.ID, match.StatusLive)
	if err != nil {
		return "", fmt.Errorf("find live fixture: %w", err)
	}
	if !found {
		return "", nil
	}
	return item.ID, nil
}

func (s *ReconcileService) noteOrigin(ctx context.Context, report *RunReport, section string, origin Origin, cause error) {
	report.Origins[section] = origin
	if origin == OriginFallback {
		s.logger.WarnContext(ctx, "section reconciled from static data", "section", section, "cause", cause)
	}
}

func (s *ReconcileService) countUpsert(ctx context.Context, entity string) {
	if s.upserts != nil {
		s.upserts.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", entity)))
	}
}

func (s *ReconcileService) countSkip(ctx context.Context, section string) {
	if s.skipped != nil {
		s.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("section", section)))
	}
}
