package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/infrastructure/repository/memory"
	teammock "github.com/riskibarqy/ipl-dashboard/internal/mocks/domain/team"
	usecasemock "github.com/riskibarqy/ipl-dashboard/internal/mocks/usecase"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/id"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type memoryStore struct {
	teams     *memory.TeamRepository
	standings *memory.StandingRepository
	matches   *memory.MatchRepository
	live      *memory.LiveMatchRepository
}

func newMemoryStore() memoryStore {
	teams := memory.NewTeamRepository(nil)
	return memoryStore{
		teams:     teams,
		standings: memory.NewStandingRepository(teams),
		matches:   memory.NewMatchRepository(teams),
		live:      memory.NewLiveMatchRepository(),
	}
}

func (m memoryStore) service(extractor usecase.Extractor) *usecase.ReconcileService {
	return usecase.NewReconcileService(extractor, m.teams, m.standings, m.matches, m.live, &id.SequenceGenerator{Prefix: "id"}, nil)
}

var anyCtx = mock.MatchedBy(func(v context.Context) bool { return v != nil })

func pageTeams() usecase.TeamsResult {
	return usecase.TeamsResult{
		Origin: usecase.OriginPage,
		Teams: []usecase.ExternalTeam{
			{Name: "Mumbai Indians", ShortName: "MI"},
			{Name: "Chennai Super Kings"},
			{Name: "Gujarat Titans", ShortName: "GT"},
		},
	}
}

func pageStandings() usecase.StandingsResult {
	return usecase.StandingsResult{
		Origin: usecase.OriginPage,
		Standings: []usecase.ExternalStanding{
			{TeamName: "Mumbai Indians", Played: 2, Won: 2, Points: 4, NetRunRate: decimal.RequireFromString("0.8")},
			{TeamName: "Chennai Super Kings", Played: 2, Won: 1, Lost: 1, Points: 2, NetRunRate: decimal.RequireFromString("-0.1")},
			{TeamName: "Deccan Chargers", Played: 2, Points: 0},
		},
	}
}

func pageSchedule() usecase.ScheduleResult {
	day := func(d int) time.Time { return time.Date(2025, time.March, d, 14, 0, 0, 0, time.UTC) }
	return usecase.ScheduleResult{
		Origin: usecase.OriginPage,
		Matches: []usecase.ExternalMatch{
			{MatchNumber: 1, Date: day(22), HomeTeamName: "Mumbai Indians", AwayTeamName: "Chennai Super Kings", Status: match.StatusCompleted, Result: "MI won"},
			{MatchNumber: 2, Date: day(23), HomeTeamName: "Gujarat Titans", AwayTeamName: "Mumbai Indians", Status: match.StatusLive},
			{MatchNumber: 3, Date: day(24), HomeTeamName: "Kochi Tuskers", AwayTeamName: "Gujarat Titans", Status: match.StatusUpcoming},
		},
	}
}

func pageLive() usecase.LiveResult {
	return usecase.LiveResult{
		Origin: usecase.OriginPage,
		Live: &usecase.ExternalLiveMatch{
			Status:       livematch.StatusLive,
			HomeTeamName: "Gujarat Titans",
			AwayTeamName: "Mumbai Indians",
			HomeScore:    "150/4",
			Overs:        "17.1",
			Venue:        "Ahmedabad",
		},
	}
}

func TestReconcileService_ReconcileAll_BootstrapsAndResolves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	extractor := usecasemock.NewExtractor(t)
	extractor.On("FetchTeams", anyCtx).Return(pageTeams(), nil).Once()
	extractor.On("FetchStandings", anyCtx).Return(pageStandings(), nil).Once()
	extractor.On("FetchSchedule", anyCtx).Return(pageSchedule(), nil).Once()
	extractor.On("FetchLiveMatch", anyCtx).Return(pageLive(), nil).Once()

	report, err := store.service(extractor).ReconcileAll(ctx)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if report.TeamsCreated != 3 || !report.TeamsBootstrapped {
		t.Fatalf("unexpected teams report: %+v", report)
	}
	if report.StandingsUpserted != 2 || report.StandingsSkipped != 1 {
		t.Fatalf("expected unknown standings team to be skipped, got %+v", report)
	}
	if report.MatchesUpserted != 2 || report.MatchesSkipped != 1 {
		t.Fatalf("expected unknown match team to be skipped, got %+v", report)
	}
	if report.LiveOutcome != usecase.LiveOutcomeUpserted || report.Origins["live"] != usecase.OriginPage {
		t.Fatalf("unexpected live report: %+v", report)
	}

	teams, _ := store.teams.List(ctx)
	for _, item := range teams {
		if item.Name == "Chennai Super Kings" && item.ShortName != "CSK" {
			t.Fatalf("expected derived short name, got %q", item.ShortName)
		}
	}

	rows, _ := store.standings.ListRanked(ctx)
	if len(rows) != 2 || rows[0].Team.ShortName != "MI" {
		t.Fatalf("unexpected standings: %+v", rows)
	}

	live, ok, _ := store.live.Get(ctx)
	if !ok || live.MatchID != "2" || live.HomeScore != "150/4" {
		t.Fatalf("expected live snapshot linked to match 2, got %+v", live)
	}
}

func TestReconcileService_ReconcileAll_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	extractor := usecasemock.NewExtractor(t)
	extractor.On("FetchTeams", anyCtx).Return(pageTeams(), nil).Once()
	extractor.On("FetchStandings", anyCtx).Return(pageStandings(), nil).Twice()
	extractor.On("FetchSchedule", anyCtx).Return(pageSchedule(), nil).Twice()
	extractor.On("FetchLiveMatch", anyCtx).Return(pageLive(), nil).Twice()

	service := store.service(extractor)
	fixed := time.Date(2025, time.March, 23, 15, 0, 0, 0, time.UTC)
	service.SetClock(func() time.Time { return fixed })

	if _, err := service.ReconcileAll(ctx); err != nil {
		t.Fatalf("first run: %v", err)
	}
	firstStandings, _ := store.standings.ListRanked(ctx)
	firstMatches, _ := store.matches.ListByDate(ctx)
	firstLive, _, _ := store.live.Get(ctx)

	report, err := service.ReconcileAll(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if report.TeamsBootstrapped || report.TeamsCreated != 0 {
		t.Fatalf("expected bootstrap to be skipped, got %+v", report)
	}

	secondStandings, _ := store.standings.ListRanked(ctx)
	secondMatches, _ := store.matches.ListByDate(ctx)
	secondLive, _, _ := store.live.Get(ctx)

	if len(secondStandings) != len(firstStandings) || len(secondMatches) != len(firstMatches) {
		t.Fatalf("expected no duplicate rows: standings %d->%d matches %d->%d",
			len(firstStandings), len(secondStandings), len(firstMatches), len(secondMatches))
	}
	for i := range firstStandings {
		a, b := firstStandings[i], secondStandings[i]
		if a.ID != b.ID || a.TeamID != b.TeamID || a.Points != b.Points || !a.NetRunRate.Equal(b.NetRunRate) {
			t.Fatalf("standings row %d changed: %+v -> %+v", i, a, b)
		}
	}
	for i := range firstMatches {
		if firstMatches[i] != secondMatches[i] {
			t.Fatalf("match row %d changed: %+v -> %+v", i, firstMatches[i], secondMatches[i])
		}
	}
	if firstLive != secondLive {
		t.Fatalf("live row changed: %+v -> %+v", firstLive, secondLive)
	}
}

func TestReconcileService_ReconcileAll_NullLiveMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no row stays absent", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStore()
		extractor := usecasemock.NewExtractor(t)
		extractor.On("FetchTeams", anyCtx).Return(pageTeams(), nil).Once()
		extractor.On("FetchStandings", anyCtx).Return(usecase.StandingsResult{Origin: usecase.OriginPage}, nil).Once()
		extractor.On("FetchSchedule", anyCtx).Return(usecase.ScheduleResult{Origin: usecase.OriginPage}, nil).Once()
		extractor.On("FetchLiveMatch", anyCtx).Return(usecase.LiveResult{Origin: usecase.OriginPage}, nil).Once()

		report, err := store.service(extractor).ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		if report.LiveOutcome != usecase.LiveOutcomeAbsent {
			t.Fatalf("expected absent outcome, got %q", report.LiveOutcome)
		}
		if _, ok, _ := store.live.Get(ctx); ok {
			t.Fatalf("expected no live row to be created")
		}
	})

	t.Run("existing row keeps its fields", func(t *testing.T) {
		t.Parallel()

		store := newMemoryStore()
		if err := store.live.Upsert(ctx, livematch.LiveMatch{
			Status:    livematch.StatusLive,
			HomeTeam:  "Gujarat Titans",
			AwayTeam:  "Mumbai Indians",
			HomeScore: "201/5",
		}); err != nil {
			t.Fatalf("seed live: %v", err)
		}

		extractor := usecasemock.NewExtractor(t)
		extractor.On("FetchTeams", anyCtx).Return(pageTeams(), nil).Once()
		extractor.On("FetchStandings", anyCtx).Return(usecase.StandingsResult{Origin: usecase.OriginPage}, nil).Once()
		extractor.On("FetchSchedule", anyCtx).Return(usecase.ScheduleResult{Origin: usecase.OriginPage}, nil).Once()
		extractor.On("FetchLiveMatch", anyCtx).Return(usecase.LiveResult{Origin: usecase.OriginPage}, nil).Once()

		report, err := store.service(extractor).ReconcileAll(ctx)
		if err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		if report.LiveOutcome != usecase.LiveOutcomeMarkedNoLive {
			t.Fatalf("expected marked outcome, got %q", report.LiveOutcome)
		}

		live, ok, _ := store.live.Get(ctx)
		if !ok || live.Status != livematch.StatusNoLiveMatch || live.HomeScore != "201/5" || live.HomeTeam != "Gujarat Titans" {
			t.Fatalf("expected only status to change, got %+v", live)
		}
	})
}

func TestReconcileService_ReconcileAll_SkipsBootstrapWhenTeamsExist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("Count", anyCtx).Return(3, nil).Once()
	teamRepo.On("List", anyCtx).Return(nil, nil).Once()

	extractor := usecasemock.NewExtractor(t)
	extractor.On("FetchStandings", anyCtx).Return(usecase.StandingsResult{Origin: usecase.OriginPage}, nil).Once()
	extractor.On("FetchSchedule", anyCtx).Return(usecase.ScheduleResult{Origin: usecase.OriginPage}, nil).Once()
	extractor.On("FetchLiveMatch", anyCtx).Return(usecase.LiveResult{Origin: usecase.OriginPage}, nil).Once()

	service := usecase.NewReconcileService(extractor, teamRepo, store.standings, store.matches, store.live, nil, nil)
	if _, err := service.ReconcileAll(ctx); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	extractor.AssertNotCalled(t, "FetchTeams", mock.Anything)
	teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReconcileService_ReconcileAll_AbortsOnStepError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemoryStore()
	extractor := usecasemock.NewExtractor(t)
	extractor.On("FetchTeams", anyCtx).Return(pageTeams(), nil).Once()
	extractor.On("FetchStandings", anyCtx).Return(usecase.StandingsResult{}, errors.New("snapshot unreadable")).Once()

	report, err := store.service(extractor).ReconcileAll(ctx)
	if err == nil {
		t.Fatalf("expected error")
	}
	if report.TeamsCreated != 3 {
		t.Fatalf("expected earlier writes to be kept, got %+v", report)
	}
	extractor.AssertNotCalled(t, "FetchSchedule", mock.Anything)
	extractor.AssertNotCalled(t, "FetchLiveMatch", mock.Anything)

	count, _ := store.teams.Count(ctx)
	if count != 3 {
		t.Fatalf("expected bootstrapped teams to remain, got %d", count)
	}
}

func TestReconcileService_ReconcileAll_CountErrorAborts(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("Count", anyCtx).Return(0, errors.New("connection refused")).Once()
	extractor := usecasemock.NewExtractor(t)

	service := usecase.NewReconcileService(extractor, teamRepo, store.standings, store.matches, store.live, nil, nil)
	if _, err := service.ReconcileAll(context.Background()); err == nil {
		t.Fatalf("expected count error to abort the run")
	}
	extractor.AssertNotCalled(t, "FetchTeams", mock.Anything)
}
