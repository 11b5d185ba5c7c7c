package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/riskibarqy/ipl-dashboard/internal/fallback"
	"github.com/riskibarqy/ipl-dashboard/internal/infrastructure/repository/memory"
	livematchmock "github.com/riskibarqy/ipl-dashboard/internal/mocks/domain/livematch"
	teammock "github.com/riskibarqy/ipl-dashboard/internal/mocks/domain/team"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const fallbackPath = "../../data/fallback.json"

func newSeededStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	teams := memory.NewTeamRepository([]team.Team{
		{ID: "a", Name: "Alpha", ShortName: "A"},
		{ID: "b", Name: "Bravo", ShortName: "B"},
		{ID: "c", Name: "Charlie", ShortName: "C"},
	})
	store := &Store{
		Teams:     teams,
		Standings: memory.NewStandingRepository(teams),
		Matches:   memory.NewMatchRepository(teams),
		Live:      memory.NewLiveMatchRepository(),
	}

	for _, e := range []standing.Entry{
		{ID: "pa", TeamID: "a", Points: 10, NetRunRate: decimal.RequireFromString("0.5")},
		{ID: "pb", TeamID: "b", Points: 10, NetRunRate: decimal.RequireFromString("0.8")},
		{ID: "pc", TeamID: "c", Points: 12, NetRunRate: decimal.RequireFromString("-0.2")},
	} {
		if err := store.Standings.UpsertByTeam(ctx, e); err != nil {
			t.Fatalf("seed standing: %v", err)
		}
	}

	for i := 1; i <= 5; i++ {
		if err := store.Matches.Upsert(ctx, match.Match{
			ID:          match.IDFromNumber(i),
			MatchNumber: i,
			Date:        time.Date(2025, time.April, 10-i, 14, 0, 0, 0, time.UTC),
			HomeTeamID:  "a",
			AwayTeamID:  "b",
			Status:      match.StatusUpcoming,
		}); err != nil {
			t.Fatalf("seed match: %v", err)
		}
	}
	return store
}

func TestQueryService_PointsTableOrder(t *testing.T) {
	t.Parallel()

	service := NewQueryService(newSeededStore(t), fallback.NewFileStore(fallbackPath), nil)
	rows, err := service.PointsTable(context.Background())
	if err != nil {
		t.Fatalf("points table: %v", err)
	}

	want := []string{"C", "B", "A"}
	for i, short := range want {
		if rows[i].Team.ShortName != short {
			t.Fatalf("position %d: got=%s want=%s", i, rows[i].Team.ShortName, short)
		}
	}
}

func TestQueryService_UpcomingLimit(t *testing.T) {
	t.Parallel()

	service := NewQueryService(newSeededStore(t), fallback.NewFileStore(fallbackPath), nil)

	got, err := service.Upcoming(context.Background(), 2)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	// Match 5 has the earliest date, then match 4.
	if len(got) != 2 || got[0].ID != "5" || got[1].ID != "4" {
		t.Fatalf("expected the two earliest matches, got %+v", got)
	}

	got, err = service.Upcoming(context.Background(), 0)
	if err != nil {
		t.Fatalf("upcoming default: %v", err)
	}
	if len(got) != DefaultUpcomingLimit {
		t.Fatalf("expected default limit, got %d", len(got))
	}
}

func TestQueryService_LiveNullShapes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newSeededStore(t)
	service := NewQueryService(store, fallback.NewFileStore(fallbackPath), nil)

	live, err := service.Live(ctx)
	if err != nil || live != nil {
		t.Fatalf("expected nil for absent row, got %+v err=%v", live, err)
	}

	if err := store.Live.Upsert(ctx, livematch.LiveMatch{Status: livematch.StatusNoLiveMatch, HomeTeam: "Alpha"}); err != nil {
		t.Fatalf("seed live: %v", err)
	}
	live, err = service.Live(ctx)
	if err != nil || live != nil {
		t.Fatalf("expected nil for non-live row, got %+v err=%v", live, err)
	}

	if err := store.Live.Upsert(ctx, livematch.LiveMatch{Status: livematch.StatusLive, HomeTeam: "Alpha"}); err != nil {
		t.Fatalf("seed live: %v", err)
	}
	live, err = service.Live(ctx)
	if err != nil || live == nil || live.HomeTeam != "Alpha" {
		t.Fatalf("expected live row, got %+v err=%v", live, err)
	}
}

func TestQueryService_MatchByID(t *testing.T) {
	t.Parallel()

	service := NewQueryService(newSeededStore(t), fallback.NewFileStore(fallbackPath), nil)

	got, err := service.MatchByID(context.Background(), "3")
	if err != nil {
		t.Fatalf("match by id: %v", err)
	}
	if got.HomeTeam.Name != "Alpha" || got.AwayTeam.Name != "Bravo" {
		t.Fatalf("expected embedded teams, got %+v", got)
	}

	if _, err := service.MatchByID(context.Background(), "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := service.MatchByID(context.Background(), " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestQueryService_FallbackModeMatchesSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	snapshot, err := fallback.NewFileStore(fallbackPath).Load(ctx)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	emptyTeams := memory.NewTeamRepository(nil)
	stores := map[string]*Store{
		"nil store": nil,
		"empty store": {
			Teams:     emptyTeams,
			Standings: memory.NewStandingRepository(emptyTeams),
			Matches:   memory.NewMatchRepository(emptyTeams),
			Live:      memory.NewLiveMatchRepository(),
		},
	}

	for name, store := range stores {
		store := store
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			service := NewQueryService(store, fallback.NewFileStore(fallbackPath), nil)

			teams, err := service.Teams(ctx)
			if err != nil || len(teams) != len(snapshot.Teams) || teams[0].ID != snapshot.Teams[0].ID {
				t.Fatalf("teams mismatch: %+v err=%v", teams, err)
			}

			rows, err := service.PointsTable(ctx)
			if err != nil || len(rows) != len(snapshot.PointsTable) {
				t.Fatalf("points table mismatch: len=%d err=%v", len(rows), err)
			}
			for i, row := range rows {
				if row.TeamID != snapshot.PointsTable[i].TeamID || row.Team.ID != row.TeamID {
					t.Fatalf("row %d not joined in document order: %+v", i, row)
				}
			}

			schedule, err := service.Schedule(ctx)
			if err != nil || len(schedule) != len(snapshot.Matches) {
				t.Fatalf("schedule mismatch: len=%d err=%v", len(schedule), err)
			}
			for i, item := range schedule {
				if item.ID != snapshot.Matches[i].ID || item.HomeTeam.ID != item.HomeTeamID || item.AwayTeam.ID != item.AwayTeamID {
					t.Fatalf("match %d not joined in document order: %+v", i, item)
				}
			}
		})
	}
}

func TestQueryService_FallbackUpcomingAndLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, time.March, 27, 18, 0, 0, 0, time.UTC)
	service := NewQueryService(nil, fallback.NewFileStore(fallbackPath), nil)
	service.SetClock(func() time.Time { return now })

	upcoming, err := service.Upcoming(ctx, 2)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	for _, item := range upcoming {
		if item.Status != match.StatusUpcoming {
			t.Fatalf("expected only upcoming matches, got %s", item.Status)
		}
	}
	if upcoming[1].Date.Before(upcoming[0].Date) {
		t.Fatalf("expected ascending dates, got %s then %s", upcoming[0].Date, upcoming[1].Date)
	}

	live, err := service.Live(ctx)
	if err != nil || live == nil {
		t.Fatalf("expected snapshot live match, got %+v err=%v", live, err)
	}
	if !live.UpdatedAt.Equal(now) {
		t.Fatalf("expected updatedAt to be stamped with now, got %s", live.UpdatedAt)
	}

	got, err := service.MatchByID(ctx, "1")
	if err != nil || got.HomeTeam.ID != got.HomeTeamID {
		t.Fatalf("expected snapshot match with teams, got %+v err=%v", got, err)
	}
}

func TestQueryService_StoreErrorFallsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("Count", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(0, errors.New("no such table: teams")).
		Once()

	service := NewQueryService(&Store{Teams: teamRepo}, fallback.NewFileStore(fallbackPath), nil)
	teams, err := service.Teams(ctx)
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(teams) == 0 {
		t.Fatalf("expected snapshot teams")
	}
}

func TestQueryService_NoStoreAndNoSnapshot(t *testing.T) {
	t.Parallel()

	service := NewQueryService(nil, nil, nil)
	if _, err := service.Teams(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
}

func TestQueryService_LiveStoreError(t *testing.T) {
	t.Parallel()

	anyCtx := mock.MatchedBy(func(v context.Context) bool { return v != nil })
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("Count", anyCtx).Return(10, nil).Once()
	liveRepo := livematchmock.NewRepository(t)
	liveRepo.On("Get", anyCtx).Return(livematch.LiveMatch{}, false, errors.New("database is locked")).Once()

	service := NewQueryService(&Store{Teams: teamRepo, Live: liveRepo}, fallback.NewFileStore(fallbackPath), nil)
	if _, err := service.Live(context.Background()); err == nil {
		t.Fatalf("expected live store error to surface")
	}
}

func TestQueryService_LiveFinishedRowIsNull(t *testing.T) {
	t.Parallel()

	anyCtx := mock.MatchedBy(func(v context.Context) bool { return v != nil })
	teamRepo := teammock.NewRepository(t)
	teamRepo.On("Count", anyCtx).Return(10, nil).Once()
	liveRepo := livematchmock.NewRepository(t)
	liveRepo.On("Get", anyCtx).Return(livematch.LiveMatch{ID: livematch.CurrentID, Status: livematch.StatusNoLiveMatch}, true, nil).Once()

	service := NewQueryService(&Store{Teams: teamRepo, Live: liveRepo}, fallback.NewFileStore(fallbackPath), nil)
	got, err := service.Live(context.Background())
	if err != nil {
		t.Fatalf("live: %v", err)
	}
	if got != nil {
		t.Fatalf("expected null live match, got %+v", got)
	}
}

type storeSourceFunc func(ctx context.Context) (*Store, error)

func (f storeSourceFunc) Acquire(ctx context.Context) (*Store, error) {
	return f(ctx)
}

func TestQueryService_ResolvesStoreOnEveryCall(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var current *Store
	var acquireErr error
	source := storeSourceFunc(func(context.Context) (*Store, error) {
		return current, acquireErr
	})
	service := NewQueryService(source, fallback.NewFileStore(fallbackPath), nil)

	teams, err := service.Teams(ctx)
	if err != nil {
		t.Fatalf("teams without store: %v", err)
	}
	if len(teams) != 10 {
		t.Fatalf("expected snapshot teams: got=%d want=10", len(teams))
	}

	current = newSeededStore(t)
	teams, err = service.Teams(ctx)
	if err != nil {
		t.Fatalf("teams with store: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected store teams once available: got=%d want=3", len(teams))
	}

	acquireErr = errors.New("connection refused")
	teams, err = service.Teams(ctx)
	if err != nil {
		t.Fatalf("teams with unreachable store: %v", err)
	}
	if len(teams) != 10 {
		t.Fatalf("expected snapshot teams when the store cannot be acquired: got=%d want=10", len(teams))
	}
}
