package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/shopspring/decimal"
)

func TestStandingRepository_UpsertKeepsIDAndJoinsTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teams := NewTeamRepository([]team.Team{{ID: "t1", Name: "Mumbai Indians", ShortName: "MI"}})
	repo := NewStandingRepository(teams)

	if err := repo.UpsertByTeam(ctx, standing.Entry{ID: "p1", TeamID: "t1", Points: 2}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertByTeam(ctx, standing.Entry{ID: "p2", TeamID: "t1", Points: 4, NetRunRate: decimal.NewFromFloat(0.3)}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	rows, err := repo.ListRanked(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "p1" || rows[0].Points != 4 || rows[0].Team.ShortName != "MI" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestMatchRepository_UpcomingOrderAndLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository(NewTeamRepository(nil))
	day := func(d int) time.Time { return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC) }

	for _, m := range []match.Match{
		{ID: "3", MatchNumber: 3, Date: day(3), Status: match.StatusUpcoming},
		{ID: "1", MatchNumber: 1, Date: day(1), Status: match.StatusCompleted},
		{ID: "2", MatchNumber: 2, Date: day(2), Status: match.StatusUpcoming},
		{ID: "4", MatchNumber: 4, Date: day(4), Status: match.StatusUpcoming},
	} {
		if err := repo.Upsert(ctx, m); err != nil {
			t.Fatalf("upsert %s: %v", m.ID, err)
		}
	}

	got, err := repo.ListUpcoming(ctx, 2)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("unexpected upcoming: %+v", got)
	}
}

func TestLiveMatchRepository_UpdateStatusWithoutRow(t *testing.T) {
	t.Parallel()

	repo := NewLiveMatchRepository()
	existed, err := repo.UpdateStatus(context.Background(), livematch.StatusNoLiveMatch)
	if err != nil || existed {
		t.Fatalf("expected no-op, existed=%v err=%v", existed, err)
	}
	if _, ok, _ := repo.Get(context.Background()); ok {
		t.Fatalf("expected no row to be created")
	}
}
