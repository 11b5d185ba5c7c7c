package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/livematch"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/match"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/shopspring/decimal"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "ipl.db")
	if err := MigrateUp(DriverSQLite, dsn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := sqlx.Open(DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedTeams(t *testing.T, repo *TeamRepository, teams ...team.Team) {
	t.Helper()
	for _, item := range teams {
		if err := repo.Create(context.Background(), item); err != nil {
			t.Fatalf("create team %s: %v", item.Name, err)
		}
	}
}

var (
	teamMI  = team.Team{ID: "t-mi", Name: "Mumbai Indians", ShortName: "MI", LogoURL: "https://img/mi.png"}
	teamCSK = team.Team{ID: "t-csk", Name: "Chennai Super Kings", ShortName: "CSK"}
	teamRCB = team.Team{ID: "t-rcb", Name: "Royal Challengers Bengaluru", ShortName: "RCB"}
)

func TestTeamRepository_CreateListCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewTeamRepository(newTestDB(t))

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count empty: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}

	seedTeams(t, repo, teamMI, teamCSK)

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 teams, got %d", count)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != teamCSK.Name || items[1].LogoURL != teamMI.LogoURL {
		t.Fatalf("unexpected teams: %+v", items)
	}
	if items[0].LogoURL != "" {
		t.Fatalf("expected empty logo for CSK, got %q", items[0].LogoURL)
	}
}

func TestTeamRepository_CreateRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(newTestDB(t))
	seedTeams(t, repo, teamMI)

	if err := repo.Create(context.Background(), teamMI); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestStandingRepository_UpsertKeepsRowAndRanks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedTeams(t, NewTeamRepository(db), teamMI, teamCSK, teamRCB)
	repo := NewStandingRepository(db)

	rows := []standing.Entry{
		{ID: "p-a", TeamID: teamMI.ID, Played: 2, Won: 1, Lost: 1, Points: 8, NetRunRate: decimal.RequireFromString("0.100")},
		{ID: "p-b", TeamID: teamCSK.ID, Played: 2, Won: 2, Points: 8, NetRunRate: decimal.RequireFromString("0.500")},
		{ID: "p-c", TeamID: teamRCB.ID, Played: 2, Won: 2, Points: 10, NetRunRate: decimal.RequireFromString("-0.200")},
	}
	for _, row := range rows {
		if err := repo.UpsertByTeam(ctx, row); err != nil {
			t.Fatalf("upsert %s: %v", row.ID, err)
		}
	}

	// Second write for the same team carries a new candidate id; the stored id must survive.
	if err := repo.UpsertByTeam(ctx, standing.Entry{
		ID:         "p-new",
		TeamID:     teamMI.ID,
		Played:     3,
		Won:        2,
		Lost:       1,
		Points:     8,
		NetRunRate: decimal.RequireFromString("0.050"),
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	ranked, err := repo.ListRanked(ctx)
	if err != nil {
		t.Fatalf("list ranked: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected one row per team, got %d", len(ranked))
	}

	wantOrder := []string{teamRCB.ShortName, teamCSK.ShortName, teamMI.ShortName}
	for i, want := range wantOrder {
		if ranked[i].Team.ShortName != want {
			t.Fatalf("rank %d: expected %s, got %s", i, want, ranked[i].Team.ShortName)
		}
	}

	mi := ranked[2]
	if mi.ID != "p-a" {
		t.Fatalf("expected stored id to be kept, got %s", mi.ID)
	}
	if mi.Played != 3 || mi.Won != 2 || !mi.NetRunRate.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("expected overwritten stats, got %+v", mi)
	}
}

func TestMatchRepository_UpsertListAndLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedTeams(t, NewTeamRepository(db), teamMI, teamCSK, teamRCB)
	repo := NewMatchRepository(db)

	day := func(d int) time.Time { return time.Date(2025, time.March, d, 14, 0, 0, 0, time.UTC) }
	matches := []match.Match{
		{ID: "3", MatchNumber: 3, Date: day(24), Time: "7:30 PM", Venue: "Chennai", HomeTeamID: teamCSK.ID, AwayTeamID: teamRCB.ID, Status: match.StatusUpcoming},
		{ID: "1", MatchNumber: 1, Date: day(22), Time: "7:30 PM", Venue: "Mumbai", HomeTeamID: teamMI.ID, AwayTeamID: teamCSK.ID, HomeTeamScore: "180/5", AwayTeamScore: "170/8", Result: "MI won by 10 runs", Status: match.StatusCompleted},
		{ID: "2", MatchNumber: 2, Date: day(23), Time: "7:30 PM", Venue: "Bengaluru", HomeTeamID: teamRCB.ID, AwayTeamID: teamMI.ID, Status: match.StatusLive},
		{ID: "4", MatchNumber: 4, Date: day(25), Time: "3:30 PM", Venue: "Mumbai", HomeTeamID: teamMI.ID, AwayTeamID: teamRCB.ID, Status: match.StatusUpcoming},
	}
	for _, m := range matches {
		if err := repo.Upsert(ctx, m); err != nil {
			t.Fatalf("upsert match %s: %v", m.ID, err)
		}
	}

	all, err := repo.ListByDate(ctx)
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(all))
	}
	for i, want := range []string{"1", "2", "3", "4"} {
		if all[i].ID != want {
			t.Fatalf("position %d: expected match %s, got %s", i, want, all[i].ID)
		}
	}
	if all[0].HomeTeam.ShortName != "MI" || all[0].AwayTeam.ShortName != "CSK" {
		t.Fatalf("expected joined teams, got %+v / %+v", all[0].HomeTeam, all[0].AwayTeam)
	}
	if !all[0].Date.Equal(day(22)) {
		t.Fatalf("unexpected date: %s", all[0].Date)
	}

	upcoming, err := repo.ListUpcoming(ctx, 1)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != "3" {
		t.Fatalf("expected earliest upcoming match 3, got %+v", upcoming)
	}

	got, ok, err := repo.GetByID(ctx, "1")
	if err != nil || !ok {
		t.Fatalf("get by id: ok=%v err=%v", ok, err)
	}
	if got.Result != "MI won by 10 runs" || got.HomeTeamScore != "180/5" {
		t.Fatalf("unexpected match: %+v", got)
	}

	if _, ok, err := repo.GetByID(ctx, "99"); err != nil || ok {
		t.Fatalf("expected missing match, ok=%v err=%v", ok, err)
	}

	live, ok, err := repo.FindByTeams(ctx, teamRCB.ID, teamMI.ID, match.StatusLive)
	if err != nil || !ok || live.ID != "2" {
		t.Fatalf("find by teams: %+v ok=%v err=%v", live, ok, err)
	}
	if _, ok, _ := repo.FindByTeams(ctx, teamMI.ID, teamRCB.ID, match.StatusLive); ok {
		t.Fatalf("expected home/away order to matter")
	}
}

func TestMatchRepository_UpsertOverwritesAllFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seedTeams(t, NewTeamRepository(db), teamMI, teamCSK)
	repo := NewMatchRepository(db)

	base := match.Match{
		ID:            "7",
		MatchNumber:   7,
		Date:          time.Date(2025, time.April, 1, 14, 0, 0, 0, time.UTC),
		HomeTeamID:    teamMI.ID,
		AwayTeamID:    teamCSK.ID,
		Status:        match.StatusLive,
		HomeTeamScore: "90/2",
	}
	if err := repo.Upsert(ctx, base); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	base.Status = match.StatusUpcoming
	base.HomeTeamScore = ""
	base.Venue = "Wankhede"
	if err := repo.Upsert(ctx, base); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, "7")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Status != match.StatusUpcoming || got.HomeTeamScore != "" || got.Venue != "Wankhede" {
		t.Fatalf("expected overwritten match, got %+v", got)
	}

	all, err := repo.ListByDate(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single row, got %d", len(all))
	}
}

func TestLiveMatchRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLiveMatchRepository(newTestDB(t))

	existed, err := repo.UpdateStatus(ctx, livematch.StatusNoLiveMatch)
	if err != nil {
		t.Fatalf("update status without row: %v", err)
	}
	if existed {
		t.Fatalf("expected no row to be updated")
	}
	if _, ok, err := repo.Get(ctx); err != nil || ok {
		t.Fatalf("expected no live row, ok=%v err=%v", ok, err)
	}

	updatedAt := time.Date(2025, time.March, 23, 15, 4, 5, 0, time.UTC)
	if err := repo.Upsert(ctx, livematch.LiveMatch{
		Status:    livematch.StatusLive,
		HomeTeam:  "Gujarat Titans",
		AwayTeam:  "Punjab Kings",
		HomeScore: "120/3",
		Overs:     "14.2",
		Venue:     "Ahmedabad",
		UpdatedAt: updatedAt,
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := repo.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.ID != livematch.CurrentID || !got.IsLive() || got.MatchID != "" || got.HomeScore != "120/3" {
		t.Fatalf("unexpected live match: %+v", got)
	}
	if !got.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("expected updatedAt %s, got %s", updatedAt, got.UpdatedAt)
	}

	existed, err = repo.UpdateStatus(ctx, livematch.StatusNoLiveMatch)
	if err != nil || !existed {
		t.Fatalf("update status: existed=%v err=%v", existed, err)
	}

	got, _, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get after status update: %v", err)
	}
	if got.Status != livematch.StatusNoLiveMatch || got.HomeTeam != "Gujarat Titans" {
		t.Fatalf("expected only status to change, got %+v", got)
	}
	if !got.UpdatedAt.After(updatedAt) {
		t.Fatalf("expected updatedAt to move forward, got %s", got.UpdatedAt)
	}
}
