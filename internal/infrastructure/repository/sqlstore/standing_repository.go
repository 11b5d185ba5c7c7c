package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/standing"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	qb "github.com/riskibarqy/ipl-dashboard/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListRanked(ctx context.Context) ([]standing.Entry, error) {
	query, args, err := qb.Select(
		"p.id",
		"p.team_id",
		"p.played",
		"p.won",
		"p.lost",
		"p.tied",
		"p.no_result",
		"p.points",
		"p.net_run_rate",
		"t.name AS team_name",
		"t.short_name AS team_short_name",
		"t.logo_url AS team_logo_url",
	).
		From("points_table p").
		Join("teams t", "t.id = p.team_id").
		OrderBy("p.points DESC", "p.net_run_rate DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select points table query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select points table: %w", err)
	}

	out := make([]standing.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Entry{
			ID:         row.ID,
			TeamID:     row.TeamID,
			Played:     row.Played,
			Won:        row.Won,
			Lost:       row.Lost,
			Tied:       row.Tied,
			NoResult:   row.NoResult,
			Points:     row.Points,
			NetRunRate: row.NetRunRate,
			Team: team.Team{
				ID:        row.TeamID,
				Name:      row.TeamName,
				ShortName: row.TeamShortName,
				LogoURL:   row.TeamLogoURL.String,
			},
		})
	}
	return out, nil
}

func (r *StandingRepository) UpsertByTeam(ctx context.Context, entry standing.Entry) error {
	if strings.TrimSpace(entry.TeamID) == "" {
		return fmt.Errorf("points table team id is required")
	}
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("points table row id is required")
	}

	query, args, err := qb.UpsertModel("points_table", standingUpsertModel{
		ID:         entry.ID,
		TeamID:     entry.TeamID,
		Played:     entry.Played,
		Won:        entry.Won,
		Lost:       entry.Lost,
		Tied:       entry.Tied,
		NoResult:   entry.NoResult,
		Points:     entry.Points,
		NetRunRate: entry.NetRunRate,
		UpdatedAt:  nowUTC(),
	}, []string{"team_id"}, "id")
	if err != nil {
		return fmt.Errorf("build upsert points table query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert points table team=%s: %w", entry.TeamID, err)
	}
	return nil
}
