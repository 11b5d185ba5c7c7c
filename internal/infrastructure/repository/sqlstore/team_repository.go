package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	qb "github.com/riskibarqy/ipl-dashboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("id", "name", "short_name", "logo_url").
		From("teams").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:        row.ID,
			Name:      row.Name,
			ShortName: row.ShortName,
			LogoURL:   row.LogoURL.String,
		})
	}
	return out, nil
}

func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("teams").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return count, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	if err := t.Validate(); err != nil {
		return err
	}

	now := nowUTC()
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		LogoURL:   nullString(t.LogoURL),
		CreatedAt: now,
		UpdatedAt: now,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team name=%s: %w", t.Name, err)
	}
	return nil
}
