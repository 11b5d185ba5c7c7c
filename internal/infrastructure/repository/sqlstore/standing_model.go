package sqlstore

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type standingTableModel struct {
	ID            string          `db:"id"`
	TeamID        string          `db:"team_id"`
	Played        int             `db:"played"`
	Won           int             `db:"won"`
	Lost          int             `db:"lost"`
	Tied          int             `db:"tied"`
	NoResult      int             `db:"no_result"`
	Points        int             `db:"points"`
	NetRunRate    decimal.Decimal `db:"net_run_rate"`
	TeamName      string          `db:"team_name"`
	TeamShortName string          `db:"team_short_name"`
	TeamLogoURL   sql.NullString  `db:"team_logo_url"`
}

type standingUpsertModel struct {
	ID         string          `db:"id"`
	TeamID     string          `db:"team_id"`
	Played     int             `db:"played"`
	Won        int             `db:"won"`
	Lost       int             `db:"lost"`
	Tied       int             `db:"tied"`
	NoResult   int             `db:"no_result"`
	Points     int             `db:"points"`
	NetRunRate decimal.Decimal `db:"net_run_rate"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
