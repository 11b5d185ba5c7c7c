package sqlstore

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	ShortName string         `db:"short_name"`
	LogoURL   sql.NullString `db:"logo_url"`
}

type teamInsertModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	ShortName string         `db:"short_name"`
	LogoURL   sql.NullString `db:"logo_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
