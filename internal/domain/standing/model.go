package standing

import (
	"github.com/riskibarqy/ipl-dashboard/internal/domain/team"
	"github.com/shopspring/decimal"
)

// Entry is one points-table row, unique per team. Played is expected to equal
// Won+Lost+Tied+NoResult but scraped rows are stored as reported.
type Entry struct {
	ID         string
	TeamID     string
	Team       team.Team
	Played     int
	Won        int
	Lost       int
	Tied       int
	NoResult   int
	Points     int
	NetRunRate decimal.Decimal
}

// Less reports whether a ranks above b: points desc, then net run rate desc.
func Less(a, b Entry) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	return a.NetRunRate.GreaterThan(b.NetRunRate)
}
