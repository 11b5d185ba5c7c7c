package match

import "context"

// Repository describes match persistence needs from use cases.
// Reads populate HomeTeam and AwayTeam.
type Repository interface {
	Upsert(ctx context.Context, m Match) error
	ListByDate(ctx context.Context) ([]Match, error)
	ListUpcoming(ctx context.Context, limit int) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	FindByTeams(ctx context.Context, homeTeamID, awayTeamID, status string) (Match, bool, error)
}
