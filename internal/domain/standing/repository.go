package standing

import "context"

// Repository describes points-table persistence needs from use cases.
type Repository interface {
	// ListRanked returns entries with Team populated, ordered by points then net run rate.
	ListRanked(ctx context.Context) ([]Entry, error)
	// UpsertByTeam inserts or overwrites the row for entry.TeamID, keeping an existing row id.
	UpsertByTeam(ctx context.Context, entry Entry) error
}
