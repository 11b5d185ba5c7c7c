package livematch

import "context"

// Repository persists the singleton row keyed by CurrentID.
type Repository interface {
	Get(ctx context.Context) (LiveMatch, bool, error)
	Upsert(ctx context.Context, m LiveMatch) error
	// UpdateStatus changes only status (and the update time) and reports whether a row existed.
	UpdateStatus(ctx context.Context, status string) (bool, error)
}
