package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, t Team) error
}
