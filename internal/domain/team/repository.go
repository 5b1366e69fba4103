package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByZone(ctx context.Context, zoneID string) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) (bool, error)
	Delete(ctx context.Context, teamID string) (bool, error)
	DeleteByZone(ctx context.Context, zoneID string) (int, error)
}
