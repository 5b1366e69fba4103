package standing

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ListByZone(ctx context.Context, zoneID string) ([]Standing, error)
	GetByID(ctx context.Context, standingID string) (Standing, bool, error)
	GetByTeamAndZone(ctx context.Context, teamID, zoneID string) (Standing, bool, error)
	// Upsert inserts the row or, when a row for (TeamID, ZoneID) already
	// exists, replaces it in place keeping the stored id.
	Upsert(ctx context.Context, item Standing) (Standing, error)
	Update(ctx context.Context, item Standing) (bool, error)
	// UpdatePair replaces both rows under one lock so a reconciled result is
	// visible either for both teams or for neither.
	UpdatePair(ctx context.Context, home, away Standing) error
	Delete(ctx context.Context, standingID string) (bool, error)
	DeleteByTeam(ctx context.Context, teamID string) (int, error)
	DeleteByZone(ctx context.Context, zoneID string) (int, error)
}
