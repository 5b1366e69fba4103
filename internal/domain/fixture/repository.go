package fixture

import "context"

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	ListByZone(ctx context.Context, zoneID string) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	Create(ctx context.Context, item Fixture) error
	Update(ctx context.Context, item Fixture) (bool, error)
	Delete(ctx context.Context, fixtureID string) (bool, error)
	DeleteByZone(ctx context.Context, zoneID string) (int, error)

	// FindByMatch locates the fixture owning matchID.
	FindByMatch(ctx context.Context, matchID string) (Fixture, Match, bool, error)
	// UpdateMatch replaces the stored match identified by item.ID in place.
	UpdateMatch(ctx context.Context, item Match) (bool, error)
	// RemoveTeamMatches deletes every match in which the team plays, across
	// all fixtures, without deleting the enclosing fixtures. Returns the
	// number of matches removed.
	RemoveTeamMatches(ctx context.Context, teamID string) (int, error)
}
