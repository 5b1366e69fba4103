package category

import "context"

// Repository describes category persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Category, error)
	GetByID(ctx context.Context, categoryID string) (Category, bool, error)
	Create(ctx context.Context, item Category) error
	Update(ctx context.Context, item Category) (bool, error)
	Delete(ctx context.Context, categoryID string) (bool, error)
}
