package zone

import "context"

// Repository describes zone persistence needs from use cases.
type Repository interface {
	ListByCategory(ctx context.Context, categoryID string) ([]Zone, error)
	GetByID(ctx context.Context, zoneID string) (Zone, bool, error)
	Create(ctx context.Context, item Zone) error
	Update(ctx context.Context, item Zone) (bool, error)
	Delete(ctx context.Context, zoneID string) (bool, error)
}
