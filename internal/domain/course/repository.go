package course

import "context"

// Repository describes course persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, courseID string) (Course, bool, error)
	Create(ctx context.Context, item Course) error
	Update(ctx context.Context, item Course) (bool, error)
	Delete(ctx context.Context, courseID string) (bool, error)
}
