package memory

import (
	"context"
	"sync"

	"github.com/participando/liga-api/internal/domain/category"
)

type CategoryRepository struct {
	mu     sync.RWMutex
	items  map[string]category.Category
	orders []string
}

func NewCategoryRepository(categories []category.Category) *CategoryRepository {
	items := make(map[string]category.Category, len(categories))
	orders := make([]string, 0, len(categories))

	for _, c := range categories {
		items[c.ID] = c
		orders = append(orders, c.ID)
	}

	return &CategoryRepository{
		items:  items,
		orders: orders,
	}
}

func (r *CategoryRepository) ListByLeague(_ context.Context, leagueID string) ([]category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]category.Category, 0)
	for _, id := range r.orders {
		if item := r.items[id]; item.LeagueID == leagueID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *CategoryRepository) GetByID(_ context.Context, categoryID string) (category.Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[categoryID]
	return item, ok, nil
}

func (r *CategoryRepository) Create(_ context.Context, item category.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *CategoryRepository) Update(_ context.Context, item category.Category) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return false, nil
	}
	r.items[item.ID] = item

	return true, nil
}

func (r *CategoryRepository) Delete(_ context.Context, categoryID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[categoryID]; !exists {
		return false, nil
	}
	delete(r.items, categoryID)
	r.orders = removeID(r.orders, categoryID)

	return true, nil
}
