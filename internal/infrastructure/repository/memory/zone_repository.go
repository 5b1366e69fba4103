package memory

import (
	"context"
	"sync"

	"github.com/participando/liga-api/internal/domain/zone"
)

type ZoneRepository struct {
	mu     sync.RWMutex
	items  map[string]zone.Zone
	orders []string
}

func NewZoneRepository(zones []zone.Zone) *ZoneRepository {
	items := make(map[string]zone.Zone, len(zones))
	orders := make([]string, 0, len(zones))

	for _, z := range zones {
		items[z.ID] = z
		orders = append(orders, z.ID)
	}

	return &ZoneRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ZoneRepository) ListByCategory(_ context.Context, categoryID string) ([]zone.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]zone.Zone, 0)
	for _, id := range r.orders {
		if item := r.items[id]; item.CategoryID == categoryID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *ZoneRepository) GetByID(_ context.Context, zoneID string) (zone.Zone, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[zoneID]
	return item, ok, nil
}

func (r *ZoneRepository) Create(_ context.Context, item zone.Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *ZoneRepository) Update(_ context.Context, item zone.Zone) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return false, nil
	}
	r.items[item.ID] = item

	return true, nil
}

func (r *ZoneRepository) Delete(_ context.Context, zoneID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[zoneID]; !exists {
		return false, nil
	}
	delete(r.items, zoneID)
	r.orders = removeID(r.orders, zoneID)

	return true, nil
}
