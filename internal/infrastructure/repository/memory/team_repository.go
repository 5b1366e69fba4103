package memory

import (
	"context"
	"sync"

	"github.com/participando/liga-api/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamRepository) ListByZone(_ context.Context, zoneID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.orders {
		if item := r.items[id]; item.ZoneID == zoneID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return false, nil
	}
	r.items[item.ID] = item

	return true, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[teamID]; !exists {
		return false, nil
	}
	delete(r.items, teamID)
	r.orders = removeID(r.orders, teamID)

	return true, nil
}

func (r *TeamRepository) DeleteByZone(_ context.Context, zoneID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	kept := r.orders[:0]
	for _, id := range r.orders {
		if r.items[id].ZoneID == zoneID {
			delete(r.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.orders = kept

	return removed, nil
}
