package memory

import (
	"context"
	"sync"

	"github.com/participando/liga-api/internal/domain/standing"
)

type StandingRepository struct {
	mu     sync.RWMutex
	items  map[string]standing.Standing
	orders []string
}

func NewStandingRepository(standings []standing.Standing) *StandingRepository {
	r := &StandingRepository{
		items:  make(map[string]standing.Standing, len(standings)),
		orders: make([]string, 0, len(standings)),
	}
	for _, s := range standings {
		r.upsertLocked(s)
	}

	return r
}

func (r *StandingRepository) ListByZone(_ context.Context, zoneID string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for _, id := range r.orders {
		if item := r.items[id]; item.ZoneID == zoneID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *StandingRepository) GetByID(_ context.Context, standingID string) (standing.Standing, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[standingID]
	return item, ok, nil
}

func (r *StandingRepository) GetByTeamAndZone(_ context.Context, teamID, zoneID string) (standing.Standing, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.findByTeamAndZoneLocked(teamID, zoneID)
	return item, ok, nil
}

func (r *StandingRepository) Upsert(_ context.Context, item standing.Standing) (standing.Standing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.upsertLocked(item), nil
}

func (r *StandingRepository) Update(_ context.Context, item standing.Standing) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return false, nil
	}
	r.items[item.ID] = item

	return true, nil
}

func (r *StandingRepository) UpdatePair(_ context.Context, home, away standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[home.ID] = home
	r.items[away.ID] = away

	return nil
}

func (r *StandingRepository) Delete(_ context.Context, standingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[standingID]; !exists {
		return false, nil
	}
	delete(r.items, standingID)
	r.orders = removeID(r.orders, standingID)

	return true, nil
}

func (r *StandingRepository) DeleteByTeam(_ context.Context, teamID string) (int, error) {
	return r.deleteWhere(func(s standing.Standing) bool { return s.TeamID == teamID })
}

func (r *StandingRepository) DeleteByZone(_ context.Context, zoneID string) (int, error) {
	return r.deleteWhere(func(s standing.Standing) bool { return s.ZoneID == zoneID })
}

func (r *StandingRepository) deleteWhere(match func(standing.Standing) bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	kept := r.orders[:0]
	for _, id := range r.orders {
		if match(r.items[id]) {
			delete(r.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.orders = kept

	return removed, nil
}

// upsertLocked keeps at most one row per (teamID, zoneID): an incoming row for
// an already-tracked pair replaces the existing one and keeps its stored id.
func (r *StandingRepository) upsertLocked(item standing.Standing) standing.Standing {
	if existing, ok := r.findByTeamAndZoneLocked(item.TeamID, item.ZoneID); ok {
		item.ID = existing.ID
		r.items[item.ID] = item
		return item
	}

	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)
	return item
}

func (r *StandingRepository) findByTeamAndZoneLocked(teamID, zoneID string) (standing.Standing, bool) {
	for _, id := range r.orders {
		item := r.items[id]
		if item.TeamID == teamID && item.ZoneID == zoneID {
			return item, true
		}
	}

	return standing.Standing{}, false
}
