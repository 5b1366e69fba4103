package memory

import (
	"context"
	"sync"

	"github.com/participando/liga-api/internal/domain/fixture"
)

type FixtureRepository struct {
	mu     sync.RWMutex
	items  map[string]fixture.Fixture
	orders []string
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	items := make(map[string]fixture.Fixture, len(fixtures))
	orders := make([]string, 0, len(fixtures))

	for _, f := range fixtures {
		items[f.ID] = cloneFixture(f)
		orders = append(orders, f.ID)
	}

	return &FixtureRepository{
		items:  items,
		orders: orders,
	}
}

func (r *FixtureRepository) ListByZone(_ context.Context, zoneID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, id := range r.orders {
		if item := r.items[id]; item.ZoneID == zoneID {
			out = append(out, cloneFixture(item))
		}
	}

	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[fixtureID]
	if !ok {
		return fixture.Fixture{}, false, nil
	}

	return cloneFixture(item), true, nil
}

func (r *FixtureRepository) Create(_ context.Context, item fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = cloneFixture(item)

	return nil
}

func (r *FixtureRepository) Update(_ context.Context, item fixture.Fixture) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return false, nil
	}
	r.items[item.ID] = cloneFixture(item)

	return true, nil
}

func (r *FixtureRepository) Delete(_ context.Context, fixtureID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[fixtureID]; !exists {
		return false, nil
	}
	delete(r.items, fixtureID)
	r.orders = removeID(r.orders, fixtureID)

	return true, nil
}

func (r *FixtureRepository) DeleteByZone(_ context.Context, zoneID string) (int, error) {
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

func (r *FixtureRepository) FindByMatch(_ context.Context, matchID string) (fixture.Fixture, fixture.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		item := r.items[id]
		for _, m := range item.Matches {
			if m.ID == matchID {
				return cloneFixture(item), cloneMatch(m), true, nil
			}
		}
	}

	return fixture.Fixture{}, fixture.Match{}, false, nil
}

func (r *FixtureRepository) UpdateMatch(_ context.Context, item fixture.Match) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.orders {
		f := r.items[id]
		for idx := range f.Matches {
			if f.Matches[idx].ID == item.ID {
				f.Matches[idx] = cloneMatch(item)
				f.Matches[idx].FixtureID = f.ID
				r.items[id] = f
				return true, nil
			}
		}
	}

	return false, nil
}

func (r *FixtureRepository) RemoveTeamMatches(_ context.Context, teamID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, id := range r.orders {
		f := r.items[id]
		kept := make([]fixture.Match, 0, len(f.Matches))
		for _, m := range f.Matches {
			if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		if len(kept) != len(f.Matches) {
			f.Matches = kept
			r.items[id] = f
		}
	}

	return removed, nil
}

// cloneFixture copies the match slice and score pointers so callers cannot
// mutate stored state through returned values.
func cloneFixture(f fixture.Fixture) fixture.Fixture {
	out := f
	out.Matches = make([]fixture.Match, len(f.Matches))
	for i, m := range f.Matches {
		out.Matches[i] = cloneMatch(m)
	}
	return out
}

func cloneMatch(m fixture.Match) fixture.Match {
	out := m
	if m.HomeScore != nil {
		v := *m.HomeScore
		out.HomeScore = &v
	}
	if m.AwayScore != nil {
		v := *m.AwayScore
		out.AwayScore = &v
	}
	return out
}
