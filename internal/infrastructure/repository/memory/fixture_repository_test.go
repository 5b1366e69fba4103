package memory

import (
	"context"
	"testing"

	"github.com/participando/liga-api/internal/domain/fixture"
)

func seedFixture() fixture.Fixture {
	return fixture.Fixture{
		ID:     "fix_1",
		Date:   "1° FECHA",
		ZoneID: "zone_1",
		Matches: []fixture.Match{
			{ID: "m_1", FixtureID: "fix_1", HomeTeamID: "team_a", AwayTeamID: "team_b"},
			{ID: "m_2", FixtureID: "fix_1", HomeTeamID: "team_c", AwayTeamID: "team_a"},
		},
	}
}

func TestFixtureRepository_ReturnsClones(t *testing.T) {
	t.Parallel()

	repo := NewFixtureRepository([]fixture.Fixture{seedFixture()})

	got, ok, err := repo.GetByID(context.Background(), "fix_1")
	if err != nil || !ok {
		t.Fatalf("GetByID: ok=%v err=%v", ok, err)
	}

	// Mutating the returned value must not leak into the store.
	got.Matches[0].HomeTeamID = "hacked"
	score := 9
	got.Matches[0].HomeScore = &score

	again, _, err := repo.GetByID(context.Background(), "fix_1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if again.Matches[0].HomeTeamID != "team_a" || again.Matches[0].HomeScore != nil {
		t.Fatalf("stored fixture was mutated through a returned clone: %+v", again.Matches[0])
	}
}

func TestFixtureRepository_UpdateMatchRestampsFixtureID(t *testing.T) {
	t.Parallel()

	repo := NewFixtureRepository([]fixture.Fixture{seedFixture()})

	home, away := 2, 1
	ok, err := repo.UpdateMatch(context.Background(), fixture.Match{
		ID:         "m_1",
		FixtureID:  "someone-elses-fixture",
		HomeTeamID: "team_a",
		AwayTeamID: "team_b",
		HomeScore:  &home,
		AwayScore:  &away,
		Played:     true,
	})
	if err != nil {
		t.Fatalf("UpdateMatch error: %v", err)
	}
	if !ok {
		t.Fatal("expected match to be found")
	}

	owner, m, found, err := repo.FindByMatch(context.Background(), "m_1")
	if err != nil || !found {
		t.Fatalf("FindByMatch: found=%v err=%v", found, err)
	}
	if owner.ID != "fix_1" || m.FixtureID != "fix_1" {
		t.Fatalf("match should stay bound to its owning fixture, got %q", m.FixtureID)
	}
	if !m.Played || m.HomeScore == nil || *m.HomeScore != 2 {
		t.Fatalf("unexpected match state: %+v", m)
	}
}

func TestFixtureRepository_UpdateMatchUnknownID(t *testing.T) {
	t.Parallel()

	repo := NewFixtureRepository([]fixture.Fixture{seedFixture()})

	ok, err := repo.UpdateMatch(context.Background(), fixture.Match{ID: "m_missing"})
	if err != nil {
		t.Fatalf("UpdateMatch error: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown match id")
	}
}

func TestFixtureRepository_RemoveTeamMatches(t *testing.T) {
	t.Parallel()

	repo := NewFixtureRepository([]fixture.Fixture{seedFixture()})

	removed, err := repo.RemoveTeamMatches(context.Background(), "team_a")
	if err != nil {
		t.Fatalf("RemoveTeamMatches error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	got, _, err := repo.GetByID(context.Background(), "fix_1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(got.Matches) != 0 {
		t.Fatalf("expected no matches left, got %d", len(got.Matches))
	}
}
