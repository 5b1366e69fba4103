package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestUpdateMatchResult_AppliesWinToBothRows(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	service := w.fixtureService()

	result, err := service.UpdateMatchResult(context.Background(), "match_a", 2, 1)
	if err != nil {
		t.Fatalf("UpdateMatchResult error: %v", err)
	}
	if !result.StandingsApplied {
		t.Fatal("expected standings to be applied")
	}
	if !result.Match.Played || result.Match.HomeScore == nil || *result.Match.HomeScore != 2 {
		t.Fatalf("unexpected match state: %+v", result.Match)
	}

	home, _, err := w.standingRepo.GetByTeamAndZone(context.Background(), "team_h", "zone_a")
	if err != nil {
		t.Fatalf("get home standing: %v", err)
	}
	if home.Points != 3 || home.Played != 1 || home.Won != 1 || home.GoalsFor != 2 || home.GoalsAgainst != 1 {
		t.Fatalf("unexpected home row: %+v", home)
	}

	away, _, err := w.standingRepo.GetByTeamAndZone(context.Background(), "team_v", "zone_a")
	if err != nil {
		t.Fatalf("get away standing: %v", err)
	}
	if away.Points != 0 || away.Played != 1 || away.Lost != 1 || away.GoalsFor != 1 || away.GoalsAgainst != 2 {
		t.Fatalf("unexpected away row: %+v", away)
	}
}

func TestUpdateMatchResult_GoallessDrawStillCounts(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	service := w.fixtureService()

	result, err := service.UpdateMatchResult(context.Background(), "match_a", 0, 0)
	if err != nil {
		t.Fatalf("UpdateMatchResult error: %v", err)
	}
	if !result.StandingsApplied {
		t.Fatal("expected standings to be applied for a 0-0 draw")
	}

	for _, teamID := range []string{"team_h", "team_v"} {
		row, _, err := w.standingRepo.GetByTeamAndZone(context.Background(), teamID, "zone_a")
		if err != nil {
			t.Fatalf("get standing for %s: %v", teamID, err)
		}
		if row.Points != 1 || row.Played != 1 || row.Drawn != 1 {
			t.Fatalf("unexpected row for %s: %+v", teamID, row)
		}
	}
}

func TestUpdateMatchResult_ReentryDoesNotDoubleCount(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	service := w.fixtureService()

	if _, err := service.UpdateMatchResult(context.Background(), "match_a", 2, 1); err != nil {
		t.Fatalf("first entry: %v", err)
	}
	if _, err := service.UpdateMatchResult(context.Background(), "match_a", 1, 1); err != nil {
		t.Fatalf("correction: %v", err)
	}

	home, _, err := w.standingRepo.GetByTeamAndZone(context.Background(), "team_h", "zone_a")
	if err != nil {
		t.Fatalf("get home standing: %v", err)
	}
	if home.Played != 1 {
		t.Fatalf("expected played=1 after correction, got %d", home.Played)
	}
	if home.Points != 1 || home.Won != 0 || home.Drawn != 1 {
		t.Fatalf("unexpected home row after correction: %+v", home)
	}

	away, _, err := w.standingRepo.GetByTeamAndZone(context.Background(), "team_v", "zone_a")
	if err != nil {
		t.Fatalf("get away standing: %v", err)
	}
	if away.Points != 1 || away.Played != 1 || away.GoalsFor != 1 || away.GoalsAgainst != 1 {
		t.Fatalf("unexpected away row after correction: %+v", away)
	}
}

func TestUpdateMatchResult_MissingStandingRowSkipsReconciliation(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	if _, err := w.standingRepo.Delete(context.Background(), "st_v"); err != nil {
		t.Fatalf("delete seed row: %v", err)
	}
	service := w.fixtureService()

	result, err := service.UpdateMatchResult(context.Background(), "match_a", 3, 0)
	if err != nil {
		t.Fatalf("UpdateMatchResult error: %v", err)
	}
	if result.StandingsApplied {
		t.Fatal("expected standings reconciliation to be skipped")
	}
	if !result.Match.Played {
		t.Fatal("score should still be recorded on the match")
	}

	home, _, err := w.standingRepo.GetByTeamAndZone(context.Background(), "team_h", "zone_a")
	if err != nil {
		t.Fatalf("get home standing: %v", err)
	}
	if home.Played != 0 || home.Points != 0 {
		t.Fatalf("home row should be untouched: %+v", home)
	}
}

func TestUpdateMatchResult_UnknownMatch(t *testing.T) {
	t.Parallel()

	service := newTestWorld().fixtureService()

	_, err := service.UpdateMatchResult(context.Background(), "match_missing", 1, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMatchResult_NegativeScoreRejected(t *testing.T) {
	t.Parallel()

	service := newTestWorld().fixtureService()

	_, err := service.UpdateMatchResult(context.Background(), "match_a", -1, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFixtureService_CreateAssignsMatchIDs(t *testing.T) {
	t.Parallel()

	w := newTestWorld()
	service := w.fixtureService()

	created, err := service.Create(context.Background(), CreateFixtureInput{
		Date:      "2° FECHA",
		MatchDate: "5 DE ABRIL",
		ZoneID:    "zone_a",
		Matches: []CreateMatchInput{
			{HomeTeamID: "team_v", AwayTeamID: "team_h"},
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.LeagueID != "liga_a" || created.CategoryID != "cat_a" {
		t.Fatalf("fixture did not inherit zone lineage: %+v", created)
	}
	if len(created.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(created.Matches))
	}
	m := created.Matches[0]
	if m.ID == "" || m.FixtureID != created.ID || m.Played {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestFixtureService_CreateUnknownZone(t *testing.T) {
	t.Parallel()

	service := newTestWorld().fixtureService()

	_, err := service.Create(context.Background(), CreateFixtureInput{Date: "x", ZoneID: "zone_missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFixtureService_DeleteUnknownFixture(t *testing.T) {
	t.Parallel()

	service := newTestWorld().fixtureService()

	if err := service.Delete(context.Background(), "fix_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
