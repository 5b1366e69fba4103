package standing

import "testing"

func TestApplyResult_HomeWin(t *testing.T) {
	t.Parallel()

	home := Standing{ID: "s1", TeamID: "team-a", ZoneID: "z1"}
	away := Standing{ID: "s2", TeamID: "team-b", ZoneID: "z1"}

	ApplyResult(&home, &away, 2, 1)

	if home.Played != 1 || home.Won != 1 || home.Points != 3 || home.GoalsFor != 2 || home.GoalsAgainst != 1 {
		t.Fatalf("unexpected home row: %+v", home)
	}
	if away.Played != 1 || away.Lost != 1 || away.Points != 0 || away.GoalsFor != 1 || away.GoalsAgainst != 2 {
		t.Fatalf("unexpected away row: %+v", away)
	}
}

func TestApplyResult_GoallessDrawCounts(t *testing.T) {
	t.Parallel()

	home := Standing{ID: "s1", TeamID: "team-a", ZoneID: "z1"}
	away := Standing{ID: "s2", TeamID: "team-b", ZoneID: "z1"}

	ApplyResult(&home, &away, 0, 0)

	for _, row := range []Standing{home, away} {
		if row.Played != 1 || row.Drawn != 1 || row.Points != 1 {
			t.Fatalf("0-0 must count as a played draw, got %+v", row)
		}
	}
}

func TestApplyResult_InvariantsHold(t *testing.T) {
	t.Parallel()

	results := [][2]int{{2, 1}, {0, 0}, {0, 3}, {4, 4}, {1, 0}}
	home := Standing{ID: "s1", TeamID: "team-a", ZoneID: "z1"}
	away := Standing{ID: "s2", TeamID: "team-b", ZoneID: "z1"}

	for _, r := range results {
		ApplyResult(&home, &away, r[0], r[1])
	}

	for _, row := range []Standing{home, away} {
		if row.Won+row.Drawn+row.Lost != row.Played {
			t.Fatalf("won+drawn+lost != played: %+v", row)
		}
	}
	if home.GoalsFor != away.GoalsAgainst || away.GoalsFor != home.GoalsAgainst {
		t.Fatalf("goal deltas are not symmetric: home=%+v away=%+v", home, away)
	}
}

func TestReverseResult_UndoesApply(t *testing.T) {
	t.Parallel()

	home := Standing{ID: "s1", TeamID: "team-a", ZoneID: "z1", Points: 7, Played: 4, Won: 2, Drawn: 1, Lost: 1, GoalsFor: 9, GoalsAgainst: 5}
	away := Standing{ID: "s2", TeamID: "team-b", ZoneID: "z1", Points: 4, Played: 4, Won: 1, Drawn: 1, Lost: 2, GoalsFor: 3, GoalsAgainst: 6}
	wantHome, wantAway := home, away

	ApplyResult(&home, &away, 3, 3)
	ReverseResult(&home, &away, 3, 3)

	if home != wantHome || away != wantAway {
		t.Fatalf("reverse did not restore rows: home=%+v away=%+v", home, away)
	}
}

func TestSortTable_Order(t *testing.T) {
	t.Parallel()

	rows := []Standing{
		{ID: "s1", TeamID: "team-a", Points: 6, GoalsFor: 5, GoalsAgainst: 4},
		{ID: "s2", TeamID: "team-b", Points: 9, GoalsFor: 7, GoalsAgainst: 2},
		{ID: "s3", TeamID: "team-c", Points: 6, GoalsFor: 8, GoalsAgainst: 4},
		{ID: "s4", TeamID: "team-d", Points: 6, GoalsFor: 6, GoalsAgainst: 2},
	}

	SortTable(rows)

	want := []string{"team-b", "team-d", "team-c", "team-a"}
	for i, teamID := range want {
		if rows[i].TeamID != teamID {
			t.Fatalf("position %d: want %s, got %s", i+1, teamID, rows[i].TeamID)
		}
	}
}

func TestSortTable_StableOnFullTie(t *testing.T) {
	t.Parallel()

	rows := []Standing{
		{ID: "s1", TeamID: "team-a", Points: 3, GoalsFor: 2, GoalsAgainst: 1},
		{ID: "s2", TeamID: "team-b", Points: 3, GoalsFor: 2, GoalsAgainst: 1},
	}

	SortTable(rows)

	if rows[0].TeamID != "team-a" || rows[1].TeamID != "team-b" {
		t.Fatalf("full tie must keep insertion order, got %s then %s", rows[0].TeamID, rows[1].TeamID)
	}
}
