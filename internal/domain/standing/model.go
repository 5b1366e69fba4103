package standing

import "fmt"

// Standing is one league-table row. At most one row exists per
// (TeamID, ZoneID) pair; the store enforces the invariant.
type Standing struct {
	ID           string
	TeamID       string
	LeagueID     string
	CategoryID   string
	ZoneID       string
	Points       int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
}

// GoalDifference is the standings tie-break after points.
func (s Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

func (s Standing) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("standing id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("standing team id is required")
	}
	if s.ZoneID == "" {
		return fmt.Errorf("standing zone id is required")
	}

	return nil
}
