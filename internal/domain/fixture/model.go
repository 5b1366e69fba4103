package fixture

import "fmt"

// Match is one game inside a fixture round. Scores are nil until a result is
// recorded; Played is true once both scores are set.
type Match struct {
	ID         string
	FixtureID  string
	HomeTeamID string
	AwayTeamID string
	HomeScore  *int
	AwayScore  *int
	Played     bool
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID == "" {
		return fmt.Errorf("match away team id is required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match teams must differ")
	}

	return nil
}

// Fixture groups all matches of one round within one zone. Date is the round
// label ("1° FECHA") and MatchDate a free-text display date ("29 DE MARZO");
// neither is a parsed calendar date.
type Fixture struct {
	ID         string
	Date       string
	MatchDate  string
	LeagueID   string
	CategoryID string
	ZoneID     string
	Matches    []Match
}

func (f Fixture) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fixture id is required")
	}
	if f.Date == "" {
		return fmt.Errorf("fixture round label is required")
	}
	if f.LeagueID == "" {
		return fmt.Errorf("fixture league id is required")
	}
	if f.CategoryID == "" {
		return fmt.Errorf("fixture category id is required")
	}
	if f.ZoneID == "" {
		return fmt.Errorf("fixture zone id is required")
	}
	for _, m := range f.Matches {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	return nil
}
