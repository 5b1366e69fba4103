package team

import "fmt"

// Team is a club registered in one zone. The league/category/zone triple must
// be mutually consistent (the zone's category and league match the team's).
type Team struct {
	ID         string
	Name       string
	Logo       string
	LeagueID   string
	CategoryID string
	ZoneID     string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.CategoryID == "" {
		return fmt.Errorf("team category id is required")
	}
	if t.ZoneID == "" {
		return fmt.Errorf("team zone id is required")
	}

	return nil
}
