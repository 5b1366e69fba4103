package zone

import "fmt"

// Zone is a group of teams that play each other inside a category
// (e.g. "Zona Norte"). Its CategoryID must belong to its LeagueID.
type Zone struct {
	ID         string
	Name       string
	LeagueID   string
	CategoryID string
}

func (z Zone) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("zone id is required")
	}
	if z.Name == "" {
		return fmt.Errorf("zone name is required")
	}
	if z.LeagueID == "" {
		return fmt.Errorf("zone league id is required")
	}
	if z.CategoryID == "" {
		return fmt.Errorf("zone category id is required")
	}

	return nil
}
