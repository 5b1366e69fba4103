package category

import "fmt"

// Category is a competition tier inside a league (e.g. "Primera División",
// "Sub13"). IsEditable marks whether admins may remove it; some leagues ship
// with a fixed category set.
type Category struct {
	ID         string
	Name       string
	LeagueID   string
	IsEditable bool
}

func (c Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("category id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if c.LeagueID == "" {
		return fmt.Errorf("category league id is required")
	}

	return nil
}
