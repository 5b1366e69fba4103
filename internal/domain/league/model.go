package league

import "fmt"

// League is the root grouping for all competition data. Leagues are seeded at
// startup and never deleted through the admin surface.
type League struct {
	ID          string
	Name        string
	Description string
	Logo        string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
