package course

import "fmt"

// Course is a training-content listing entry. Plain CRUD, no table logic.
type Course struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Date        string
	Active      bool
}

func (c Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("course id is required")
	}
	if c.Title == "" {
		return fmt.Errorf("course title is required")
	}

	return nil
}
