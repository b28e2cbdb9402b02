package domain

import "time"

// Course represents a course run that settings, teams and enrollments hang off.
type Course struct {
	CourseID    string     `json:"course_id" db:"course_id"`
	DisplayName string     `json:"display_name" db:"display_name"`
	Start       *time.Time `json:"start,omitempty" db:"start_date"`
}

// Started reports whether the course has a start date in the past.
func (c *Course) Started(now time.Time) bool {
	return c.Start != nil && now.After(*c.Start)
}

// Teamset is a named grouping of teams within a course. A learner may belong
// to at most one team per teamset.
type Teamset struct {
	CourseID    string `json:"course_id" db:"course_id"`
	TeamsetID   string `json:"teamset_id" db:"teamset_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
