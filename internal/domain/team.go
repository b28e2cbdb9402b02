package domain

// Team represents a team within a course teamset.
type Team struct {
	TeamID                string `json:"team_id" db:"team_id"`
	CourseID              string `json:"course_id" db:"course_id"`
	TeamsetID             string `json:"teamset_id" db:"teamset_id"`
	Name                  string `json:"name" db:"name"`
	OrganizationProtected bool   `json:"organization_protected" db:"organization_protected"`
}

// TeamMembership links a user to a team.
type TeamMembership struct {
	TeamID string `json:"team_id" db:"team_id"`
	UserID int64  `json:"user_id" db:"user_id"`
}

// MembershipRow is a denormalized membership record used by the roster
// export and reconciliation queries.
type MembershipRow struct {
	UserID    int64
	TeamID    string
	TeamsetID string
	TeamName  string
}
