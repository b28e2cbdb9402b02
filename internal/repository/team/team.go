package team

import (
	"database/sql"
	"fmt"

	"github.com/openlms/courseadmin/internal/domain"
	"github.com/openlms/courseadmin/internal/repository"
)

// Create inserts a new team.
func Create(exec repository.DBTX, t *domain.Team) error {
	query := `
		INSERT INTO teams (team_id, course_id, teamset_id, name, organization_protected)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := exec.Exec(query, t.TeamID, t.CourseID, t.TeamsetID, t.Name, t.OrganizationProtected)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// GetByName retrieves a team by its name within a course teamset.
func GetByName(exec repository.DBTX, courseID, teamsetID, name string) (*domain.Team, error) {
	query := `
		SELECT team_id, course_id, teamset_id, name, organization_protected
		FROM teams
		WHERE course_id = $1 AND teamset_id = $2 AND name = $3
	`
	var t domain.Team
	err := exec.QueryRow(query, courseID, teamsetID, name).Scan(
		&t.TeamID,
		&t.CourseID,
		&t.TeamsetID,
		&t.Name,
		&t.OrganizationProtected,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &t, nil
}

// AddMember adds a user to a team.
func AddMember(exec repository.DBTX, teamID string, userID int64) error {
	query := `INSERT INTO team_memberships (team_id, user_id) VALUES ($1, $2)`
	_, err := exec.Exec(query, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a team.
func RemoveMember(exec repository.DBTX, teamID string, userID int64) error {
	query := `DELETE FROM team_memberships WHERE team_id = $1 AND user_id = $2`
	result, err := exec.Exec(query, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// MembershipsByCourse returns every membership in the course, with the team's
// teamset and name attached. Scoped to a single course so reconciliation
// never reaches across similarly named teamsets in other courses.
func MembershipsByCourse(exec repository.DBTX, courseID string) ([]domain.MembershipRow, error) {
	query := `
		SELECT m.user_id, t.team_id, t.teamset_id, t.name
		FROM team_memberships m
		JOIN teams t ON t.team_id = m.team_id
		WHERE t.course_id = $1
	`
	rows, err := exec.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course memberships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	memberships := make([]domain.MembershipRow, 0)
	for rows.Next() {
		var m domain.MembershipRow
		if err := rows.Scan(&m.UserID, &m.TeamID, &m.TeamsetID, &m.TeamName); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}
