package course

import (
	"database/sql"
	"fmt"

	"github.com/openlms/courseadmin/internal/domain"
	"github.com/openlms/courseadmin/internal/repository"
)

// Get retrieves a course by id.
func Get(exec repository.DBTX, courseID string) (*domain.Course, error) {
	query := `
		SELECT course_id, display_name, start_date
		FROM courses
		WHERE course_id = $1
	`
	var c domain.Course
	err := exec.QueryRow(query, courseID).Scan(&c.CourseID, &c.DisplayName, &c.Start)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &c, nil
}

// Teamsets retrieves the course's teamsets in configuration order.
func Teamsets(exec repository.DBTX, courseID string) ([]domain.Teamset, error) {
	query := `
		SELECT course_id, teamset_id, name, description
		FROM teamsets
		WHERE course_id = $1
		ORDER BY position
	`
	rows, err := exec.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teamsets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	teamsets := make([]domain.Teamset, 0)
	for rows.Next() {
		var ts domain.Teamset
		if err := rows.Scan(&ts.CourseID, &ts.TeamsetID, &ts.Name, &ts.Description); err != nil {
			return nil, fmt.Errorf("failed to scan teamset: %w", err)
		}
		teamsets = append(teamsets, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return teamsets, nil
}

// FlagEnabled checks whether a per-course flag is enabled.
// A missing row means disabled.
func FlagEnabled(exec repository.DBTX, courseID, flag string) (bool, error) {
	var enabled bool
	query := `SELECT enabled FROM course_flags WHERE course_id = $1 AND flag = $2`
	err := exec.QueryRow(query, courseID, flag).Scan(&enabled)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check course flag: %w", err)
	}
	return enabled, nil
}
