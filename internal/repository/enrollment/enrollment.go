package enrollment

import (
	"database/sql"
	"fmt"

	"github.com/openlms/courseadmin/internal/domain"
	"github.com/openlms/courseadmin/internal/repository"
)

// Get retrieves an enrollment by user and course.
func Get(exec repository.DBTX, userID int64, courseID string) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, mode, is_active, external_user_key
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`
	var e domain.Enrollment
	err := exec.QueryRow(query, userID, courseID).Scan(
		&e.ID,
		&e.UserID,
		&e.CourseID,
		&e.Mode,
		&e.IsActive,
		&e.ExternalUserKey,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return &e, nil
}

// ActiveLearners returns all actively enrolled learners in the course,
// ordered by username.
func ActiveLearners(exec repository.DBTX, courseID string) ([]domain.RosterLearner, error) {
	query := `
		SELECT u.user_id, u.username, e.mode, e.external_user_key
		FROM enrollments e
		JOIN users u ON u.user_id = e.user_id
		WHERE e.course_id = $1 AND e.is_active = true
		ORDER BY u.username
	`
	rows, err := exec.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active learners: %w", err)
	}
	defer func() { _ = rows.Close() }()

	learners := make([]domain.RosterLearner, 0)
	for rows.Next() {
		var l domain.RosterLearner
		if err := rows.Scan(&l.UserID, &l.Username, &l.Mode, &l.ExternalUserKey); err != nil {
			return nil, fmt.Errorf("failed to scan learner: %w", err)
		}
		learners = append(learners, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return learners, nil
}

// UpsertAttribute creates or updates a namespaced attribute on an enrollment.
func UpsertAttribute(exec repository.DBTX, enrollmentID int64, namespace, name, value string) error {
	query := `
		INSERT INTO enrollment_attributes (enrollment_id, namespace, name, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (enrollment_id, namespace, name)
		DO UPDATE SET value = EXCLUDED.value
	`
	_, err := exec.Exec(query, enrollmentID, namespace, name, value)
	if err != nil {
		return fmt.Errorf("failed to upsert enrollment attribute: %w", err)
	}
	return nil
}

// GetAttribute retrieves a namespaced attribute of an enrollment.
func GetAttribute(exec repository.DBTX, enrollmentID int64, namespace, name string) (*domain.EnrollmentAttribute, error) {
	query := `
		SELECT id, enrollment_id, namespace, name, value
		FROM enrollment_attributes
		WHERE enrollment_id = $1 AND namespace = $2 AND name = $3
	`
	var a domain.EnrollmentAttribute
	err := exec.QueryRow(query, enrollmentID, namespace, name).Scan(
		&a.ID,
		&a.EnrollmentID,
		&a.Namespace,
		&a.Name,
		&a.Value,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get enrollment attribute: %w", err)
	}
	return &a, nil
}
