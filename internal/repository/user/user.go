package user

import (
	"database/sql"
	"fmt"

	"github.com/openlms/courseadmin/internal/domain"
	"github.com/openlms/courseadmin/internal/repository"
)

// Resolve finds a user by username, email, or the external user key of a
// course enrollment. Roster csv rows identify learners by any of the three.
func Resolve(exec repository.DBTX, courseID, identifier string) (*domain.User, error) {
	query := `
		SELECT DISTINCT u.user_id, u.username, u.email, u.is_staff
		FROM users u
		LEFT JOIN enrollments e
		  ON e.user_id = u.user_id AND e.course_id = $1
		WHERE u.username = $2 OR u.email = $2 OR e.external_user_key = $2
	`
	var u domain.User
	err := exec.QueryRow(query, courseID, identifier).Scan(&u.UserID, &u.Username, &u.Email, &u.IsStaff)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve user %q: %w", identifier, err)
	}
	return &u, nil
}
