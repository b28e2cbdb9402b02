package integration

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func seedCourse(t *testing.T, db *sql.DB, courseID string, start *time.Time) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO courses (course_id, display_name, start_date) VALUES ($1, $2, $3)`,
		courseID, "Demo Course", start,
	)
	require.NoError(t, err)
}

func seedTeamset(t *testing.T, db *sql.DB, courseID, teamsetID string, position int) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO teamsets (course_id, teamset_id, name, position) VALUES ($1, $2, $2, $3)`,
		courseID, teamsetID, position,
	)
	require.NoError(t, err)
}

func seedUser(t *testing.T, db *sql.DB, userID int64, username string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO users (user_id, username, email) VALUES ($1, $2, $3)`,
		userID, username, username+"@example.com",
	)
	require.NoError(t, err)
}

func seedEnrollment(t *testing.T, db *sql.DB, userID int64, courseID, mode string, active bool) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(
		`INSERT INTO enrollments (user_id, course_id, mode, is_active) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, courseID, mode, active,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedCourseFlag(t *testing.T, db *sql.DB, courseID, flag string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO course_flags (course_id, flag, enabled) VALUES ($1, $2, TRUE)`,
		courseID, flag,
	)
	require.NoError(t, err)
}

func timePtr(v time.Time) *time.Time { return &v }
