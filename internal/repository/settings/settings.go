package settings

import (
	"encoding/json"
	"fmt"

	"github.com/openlms/courseadmin/internal/repository"
)

// GetAll retrieves every stored settings override for the course, keyed by
// field name. Fields without a stored row fall back to registry defaults.
func GetAll(exec repository.DBTX, courseID string) (map[string]json.RawMessage, error) {
	query := `SELECT name, value FROM course_settings WHERE course_id = $1`
	rows, err := exec.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course settings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	values := make(map[string]json.RawMessage)
	for rows.Next() {
		var name string
		var value []byte
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		values[name] = json.RawMessage(value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return values, nil
}

// Upsert stores a settings override for the course.
func Upsert(exec repository.DBTX, courseID, name string, value json.RawMessage) error {
	query := `
		INSERT INTO course_settings (course_id, name, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id, name)
		DO UPDATE SET value = EXCLUDED.value
	`
	_, err := exec.Exec(query, courseID, name, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", name, err)
	}
	return nil
}
