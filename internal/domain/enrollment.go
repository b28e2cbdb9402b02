package domain

import (
	"database/sql/driver"
	"fmt"
)

// Mode represents an enrollment track.
type Mode string

// Enrollment mode constants.
const (
	ModeAudit        Mode = "audit"
	ModeHonor        Mode = "honor"
	ModeVerified     Mode = "verified"
	ModeProfessional Mode = "professional"
	ModeMasters      Mode = "masters"
)

// NewMode creates a new Mode with validation.
// Returns an error if the mode is unknown.
func NewMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid enrollment mode: %s", s)
	}
	return mode, nil
}

// IsValid checks if the mode is one of the known enrollment tracks.
func (m Mode) IsValid() bool {
	switch m {
	case ModeAudit, ModeHonor, ModeVerified, ModeProfessional, ModeMasters:
		return true
	}
	return false
}

// RequiresProtectedTeam reports whether learners in this mode may only be
// placed on organization-protected teams.
func (m Mode) RequiresProtectedTeam() bool {
	return m == ModeMasters
}

// Scan implements sql.Scanner for automatic validation when reading from database.
func (m *Mode) Scan(value any) error {
	if value == nil {
		return fmt.Errorf("enrollment mode cannot be NULL")
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Mode", value)
	}

	mode, err := NewMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Value implements driver.Valuer for writing to database.
func (m Mode) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid enrollment mode value: %s", m)
	}
	return string(m), nil
}

// Enrollment represents a user's enrollment in a course.
type Enrollment struct {
	ID              int64   `json:"id" db:"id"`
	UserID          int64   `json:"user_id" db:"user_id"`
	CourseID        string  `json:"course_id" db:"course_id"`
	Mode            Mode    `json:"mode" db:"mode"`
	IsActive        bool    `json:"is_active" db:"is_active"`
	ExternalUserKey *string `json:"external_user_key,omitempty" db:"external_user_key"`
}

// RosterLearner is an enrolled learner as it appears in the team membership
// roster: identified by external user key when present, else username.
type RosterLearner struct {
	UserID          int64
	Username        string
	Mode            Mode
	ExternalUserKey *string
}

// Identifier returns the value written to the roster csv "user" column.
func (l RosterLearner) Identifier() string {
	if l.ExternalUserKey != nil && *l.ExternalUserKey != "" {
		return *l.ExternalUserKey
	}
	return l.Username
}

// EnrollmentAttribute is an arbitrary namespaced key-value pair attached to
// an enrollment, e.g. the salesforce opportunity id.
type EnrollmentAttribute struct {
	ID           int64  `json:"id" db:"id"`
	EnrollmentID int64  `json:"enrollment_id" db:"enrollment_id"`
	Namespace    string `json:"namespace" db:"namespace"`
	Name         string `json:"name" db:"name"`
	Value        string `json:"value" db:"value"`
}
