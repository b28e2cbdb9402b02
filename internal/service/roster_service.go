package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlms/courseadmin/internal/csvutil"
	"github.com/openlms/courseadmin/internal/domain"
	"github.com/openlms/courseadmin/internal/events"
	"github.com/openlms/courseadmin/internal/repository"
	courserepo "github.com/openlms/courseadmin/internal/repository/course"
	enrollmentrepo "github.com/openlms/courseadmin/internal/repository/enrollment"
	teamrepo "github.com/openlms/courseadmin/internal/repository/team"
	userrepo "github.com/openlms/courseadmin/internal/repository/user"
	"github.com/openlms/courseadmin/internal/roster"
)

// RosterService handles team membership csv export and import.
type RosterService struct {
	db        *sql.DB
	publisher events.Publisher
	logger    *zap.Logger
}

// NewRosterService creates a new roster service.
func NewRosterService(db *sql.DB, publisher events.Publisher, logger *zap.Logger) *RosterService {
	return &RosterService{
		db:        db,
		publisher: publisher,
		logger:    logger,
	}
}

// ImportResult summarizes a roster import. A non-empty Errors list means
// nothing was changed.
type ImportResult struct {
	Rows    int      `json:"rows"`
	Added   int      `json:"added"`
	Removed int      `json:"removed"`
	Errors  []string `json:"errors,omitempty"`
}

// ExportCSV writes the course's team membership roster to w: one row per
// actively enrolled learner, ordered by username, one column per teamset.
func (s *RosterService) ExportCSV(courseID string, w io.Writer) error {
	if _, err := courserepo.Get(s.db, courseID); err != nil {
		if err == sql.ErrNoRows {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to get course: %w", err)
	}

	teamsets, err := courserepo.Teamsets(s.db, courseID)
	if err != nil {
		return err
	}

	learners, err := enrollmentrepo.ActiveLearners(s.db, courseID)
	if err != nil {
		return err
	}

	memberships, err := teamrepo.MembershipsByCourse(s.db, courseID)
	if err != nil {
		return err
	}
	index := roster.BuildIndex(memberships)

	writer := csv.NewWriter(w)
	if err := writer.Write(roster.Headers(teamsets)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, learner := range learners {
		record := []string{learner.Identifier(), string(learner.Mode)}
		for _, ts := range teamsets {
			if m, ok := index.Lookup(learner.UserID, ts.TeamsetID); ok {
				record = append(record, m.TeamName)
			} else {
				record = append(record, "")
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// ImportCSV reconciles the course's team membership against the uploaded
// roster. Every row is validated first; any error aborts the import with the
// full list of line-numbered problems and no mutation. On success the
// resulting membership changes are applied in one transaction and one audit
// event is published per change.
func (s *RosterService) ImportCSV(ctx context.Context, courseID string, r io.Reader) (*ImportResult, error) {
	if _, err := courserepo.Get(s.db, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	teamsets, err := courserepo.Teamsets(s.db, courseID)
	if err != nil {
		return nil, err
	}

	header, rows, err := csvutil.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	teamsetColumns, err := validateRosterHeader(header, teamsets)
	if err != nil {
		return nil, err
	}

	assignments, rowErrors := s.validateRows(courseID, rows, teamsetColumns)
	result := &ImportResult{Rows: len(rows), Errors: rowErrors}
	if len(rowErrors) > 0 {
		return result, nil
	}

	memberships, err := teamrepo.MembershipsByCourse(s.db, courseID)
	if err != nil {
		return nil, err
	}
	changes := roster.Diff(assignments, roster.BuildIndex(memberships), teamsetColumns)

	emitted, err := s.applyChanges(courseID, changes, result)
	if err != nil {
		return nil, err
	}

	for _, event := range emitted {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish audit event",
				zap.String("type", event.Type),
				zap.String("team_id", event.TeamID),
				zap.Error(err))
		}
	}

	s.logger.Info("roster import applied",
		zap.String("course_id", courseID),
		zap.Int("rows", result.Rows),
		zap.Int("added", result.Added),
		zap.Int("removed", result.Removed))

	return result, nil
}

// validateRosterHeader checks the fixed leading columns and that every
// remaining column names a teamset of the course. Returns the teamset
// columns in file order.
func validateRosterHeader(header []string, teamsets []domain.Teamset) ([]string, error) {
	expected := roster.Headers(teamsets)

	if len(header) < 2 || header[0] != roster.ColumnUser || header[1] != roster.ColumnMode {
		return nil, &csvutil.HeaderError{Expected: expected, Found: header}
	}

	known := make(map[string]bool, len(teamsets))
	for _, ts := range teamsets {
		known[ts.TeamsetID] = true
	}

	seen := make(map[string]bool)
	columns := make([]string, 0, len(header)-2)
	for _, col := range header[2:] {
		if !known[col] || seen[col] {
			return nil, &csvutil.HeaderError{Expected: expected, Found: header}
		}
		seen[col] = true
		columns = append(columns, col)
	}

	return columns, nil
}

// validateRows resolves and checks every csv row, collecting line-numbered
// error messages. Returned assignments are only meaningful when the error
// list is empty.
func (s *RosterService) validateRows(courseID string, rows []csvutil.Row, teamsetColumns []string) ([]roster.RowAssignment, []string) {
	var (
		assignments []roster.RowAssignment
		rowErrors   []string
	)
	seen := make(map[int64]bool)

	for _, row := range rows {
		identifier := row.Values[roster.ColumnUser]
		if identifier == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("Line %d: user identifier is required", row.Line))
			continue
		}

		u, err := userrepo.Resolve(s.db, courseID, identifier)
		if err != nil {
			if err == sql.ErrNoRows {
				rowErrors = append(rowErrors, fmt.Sprintf("Line %d: user '%s' does not exist", row.Line, identifier))
				continue
			}
			rowErrors = append(rowErrors, fmt.Sprintf("Line %d: failed to resolve user '%s'", row.Line, identifier))
			continue
		}

		// Dedupe on the resolved account, not the raw identifier: the same
		// learner can be named by username, email, or external user key.
		if seen[u.UserID] {
			rowErrors = append(rowErrors, fmt.Sprintf("Line %d: duplicate user '%s'", row.Line, identifier))
			continue
		}
		seen[u.UserID] = true

		enr, err := enrollmentrepo.Get(s.db, u.UserID, courseID)
		if err != nil || !enr.IsActive {
			rowErrors = append(rowErrors, fmt.Sprintf("Line %d: user '%s' is not enrolled in this course", row.Line, identifier))
			continue
		}

		mode, err := domain.NewMode(row.Values[roster.ColumnMode])
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Line %d: invalid enrollment mode '%s'", row.Line, row.Values[roster.ColumnMode]))
			continue
		}
		if mode != enr.Mode {
			rowErrors = append(rowErrors, fmt.Sprintf(
				"Line %d: mode '%s' does not match enrollment mode '%s' for user '%s'",
				row.Line, mode, enr.Mode, identifier))
			continue
		}

		teams := make(map[string]string, len(teamsetColumns))
		valid := true
		for _, col := range teamsetColumns {
			name := row.Values[col]
			teams[col] = name
			if name == "" {
				continue
			}
			// An existing team must match the learner's protection level;
			// a missing team is created with the right level on apply.
			t, err := teamrepo.GetByName(s.db, courseID, col, name)
			if err != nil {
				if err == sql.ErrNoRows {
					continue
				}
				rowErrors = append(rowErrors, fmt.Sprintf("Line %d: failed to look up team '%s'", row.Line, name))
				valid = false
				break
			}
			if t.OrganizationProtected != mode.RequiresProtectedTeam() {
				rowErrors = append(rowErrors, fmt.Sprintf(
					"Line %d: team '%s' cannot accept learners in the '%s' track",
					row.Line, name, mode))
				valid = false
				break
			}
		}
		if !valid {
			continue
		}

		assignments = append(assignments, roster.RowAssignment{
			Line:   row.Line,
			UserID: u.UserID,
			Mode:   enr.Mode,
			Teams:  teams,
		})
	}

	return assignments, rowErrors
}

// applyChanges runs all membership mutations in one transaction, creating
// teams as needed, and returns the audit events to publish after commit.
func (s *RosterService) applyChanges(courseID string, changes []roster.Change, result *ImportResult) ([]events.Event, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var emitted []events.Event

	for _, change := range changes {
		if change.RemoveTeamID != "" {
			if err := teamrepo.RemoveMember(tx, change.RemoveTeamID, change.UserID); err != nil {
				return nil, fmt.Errorf("failed to remove user %d from team %s: %w", change.UserID, change.RemoveTeamID, err)
			}
			result.Removed++
			emitted = append(emitted, events.Event{
				Type:     events.TypeLearnerRemoved,
				CourseID: courseID,
				TeamID:   change.RemoveTeamID,
				UserID:   change.UserID,
				Method:   events.MethodTeamCSVImport,
			})
		}

		if change.AddTeamName != "" {
			t, err := teamrepo.GetByName(tx, courseID, change.TeamsetID, change.AddTeamName)
			if err != nil {
				if err != sql.ErrNoRows {
					return nil, err
				}
				t = &domain.Team{
					TeamID:                newTeamID(change.AddTeamName),
					CourseID:              courseID,
					TeamsetID:             change.TeamsetID,
					Name:                  change.AddTeamName,
					OrganizationProtected: change.Mode.RequiresProtectedTeam(),
				}
				if err := teamrepo.Create(tx, t); err != nil {
					// Lost the create race with a concurrent import.
					if !repository.IsUniqueViolation(err) {
						return nil, err
					}
					if t, err = teamrepo.GetByName(tx, courseID, change.TeamsetID, change.AddTeamName); err != nil {
						return nil, err
					}
				}
			}
			if err := teamrepo.AddMember(tx, t.TeamID, change.UserID); err != nil {
				switch {
				case repository.IsUniqueViolation(err):
					// Already a member; a concurrent import got there first.
					continue
				case repository.IsForeignKeyViolation(err):
					return nil, fmt.Errorf("%w: user %d", ErrUserNotFound, change.UserID)
				default:
					return nil, fmt.Errorf("failed to add user %d to team %s: %w", change.UserID, t.TeamID, err)
				}
			}
			result.Added++
			emitted = append(emitted, events.Event{
				Type:     events.TypeLearnerAdded,
				CourseID: courseID,
				TeamID:   t.TeamID,
				UserID:   change.UserID,
				Method:   events.MethodTeamCSVImport,
			})
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return emitted, nil
}

// newTeamID builds a stable-prefix team id from the team name, matching the
// slug-plus-suffix ids teams get when created through the UI.
func newTeamID(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '_', r == '-':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "team"
	}
	return slug + "-" + uuid.NewString()[:8]
}
