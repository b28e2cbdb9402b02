package service

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/openlms/courseadmin/internal/csvutil"
	enrollmentrepo "github.com/openlms/courseadmin/internal/repository/enrollment"
)

// Attribute written by the enrollment attribute override import.
const (
	OverrideNamespace = "salesforce"
	OverrideAttribute = "opportunity_id"
)

// OverrideColumns is the exact header the override csv must carry.
var OverrideColumns = []string{"user_id", "course_id", "opportunity_id"}

// OverrideService handles the admin csv override of enrollment attributes.
type OverrideService struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOverrideService creates a new override service.
func NewOverrideService(db *sql.DB, logger *zap.Logger) *OverrideService {
	return &OverrideService{db: db, logger: logger}
}

// OverrideResult summarizes an override import. ErrorLines lists the 1-based
// line numbers of rows whose enrollment could not be found; those rows are
// skipped while the rest of the batch still applies.
type OverrideResult struct {
	Processed  int   `json:"processed"`
	Updated    int   `json:"updated"`
	ErrorLines []int `json:"error_lines,omitempty"`
}

// Message renders the aggregate user-facing message for the import, matching
// the admin flash message format.
func (r *OverrideResult) Message() string {
	if len(r.ErrorLines) == 0 {
		return fmt.Sprintf("Enrollment attributes were updated for %d records.", r.Updated)
	}
	lines := make([]string, len(r.ErrorLines))
	for i, n := range r.ErrorLines {
		lines[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf(
		"Enrollment attributes were not updated for some users because no enrollment found for records at line numbers: %s",
		strings.Join(lines, ", "),
	)
}

// OverrideFromCSV parses the uploaded csv and upserts the salesforce
// opportunity id attribute for every matched enrollment. A header mismatch
// rejects the whole file; a missing enrollment only skips its row.
func (s *OverrideService) OverrideFromCSV(r io.Reader) (*OverrideResult, error) {
	rows, err := csvutil.ParseExact(r, OverrideColumns)
	if err != nil {
		return nil, err
	}

	result := &OverrideResult{Processed: len(rows)}

	for _, row := range rows {
		userID, convErr := strconv.ParseInt(row.Values["user_id"], 10, 64)
		if convErr != nil {
			result.ErrorLines = append(result.ErrorLines, row.Line)
			continue
		}

		enrollment, err := enrollmentrepo.Get(s.db, userID, row.Values["course_id"])
		if err != nil {
			if err == sql.ErrNoRows {
				result.ErrorLines = append(result.ErrorLines, row.Line)
				continue
			}
			return nil, err
		}

		err = enrollmentrepo.UpsertAttribute(s.db, enrollment.ID, OverrideNamespace, OverrideAttribute, row.Values["opportunity_id"])
		if err != nil {
			return nil, err
		}
		result.Updated++
	}

	s.logger.Info("enrollment attribute override processed",
		zap.Int("rows", result.Processed),
		zap.Int("updated", result.Updated),
		zap.Int("misses", len(result.ErrorLines)))

	return result, nil
}
