// Package roster implements the pure core of team membership csv
// import/export: header layout, membership indexing, and the diff between a
// desired roster and current membership.
package roster

import "github.com/openlms/courseadmin/internal/domain"

// Fixed leading csv columns; the remaining columns are teamset ids.
const (
	ColumnUser = "user"
	ColumnMode = "mode"
)

// Headers returns the csv header row for a course: user, mode, then one
// column per teamset in configuration order.
func Headers(teamsets []domain.Teamset) []string {
	headers := []string{ColumnUser, ColumnMode}
	for _, ts := range teamsets {
		headers = append(headers, ts.TeamsetID)
	}
	return headers
}

// RowAssignment is the desired state for one learner, parsed from a csv row.
// Teams maps teamset id to the desired team name; empty string means the
// learner should be on no team in that teamset.
type RowAssignment struct {
	Line   int
	UserID int64
	Mode   domain.Mode
	Teams  map[string]string
}

// MembershipIndex maps user id -> teamset id -> current membership.
type MembershipIndex map[int64]map[string]domain.MembershipRow

// BuildIndex folds a flat membership listing into a per-user, per-teamset index.
func BuildIndex(rows []domain.MembershipRow) MembershipIndex {
	index := make(MembershipIndex)
	for _, row := range rows {
		byTeamset, ok := index[row.UserID]
		if !ok {
			byTeamset = make(map[string]domain.MembershipRow)
			index[row.UserID] = byTeamset
		}
		byTeamset[row.TeamsetID] = row
	}
	return index
}

// Lookup returns the user's current membership in the teamset, if any.
func (idx MembershipIndex) Lookup(userID int64, teamsetID string) (domain.MembershipRow, bool) {
	byTeamset, ok := idx[userID]
	if !ok {
		return domain.MembershipRow{}, false
	}
	m, ok := byTeamset[teamsetID]
	return m, ok
}

// Change is one membership mutation for a (user, teamset) pair. A move sets
// both fields: the removal applies before the addition.
type Change struct {
	UserID       int64
	Mode         domain.Mode
	TeamsetID    string
	RemoveTeamID string
	AddTeamName  string
}

// Diff compares the desired assignments against current membership and
// returns the changes needed, in row order and teamset order. Cells matching
// current membership produce no change, so importing an exported roster is a
// no-op. Teamsets absent from a row's Teams map are left untouched.
func Diff(assignments []RowAssignment, index MembershipIndex, teamsetIDs []string) []Change {
	var changes []Change
	for _, row := range assignments {
		for _, teamsetID := range teamsetIDs {
			desired, present := row.Teams[teamsetID]
			if !present {
				continue
			}
			current, onTeam := index.Lookup(row.UserID, teamsetID)

			if onTeam && current.TeamName == desired {
				continue
			}
			if !onTeam && desired == "" {
				continue
			}

			change := Change{
				UserID:      row.UserID,
				Mode:        row.Mode,
				TeamsetID:   teamsetID,
				AddTeamName: desired,
			}
			if onTeam {
				change.RemoveTeamID = current.TeamID
			}
			changes = append(changes, change)
		}
	}
	return changes
}
