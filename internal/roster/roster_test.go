package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/courseadmin/internal/domain"
)

func teamsets(ids ...string) []domain.Teamset {
	out := make([]domain.Teamset, len(ids))
	for i, id := range ids {
		out[i] = domain.Teamset{TeamsetID: id}
	}
	return out
}

func TestHeaders(t *testing.T) {
	assert.Equal(
		t,
		[]string{"user", "mode", "teamset_1", "teamset_2"},
		Headers(teamsets("teamset_1", "teamset_2")),
	)
	assert.Equal(t, []string{"user", "mode"}, Headers(nil))
}

func TestBuildIndex(t *testing.T) {
	rows := []domain.MembershipRow{
		{UserID: 1, TeamID: "t-aaa", TeamsetID: "teamset_1", TeamName: "team_a"},
		{UserID: 1, TeamID: "t-bbb", TeamsetID: "teamset_2", TeamName: "team_b"},
		{UserID: 2, TeamID: "t-aaa", TeamsetID: "teamset_1", TeamName: "team_a"},
	}

	index := BuildIndex(rows)

	m, ok := index.Lookup(1, "teamset_1")
	require.True(t, ok)
	assert.Equal(t, "team_a", m.TeamName)

	m, ok = index.Lookup(1, "teamset_2")
	require.True(t, ok)
	assert.Equal(t, "t-bbb", m.TeamID)

	_, ok = index.Lookup(2, "teamset_2")
	assert.False(t, ok)

	_, ok = index.Lookup(3, "teamset_1")
	assert.False(t, ok)
}

func TestDiff(t *testing.T) {
	index := BuildIndex([]domain.MembershipRow{
		{UserID: 1, TeamID: "t-aaa", TeamsetID: "teamset_1", TeamName: "team_a"},
		{UserID: 2, TeamID: "t-bbb", TeamsetID: "teamset_1", TeamName: "team_b"},
	})
	columns := []string{"teamset_1", "teamset_2"}

	tests := []struct {
		name        string
		assignments []RowAssignment
		expected    []Change
	}{
		{
			name: "no changes for matching roster",
			assignments: []RowAssignment{
				{UserID: 1, Mode: domain.ModeAudit, Teams: map[string]string{"teamset_1": "team_a", "teamset_2": ""}},
				{UserID: 2, Mode: domain.ModeAudit, Teams: map[string]string{"teamset_1": "team_b", "teamset_2": ""}},
			},
			expected: nil,
		},
		{
			name: "blank cell removes membership",
			assignments: []RowAssignment{
				{UserID: 1, Mode: domain.ModeAudit, Teams: map[string]string{"teamset_1": ""}},
			},
			expected: []Change{
				{UserID: 1, Mode: domain.ModeAudit, TeamsetID: "teamset_1", RemoveTeamID: "t-aaa"},
			},
		},
		{
			name: "different team is a move",
			assignments: []RowAssignment{
				{UserID: 1, Mode: domain.ModeAudit, Teams: map[string]string{"teamset_1": "team_b"}},
			},
			expected: []Change{
				{UserID: 1, Mode: domain.ModeAudit, TeamsetID: "teamset_1", RemoveTeamID: "t-aaa", AddTeamName: "team_b"},
			},
		},
		{
			name: "new membership is an add",
			assignments: []RowAssignment{
				{UserID: 1, Mode: domain.ModeMasters, Teams: map[string]string{"teamset_2": "new_team"}},
			},
			expected: []Change{
				{UserID: 1, Mode: domain.ModeMasters, TeamsetID: "teamset_2", AddTeamName: "new_team"},
			},
		},
		{
			name: "absent column leaves membership untouched",
			assignments: []RowAssignment{
				{UserID: 1, Mode: domain.ModeAudit, Teams: map[string]string{"teamset_2": "other"}},
			},
			expected: []Change{
				{UserID: 1, Mode: domain.ModeAudit, TeamsetID: "teamset_2", AddTeamName: "other"},
			},
		},
		{
			name: "blank for user with no membership is a no-op",
			assignments: []RowAssignment{
				{UserID: 3, Mode: domain.ModeAudit, Teams: map[string]string{"teamset_1": "", "teamset_2": ""}},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Diff(tt.assignments, index, columns)
			assert.Equal(t, tt.expected, changes)
		})
	}
}

// Exporting a roster and importing it unchanged must produce zero changes.
func TestDiff_RoundTripIsNoop(t *testing.T) {
	memberships := []domain.MembershipRow{
		{UserID: 1, TeamID: "t-aaa", TeamsetID: "teamset_1", TeamName: "team_1_1"},
		{UserID: 1, TeamID: "t-ccc", TeamsetID: "teamset_2", TeamName: "team_2_2"},
		{UserID: 2, TeamID: "t-aaa", TeamsetID: "teamset_1", TeamName: "team_1_1"},
		{UserID: 3, TeamID: "t-ddd", TeamsetID: "teamset_3", TeamName: "team_3_1"},
	}
	index := BuildIndex(memberships)
	columns := []string{"teamset_1", "teamset_2", "teamset_3"}

	// Rebuild the assignments exactly as an export row would render them.
	var assignments []RowAssignment
	for _, userID := range []int64{1, 2, 3, 4} {
		teams := make(map[string]string, len(columns))
		for _, col := range columns {
			if m, ok := index.Lookup(userID, col); ok {
				teams[col] = m.TeamName
			} else {
				teams[col] = ""
			}
		}
		assignments = append(assignments, RowAssignment{UserID: userID, Mode: domain.ModeAudit, Teams: teams})
	}

	assert.Empty(t, Diff(assignments, index, columns))
}
