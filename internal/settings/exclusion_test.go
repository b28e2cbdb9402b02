package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openlms/courseadmin/internal/config"
)

func allFeaturesEnabled() config.FeatureFlags {
	return config.FeatureFlags{
		EnableExportGit:           true,
		EnableCourseNotes:         true,
		EnableOtherCourseSettings: true,
		EnableVideoUploadPipeline: true,
		EnableAutoAdvanceVideos:   true,
		EnableCustomCourseURLs:    true,
		EnableTeams:               true,
		EnableVideoBumper:         true,
		EnableCustomCourses:       true,
		EnableOpenBadges:          true,
	}
}

func fullContext() CourseContext {
	return CourseContext{
		ProctoringProviderOverrides: true,
		UnenrolledAccess:            true,
		Staff:                       true,
	}
}

func proctortrackConfigured() config.ProctoringConfig {
	return config.ProctoringConfig{Backends: []string{"software_secure", "proctortrack"}}
}

func TestExcludedFields_BaseListAlwaysExcluded(t *testing.T) {
	excluded := ExcludedFields(allFeaturesEnabled(), proctortrackConfigured(), fullContext())

	for _, name := range []string{"cohort_config", "xml_attributes", "tabs", "graceperiod", "self_paced"} {
		assert.Contains(t, excluded, name)
	}
	// Everything conditional is visible when all toggles are on.
	for _, name := range []string{
		"giturl", "edxnotes", "other_course_settings", "teams_configuration",
		"proctoring_provider", "course_visibility", "create_zendesk_tickets",
		"proctoring_escalation_email",
	} {
		assert.NotContains(t, excluded, name)
	}
}

func TestExcludedFields_FeatureFlags(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.FeatureFlags)
		excludes []string
	}{
		{"export git disabled", func(f *config.FeatureFlags) { f.EnableExportGit = false }, []string{"giturl"}},
		{"course notes disabled", func(f *config.FeatureFlags) { f.EnableCourseNotes = false }, []string{"edxnotes"}},
		{"other course settings disabled", func(f *config.FeatureFlags) { f.EnableOtherCourseSettings = false }, []string{"other_course_settings"}},
		{"video upload pipeline disabled", func(f *config.FeatureFlags) { f.EnableVideoUploadPipeline = false }, []string{"video_upload_pipeline"}},
		{"auto advance disabled", func(f *config.FeatureFlags) { f.EnableAutoAdvanceVideos = false }, []string{"video_auto_advance"}},
		{"custom course urls disabled", func(f *config.FeatureFlags) { f.EnableCustomCourseURLs = false }, []string{"social_sharing_url"}},
		{"teams disabled", func(f *config.FeatureFlags) { f.EnableTeams = false }, []string{"teams_configuration"}},
		{"video bumper disabled", func(f *config.FeatureFlags) { f.EnableVideoBumper = false }, []string{"video_bumper"}},
		{"custom courses disabled", func(f *config.FeatureFlags) { f.EnableCustomCourses = false }, []string{"custom_courses_enabled", "custom_courses_connector"}},
		{"open badges disabled", func(f *config.FeatureFlags) { f.EnableOpenBadges = false }, []string{"issue_badges"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := allFeaturesEnabled()
			tt.mutate(&features)

			excluded := ExcludedFields(features, proctortrackConfigured(), fullContext())
			for _, name := range tt.excludes {
				assert.Contains(t, excluded, name)
			}
		})
	}
}

func TestExcludedFields_CourseContext(t *testing.T) {
	features := allFeaturesEnabled()
	proctoring := proctortrackConfigured()

	t.Run("proctoring overrides flag off hides provider", func(t *testing.T) {
		cc := fullContext()
		cc.ProctoringProviderOverrides = false
		assert.Contains(t, ExcludedFields(features, proctoring, cc), "proctoring_provider")
	})

	t.Run("unenrolled access flag off hides course visibility", func(t *testing.T) {
		cc := fullContext()
		cc.UnenrolledAccess = false
		assert.Contains(t, ExcludedFields(features, proctoring, cc), "course_visibility")
	})

	t.Run("non-staff cannot see zendesk field", func(t *testing.T) {
		cc := fullContext()
		cc.Staff = false
		assert.Contains(t, ExcludedFields(features, proctoring, cc), "create_zendesk_tickets")
	})

	t.Run("no proctortrack backend hides escalation email", func(t *testing.T) {
		noTrack := config.ProctoringConfig{Backends: []string{"software_secure"}}
		assert.Contains(t, ExcludedFields(features, noTrack, fullContext()), "proctoring_escalation_email")
	})
}

func TestExcludedFields_DoesNotMutateBaseList(t *testing.T) {
	before := len(fieldsExcludeList)
	_ = ExcludedFields(config.FeatureFlags{}, config.ProctoringConfig{}, CourseContext{})
	assert.Len(t, fieldsExcludeList, before)
}
