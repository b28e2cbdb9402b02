package settings

import "github.com/openlms/courseadmin/internal/config"

// Per-course flag names checked against the course_flags table.
const (
	FlagProctoringProviderOverrides = "proctoring_provider_overrides"
	FlagUnenrolledAccess            = "unenrolled_access"
)

// ProctortrackBackend is the proctoring backend that requires an escalation contact.
const ProctortrackBackend = "proctortrack"

// CourseContext carries the per-course and per-request state that the
// exclusion list depends on, beyond the platform feature flags.
type CourseContext struct {
	ProctoringProviderOverrides bool
	UnenrolledAccess            bool
	Staff                       bool
}

// fieldsExcludeList is the base list of fields never shown in the advanced
// settings editor because they have dedicated editors elsewhere.
var fieldsExcludeList = []string{
	"cohort_config",
	"xml_attributes",
	"enrollment_start",
	"enrollment_end",
	"tabs",
	"graceperiod",
	"self_paced",
}

// ExcludedFields returns the list of fields to exclude from the advanced
// settings editor for the given platform flags and course context.
func ExcludedFields(features config.FeatureFlags, proctoring config.ProctoringConfig, cc CourseContext) []string {
	// Copy so callers never mutate the base list.
	excluded := make([]string, len(fieldsExcludeList))
	copy(excluded, fieldsExcludeList)

	if !features.EnableExportGit {
		excluded = append(excluded, "giturl")
	}
	if !features.EnableCourseNotes {
		excluded = append(excluded, "edxnotes")
	}
	if !features.EnableOtherCourseSettings {
		excluded = append(excluded, "other_course_settings")
	}
	if !features.EnableVideoUploadPipeline {
		excluded = append(excluded, "video_upload_pipeline")
	}
	if !features.EnableAutoAdvanceVideos {
		excluded = append(excluded, "video_auto_advance")
	}
	if !features.EnableCustomCourseURLs {
		excluded = append(excluded, "social_sharing_url")
	}
	if !features.EnableTeams {
		excluded = append(excluded, "teams_configuration")
	}
	if !features.EnableVideoBumper {
		excluded = append(excluded, "video_bumper")
	}
	if !features.EnableCustomCourses {
		excluded = append(excluded, "custom_courses_enabled", "custom_courses_connector")
	}
	if !features.EnableOpenBadges {
		excluded = append(excluded, "issue_badges")
	}

	// Per-course flags.
	if !cc.ProctoringProviderOverrides {
		excluded = append(excluded, "proctoring_provider")
	}
	if !cc.UnenrolledAccess {
		excluded = append(excluded, "course_visibility")
	}

	// Staff-only field.
	if !cc.Staff {
		excluded = append(excluded, "create_zendesk_tickets")
	}

	// Escalation contact only matters when the proctortrack backend exists.
	if !proctoring.HasBackend(ProctortrackBackend) {
		excluded = append(excluded, "proctoring_escalation_email")
	}

	return excluded
}
