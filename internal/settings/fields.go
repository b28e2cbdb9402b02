// Package settings defines the advanced-settings field registry and the
// exclusion and validation rules applied when courses are edited.
package settings

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind is the JSON shape a field value must have.
type Kind string

// Field value kinds.
const (
	KindString  Kind = "string"
	KindBool    Kind = "bool"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindList    Kind = "list"
	KindMap     Kind = "map"
	KindAny     Kind = "any"
)

// FieldDef describes a single advanced-settings field.
type FieldDef struct {
	Name                   string
	DisplayName            string
	Help                   string
	Kind                   Kind
	Default                json.RawMessage
	Deprecated             bool
	HideOnEnabledPublisher bool
}

// CheckValue validates that raw is well-formed JSON of the field's kind.
func (d FieldDef) CheckValue(raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("incorrect format for field '%s': value is not valid JSON", d.DisplayName)
	}
	// null clears the override back to the default, any kind accepts it
	if string(raw) == "null" {
		return nil
	}

	var target any
	switch d.Kind {
	case KindString:
		var v string
		target = &v
	case KindBool:
		var v bool
		target = &v
	case KindInteger:
		var v int64
		target = &v
	case KindFloat:
		var v float64
		target = &v
	case KindList:
		var v []any
		target = &v
	case KindMap:
		var v map[string]any
		target = &v
	case KindAny:
		return nil
	default:
		return fmt.Errorf("unknown kind %q for field '%s'", d.Kind, d.DisplayName)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("incorrect format for field '%s': expected %s", d.DisplayName, d.Kind)
	}
	return nil
}

// Setting is the API view of one field: its effective value plus the
// registry metadata the editor renders.
type Setting struct {
	Value                  json.RawMessage `json:"value"`
	DisplayName            string          `json:"display_name"`
	Help                   string          `json:"help"`
	Deprecated             bool            `json:"deprecated"`
	HideOnEnabledPublisher bool            `json:"hide_on_enabled_publisher"`
}

var registry = []FieldDef{
	{Name: "advanced_modules", DisplayName: "Advanced Module List", Help: "Enter the names of the advanced modules to use in your course.", Kind: KindList, Default: json.RawMessage(`[]`)},
	{Name: "allow_anonymous", DisplayName: "Allow Anonymous Discussion Posts", Help: "Enter true or false. If true, students can create discussion posts that are anonymous to all users.", Kind: KindBool, Default: json.RawMessage(`true`)},
	{Name: "allow_public_wiki_access", DisplayName: "Allow Public Wiki Access", Help: "Enter true or false. If true, users can view the course wiki even if they're not enrolled in the course.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "cert_html_view_overrides", DisplayName: "Certificate Web/HTML View Overrides", Help: "Enter course-specific overrides for the web certificate.", Kind: KindMap, Default: json.RawMessage(`{}`)},
	{Name: "cohort_config", DisplayName: "Cohort Configuration", Help: "Cohort configuration is edited on the instructor dashboard.", Kind: KindMap, Default: json.RawMessage(`{}`)},
	{Name: "course_visibility", DisplayName: "Course Visibility For Unenrolled Learners", Help: "Defines the access permissions for unenrolled learners.", Kind: KindString, Default: json.RawMessage(`"private"`)},
	{Name: "create_zendesk_tickets", DisplayName: "Create Zendesk Tickets For Suspicious Proctored Exam Attempts", Help: "Enter true or false. If true, a Zendesk ticket is created for suspicious attempts.", Kind: KindBool, Default: json.RawMessage(`true`)},
	{Name: "custom_courses_enabled", DisplayName: "Enable Custom Courses", Help: "Allow course coaches to create custom course instances.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "custom_courses_connector", DisplayName: "Custom Courses Connector", Help: "URL of the external grade-exchange connector for custom course instances.", Kind: KindString, Default: json.RawMessage(`""`)},
	{Name: "days_early_for_beta", DisplayName: "Days Early for Beta Users", Help: "Enter the number of days before the course start date that beta users can access the course.", Kind: KindFloat, Default: json.RawMessage(`null`)},
	{Name: "display_coursenumber", DisplayName: "Course Number Display String", Help: "Enter the course number that you want to appear in the course.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "display_organization", DisplayName: "Course Organization Display String", Help: "Enter the organization that you want to appear in the course.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "due_date_display_format", DisplayName: "Due Date Display Format", Help: "Enter the format for due dates.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "edxnotes", DisplayName: "Enable Student Notes", Help: "Enter true or false. If true, students can use the Student Notes feature.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "enrollment_start", DisplayName: "Enrollment Start Date", Help: "Enrollment dates are edited on the schedule page.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "enrollment_end", DisplayName: "Enrollment End Date", Help: "Enrollment dates are edited on the schedule page.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "giturl", DisplayName: "GIT URL", Help: "Enter the URL for the course data GIT repository.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "graceperiod", DisplayName: "Grace Period", Help: "The grace period is edited on the grading page.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "invitation_only", DisplayName: "Invitation Only", Help: "Whether to restrict enrollment to invitation by the course staff.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "issue_badges", DisplayName: "Issue Open Badges", Help: "Enter true or false. If true, open badges are issued for course completion.", Kind: KindBool, Default: json.RawMessage(`true`)},
	{Name: "max_attempts", DisplayName: "Maximum Attempts", Help: "Enter the maximum number of times a student can try to answer problems.", Kind: KindInteger, Default: json.RawMessage(`null`)},
	{Name: "mobile_available", DisplayName: "Mobile Course Available", Help: "Enter true or false. If true, the course is available to mobile app users.", Kind: KindBool, Default: json.RawMessage(`true`)},
	{Name: "other_course_settings", DisplayName: "Other Course Settings", Help: "Any additional information about the course that the platform needs.", Kind: KindMap, Default: json.RawMessage(`{}`)},
	{Name: "proctoring_provider", DisplayName: "Proctoring Configuration", Help: "Enter the proctoring provider you want to use for this course run.", Kind: KindString, Default: json.RawMessage(`""`)},
	{Name: "proctoring_escalation_email", DisplayName: "Proctortrack Exam Escalation Contact", Help: "Required if 'proctortrack' is selected as your proctoring provider.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "self_paced", DisplayName: "Self Paced", Help: "Pacing is edited on the schedule page.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "showanswer", DisplayName: "Show Answer", Help: "Specify when the Show Answer button appears for each problem.", Kind: KindString, Default: json.RawMessage(`"finished"`)},
	{Name: "show_calculator", DisplayName: "Show Calculator", Help: "Enter true or false. If true, students can see the calculator in the course.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "social_sharing_url", DisplayName: "Social Media Sharing URL", Help: "The custom URL shared on social media for this course.", Kind: KindString, Default: json.RawMessage(`null`)},
	{Name: "tabs", DisplayName: "Course Tabs", Help: "Tabs are edited on the pages screen.", Kind: KindList, Default: json.RawMessage(`[]`)},
	{Name: "teams_configuration", DisplayName: "Teams Configuration", Help: "Configure team sets, limit team sizes, and set visibility settings.", Kind: KindMap, Default: json.RawMessage(`{}`)},
	{Name: "video_auto_advance", DisplayName: "Enable Video Auto-Advance", Help: "Enter true or false. If true, the option to auto-advance is visible in the video player.", Kind: KindBool, Default: json.RawMessage(`false`)},
	{Name: "video_bumper", DisplayName: "Video Pre-Roll", Help: "Configure the video that plays before course videos.", Kind: KindMap, Default: json.RawMessage(`{}`)},
	{Name: "video_upload_pipeline", DisplayName: "Video Upload Credentials", Help: "Enter the credentials for uploading course videos.", Kind: KindMap, Default: json.RawMessage(`{}`)},
	{Name: "xml_attributes", DisplayName: "XML Attributes", Help: "Legacy XML attributes, not editable.", Kind: KindMap, Default: json.RawMessage(`{}`), Deprecated: true},
}

// Registry returns all field definitions ordered by name.
func Registry() []FieldDef {
	defs := make([]FieldDef, len(registry))
	copy(defs, registry)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Lookup returns the definition of the named field.
func Lookup(name string) (FieldDef, bool) {
	for _, d := range registry {
		if d.Name == name {
			return d, true
		}
	}
	return FieldDef{}, false
}
