package service

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/openlms/courseadmin/internal/config"
	"github.com/openlms/courseadmin/internal/repository"
	courserepo "github.com/openlms/courseadmin/internal/repository/course"
	settingsrepo "github.com/openlms/courseadmin/internal/repository/settings"
	"github.com/openlms/courseadmin/internal/settings"
)

// SettingsService handles advanced-settings reads and writes for courses.
type SettingsService struct {
	db         *sql.DB
	features   config.FeatureFlags
	proctoring config.ProctoringConfig
	logger     *zap.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(db *sql.DB, features config.FeatureFlags, proctoring config.ProctoringConfig, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		db:         db,
		features:   features,
		proctoring: proctoring,
		logger:     logger,
	}
}

// courseContext loads the per-course flags that drive field exclusion.
func (s *SettingsService) courseContext(exec repository.DBTX, courseID string, staff bool) (settings.CourseContext, error) {
	proctoringOverrides, err := courserepo.FlagEnabled(exec, courseID, settings.FlagProctoringProviderOverrides)
	if err != nil {
		return settings.CourseContext{}, err
	}
	unenrolledAccess, err := courserepo.FlagEnabled(exec, courseID, settings.FlagUnenrolledAccess)
	if err != nil {
		return settings.CourseContext{}, err
	}
	return settings.CourseContext{
		ProctoringProviderOverrides: proctoringOverrides,
		UnenrolledAccess:            unenrolledAccess,
		Staff:                       staff,
	}, nil
}

// Fetch returns the editable settings for a course: every registry field not
// on the exclusion list, with stored overrides applied over defaults.
func (s *SettingsService) Fetch(courseID string, staff bool) (map[string]settings.Setting, error) {
	if _, err := courserepo.Get(s.db, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	cc, err := s.courseContext(s.db, courseID, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to load course flags: %w", err)
	}

	return s.fetch(s.db, courseID, cc)
}

// FetchAll returns every registry field regardless of exclusion.
func (s *SettingsService) FetchAll(courseID string) (map[string]settings.Setting, error) {
	if _, err := courserepo.Get(s.db, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return s.assemble(s.db, courseID, nil)
}

func (s *SettingsService) fetch(exec repository.DBTX, courseID string, cc settings.CourseContext) (map[string]settings.Setting, error) {
	excluded := settings.ExcludedFields(s.features, s.proctoring, cc)
	excludedSet := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		excludedSet[name] = true
	}
	return s.assemble(exec, courseID, excludedSet)
}

// assemble merges stored overrides over registry defaults, skipping excluded
// fields when an exclusion set is given.
func (s *SettingsService) assemble(exec repository.DBTX, courseID string, excluded map[string]bool) (map[string]settings.Setting, error) {
	stored, err := settingsrepo.GetAll(exec, courseID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]settings.Setting)
	for _, def := range settings.Registry() {
		if excluded[def.Name] {
			continue
		}
		value := def.Default
		if override, ok := stored[def.Name]; ok {
			value = override
		}
		result[def.Name] = settings.Setting{
			Value:                  value,
			DisplayName:            def.DisplayName,
			Help:                   def.Help,
			Deprecated:             def.Deprecated,
			HideOnEnabledPublisher: def.HideOnEnabledPublisher,
		}
	}
	return result, nil
}

// Update applies a settings payload to the course. Excluded and unknown
// fields are silently dropped; a value that fails the field's type check
// fails the whole update. Returns the resulting filtered settings.
func (s *SettingsService) Update(courseID string, payload map[string]json.RawMessage, staff bool) (map[string]settings.Setting, error) {
	if _, err := courserepo.Get(s.db, courseID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	cc, err := s.courseContext(s.db, courseID, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to load course flags: %w", err)
	}

	changed, err := s.changedValues(courseID, payload, cc)
	if err != nil {
		return nil, err
	}

	if err := s.persist(courseID, changed); err != nil {
		return nil, err
	}

	return s.fetch(s.db, courseID, cc)
}

// ValidateAndUpdate validates the whole payload, collecting one error per
// failing field instead of stopping at the first. Only a fully valid payload
// is persisted. Returns the updated settings or the collected errors.
func (s *SettingsService) ValidateAndUpdate(courseID string, payload map[string]json.RawMessage, staff bool) (map[string]settings.Setting, []settings.ValidationError, error) {
	course, err := courserepo.Get(s.db, courseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrCourseNotFound
		}
		return nil, nil, fmt.Errorf("failed to get course: %w", err)
	}

	cc, err := s.courseContext(s.db, courseID, staff)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load course flags: %w", err)
	}

	excluded := settings.ExcludedFields(s.features, s.proctoring, cc)
	excludedSet := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		excludedSet[name] = true
	}

	stored, err := settingsrepo.GetAll(s.db, courseID)
	if err != nil {
		return nil, nil, err
	}

	var validationErrors []settings.ValidationError
	changed := make(map[string]json.RawMessage)

	for name, raw := range payload {
		if excludedSet[name] {
			continue
		}
		def, ok := settings.Lookup(name)
		if !ok {
			continue
		}
		if err := def.CheckValue(raw); err != nil {
			validationErrors = append(validationErrors, settings.ValidationError{
				Field:   name,
				Message: err.Error(),
			})
			continue
		}
		if !equalJSON(effectiveValue(stored, def), raw) {
			changed[name] = raw
		}
	}

	validationErrors = append(validationErrors, settings.ValidateProctoring(settings.ProctoringState{
		CurrentProvider:          storedString(stored, "proctoring_provider"),
		RequestedProvider:        payloadString(payload, excludedSet, "proctoring_provider"),
		CurrentEscalationEmail:   storedString(stored, "proctoring_escalation_email"),
		RequestedEscalationEmail: payloadString(payload, excludedSet, "proctoring_escalation_email"),
		CourseStarted:            course.Started(time.Now().UTC()),
		Staff:                    staff,
		SupportEmail:             s.proctoring.PartnerSupportEmail,
	})...)

	if len(validationErrors) > 0 {
		return nil, validationErrors, nil
	}

	if err := s.persist(courseID, changed); err != nil {
		return nil, nil, err
	}

	updated, err := s.fetch(s.db, courseID, cc)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// changedValues type-checks the payload and returns the subset of values
// that differ from the effective stored value. The first bad value fails.
func (s *SettingsService) changedValues(courseID string, payload map[string]json.RawMessage, cc settings.CourseContext) (map[string]json.RawMessage, error) {
	excluded := settings.ExcludedFields(s.features, s.proctoring, cc)
	excludedSet := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		excludedSet[name] = true
	}

	stored, err := settingsrepo.GetAll(s.db, courseID)
	if err != nil {
		return nil, err
	}

	changed := make(map[string]json.RawMessage)
	for name, raw := range payload {
		if excludedSet[name] {
			continue
		}
		def, ok := settings.Lookup(name)
		if !ok {
			continue
		}
		if err := def.CheckValue(raw); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFieldValue, err.Error())
		}
		if !equalJSON(effectiveValue(stored, def), raw) {
			changed[name] = raw
		}
	}
	return changed, nil
}

// persist writes all changed values in one transaction.
func (s *SettingsService) persist(courseID string, changed map[string]json.RawMessage) error {
	if len(changed) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for name, value := range changed {
		if err := settingsrepo.Upsert(tx, courseID, name, value); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("updated course settings",
		zap.String("course_id", courseID),
		zap.Int("fields", len(changed)))

	return nil
}

// effectiveValue is the stored override or the registry default.
func effectiveValue(stored map[string]json.RawMessage, def settings.FieldDef) json.RawMessage {
	if override, ok := stored[def.Name]; ok {
		return override
	}
	return def.Default
}

// equalJSON compares two raw values after compaction, so formatting
// differences never count as changes.
func equalJSON(a, b json.RawMessage) bool {
	var bufA, bufB bytes.Buffer
	if err := json.Compact(&bufA, a); err != nil {
		return false
	}
	if err := json.Compact(&bufB, b); err != nil {
		return false
	}
	return bufA.String() == bufB.String()
}

// storedString extracts a string-kind setting's effective value.
func storedString(stored map[string]json.RawMessage, name string) string {
	def, ok := settings.Lookup(name)
	if !ok {
		return ""
	}
	return jsonString(effectiveValue(stored, def))
}

// payloadString extracts a requested string value from the payload, nil when
// the field is absent or excluded for this caller.
func payloadString(payload map[string]json.RawMessage, excluded map[string]bool, name string) *string {
	raw, ok := payload[name]
	if !ok || excluded[name] {
		return nil
	}
	value := jsonString(raw)
	return &value
}

func jsonString(raw json.RawMessage) string {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
