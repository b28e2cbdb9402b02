package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openlms/courseadmin/internal/config"
	"github.com/openlms/courseadmin/internal/service"
	"github.com/openlms/courseadmin/internal/settings"
	"github.com/openlms/courseadmin/tests"
)

const settingsCourseID = "course-v1:edX+DemoX+Settings"

func allFeatures() config.FeatureFlags {
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

func proctoringConfig() config.ProctoringConfig {
	return config.ProctoringConfig{
		Backends:            []string{"software_secure", "proctortrack"},
		PartnerSupportEmail: "partner-support@example.com",
	}
}

func TestSettingsService_FetchAndUpdate(t *testing.T) {
	db, err := tests.SetupTestDB()
	require.NoError(t, err)
	defer db.Close()
	defer tests.CleanupTestDB(db)

	seedCourse(t, db, settingsCourseID, nil)

	settingsService := service.NewSettingsService(db, allFeatures(), proctoringConfig(), zap.NewNop())

	t.Run("fetch returns defaults without excluded fields", func(t *testing.T) {
		fetched, err := settingsService.Fetch(settingsCourseID, true)
		require.NoError(t, err)

		require.Contains(t, fetched, "giturl")
		assert.JSONEq(t, `null`, string(fetched["giturl"].Value))

		// The always-hidden fields never show up.
		assert.NotContains(t, fetched, "tabs")
		assert.NotContains(t, fetched, "graceperiod")
		// Per-course flags are off, so the flagged fields are hidden too.
		assert.NotContains(t, fetched, "proctoring_provider")
		assert.NotContains(t, fetched, "course_visibility")
	})

	t.Run("fetch all ignores the exclusion list", func(t *testing.T) {
		fetched, err := settingsService.FetchAll(settingsCourseID)
		require.NoError(t, err)
		assert.Contains(t, fetched, "tabs")
		assert.Contains(t, fetched, "proctoring_provider")
	})

	t.Run("update persists a changed value", func(t *testing.T) {
		payload := map[string]json.RawMessage{
			"giturl": json.RawMessage(`"https://github.com/org/course.git"`),
		}
		updated, err := settingsService.Update(settingsCourseID, payload, true)
		require.NoError(t, err)
		assert.JSONEq(t, `"https://github.com/org/course.git"`, string(updated["giturl"].Value))

		fetched, err := settingsService.Fetch(settingsCourseID, true)
		require.NoError(t, err)
		assert.JSONEq(t, `"https://github.com/org/course.git"`, string(fetched["giturl"].Value))
	})

	t.Run("update silently drops excluded and unknown fields", func(t *testing.T) {
		payload := map[string]json.RawMessage{
			"tabs":          json.RawMessage(`[{"type": "wiki"}]`),
			"no_such_field": json.RawMessage(`"x"`),
		}
		_, err := settingsService.Update(settingsCourseID, payload, true)
		require.NoError(t, err)

		fetched, err := settingsService.FetchAll(settingsCourseID)
		require.NoError(t, err)
		// The stored value is still the registry default.
		def, ok := settings.Lookup("tabs")
		require.True(t, ok)
		assert.JSONEq(t, string(def.Default), string(fetched["tabs"].Value))
	})

	t.Run("update rejects a value of the wrong type", func(t *testing.T) {
		payload := map[string]json.RawMessage{
			"giturl": json.RawMessage(`42`),
		}
		_, err := settingsService.Update(settingsCourseID, payload, true)
		assert.ErrorIs(t, err, service.ErrInvalidFieldValue)
	})

	t.Run("fetch for unknown course fails", func(t *testing.T) {
		_, err := settingsService.Fetch("course-v1:edX+DemoX+Missing", true)
		assert.ErrorIs(t, err, service.ErrCourseNotFound)
	})
}

func TestSettingsService_ValidateAndUpdate(t *testing.T) {
	db, err := tests.SetupTestDB()
	require.NoError(t, err)
	defer db.Close()
	defer tests.CleanupTestDB(db)

	// A course that started a month ago, with provider overrides enabled so
	// the proctoring fields are editable.
	seedCourse(t, db, settingsCourseID, timePtr(time.Now().UTC().Add(-30*24*time.Hour)))
	seedCourseFlag(t, db, settingsCourseID, settings.FlagProctoringProviderOverrides)

	settingsService := service.NewSettingsService(db, allFeatures(), proctoringConfig(), zap.NewNop())

	// Staff sets the initial provider.
	_, validationErrors, err := settingsService.ValidateAndUpdate(settingsCourseID, map[string]json.RawMessage{
		"proctoring_provider":         json.RawMessage(`"software_secure"`),
		"proctoring_escalation_email": json.RawMessage(`"escalation@example.com"`),
	}, true)
	require.NoError(t, err)
	require.Empty(t, validationErrors)

	t.Run("non-staff cannot change provider after start", func(t *testing.T) {
		_, validationErrors, err := settingsService.ValidateAndUpdate(settingsCourseID, map[string]json.RawMessage{
			"proctoring_provider": json.RawMessage(`"proctortrack"`),
		}, false)
		require.NoError(t, err)
		require.Len(t, validationErrors, 1)
		assert.Equal(t, "proctoring_provider", validationErrors[0].Field)
		assert.Contains(t, validationErrors[0].Message, "cannot be modified after a course has started")
		assert.Contains(t, validationErrors[0].Message, "partner-support@example.com")

		// Nothing was saved.
		fetched, err := settingsService.Fetch(settingsCourseID, true)
		require.NoError(t, err)
		assert.JSONEq(t, `"software_secure"`, string(fetched["proctoring_provider"].Value))
	})

	t.Run("staff can change provider after start", func(t *testing.T) {
		updated, validationErrors, err := settingsService.ValidateAndUpdate(settingsCourseID, map[string]json.RawMessage{
			"proctoring_provider": json.RawMessage(`"proctortrack"`),
		}, true)
		require.NoError(t, err)
		require.Empty(t, validationErrors)
		assert.JSONEq(t, `"proctortrack"`, string(updated["proctoring_provider"].Value))
	})

	t.Run("clearing escalation email while proctortrack active fails", func(t *testing.T) {
		_, validationErrors, err := settingsService.ValidateAndUpdate(settingsCourseID, map[string]json.RawMessage{
			"proctoring_escalation_email": json.RawMessage(`""`),
		}, true)
		require.NoError(t, err)
		require.Len(t, validationErrors, 1)
		assert.Equal(t, "proctoring_escalation_email", validationErrors[0].Field)
		assert.Equal(t, "Provider 'proctortrack' requires an exam escalation contact.", validationErrors[0].Message)
	})

	t.Run("all failing fields are reported together", func(t *testing.T) {
		_, validationErrors, err := settingsService.ValidateAndUpdate(settingsCourseID, map[string]json.RawMessage{
			"giturl":                      json.RawMessage(`42`),
			"proctoring_escalation_email": json.RawMessage(`""`),
		}, true)
		require.NoError(t, err)
		require.Len(t, validationErrors, 2)

		fields := []string{validationErrors[0].Field, validationErrors[1].Field}
		assert.Contains(t, fields, "giturl")
		assert.Contains(t, fields, "proctoring_escalation_email")
	})
}
