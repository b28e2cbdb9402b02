package handler

import (
	"context"
	"encoding/json"
	"io"

	"github.com/openlms/courseadmin/internal/service"
	"github.com/openlms/courseadmin/internal/settings"
)

// SettingsServiceInterface defines the interface for advanced settings operations.
type SettingsServiceInterface interface {
	Fetch(courseID string, staff bool) (map[string]settings.Setting, error)
	FetchAll(courseID string) (map[string]settings.Setting, error)
	Update(courseID string, payload map[string]json.RawMessage, staff bool) (map[string]settings.Setting, error)
	ValidateAndUpdate(courseID string, payload map[string]json.RawMessage, staff bool) (map[string]settings.Setting, []settings.ValidationError, error)
}

// RosterServiceInterface defines the interface for roster csv operations.
type RosterServiceInterface interface {
	ExportCSV(courseID string, w io.Writer) error
	ImportCSV(ctx context.Context, courseID string, r io.Reader) (*service.ImportResult, error)
}

// OverrideServiceInterface defines the interface for enrollment attribute overrides.
type OverrideServiceInterface interface {
	OverrideFromCSV(r io.Reader) (*service.OverrideResult, error)
}

// TranscriptServiceInterface defines the interface for transcript credential updates.
type TranscriptServiceInterface interface {
	UpdateCredentials(ctx context.Context, creds service.TranscriptCredentials) (map[string]any, bool)
}
