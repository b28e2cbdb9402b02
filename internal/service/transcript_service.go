package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/openlms/courseadmin/internal/config"
)

// TranscriptCredentials is the third-party transcription credential payload
// pushed to the transcript pipeline integrations.
type TranscriptCredentials struct {
	Org       string `json:"org"`
	Provider  string `json:"provider"`
	APIKey    string `json:"api_key,omitempty"`
	APISecret string `json:"api_secret,omitempty"`
	Username  string `json:"username,omitempty"`
}

// TranscriptService fans transcription credentials out to every enabled
// transcript pipeline integration.
type TranscriptService struct {
	cfg    config.TranscriptConfig
	client *http.Client
	logger *zap.Logger
}

// NewTranscriptService creates a new transcript service.
func NewTranscriptService(cfg config.TranscriptConfig, logger *zap.Logger) *TranscriptService {
	return &TranscriptService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// UpdateCredentials sends the credentials to each enabled integration.
// A disabled integration is skipped without error. Returns the error body of
// the first failing integration and whether every enabled integration (at
// least one) accepted the update.
func (s *TranscriptService) UpdateCredentials(ctx context.Context, creds TranscriptCredentials) (map[string]any, bool) {
	updated := false

	for _, integration := range []config.TranscriptIntegration{s.cfg.Legacy, s.cfg.VEM} {
		if !integration.Enabled {
			s.logger.Info("transcript integration disabled, skipping",
				zap.String("integration", integration.Name))
			continue
		}

		s.logger.Info("sending transcript credentials",
			zap.String("integration", integration.Name),
			zap.String("org", creds.Org),
			zap.String("provider", creds.Provider))

		if errResp := s.send(ctx, integration, creds); errResp != nil {
			s.logger.Error("unable to update transcript credentials",
				zap.String("integration", integration.Name),
				zap.String("org", creds.Org),
				zap.String("provider", creds.Provider),
				zap.Any("response", errResp))
			return errResp, false
		}

		updated = true
	}

	return map[string]any{}, updated
}

// send posts the credentials to one integration. Returns the decoded error
// body on failure, nil on success.
func (s *TranscriptService) send(ctx context.Context, integration config.TranscriptIntegration, creds TranscriptCredentials) map[string]any {
	body, err := json.Marshal(creds)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	url := integration.APIURL + "/transcript_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+integration.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeErrorBody(resp.Body, resp.StatusCode)
	}

	return nil
}

func decodeErrorBody(r io.Reader, status int) map[string]any {
	raw, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil || len(raw) == 0 {
		return map[string]any{"error": fmt.Sprintf("unexpected status %d", status)}
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]any{"error": string(raw)}
	}
	return decoded
}
