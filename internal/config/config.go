// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Kafka      KafkaConfig
	Features   FeatureFlags
	Proctoring ProctoringConfig
	Transcript TranscriptConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// KafkaConfig contains audit event publishing settings.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FeatureFlags are platform-wide toggles that drive which advanced settings
// fields are editable.
type FeatureFlags struct {
	EnableExportGit           bool
	EnableCourseNotes         bool
	EnableOtherCourseSettings bool
	EnableVideoUploadPipeline bool
	EnableAutoAdvanceVideos   bool
	EnableCustomCourseURLs    bool
	EnableTeams               bool
	EnableVideoBumper         bool
	EnableCustomCourses       bool
	EnableOpenBadges          bool
}

// ProctoringConfig lists the available proctoring backends.
type ProctoringConfig struct {
	Backends            []string
	PartnerSupportEmail string
}

// HasBackend reports whether the named proctoring backend is configured.
func (c ProctoringConfig) HasBackend(name string) bool {
	for _, b := range c.Backends {
		if b == name {
			return true
		}
	}
	return false
}

// TranscriptConfig describes the transcript pipeline integrations that
// third-party transcription credentials are pushed to.
type TranscriptConfig struct {
	Legacy               TranscriptIntegration
	VEM                  TranscriptIntegration
	VEMRolloutPercentage int
}

// TranscriptIntegration is a single transcript pipeline endpoint.
type TranscriptIntegration struct {
	Name        string
	Enabled     bool
	APIURL      string
	AccessToken string
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverHost, err := getRequiredEnv("SERVER_HOST")
	if err != nil {
		return nil, err
	}

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	dbHost, err := getRequiredEnv("DB_HOST")
	if err != nil {
		return nil, err
	}

	dbPort, err := getRequiredEnv("DB_PORT")
	if err != nil {
		return nil, err
	}

	dbUser, err := getRequiredEnv("DB_USER")
	if err != nil {
		return nil, err
	}

	dbPassword, err := getRequiredEnv("DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	dbName, err := getRequiredEnv("DB_NAME")
	if err != nil {
		return nil, err
	}

	dbSSLMode, err := getRequiredEnv("DB_SSLMODE")
	if err != nil {
		return nil, err
	}

	vemRollout, err := getIntEnv("TRANSCRIPT_VEM_ROLLOUT_PERCENTAGE", 100)
	if err != nil {
		return nil, err
	}
	if vemRollout < 0 || vemRollout > 100 {
		return nil, fmt.Errorf("invalid percentage, TRANSCRIPT_VEM_ROLLOUT_PERCENTAGE must be between 0 and 100")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		Kafka: KafkaConfig{
			Brokers: getListEnv("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "course-audit-events"),
		},
		Features: FeatureFlags{
			EnableExportGit:           getBoolEnv("FEATURE_ENABLE_EXPORT_GIT"),
			EnableCourseNotes:         getBoolEnv("FEATURE_ENABLE_COURSE_NOTES"),
			EnableOtherCourseSettings: getBoolEnv("FEATURE_ENABLE_OTHER_COURSE_SETTINGS"),
			EnableVideoUploadPipeline: getBoolEnv("FEATURE_ENABLE_VIDEO_UPLOAD_PIPELINE"),
			EnableAutoAdvanceVideos:   getBoolEnv("FEATURE_ENABLE_AUTOADVANCE_VIDEOS"),
			EnableCustomCourseURLs:    getBoolEnv("FEATURE_ENABLE_CUSTOM_COURSE_URLS"),
			EnableTeams:               getBoolEnv("FEATURE_ENABLE_TEAMS"),
			EnableVideoBumper:         getBoolEnv("FEATURE_ENABLE_VIDEO_BUMPER"),
			EnableCustomCourses:       getBoolEnv("FEATURE_ENABLE_CUSTOM_COURSES"),
			EnableOpenBadges:          getBoolEnv("FEATURE_ENABLE_OPEN_BADGES"),
		},
		Proctoring: ProctoringConfig{
			Backends:            getListEnv("PROCTORING_BACKENDS"),
			PartnerSupportEmail: getEnv("PARTNER_SUPPORT_EMAIL", "support"),
		},
		Transcript: TranscriptConfig{
			Legacy: TranscriptIntegration{
				Name:        "legacy",
				Enabled:     getBoolEnv("TRANSCRIPT_LEGACY_ENABLED"),
				APIURL:      os.Getenv("TRANSCRIPT_LEGACY_API_URL"),
				AccessToken: os.Getenv("TRANSCRIPT_LEGACY_ACCESS_TOKEN"),
			},
			VEM: TranscriptIntegration{
				Name:        "vem",
				Enabled:     getBoolEnv("TRANSCRIPT_VEM_ENABLED"),
				APIURL:      os.Getenv("TRANSCRIPT_VEM_API_URL"),
				AccessToken: os.Getenv("TRANSCRIPT_VEM_ACCESS_TOKEN"),
			},
			VEMRolloutPercentage: vemRollout,
		},
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getBoolEnv reads a boolean environment variable; unset or unparsable means false.
func getBoolEnv(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return value
}

// getIntEnv reads an integer environment variable with a fallback default.
func getIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getListEnv reads a comma-separated environment variable.
func getListEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
