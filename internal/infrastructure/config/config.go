package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once from the environment at startup. A .env file is
// autoloaded by cmd/api before Load runs.
type Config struct {
	Port string

	LegacyAPIBaseURL          string
	LegacyAPITimeout          time.Duration
	PermissionRefreshInterval time.Duration

	ChangeSetsTable           string
	TicketDraftsTable         string
	TicketAuthorizationsTable string
	DraftTTL                  time.Duration

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	LogFile  string
	LogLevel string
	GinMode  string
}

func Load() Config {
	return Config{
		Port: getenvDefault("PORT", "8080"),

		LegacyAPIBaseURL:          strings.TrimRight(getenvDefault("LEGACY_API_BASE_URL", "http://localhost/api"), "/"),
		LegacyAPITimeout:          getenvDuration("LEGACY_API_TIMEOUT", 15*time.Second),
		PermissionRefreshInterval: getenvDuration("PERMISSION_REFRESH_INTERVAL", 15*time.Second),

		ChangeSetsTable:           getenvDefault("CHANGESETS_TABLE", "stage_changesets"),
		TicketDraftsTable:         getenvDefault("TICKET_DRAFTS_TABLE", "ticket_drafts"),
		TicketAuthorizationsTable: getenvDefault("TICKET_AUTHORIZATIONS_TABLE", "ticket_authorizations"),
		DraftTTL:                  getenvDuration("DRAFT_TTL", 72*time.Hour),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		LogFile:  getenvDefault("LOG_FILE", "./logs/app.log"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		GinMode:  os.Getenv("GIN_MODE"),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getenvDuration accepts Go durations ("15s") or plain seconds ("15").
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
