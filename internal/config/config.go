// Package config loads the bot configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

const (
	defaultSessionURL   = "https://session.wabot.sh/files"
	defaultDataDirName  = ".wabot"
	defaultInactiveDays = 7
)

type Config struct {
	// SessionID is the opaque id used to pull session state from the
	// session server. Empty means no session is paired yet.
	SessionID string

	// SessionURL is the base URL of the remote session endpoint; the
	// session id is appended as a path segment.
	SessionURL string

	// DataDir holds the durable store, scratch downloads, and logs.
	DataDir string

	// OwnerJID is the bot account's own jid, excluded from the
	// direct-message summary.
	OwnerJID string

	// InactiveDays is the activity window for the inactive-members
	// report.
	InactiveDays int

	Debug bool
}

type Env interface {
	Getenv(key string) string
}

type osEnv struct{}

func (osEnv) Getenv(key string) string { return os.Getenv(key) }

// Load builds the configuration from the process environment. Flag values
// override environment values when non-zero.
func Load(cwd, dataDir string, debug bool) (*Config, error) {
	return LoadFromEnv(osEnv{}, cwd, dataDir, debug)
}

func LoadFromEnv(env Env, cwd, dataDir string, debug bool) (*Config, error) {
	cfg := &Config{
		SessionURL:   defaultSessionURL,
		DataDir:      filepath.Join(cwd, defaultDataDirName),
		InactiveDays: defaultInactiveDays,
		Debug:        debug,
	}

	cfg.SessionID = env.Getenv("WABOT_SESSION_ID")
	cfg.OwnerJID = env.Getenv("WABOT_OWNER_JID")

	if raw := env.Getenv("WABOT_SESSION_URL"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid WABOT_SESSION_URL")
		}
		cfg.SessionURL = raw
	}

	if raw := env.Getenv("WABOT_DATA_DIR"); raw != "" {
		cfg.DataDir = raw
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if raw := env.Getenv("WABOT_INACTIVE_DAYS"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("invalid WABOT_INACTIVE_DAYS")
		}
		cfg.InactiveDays = days
	}

	if raw := env.Getenv("WABOT_DEBUG"); raw != "" {
		cfg.Debug = raw == "1" || raw == "true"
	}

	return cfg, nil
}

// LogFile returns the path of the rotating log file inside the data dir.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "wabot.log")
}
