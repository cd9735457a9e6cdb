package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the hostctl CLI.
//
// Fields:
//   - APIBaseURL: root URL of the platform REST API.
//   - DatabasePath: path of the local SQLite session database.
//   - RequestTimeout: per-HTTP-call deadline.
//   - RefreshLookahead: how close to expiry a token may get before a call
//     refreshes it proactively.
//   - OnlineCheckInterval: how often the client probes backend reachability.
type Config struct {
	APIBaseURL          string
	DatabasePath        string
	RequestTimeout      time.Duration
	RefreshLookahead    time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults. The API base URL can be
// seeded from the HOSTCTL_API_URL environment variable.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	if v := os.Getenv("HOSTCTL_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	c.DatabasePath = "hostctl.db"
	c.RequestTimeout = 10 * time.Second
	c.RefreshLookahead = 5 * time.Minute
	c.OnlineCheckInterval = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
