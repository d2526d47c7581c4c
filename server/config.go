package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Pjt727/studygroup/data"
)

const (
	defaultPort       = 3000
	defaultSessionTTL = 30 * time.Minute
)

type Config struct {
	Port           int
	SessionTTL     time.Duration
	AllowedOrigins []string
	// set by LOCAL, cookies are only marked secure outside of local development
	Local          bool
	SecureCookies  bool
	// JSON logs are appended here as well as printed when set
	LogFile        string
}

// LoadConfig reads PORT, SESSION_TTL, ALLOWED_ORIGINS, LOG_FILE and LOCAL. Unset values fall back
// to their defaults, malformed values are an error.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	local := data.IsLocal(getenv)
	cfg := Config{
		Port:          defaultPort,
		SessionTTL:    defaultSessionTTL,
		Local:         local,
		SecureCookies: !local,
		LogFile:       strings.TrimSpace(getenv("LOG_FILE")),
	}

	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}

	if ttl := strings.TrimSpace(getenv("SESSION_TTL")); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q: %w", ttl, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", d)
		}
		cfg.SessionTTL = d
	}

	for _, origin := range strings.Split(getenv("ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	return cfg, nil
}
