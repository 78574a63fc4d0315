package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	switch c.Ledger.Backend {
	case LedgerBackendFile:
		if strings.TrimSpace(c.Ledger.Dir) == "" {
			return fmt.Errorf("ledger.dir is required for the file backend")
		}
	case LedgerBackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres ledger backend")
		}
	default:
		return fmt.Errorf("ledger.backend must be %q or %q (got %q)",
			LedgerBackendFile, LedgerBackendPostgres, c.Ledger.Backend)
	}

	if err := c.Vision.validate(); err != nil {
		return fmt.Errorf("vision: %w", err)
	}

	if err := c.Tracker.validate(); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("read, write and shutdown timeouts must be > 0")
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (v *VisionConfig) validate() error {
	if strings.TrimSpace(v.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if v.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", v.MaxTokens)
	}
	if v.Temperature < 0 || v.Temperature > 1 {
		return fmt.Errorf("temperature must be in [0, 1] (got %v)", v.Temperature)
	}
	if v.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", v.Timeout)
	}
	if strings.TrimSpace(v.Language) == "" {
		return fmt.Errorf("language is required")
	}
	return nil
}

func (t *TrackerConfig) validate() error {
	loc, err := time.LoadLocation(t.TimeZone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", t.TimeZone, err)
	}
	t.Location = loc
	return nil
}
