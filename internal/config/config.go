package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Tracker  TrackerConfig  `yaml:"tracker"`
	Vision   VisionConfig   `yaml:"vision"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"45s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes caps request bodies; photos arrive inline as data URIs.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"15728640"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres ledger backend.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// Ledger backends.
const (
	LedgerBackendFile     = "file"
	LedgerBackendPostgres = "postgres"
)

// LedgerConfig selects where the profile and meal records are kept.
type LedgerConfig struct {
	Backend string `yaml:"backend" env:"LEDGER_BACKEND" env-default:"file"`
	Dir     string `yaml:"dir"     env:"LEDGER_DIR"     env-default:"./data"`
}

// TrackerConfig holds meal tracking settings.
type TrackerConfig struct {
	TimeZone string `yaml:"timezone" env:"TRACKER_TIMEZONE" env-default:"Local"`

	// Location is resolved from TimeZone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// VisionConfig holds settings of the vision inference endpoint used to
// estimate meals from photos.
type VisionConfig struct {
	APIKey      string        `yaml:"api_key"     env:"VISION_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"VISION_BASE_URL"`
	Model       string        `yaml:"model"       env:"VISION_MODEL"       env-default:"claude-sonnet-4-5"`
	MaxTokens   int64         `yaml:"max_tokens"  env:"VISION_MAX_TOKENS"  env-default:"300"`
	Temperature float64       `yaml:"temperature" env:"VISION_TEMPERATURE" env-default:"0.3"`
	Timeout     time.Duration `yaml:"timeout"     env:"VISION_TIMEOUT"     env-default:"30s"`
	Language    string        `yaml:"language"    env:"VISION_LANGUAGE"    env-default:"Brazilian Portuguese"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
