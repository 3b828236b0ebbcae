package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Watcher  WatcherConfig  `yaml:"watcher"`
	Feed     FeedConfig     `yaml:"feed"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds access-token validation settings. Token issuance is
// handled by the external identity provider; this service only validates.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"propertypasalo"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// SMTPConfig holds the operator-notification mailer settings.
type SMTPConfig struct {
	Host         string        `yaml:"host"          env:"SMTP_HOST"`
	Port         int           `yaml:"port"          env:"SMTP_PORT"          env-default:"587"`
	Username     string        `yaml:"username"      env:"SMTP_USERNAME"`
	Password     string        `yaml:"password"      env:"SMTP_PASSWORD"`
	From         string        `yaml:"from"          env:"SMTP_FROM"`
	OperatorAddr string        `yaml:"operator_addr" env:"SMTP_OPERATOR_ADDR"`
	Timeout      time.Duration `yaml:"timeout"       env:"SMTP_TIMEOUT"       env-default:"10s"`
}

// Enabled reports whether the mailer is configured at all. With no host
// the confirmation handler skips dispatch instead of erroring.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.OperatorAddr != ""
}

// WatcherConfig holds the client status listener settings.
type WatcherConfig struct {
	Channel          string        `yaml:"channel"           env:"WATCHER_CHANNEL"           env-default:"client_status_changed"`
	ReconnectBackoff time.Duration `yaml:"reconnect_backoff" env:"WATCHER_RECONNECT_BACKOFF" env-default:"3s"`
}

// FeedConfig holds public feed read settings.
type FeedConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"FEED_DEFAULT_LIMIT" env-default:"20"`
	MaxLimit     int `yaml:"max_limit"     env:"FEED_MAX_LIMIT"     env-default:"100"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
