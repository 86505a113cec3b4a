package config

import (
	"strings"
	"time"
)

// DefaultAdminSessionSecret is used when ADMIN_CENTER_SESSION_SECRET is unset.
// Startup logs a warning while it is in effect.
const DefaultAdminSessionSecret = "change-me-in-production"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Admin    AdminConfig    `yaml:"admin"`
	Inbound  InboundConfig  `yaml:"inbound"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Organization-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
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
	// StatementTimeout bounds every query; zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"crm-backend"`
}

// RedisConfig holds the inbound dedup cache settings. An empty Addr disables dedup.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"crm"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// AdminConfig holds the Admin Center settings.
type AdminConfig struct {
	// Email is the single account allowed to view or rotate the access code.
	Email            string        `yaml:"email"             env:"ADMIN_EMAIL"`
	SessionSecret    string        `yaml:"session_secret"    env:"ADMIN_CENTER_SESSION_SECRET" env-default:"change-me-in-production"`
	SessionTTL       time.Duration `yaml:"session_ttl"       env:"ADMIN_SESSION_TTL"           env-default:"8h"`
	CookiePath       string        `yaml:"cookie_path"       env:"ADMIN_COOKIE_PATH"           env-default:"/admincenter"`
	CookieSecure     bool          `yaml:"cookie_secure"     env:"ADMIN_COOKIE_SECURE"         env-default:"true"`
	AppURL           string        `yaml:"app_url"           env:"APP_URL"                     env-default:"http://localhost:3000"`
	ImpersonationTTL time.Duration `yaml:"impersonation_ttl" env:"ADMIN_IMPERSONATION_TTL"     env-default:"5m"`
	LoginRateLimit   int           `yaml:"login_rate_limit"  env:"ADMIN_LOGIN_RATE_LIMIT"      env-default:"10"`
}

// UsesDefaultSecret reports whether the session secret was left at its placeholder.
func (c AdminConfig) UsesDefaultSecret() bool {
	return c.SessionSecret == "" || c.SessionSecret == DefaultAdminSessionSecret
}

// InboundConfig holds inbound email webhook settings.
type InboundConfig struct {
	Secret   string        `yaml:"secret"    env:"INBOUND_SECRET"`
	DedupTTL time.Duration `yaml:"dedup_ttl" env:"INBOUND_DEDUP_TTL" env-default:"72h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
