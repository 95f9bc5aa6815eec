package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, calendar id, etc.)
// - default: Values common across all environments (timezone, timeouts, etc.)
// - optional backends (DB, Redis, SMTP, Google) are enabled when their host/file is set
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Action   ActionConfig
	Calendar CalendarConfig
	SMTP     SMTPConfig
	DB       DBConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Bogota"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"commerce-actions"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type ActionConfig struct {
	DefaultTimeout time.Duration `envconfig:"ACTION_DEFAULT_TIMEOUT" default:"15s"`
	AdapterTimeout time.Duration `envconfig:"ADAPTER_TIMEOUT" default:"10s"`
}

type CalendarConfig struct {
	ServiceAccountFile string `envconfig:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	CalendarID         string `envconfig:"GOOGLE_CALENDAR_ID" required:"true"`
	TimeZone           string `envconfig:"GOOGLE_CALENDAR_TIMEZONE" default:"America/Bogota"`
	EventSummary       string `envconfig:"GOOGLE_CALENDAR_EVENT_SUMMARY" default:"Video call with customer"`
}

type SMTPConfig struct {
	Server        string `envconfig:"SMTP_SERVER"`
	Port          int    `envconfig:"SMTP_PORT" default:"587"`
	User          string `envconfig:"SMTP_USER"`
	Password      string `envconfig:"SMTP_PASS"`
	RatePerMinute int    `envconfig:"SMTP_RATE_PER_MINUTE" default:"30"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"commerce"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"30s"`
}

func (c *DBConfig) Enabled() bool {
	return c.Host != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *SMTPConfig) Enabled() bool {
	return c.Server != ""
}

func (c *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server, c.Port)
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// CheckLockLease fails when a lock lease could expire while an action still
// holds it; two replicas would then both pass the conflict check.
func (c *RedisConfig) CheckLockLease(actionTimeout time.Duration) error {
	if c.LockTTL <= actionTimeout {
		return fmt.Errorf("REDIS_LOCK_TTL (%s) must exceed ACTION_DEFAULT_TIMEOUT (%s)", c.LockTTL, actionTimeout)
	}
	return nil
}

func (c *CalendarConfig) UsesGoogle() bool {
	return c.ServiceAccountFile != ""
}

func (c *CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid GOOGLE_CALENDAR_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Bogota",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Issuer:   "commerce-actions",
			Duration: "1h",
		},
		Action: ActionConfig{
			DefaultTimeout: 2 * time.Second,
			AdapterTimeout: time.Second,
		},
		Calendar: CalendarConfig{
			CalendarID:   "test-calendar",
			TimeZone:     "America/Bogota",
			EventSummary: "Video call with customer",
		},
		SMTP: SMTPConfig{
			Port:          587,
			RatePerMinute: 60,
		},
	}
}
