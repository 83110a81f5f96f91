package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"http_server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Attendance AttendanceConfig `mapstructure:"attendance"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Source          string        `mapstructure:"source"`
}

// AttendanceConfig holds the knobs of the time-accounting engine.
//
// SessionCeiling is the single authoritative maximum session length: both the
// live clock endpoint and the background guard cap against it. Timestamps are
// naive local wall-clock values throughout; the deployment is single-site.
type AttendanceConfig struct {
	SessionCeiling  time.Duration `mapstructure:"session_ceiling"`
	GuardInterval   time.Duration `mapstructure:"guard_interval"`
	GuardInitDelay  time.Duration `mapstructure:"guard_initial_delay"`
	RecomputeAtomic bool          `mapstructure:"recompute_atomic"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- DEFAULTS -----------------

const (
	DefaultSessionCeiling = 10 * time.Hour
	DefaultGuardInterval  = 5 * time.Minute
	DefaultGuardInitDelay = 30 * time.Second
)

// ApplyDefaults fills unset attendance values so a minimal config file works.
func (c *Config) ApplyDefaults() {
	if c.Attendance.SessionCeiling <= 0 {
		c.Attendance.SessionCeiling = DefaultSessionCeiling
	}
	if c.Attendance.GuardInterval <= 0 {
		c.Attendance.GuardInterval = DefaultGuardInterval
	}
	if c.Attendance.GuardInitDelay <= 0 {
		c.Attendance.GuardInitDelay = DefaultGuardInitDelay
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}

// ----------------- ENV FALLBACK -----------------

// LoadConfigFromEnv builds the config purely from environment variables, used
// for container deployments where no config.yml is mounted.
func LoadConfigFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("HTTP_PORT", 8080),
			BaseURL:        getEnv("BASE_URL", ""),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Source:          getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Attendance: AttendanceConfig{
			SessionCeiling:  getEnvAsDuration("SESSION_CEILING", DefaultSessionCeiling),
			GuardInterval:   getEnvAsDuration("GUARD_INTERVAL", DefaultGuardInterval),
			GuardInitDelay:  getEnvAsDuration("GUARD_INITIAL_DELAY", DefaultGuardInitDelay),
			RecomputeAtomic: getEnv("RECOMPUTE_ATOMIC", "true") == "true",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Attendance.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("attendance config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.AllowedOrigins != "" {
		origins := strings.Split(c.AllowedOrigins, ",")
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				continue
			}
			if _, err := url.Parse(origin); err != nil {
				return fmt.Errorf("invalid allowed origin %s: %w", origin, err)
			}
		}
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Source == "" {
		return errors.New("source is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return errors.New("max_idle_conns cannot be greater than max_open_conns")
	}
	return nil
}

func (c *AttendanceConfig) Validate() error {
	if c.SessionCeiling <= 0 {
		return errors.New("session_ceiling must be positive")
	}
	if c.GuardInterval <= 0 {
		return errors.New("guard_interval must be positive")
	}
	if c.SessionCeiling < time.Hour {
		return errors.New("session_ceiling below 1h would force-close ordinary shifts")
	}
	return nil
}

func (c *DatabaseConfig) GetDSN() string {
	return c.Source
}
