// Package config loads runtime settings from the environment and optional
// .env files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/hierarchy"
)

// DefaultEnvFiles are read, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.local"}

type Config struct {
	// DBPath defaults to ~/.wbsimport/wbsimport.db.
	DBPath string `env:"WBS_DB_PATH"`
	// UploadDir defaults to an "uploads" directory next to the database.
	UploadDir      string `env:"WBS_UPLOAD_DIR"`
	ListenAddr     string `env:"WBS_LISTEN_ADDR" envDefault:":8080"`
	LogLevel       string `env:"WBS_LOG_LEVEL" envDefault:"info"`
	Resolver       string `env:"WBS_RESOLVER" envDefault:"forward"`
	SchedulePolicy string `env:"WBS_SCHEDULE_POLICY" envDefault:"always_create"`
	MaxUploadBytes int64  `env:"WBS_MAX_UPLOAD_BYTES" envDefault:"33554432"`
	MetricsEnabled bool   `env:"WBS_METRICS_ENABLED" envDefault:"true"`
}

// LoadEnv loads the env files that exist and reports how many were found.
// Variables already set in the process environment win.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads envFiles, parses the environment, fills path defaults and
// validates the result.
func Load(envFiles ...string) (*Config, error) {
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, errors.Wrap(err, "loading env files")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "finding home directory")
		}
		c.DBPath = filepath.Join(home, ".wbsimport", "wbsimport.db")
	}
	if c.UploadDir == "" {
		c.UploadDir = filepath.Join(filepath.Dir(c.DBPath), "uploads")
	}
	return nil
}

func (c *Config) Validate() error {
	if !domain.ValidSchedulePolicies[c.SchedulePolicy] {
		return errors.Errorf("WBS_SCHEDULE_POLICY: unknown policy %q", c.SchedulePolicy)
	}
	if _, err := hierarchy.FactoryFor(hierarchy.Mode(c.Resolver)); err != nil {
		return errors.Wrap(err, "WBS_RESOLVER")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.Errorf("WBS_MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	switch strings.ToLower(c.LogLevel) {
	case "silent", "error", "warn", "info", "debug":
	default:
		return errors.Errorf("WBS_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	return nil
}

func (c *Config) LogrusLogLevel() logrus.Level {
	switch strings.ToLower(c.LogLevel) {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func (c *Config) ResolverFactory() (hierarchy.Factory, error) {
	return hierarchy.FactoryFor(hierarchy.Mode(c.Resolver))
}

func (c *Config) Policy() domain.SchedulePolicy {
	return domain.SchedulePolicy(c.SchedulePolicy)
}
