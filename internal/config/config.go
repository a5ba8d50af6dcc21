package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string         `yaml:"addr"`
	APITimeout     time.Duration  `yaml:"timeout"`
	DatabasePath   string         `yaml:"database_path"`
	MigrateOnStart bool           `yaml:"migrate_on_start"`
	LogLevel       string         `yaml:"log_level"`
	Engine         EngineConfig   `yaml:"engine"`
	Snapshot       SnapshotConfig `yaml:"snapshot"`
}

// EngineConfig tunes the in-memory pipeline engine.
type EngineConfig struct {
	MinNoteLength   int    `yaml:"min_note_length"`
	VacancyPageSize int    `yaml:"vacancy_page_size"`
	CompanyPageSize int    `yaml:"company_page_size"`
	Locale          string `yaml:"locale"`
	SeedFixtures    bool   `yaml:"seed_fixtures"`
}

// SnapshotConfig controls persistence of the engine state to SQLite.
type SnapshotConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

const (
	defaultMinNoteLength   = 10
	defaultVacancyPageSize = 50
	defaultCompanyPageSize = 20
	defaultLocale          = "en"
	defaultSnapshotEvery   = 30 * time.Second
)

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second

	cfg := &Config{
		Addr:           getEnv("STAFFING_ADDR", ":8080"),
		APITimeout:     apiTimeout,
		DatabasePath:   getEnv("STAFFING_DATABASE_PATH", "staffing.db"),
		MigrateOnStart: true,
		LogLevel:       getEnv("STAFFING_LOG_LEVEL", "info"),
		Engine: EngineConfig{
			MinNoteLength:   defaultMinNoteLength,
			VacancyPageSize: defaultVacancyPageSize,
			CompanyPageSize: defaultCompanyPageSize,
			Locale:          defaultLocale,
			SeedFixtures:    true,
		},
		Snapshot: SnapshotConfig{Enabled: true, Interval: defaultSnapshotEvery},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate fills zero engine settings with defaults and rejects values the
// service cannot run with. Outside development, state must be persisted.
func (c *Config) Validate() error {
	if c.Engine.MinNoteLength == 0 {
		c.Engine.MinNoteLength = defaultMinNoteLength
	}
	if c.Engine.VacancyPageSize == 0 {
		c.Engine.VacancyPageSize = defaultVacancyPageSize
	}
	if c.Engine.CompanyPageSize == 0 {
		c.Engine.CompanyPageSize = defaultCompanyPageSize
	}
	if c.Engine.Locale == "" {
		c.Engine.Locale = defaultLocale
	}
	if c.Snapshot.Interval == 0 {
		c.Snapshot.Interval = defaultSnapshotEvery
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.APITimeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", c.APITimeout))
	}
	if c.Engine.MinNoteLength < 0 || c.Engine.VacancyPageSize < 0 || c.Engine.CompanyPageSize < 0 {
		errs = append(errs, errors.New("engine sizes must not be negative"))
	}
	if _, err := language.Parse(c.Engine.Locale); err != nil {
		errs = append(errs, fmt.Errorf("engine locale %q: %w", c.Engine.Locale, err))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Snapshot.Interval < 0 {
		errs = append(errs, fmt.Errorf("snapshot interval must not be negative, got %s", c.Snapshot.Interval))
	}
	if c.Snapshot.Enabled && c.DatabasePath == "" {
		errs = append(errs, errors.New("snapshot enabled without database_path"))
	}
	if env := strings.ToLower(getEnv("STAFFING_ENV", "development")); env != "development" && !c.Snapshot.Enabled {
		errs = append(errs, fmt.Errorf("snapshot persistence must be enabled in %s", env))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
