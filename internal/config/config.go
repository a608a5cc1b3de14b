package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the engine and the sweep binary.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"db"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Sweep     SweepConfig     `mapstructure:"sweep"`
	Log       LogConfig       `mapstructure:"log"`
}

// DatabaseConfig points at the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// GeneratorConfig sets the generation windows, in days. List reads use the
// short window to bound per-request cost; calendar views use the long one
// so scrolling far ahead does not show gaps.
type GeneratorConfig struct {
	ListWindowDays     int `mapstructure:"list_window_days"`
	CalendarWindowDays int `mapstructure:"calendar_window_days"`
	SeedWindowDays     int `mapstructure:"seed_window_days"`
}

// SweepConfig drives the maintenance sweep. DailyAt ("HH:MM") wins over
// Interval when both are set.
type SweepConfig struct {
	Interval   time.Duration `mapstructure:"interval"`
	DailyAt    string        `mapstructure:"daily_at"`
	WindowDays int           `mapstructure:"window_days"`
}

// LogConfig controls zap construction.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration with precedence: env > config file > defaults.
// Env vars use the STUDYPLANNER_ prefix with underscores, e.g.
// STUDYPLANNER_DB_PATH.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db.path", "study_planner.db")
	v.SetDefault("generator.list_window_days", 60)
	v.SetDefault("generator.calendar_window_days", 365)
	v.SetDefault("generator.seed_window_days", 60)
	v.SetDefault("sweep.interval", 6*time.Hour)
	v.SetDefault("sweep.daily_at", "")
	v.SetDefault("sweep.window_days", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix("STUDYPLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Generator.ListWindowDays <= 0 || cfg.Generator.CalendarWindowDays <= 0 || cfg.Generator.SeedWindowDays <= 0 {
		return nil, fmt.Errorf("generation windows must be positive")
	}
	if cfg.Sweep.WindowDays <= 0 {
		return nil, fmt.Errorf("sweep window must be positive")
	}

	return &cfg, nil
}
