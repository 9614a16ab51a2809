package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultBarWeight = 45.0
	defaultLogLevel  = "info"

	// DefaultEnvFile is read when no --env-file is given. It is optional.
	DefaultEnvFile = ".env"
)

var defaultPlates = []float64{2.5, 5, 5, 10, 10, 25, 45}

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > Environment variables > Config file > Defaults
type Config struct {
	Plates    []float64
	BarWeight float64
	LogLevel  string
}

// fileConfig represents the YAML or TOML configuration file structure.
type fileConfig struct {
	Plates    []float64 `yaml:"plates" toml:"plates"`
	BarWeight *float64  `yaml:"bar_weight" toml:"bar_weight"`
	LogLevel  string    `yaml:"log_level" toml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	EnvFile    string
	PlatesStr  *string
	BarWeight  *float64
	LogLevel   *string
}

// DefaultPlates returns a copy of the default plate inventory.
func DefaultPlates() []float64 {
	out := make([]float64, len(defaultPlates))
	copy(out, defaultPlates)
	return out
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > Config file > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		applyFileConfig(&cfg, fileCfg)
	}

	envFile := ""
	if overrides != nil {
		envFile = overrides.EnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	applyEnvConfig(&cfg)

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Plates:    DefaultPlates(),
		BarWeight: defaultBarWeight,
		LogLevel:  defaultLogLevel,
	}
}

// loadFromFile reads a YAML file, or a TOML file when the name ends in .toml.
func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
		return &fileCfg, nil
	}

	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &fileCfg, nil
}

// applyFileConfig applies file configuration to the config struct.
func applyFileConfig(cfg *Config, fileCfg *fileConfig) {
	if len(fileCfg.Plates) > 0 {
		cfg.Plates = fileCfg.Plates
	}

	if fileCfg.BarWeight != nil {
		cfg.BarWeight = *fileCfg.BarWeight
	}

	if level := strings.TrimSpace(fileCfg.LogLevel); level != "" {
		cfg.LogLevel = level
	}
}

// loadEnvFile populates the process environment from a dotenv file without
// overriding variables that are already set. A missing default file is ignored.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if rawPlates := strings.TrimSpace(os.Getenv("PLATES")); rawPlates != "" {
		plates, err := parsePlates(rawPlates)
		if err == nil {
			cfg.Plates = plates
		}
	}

	if bar := strings.TrimSpace(os.Getenv("BAR_WEIGHT")); bar != "" {
		if value, err := strconv.ParseFloat(bar, 64); err == nil {
			cfg.BarWeight = value
		}
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.PlatesStr != nil && *overrides.PlatesStr != "" {
		plates, err := parsePlates(*overrides.PlatesStr)
		if err != nil {
			return fmt.Errorf("parse plates: %w", err)
		}
		cfg.Plates = plates
	}

	if overrides.BarWeight != nil {
		cfg.BarWeight = *overrides.BarWeight
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration. Plate and bar weight
// values are checked by plates.New when the selector is built.
func validateConfig(cfg Config) error {
	if len(cfg.Plates) == 0 {
		return fmt.Errorf("plates cannot be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}

// parsePlates parses a comma-separated list of plate weights.
func parsePlates(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	plates := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid plate weight %q", part)
		}
		plates = append(plates, value)
	}
	if len(plates) == 0 {
		return nil, fmt.Errorf("no plates provided")
	}
	return plates, nil
}
