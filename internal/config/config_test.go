package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"PLATES", "BAR_WEIGHT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !slices.Equal(cfg.Plates, DefaultPlates()) {
		t.Fatalf("expected default plates, got %v", cfg.Plates)
	}
	if cfg.BarWeight != defaultBarWeight {
		t.Fatalf("expected default bar weight, got %v", cfg.BarWeight)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLATES", "1.25, 2.5 ,5")
	t.Setenv("BAR_WEIGHT", "35")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if want := []float64{1.25, 2.5, 5}; !slices.Equal(cfg.Plates, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Plates)
	}
	if cfg.BarWeight != 35 {
		t.Fatalf("expected bar weight 35, got %v", cfg.BarWeight)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %s", cfg.LogLevel)
	}
}

func TestLoadIgnoresMalformedEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLATES", "a,b")
	t.Setenv("BAR_WEIGHT", "heavy")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !slices.Equal(cfg.Plates, DefaultPlates()) || cfg.BarWeight != defaultBarWeight {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "plates: [5, 10, 20]\nbar_weight: 20\nlog_level: warn\n")

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if want := []float64{5, 10, 20}; !slices.Equal(cfg.Plates, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Plates)
	}
	if cfg.BarWeight != 20 || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.toml", "plates = [1.25, 2.5, 5.0]\nbar_weight = 15.0\n")

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if want := []float64{1.25, 2.5, 5}; !slices.Equal(cfg.Plates, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Plates)
	}
	if cfg.BarWeight != 15 {
		t.Fatalf("expected bar weight 15, got %v", cfg.BarWeight)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", "plates: [5, 10]\nbar_weight: 20\n")
	t.Setenv("BAR_WEIGHT", "33")

	plates := "25,45"
	cfg, err := Load(&CLIOverrides{ConfigFile: path, PlatesStr: &plates})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if want := []float64{25, 45}; !slices.Equal(cfg.Plates, want) {
		t.Fatalf("expected CLI plates %v, got %v", want, cfg.Plates)
	}
	if cfg.BarWeight != 33 {
		t.Fatalf("expected env bar weight to beat file, got %v", cfg.BarWeight)
	}

	bar := 15.0
	cfg, err = Load(&CLIOverrides{ConfigFile: path, BarWeight: &bar})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BarWeight != 15 {
		t.Fatalf("expected CLI bar weight to beat env, got %v", cfg.BarWeight)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "plates.env", "PLATES=10,20\nBAR_WEIGHT=25\n")

	cfg, err := Load(&CLIOverrides{EnvFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := []float64{10, 20}; !slices.Equal(cfg.Plates, want) {
		t.Fatalf("expected %v, got %v", want, cfg.Plates)
	}
	if cfg.BarWeight != 25 {
		t.Fatalf("expected bar weight 25, got %v", cfg.BarWeight)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})

	t.Run("missing explicit env file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(&CLIOverrides{EnvFile: filepath.Join(t.TempDir(), "nope.env")}); err == nil {
			t.Fatalf("expected error for missing env file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, "bad.yaml", "plates: [5, 10\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("malformed CLI plates", func(t *testing.T) {
		clearEnv(t)
		plates := "5,x"
		if _, err := Load(&CLIOverrides{PlatesStr: &plates}); err == nil {
			t.Fatalf("expected error for invalid CLI plates")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		clearEnv(t)
		level := "chatty"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})
}

func TestParsePlates(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := parsePlates("45, 25,2.5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []float64{45, 25, 2.5}; !slices.Equal(got, want) {
			t.Fatalf("unexpected plates: %v", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := parsePlates(" , "); err == nil {
			t.Fatalf("expected error for empty string")
		}
		if _, err := parsePlates("1,a"); err == nil {
			t.Fatalf("expected error for invalid number")
		}
	})
}
