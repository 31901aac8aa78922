package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lotus/internal/platform/validate"
)

const (
	FileName   = "config.yaml"
	EnvAPIBase = "LOTUS_API_BASE"
)

type Config struct {
	DataDir string `yaml:"-"`
	DBPath  string `yaml:"-"`
	LogPath string `yaml:"-"`

	APIBase        string        `yaml:"api_base" validate:"required,url"`
	ExportDir      string        `yaml:"export_dir" validate:"required"`
	PageSize       int           `yaml:"page_size" validate:"gt=0"`
	MinPaneWidth   int           `yaml:"min_pane_width" validate:"gt=0"`
	PaneSplit      []float64     `yaml:"pane_split" validate:"len=3,dive,gte=0"`
	LogLevel       string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0"`
}

// Default returns the built-in settings rooted at dataDir.
func Default(dataDir string) Config {
	return Config{
		DataDir:        dataDir,
		DBPath:         filepath.Join(dataDir, "lotus.db"),
		LogPath:        filepath.Join(dataDir, "lotus.log"),
		APIBase:        "http://127.0.0.1:5000",
		ExportDir:      filepath.Join(dataDir, "exports"),
		PageSize:       20,
		MinPaneWidth:   24,
		PaneSplit:      []float64{20, 35, 45},
		LogLevel:       "info",
		RequestTimeout: 15 * time.Second,
	}
}

// DefaultDataDir is the per-user directory used when --data-dir is not given.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".lotus"
	}
	return filepath.Join(dir, "lotus")
}

// New loads dataDir/config.yaml over the defaults, then applies the
// LOTUS_API_BASE environment variable and the apiBase override, in that order.
// A missing config file is not an error.
func New(dataDir, apiBase string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Default(dataDir)

	raw, err := os.ReadFile(filepath.Join(dataDir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", FileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	if env := strings.TrimSpace(os.Getenv(EnvAPIBase)); env != "" {
		cfg.APIBase = env
	}
	if apiBase = strings.TrimSpace(apiBase); apiBase != "" {
		cfg.APIBase = apiBase
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
