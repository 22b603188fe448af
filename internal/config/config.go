package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/heatmap/sources"
	"github.com/i474232898/temperature-heatmap/internal/logger"
)

type AppConfig struct {
	// DatasetURL is fetched unless DatasetFile is set.
	DatasetURL  string
	DatasetFile string

	HTTPTimeout  time.Duration
	FetchRetries int

	// RefreshInterval controls how often the dataset is reloaded (0 = load once).
	RefreshInterval time.Duration

	// StoreMaxHistory is the number of built snapshots kept (0 = unlimited).
	StoreMaxHistory int

	Layout heatmap.Layout

	LogLevel string
	Port     string
}

// chartFile is the optional YAML document named by CHART_CONFIG.
type chartFile struct {
	Chart heatmap.Layout `yaml:"chart"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DatasetURL = getenvDefault("DATASET_URL", sources.DefaultDatasetURL)
	cfg.DatasetFile = os.Getenv("DATASET_FILE")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("DATASET_REFRESH_INTERVAL", "24h"); err != nil {
		return nil, err
	}
	cfg.FetchRetries = getenvInt("DATASET_FETCH_RETRIES", 0)
	if cfg.FetchRetries < 0 {
		return nil, fmt.Errorf("invalid DATASET_FETCH_RETRIES: must not be negative")
	}
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 10)

	layout, err := loadLayout(os.Getenv("CHART_CONFIG"))
	if err != nil {
		return nil, err
	}
	cfg.Layout = layout

	cfg.LogLevel = getenvDefault("LOG_LEVEL", "INFO")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

// loadLayout starts from the default layout, overlays the YAML file when given,
// then individual environment variables.
func loadLayout(path string) (heatmap.Layout, error) {
	layout := heatmap.DefaultLayout()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return heatmap.Layout{}, fmt.Errorf("read CHART_CONFIG: %w", err)
		}
		file := chartFile{Chart: layout}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return heatmap.Layout{}, fmt.Errorf("parse CHART_CONFIG: %w", err)
		}
		layout = file.Chart
	}

	layout.Width = getenvFloat("CHART_WIDTH", layout.Width)
	layout.Height = getenvFloat("CHART_HEIGHT", layout.Height)
	layout.Padding = getenvFloat("CHART_PADDING", layout.Padding)
	layout.LegendSwatches = getenvInt("LEGEND_SWATCHES", layout.LegendSwatches)

	if err := layout.Validate(); err != nil {
		return heatmap.Layout{}, err
	}
	return layout, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
