package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/i474232898/temperature-heatmap/internal/config"
	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/heatmap/sources"
	"github.com/i474232898/temperature-heatmap/internal/logger"
	"github.com/i474232898/temperature-heatmap/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "temperature-heatmap",
	Short:         "Render the monthly global temperature variance heat map",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, renderCmd)
	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}

// loadConfig reads configuration and applies the log level.
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// newSource picks the local file when configured, otherwise the remote document.
func newSource(cfg *config.AppConfig) heatmap.Source {
	if cfg.DatasetFile != "" {
		return sources.NewFileSource(cfg.DatasetFile)
	}
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	return sources.NewHTTPSource(httpClient, cfg.DatasetURL, cfg.FetchRetries)
}

func newService(cfg *config.AppConfig) *heatmap.Service {
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory)
	return heatmap.NewService(memStore, newSource(cfg), cfg.Layout)
}
