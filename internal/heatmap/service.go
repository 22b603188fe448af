package heatmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/i474232898/temperature-heatmap/internal/logger"
	"github.com/i474232898/temperature-heatmap/internal/metrics"
)

// ErrCellNotFound is returned when no record exists for a requested year and month.
var ErrCellNotFound = errors.New("no cell for requested year and month")

// Service loads the dataset, builds charts and keeps the built snapshots.
type Service struct {
	store  Store
	source Source
	layout Layout
}

// NewService creates a new Service.
func NewService(store Store, source Source, layout Layout) *Service {
	return &Service{
		store:  store,
		source: source,
		layout: layout,
	}
}

// Layout returns the geometry charts are built with.
func (s *Service) Layout() Layout {
	return s.layout
}

// Refresh fetches the dataset once and stores a freshly built chart.
// On failure the previous snapshot stays in place.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	if s.source == nil {
		return Snapshot{}, fmt.Errorf("no dataset source configured")
	}
	name := s.source.Name()
	logger.Debugf("refresh: fetching dataset from %s", name)

	timer := prometheus.NewTimer(metrics.DatasetFetchDuration.WithLabelValues(name))
	ds, err := s.source.Fetch(ctx)
	timer.ObserveDuration()
	if err != nil {
		metrics.DatasetFetchTotal.WithLabelValues(name, "error").Inc()
		logger.Errorf("refresh: fetch from %s failed; keeping last good snapshot if any: %v", name, err)
		return Snapshot{}, fmt.Errorf("fetch dataset: %w", err)
	}

	chart, err := Build(ds, s.layout)
	if err != nil {
		metrics.DatasetFetchTotal.WithLabelValues(name, "invalid").Inc()
		logger.Errorf("refresh: dataset from %s rejected: %v", name, err)
		return Snapshot{}, fmt.Errorf("build chart: %w", err)
	}
	metrics.DatasetFetchTotal.WithLabelValues(name, "ok").Inc()
	metrics.ChartCells.Set(float64(len(chart.Cells)))

	snapshot := Snapshot{
		ID:        uuid.NewString(),
		Source:    name,
		FetchedAt: time.Now().UTC(),
		Dataset:   ds,
		Chart:     chart,
	}
	s.store.Save(snapshot)
	logger.Infof("refresh: stored snapshot %s with %d cells (%d-%d)", snapshot.ID, len(chart.Cells), chart.YearMin, chart.YearMax)
	return snapshot, nil
}

// Latest delegates to the underlying store.
func (s *Service) Latest() (Snapshot, error) {
	return s.store.GetLatest()
}

// Get delegates to the underlying store.
func (s *Service) Get(id string) (Snapshot, error) {
	return s.store.Get(id)
}

// History delegates to the underlying store.
func (s *Service) History() []Snapshot {
	return s.store.List()
}

// Tooltip hovers the latest chart's cell for year/month at p and returns the resulting tooltip.
func (s *Service) Tooltip(year, month int, p Pointer) (TooltipHandle, error) {
	snapshot, err := s.store.GetLatest()
	if err != nil {
		return TooltipHandle{}, err
	}
	cell, ok := snapshot.Chart.FindCell(year, month)
	if !ok {
		return TooltipHandle{}, ErrCellNotFound
	}

	var handle TooltipHandle
	ctrl := NewTooltipController(&handle, snapshot.Dataset.BaseTemperature, snapshot.Chart.Layout)
	BindHover([]Cell{cell}, ctrl)[0].MouseOver(p)
	return handle, nil
}
