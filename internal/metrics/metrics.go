package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heatmap_dataset_fetch_total",
		Help: "Dataset fetch attempts by source and result",
	}, []string{"source", "result"})

	DatasetFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "heatmap_dataset_fetch_duration_seconds",
		Help:    "Time spent fetching and decoding the dataset",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	ChartCells = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "heatmap_chart_cells",
		Help: "Number of cells in the latest built chart",
	})

	RenderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heatmap_render_total",
		Help: "Chart renders by output format",
	}, []string{"format"})
)
