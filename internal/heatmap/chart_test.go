package heatmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScenario(t *testing.T) {
	chart, err := Build(scenarioDataset(), DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, 1200.0, chart.Width)
	assert.Equal(t, 400.0, chart.Height)
	require.Len(t, chart.Cells, 2)

	first := chart.Cells[0]
	assert.Equal(t, 0, first.DataMonth)
	assert.Equal(t, 1753, first.DataYear)
	assert.InDelta(t, 7.294, first.DataTemp, 1e-9)

	second := chart.Cells[1]
	assert.Equal(t, 1, second.DataMonth)
	assert.InDelta(t, 4.94, second.DataTemp, 1e-9)

	assert.Equal(t, "January", chart.YAxis.Ticks[0].Label)
	assert.Equal(t, "February", chart.YAxis.Ticks[1].Label)
	assert.Len(t, chart.Legend.Swatches, 5)
}

func TestBuildIsIdempotent(t *testing.T) {
	ds := spanDataset()
	a, err := Build(ds, DefaultLayout())
	require.NoError(t, err)
	b, err := Build(ds, DefaultLayout())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildRejectsMalformedDataset(t *testing.T) {
	_, err := Build(Dataset{BaseTemperature: 8.66}, DefaultLayout())
	assert.True(t, errors.Is(err, ErrMalformedDataset))

	bad := scenarioDataset()
	bad.Records = append(bad.Records, Record{Year: 1753, Month: 13})
	_, err = Build(bad, DefaultLayout())
	assert.True(t, errors.Is(err, ErrMalformedDataset))
}

func TestBuildRejectsOutOfRangeYear(t *testing.T) {
	for _, year := range []int{-1, 10000, 2000000000} {
		bad := scenarioDataset()
		bad.Records = append(bad.Records, Record{Year: year, Month: 1})
		_, err := Build(bad, DefaultLayout())
		assert.True(t, errors.Is(err, ErrMalformedDataset), "year %d", year)
	}
}

func TestBuildRejectsInvalidLayout(t *testing.T) {
	l := DefaultLayout()
	l.Padding = 250
	_, err := Build(scenarioDataset(), l)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	l = DefaultLayout()
	l.LegendSwatches = 1
	_, err = Build(scenarioDataset(), l)
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestChartFindCell(t *testing.T) {
	chart, err := Build(scenarioDataset(), DefaultLayout())
	require.NoError(t, err)

	cell, ok := chart.FindCell(1753, 2)
	require.True(t, ok)
	assert.Equal(t, -3.720, cell.Record.Variance)

	_, ok = chart.FindCell(1754, 1)
	assert.False(t, ok)
}

func TestDatasetExtents(t *testing.T) {
	ds := scenarioDataset()

	lo, hi := ds.YearExtent()
	assert.Equal(t, 1753, lo)
	assert.Equal(t, 1753, hi)

	vlo, vhi := ds.VarianceExtent()
	assert.Equal(t, -3.720, vlo)
	assert.Equal(t, -1.366, vhi)

	r, ok := ds.Find(1753, 1)
	require.True(t, ok)
	assert.InDelta(t, 7.294, r.Temperature(ds.BaseTemperature), 1e-9)
}
