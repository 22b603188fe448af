package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

func scenarioChart(t *testing.T) heatmap.Chart {
	t.Helper()
	chart, err := heatmap.Build(heatmap.Dataset{
		BaseTemperature: 8.66,
		Records: []heatmap.Record{
			{Year: 1753, Month: 1, Variance: -1.366},
			{Year: 1753, Month: 2, Variance: -3.720},
		},
	}, heatmap.DefaultLayout())
	require.NoError(t, err)
	return chart
}

func TestSVGDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, scenarioChart(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, out, `width="1200" height="400"`)
	assert.Contains(t, out, `<g id="x-axis" transform="translate(0,340)">`)
	assert.Contains(t, out, `<g id="y-axis" transform="translate(60,0)">`)
	assert.Equal(t, 2, strings.Count(out, `class="cell"`))
	assert.Contains(t, out, `data-month="0" data-year="1753" data-temp="7.29`)
	assert.Contains(t, out, `data-month="1" data-year="1753"`)
	assert.Contains(t, out, ">January</text>")
	assert.Contains(t, out, ">February</text>")
	assert.Equal(t, 5, strings.Count(out, `class="legend-cell"`))
	assert.Contains(t, out, "&lt; 4.94°C")
	assert.Contains(t, out, "&gt; 7.29°C")
}

func TestPageWithChart(t *testing.T) {
	chart := scenarioChart(t)

	var buf bytes.Buffer
	require.NoError(t, Page(&buf, &chart, ""))
	out := buf.String()

	assert.Contains(t, out, "<title>"+DefaultTitle+"</title>")
	assert.Contains(t, out, `<div id="container">`)
	assert.Contains(t, out, `<svg id="chart" width="1200" height="400"`)
	assert.Contains(t, out, `<div id="tooltip" style="display: none"`)
	assert.Contains(t, out, `data-offset-x="-70" data-offset-y="-40"`)
	assert.Contains(t, out, `<div id="legend">`)
	assert.Equal(t, 5, strings.Count(out, `class="legend-cell"`))
	assert.Equal(t, 2, strings.Count(out, `class="cell"`))
	// Tooltip markup is carried escaped in the attribute and decoded by the browser.
	assert.Contains(t, out, "January 1753&lt;br&gt;Temperature: 7.29°C&lt;br&gt;Variance: -1.37°C")
	assert.Contains(t, out, `addEventListener("mouseout"`)
}

func TestPageWithoutChartIsBlank(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(&buf, nil, "Heat"))
	out := buf.String()

	assert.Contains(t, out, `<div id="container">`)
	assert.Contains(t, out, "<title>Heat</title>")
	assert.NotContains(t, out, `class="cell"`)
	assert.NotContains(t, out, `id="tooltip"`)
	assert.NotContains(t, out, `id="legend"`)
}

func TestPNG(t *testing.T) {
	ds := heatmap.Dataset{BaseTemperature: 8.66}
	for year := 1753; year <= 1762; year++ {
		for month := 1; month <= 12; month++ {
			if year == 1762 && month > 6 {
				continue
			}
			ds.Records = append(ds.Records, heatmap.Record{
				Year: year, Month: month, Variance: float64(month-6) * 0.3,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, ds, heatmap.DefaultLayout()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestPNGRejectsMalformedDataset(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, heatmap.Dataset{}, heatmap.DefaultLayout())
	assert.ErrorIs(t, err, heatmap.ErrMalformedDataset)
}

func TestVarianceGridLayout(t *testing.T) {
	g := newVarianceGrid(heatmap.Dataset{Records: []heatmap.Record{
		{Year: 1753, Month: 1, Variance: -1.366},
		{Year: 1753, Month: 12, Variance: 0.5},
	}})

	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 12, r)
	assert.Equal(t, -1.366, g.Z(0, 11))
	assert.Equal(t, 0.5, g.Z(0, 0))
	assert.True(t, g.Z(1, 0) != g.Z(1, 0), "padding column should be NaN")
	assert.Equal(t, 1753.0, g.X(0))
}
