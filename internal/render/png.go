package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/metrics"
)

// paletteSize is the number of discrete colours the raster heat map uses.
const paletteSize = 256

// varianceGrid lays the dataset out as years (columns) by months (rows).
// Row 0 is December so January ends up on top, matching the SVG.
type varianceGrid struct {
	yearMin int
	z       [][]float64 // [row][col], NaN where no record exists
	lo, hi  float64
}

func newVarianceGrid(ds heatmap.Dataset) *varianceGrid {
	yearMin, yearMax := ds.YearExtent()
	// A single-year dataset gets an empty second column so cell widths stay defined.
	cols := max(2, yearMax-yearMin+1)

	z := make([][]float64, 12)
	for r := range z {
		z[r] = make([]float64, cols)
		for c := range z[r] {
			z[r][c] = math.NaN()
		}
	}
	for _, rec := range ds.Records {
		z[12-rec.Month][rec.Year-yearMin] = rec.Variance
	}

	lo, hi := ds.VarianceExtent()
	return &varianceGrid{yearMin: yearMin, z: z, lo: lo, hi: hi}
}

func (g *varianceGrid) Dims() (c, r int)   { return len(g.z[0]), len(g.z) }
func (g *varianceGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g *varianceGrid) X(c int) float64    { return float64(g.yearMin + c) }
func (g *varianceGrid) Y(r int) float64    { return float64(r) }
func (g *varianceGrid) Min() float64       { return g.lo }
func (g *varianceGrid) Max() float64       { return g.hi }

// monthTicks labels every grid row with its month name.
func monthTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, 12)
	for m := 1; m <= 12; m++ {
		ticks = append(ticks, plot.Tick{Value: float64(12 - m), Label: heatmap.MonthName(m)})
	}
	return ticks
}

// PNG rasterises the dataset with the same diverging colour scale the SVG uses.
func PNG(w io.Writer, ds heatmap.Dataset, l heatmap.Layout) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}

	colors := heatmap.NewScales(ds, l).Color
	lo, hi := colors.Domain()
	grid := newVarianceGrid(ds)

	h := plotter.NewHeatMap(grid, colors.ColorMap().Palette(paletteSize))
	h.Min, h.Max = lo, hi
	h.NaN = color.Transparent

	yearMin, yearMax := ds.YearExtent()
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %d-%d", DefaultTitle, yearMin, yearMax)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Month"
	p.X.Tick.Marker = heatmap.YearTicker{}
	p.Y.Tick.Marker = plot.ConstantTicks(monthTicks())
	p.Add(h)

	// Layout dimensions are CSS pixels at 96 dpi.
	wt, err := p.WriterTo(vg.Points(l.Width*0.75), vg.Points(l.Height*0.75), "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	metrics.RenderTotal.WithLabelValues("png").Inc()
	return nil
}
