package heatmap

import (
	"fmt"
	"image/color"
	"slices"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// unknownFill is used when the colour map cannot place a value.
const unknownFill = "#cccccc"

// LinearScale maps a continuous domain onto a pixel range.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinearScale returns a scale mapping [d0, d1] onto [r0, r1].
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// At maps v into the range. A zero-width domain maps everything to the range midpoint.
func (s LinearScale) At(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Domain returns the input extent.
func (s LinearScale) Domain() (float64, float64) { return s.d0, s.d1 }

// Range returns the output extent.
func (s LinearScale) Range() (float64, float64) { return s.r0, s.r1 }

// BandScale partitions a pixel range into equal bands, one per ordinal value.
// Outer padding is zero and bands are aligned to the start of the range.
type BandScale struct {
	domain    []int
	start     float64
	step      float64
	bandwidth float64
}

// NewBandScale lays out one band per domain value across [r0, r1],
// leaving paddingInner (a fraction of the step) between neighbouring bands.
func NewBandScale(domain []int, r0, r1, paddingInner float64) BandScale {
	n := float64(len(domain))
	step := (r1 - r0) / max(1, n-paddingInner)
	return BandScale{
		domain:    slices.Clone(domain),
		start:     r0,
		step:      step,
		bandwidth: step * (1 - paddingInner),
	}
}

// At returns the starting pixel of v's band.
func (s BandScale) At(v int) (float64, bool) {
	i := slices.Index(s.domain, v)
	if i < 0 {
		return 0, false
	}
	return s.start + s.step*float64(i), true
}

// Center returns the middle pixel of v's band.
func (s BandScale) Center(v int) (float64, bool) {
	y, ok := s.At(v)
	return y + s.bandwidth/2, ok
}

// Bandwidth is the height of a single band.
func (s BandScale) Bandwidth() float64 { return s.bandwidth }

// Step is the distance between the starts of neighbouring bands.
func (s BandScale) Step() float64 { return s.step }

// Domain returns a copy of the ordinal values in band order.
func (s BandScale) Domain() []int { return slices.Clone(s.domain) }

// ColorScale maps variance onto a diverging blue-to-red colour map.
type ColorScale struct {
	min, max float64
	cmap     palette.DivergingColorMap
}

// NewColorScale builds a diverging scale over [lo, hi] converging at the midpoint.
// A zero-width domain is widened by one degree so every value lands on the midpoint colour.
// Cold values are blue and warm values red, the reverse of a plain RdBu ramp.
func NewColorScale(lo, hi float64) ColorScale {
	if hi <= lo {
		lo, hi = lo-0.5, lo+0.5
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMax(hi)
	cm.SetMin(lo)
	cm.SetConvergePoint((lo + hi) / 2)
	return ColorScale{min: lo, max: hi, cmap: cm}
}

// Domain returns the variance extent the scale interpolates over.
func (s ColorScale) Domain() (float64, float64) { return s.min, s.max }

// ColorMap exposes the underlying gonum colour map, e.g. for raster output.
func (s ColorScale) ColorMap() palette.DivergingColorMap { return s.cmap }

// At returns the colour for v. Values outside the domain are clamped.
func (s ColorScale) At(v float64) (color.Color, error) {
	return s.cmap.At(min(max(v, s.min), s.max))
}

// Hex returns the colour for v as #rrggbb.
func (s ColorScale) Hex(v float64) string {
	c, err := s.At(v)
	if err != nil {
		return unknownFill
	}
	return hexColor(c)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Scales bundles the three scales derived from a single dataset.
type Scales struct {
	X     LinearScale
	Y     BandScale
	Color ColorScale
}

// MonthDomain returns the ordinal month values 1 through 12.
func MonthDomain() []int {
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

// NewScales derives all three scales from ds; they are never built separately.
func NewScales(ds Dataset, l Layout) Scales {
	yearMin, yearMax := ds.YearExtent()
	varMin, varMax := ds.VarianceExtent()
	return Scales{
		X:     NewLinearScale(float64(yearMin), float64(yearMax), l.Padding, l.Width-l.Padding),
		Y:     NewBandScale(MonthDomain(), l.Padding, l.Height-l.Padding, l.BandPaddingInner),
		Color: NewColorScale(varMin, varMax),
	}
}
