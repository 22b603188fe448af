package heatmap

import "fmt"

const (
	LegendID         = "legend"
	LegendCellClass  = "legend-cell"
	LegendLabelClass = "legend-label"
)

// Swatch is one legend entry: a colour sample and its temperature label.
type Swatch struct {
	Index int     `json:"index"`
	Color string  `json:"color"`
	Value float64 `json:"value"` // absolute temperature the label describes
	Label string  `json:"label"`
}

// Legend is the ordered row of swatches, left to right.
type Legend struct {
	Swatches []Swatch `json:"swatches"`
}

// RenderLegend samples the colour scale at n evenly spaced variances.
// The outermost labels are open-ended bounds of the absolute temperature range.
func RenderLegend(ds Dataset, c ColorScale, n int) Legend {
	if n < 2 {
		n = 2
	}
	tMin, tMax := ds.TemperatureExtent()
	vMin, vMax := ds.VarianceExtent()

	swatches := make([]Swatch, n)
	for i := range swatches {
		frac := float64(i) / float64(n-1)
		value := tMin + frac*(tMax-tMin)

		var label string
		switch i {
		case 0:
			value = tMin
			label = fmt.Sprintf("< %.2f°C", value)
		case n - 1:
			value = tMax
			label = fmt.Sprintf("> %.2f°C", value)
		default:
			label = fmt.Sprintf("%.2f°C", value)
		}

		swatches[i] = Swatch{
			Index: i,
			Color: c.Hex(vMin + frac*(vMax-vMin)),
			Value: value,
			Label: label,
		}
	}
	return Legend{Swatches: swatches}
}
