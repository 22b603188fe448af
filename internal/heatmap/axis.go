package heatmap

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/plot"
)

const (
	XAxisID = "x-axis"
	YAxisID = "y-axis"
)

// Tick is one labelled guide mark on an axis.
type Tick struct {
	Value    float64 `json:"value"`
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// Axis is an axis group ready to draw: a translated baseline and its ticks.
type Axis struct {
	ID         string  `json:"id"`
	Orient     string  `json:"orient"` // "bottom" or "left"
	TranslateX float64 `json:"translateX"`
	TranslateY float64 `json:"translateY"`
	RangeStart float64 `json:"rangeStart"`
	RangeEnd   float64 `json:"rangeEnd"`
	Ticks      []Tick  `json:"ticks"`
}

// MonthName returns the calendar name of month m, where 1 is January.
func MonthName(m int) string {
	return time.Month(m).String()
}

// XAxis draws integer year labels along the bottom of the plot area.
func XAxis(s LinearScale, l Layout) Axis {
	d0, d1 := s.Domain()
	r0, r1 := s.Range()
	return Axis{
		ID:         XAxisID,
		Orient:     "bottom",
		TranslateY: l.Height - l.Padding,
		RangeStart: r0,
		RangeEnd:   r1,
		Ticks:      yearTicks(s, d0, d1),
	}
}

func yearTicks(s LinearScale, d0, d1 float64) []Tick {
	var ticks []Tick
	for _, t := range (YearTicker{}).Ticks(d0, d1) {
		ticks = append(ticks, Tick{
			Value:    t.Value,
			Position: s.At(t.Value),
			Label:    t.Label,
		})
	}
	return ticks
}

// yearTickTarget is the approximate number of labelled years on the x axis.
const yearTickTarget = 10

// YearTicker is a plot.Ticker placing labels on whole years at a 1, 2 or 5 times
// power-of-ten step, aiming for about ten ticks.
type YearTicker struct{}

// Ticks returns strictly increasing, unique integer-year ticks within [min, max].
func (YearTicker) Ticks(min, max float64) []plot.Tick {
	lo, hi := math.Ceil(min), math.Floor(max)
	if hi < lo {
		return nil
	}
	if hi == lo {
		return []plot.Tick{{Value: lo, Label: fmt.Sprintf("%d", int(lo))}}
	}

	step := yearStep(hi - lo)
	var ticks []plot.Tick
	for y := math.Ceil(lo/step) * step; y <= hi; y += step {
		ticks = append(ticks, plot.Tick{Value: y, Label: fmt.Sprintf("%d", int(y))})
	}
	return ticks
}

// yearStep picks the 1/2/5 step closest to span/yearTickTarget, never below one year.
func yearStep(span float64) float64 {
	raw := span / yearTickTarget
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	ratio := raw / power

	step := power
	switch {
	case ratio >= math.Sqrt(50):
		step = power * 10
	case ratio >= math.Sqrt(10):
		step = power * 5
	case ratio >= math.Sqrt(2):
		step = power * 2
	}
	return math.Max(1, math.Round(step))
}

// YAxis draws one month-name label at the centre of every band.
func YAxis(s BandScale, l Layout) Axis {
	months := s.Domain()
	ticks := make([]Tick, 0, len(months))
	for _, m := range months {
		pos, _ := s.Center(m)
		ticks = append(ticks, Tick{
			Value:    float64(m),
			Position: pos,
			Label:    MonthName(m),
		})
	}
	return Axis{
		ID:         YAxisID,
		Orient:     "left",
		TranslateX: l.Padding,
		RangeStart: l.Padding,
		RangeEnd:   l.Height - l.Padding,
		Ticks:      ticks,
	}
}
