package heatmap

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMalformedDataset is returned when a decoded document does not describe a usable dataset.
	ErrMalformedDataset = errors.New("malformed dataset")
	// ErrInvalidLayout is returned when chart dimensions cannot hold a plot area.
	ErrInvalidLayout = errors.New("invalid chart layout")
)

var validate = validator.New()

// Record is one month's temperature deviation from the dataset baseline.
type Record struct {
	Year     int     `json:"year" validate:"gte=0,lte=9999"`
	Month    int     `json:"month" validate:"min=1,max=12"`
	Variance float64 `json:"variance"`
}

// Temperature returns the absolute temperature for the record given the baseline.
func (r Record) Temperature(base float64) float64 {
	return base + r.Variance
}

// Dataset is the document served at the dataset URL.
// It is created once by a Source and never mutated afterwards.
type Dataset struct {
	BaseTemperature float64  `json:"baseTemperature"`
	Records         []Record `json:"monthlyVariance" validate:"required,min=1,dive"`
}

// Validate reports whether the dataset can be rendered.
func (d Dataset) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	return nil
}

// YearExtent returns the smallest and largest year in the dataset.
func (d Dataset) YearExtent() (int, int) {
	if len(d.Records) == 0 {
		return 0, 0
	}
	lo, hi := d.Records[0].Year, d.Records[0].Year
	for _, r := range d.Records[1:] {
		lo = min(lo, r.Year)
		hi = max(hi, r.Year)
	}
	return lo, hi
}

// VarianceExtent returns the smallest and largest variance in the dataset.
func (d Dataset) VarianceExtent() (float64, float64) {
	if len(d.Records) == 0 {
		return 0, 0
	}
	lo, hi := d.Records[0].Variance, d.Records[0].Variance
	for _, r := range d.Records[1:] {
		lo = min(lo, r.Variance)
		hi = max(hi, r.Variance)
	}
	return lo, hi
}

// TemperatureExtent returns the coldest and warmest absolute temperature in the dataset.
func (d Dataset) TemperatureExtent() (float64, float64) {
	lo, hi := d.VarianceExtent()
	return d.BaseTemperature + lo, d.BaseTemperature + hi
}

// Find returns the record for the given year and month.
func (d Dataset) Find(year, month int) (Record, bool) {
	for _, r := range d.Records {
		if r.Year == year && r.Month == month {
			return r, true
		}
	}
	return Record{}, false
}

// Layout holds the fixed geometry of the drawing surface.
type Layout struct {
	Width            float64 `json:"width" yaml:"width" validate:"gt=0"`
	Height           float64 `json:"height" yaml:"height" validate:"gt=0"`
	Padding          float64 `json:"padding" yaml:"padding" validate:"gte=0"`
	LegendSwatches   int     `json:"legendSwatches" yaml:"legendSwatches" validate:"gte=2"`
	BandPaddingInner float64 `json:"bandPaddingInner" yaml:"bandPaddingInner" validate:"gte=0,lt=1"`
	TooltipOffsetX   float64 `json:"tooltipOffsetX" yaml:"tooltipOffsetX"`
	TooltipOffsetY   float64 `json:"tooltipOffsetY" yaml:"tooltipOffsetY"`
}

// DefaultLayout is the 1200x400 surface with a 60px margin.
func DefaultLayout() Layout {
	return Layout{
		Width:            1200,
		Height:           400,
		Padding:          60,
		LegendSwatches:   5,
		BandPaddingInner: 0.05,
		TooltipOffsetX:   -70,
		TooltipOffsetY:   -40,
	}
}

// Validate checks that the padding leaves a non-empty plot area.
func (l Layout) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if l.Width <= 2*l.Padding || l.Height <= 2*l.Padding {
		return fmt.Errorf("%w: padding %.0f leaves no room in %.0fx%.0f", ErrInvalidLayout, l.Padding, l.Width, l.Height)
	}
	return nil
}

// PlotWidth is the horizontal extent available to cells.
func (l Layout) PlotWidth() float64 {
	return l.Width - 2*l.Padding
}

// Snapshot is a built chart together with the dataset it was built from.
type Snapshot struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"` // always UTC
	Dataset   Dataset   `json:"-"`
	Chart     Chart     `json:"-"`
}
