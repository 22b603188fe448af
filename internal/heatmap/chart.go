package heatmap

// Chart is the complete declarative drawing produced from one dataset.
type Chart struct {
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	BaseTemperature float64 `json:"baseTemperature"`
	YearMin         int     `json:"yearMin"`
	YearMax         int     `json:"yearMax"`
	Layout          Layout  `json:"layout"`
	XAxis           Axis    `json:"xAxis"`
	YAxis           Axis    `json:"yAxis"`
	Cells           []Cell  `json:"cells"`
	Legend          Legend  `json:"legend"`
}

// Build runs the full pipeline on ds. It is pure: the same input always yields an equal Chart.
func Build(ds Dataset, l Layout) (Chart, error) {
	if err := ds.Validate(); err != nil {
		return Chart{}, err
	}
	if err := l.Validate(); err != nil {
		return Chart{}, err
	}

	scales := NewScales(ds, l)
	yearMin, yearMax := ds.YearExtent()

	return Chart{
		Width:           l.Width,
		Height:          l.Height,
		BaseTemperature: ds.BaseTemperature,
		YearMin:         yearMin,
		YearMax:         yearMax,
		Layout:          l,
		XAxis:           XAxis(scales.X, l),
		YAxis:           YAxis(scales.Y, l),
		Cells:           RenderCells(ds, scales, l),
		Legend:          RenderLegend(ds, scales.Color, l.LegendSwatches),
	}, nil
}

// FindCell returns the cell drawn for the given year and month.
func (c Chart) FindCell(year, month int) (Cell, bool) {
	for _, cell := range c.Cells {
		if cell.Record.Year == year && cell.Record.Month == month {
			return cell, true
		}
	}
	return Cell{}, false
}
