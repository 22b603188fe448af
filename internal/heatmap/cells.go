package heatmap

// CellClass is the class every heat map rectangle carries.
const CellClass = "cell"

// Cell is one drawn rectangle for one record.
type Cell struct {
	Record Record `json:"record"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill"`

	// Data attributes. DataMonth is zero-based.
	DataMonth int     `json:"dataMonth"`
	DataYear  int     `json:"dataYear"`
	DataTemp  float64 `json:"dataTemp"`
}

// CellWidth spans exactly one year of the plot area.
func CellWidth(ds Dataset, l Layout) float64 {
	lo, hi := ds.YearExtent()
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	return l.PlotWidth() / float64(span)
}

// RenderCells positions and colours one cell per record, in record order.
func RenderCells(ds Dataset, s Scales, l Layout) []Cell {
	width := CellWidth(ds, l)
	cells := make([]Cell, 0, len(ds.Records))
	for _, r := range ds.Records {
		y, _ := s.Y.At(r.Month)
		cells = append(cells, Cell{
			Record:    r,
			X:         s.X.At(float64(r.Year)),
			Y:         y,
			Width:     width,
			Height:    s.Y.Bandwidth(),
			Fill:      s.Color.Hex(r.Variance),
			DataMonth: r.Month - 1,
			DataYear:  r.Year,
			DataTemp:  r.Temperature(ds.BaseTemperature),
		})
	}
	return cells
}

// Pointer is the page position of a mouse event.
type Pointer struct {
	PageX float64
	PageY float64
}

// HoverHandler receives the enter/leave callbacks attached to cells.
type HoverHandler interface {
	Enter(c Cell, p Pointer)
	Leave(c Cell)
}

// BoundCell is a cell wired to a hover handler.
type BoundCell struct {
	Cell
	handler HoverHandler
}

// MouseOver dispatches the enter callback.
func (b BoundCell) MouseOver(p Pointer) {
	b.handler.Enter(b.Cell, p)
}

// MouseOut dispatches the leave callback.
func (b BoundCell) MouseOut() {
	b.handler.Leave(b.Cell)
}

// BindHover attaches h to every cell. It mutates nothing else.
func BindHover(cells []Cell, h HoverHandler) []BoundCell {
	bound := make([]BoundCell, len(cells))
	for i, c := range cells {
		bound[i] = BoundCell{Cell: c, handler: h}
	}
	return bound
}
