package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCellsDataAttributes(t *testing.T) {
	ds := spanDataset()
	l := DefaultLayout()
	cells := RenderCells(ds, NewScales(ds, l), l)

	require.Len(t, cells, len(ds.Records))
	for i, c := range cells {
		r := ds.Records[i]
		assert.Equal(t, r.Year, c.DataYear)
		assert.Equal(t, r.Month-1, c.DataMonth)
		assert.InDelta(t, ds.BaseTemperature+r.Variance, c.DataTemp, 1e-9)
	}
}

func TestRenderCellsGeometry(t *testing.T) {
	ds := spanDataset()
	l := DefaultLayout()
	s := NewScales(ds, l)
	cells := RenderCells(ds, s, l)

	// 1753..1760 spans seven years.
	wantWidth := l.PlotWidth() / 7
	for _, c := range cells {
		assert.InDelta(t, wantWidth, c.Width, 1e-9)
		assert.Equal(t, s.Y.Bandwidth(), c.Height)
		assert.Equal(t, s.X.At(float64(c.Record.Year)), c.X)
		y, _ := s.Y.At(c.Record.Month)
		assert.Equal(t, y, c.Y)
		assert.Equal(t, s.Color.Hex(c.Record.Variance), c.Fill)
	}
}

func TestCellWidthSingleYear(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, l.PlotWidth(), CellWidth(scenarioDataset(), l))
}

type recordingHandler struct {
	entered []Cell
	left    []Cell
	pointer Pointer
}

func (h *recordingHandler) Enter(c Cell, p Pointer) {
	h.entered = append(h.entered, c)
	h.pointer = p
}

func (h *recordingHandler) Leave(c Cell) {
	h.left = append(h.left, c)
}

func TestBindHoverDispatches(t *testing.T) {
	ds := scenarioDataset()
	l := DefaultLayout()
	cells := RenderCells(ds, NewScales(ds, l), l)

	h := &recordingHandler{}
	bound := BindHover(cells, h)
	require.Len(t, bound, 2)

	bound[1].MouseOver(Pointer{PageX: 10, PageY: 20})
	bound[1].MouseOut()

	require.Len(t, h.entered, 1)
	require.Len(t, h.left, 1)
	assert.Equal(t, cells[1], h.entered[0])
	assert.Equal(t, Pointer{PageX: 10, PageY: 20}, h.pointer)
}
