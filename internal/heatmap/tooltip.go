package heatmap

import (
	"fmt"
	"html"
	"strings"
)

// TooltipID is the id of the floating tooltip element.
const TooltipID = "tooltip"

// TooltipState is either hidden or visible.
type TooltipState string

const (
	TooltipHidden  TooltipState = "hidden"
	TooltipVisible TooltipState = "visible"
)

// Display returns the CSS display value for the state.
func (s TooltipState) Display() string {
	if s == TooltipVisible {
		return "block"
	}
	return "none"
}

// TooltipHandle is the single floating element the controller writes to.
// Every Enter overwrites it wholesale.
type TooltipHandle struct {
	State    TooltipState `json:"state"`
	Left     float64      `json:"left"`
	Top      float64      `json:"top"`
	DataYear int          `json:"dataYear,omitempty"`
	Lines    []string     `json:"lines,omitempty"`
}

// HTML returns the tooltip body with lines separated by <br>.
func (h TooltipHandle) HTML() string {
	escaped := make([]string, len(h.Lines))
	for i, line := range h.Lines {
		escaped[i] = html.EscapeString(line)
	}
	return strings.Join(escaped, "<br>")
}

// TooltipLines formats the content shown for a record.
func TooltipLines(r Record, base float64) []string {
	return []string{
		fmt.Sprintf("%s %d", MonthName(r.Month), r.Year),
		fmt.Sprintf("Temperature: %.2f°C", r.Temperature(base)),
		fmt.Sprintf("Variance: %.2f°C", r.Variance),
	}
}

// TooltipController toggles a tooltip handle in response to cell hover events.
type TooltipController struct {
	handle  *TooltipHandle
	base    float64
	offsetX float64
	offsetY float64
}

// NewTooltipController returns a controller writing to handle, which starts hidden.
func NewTooltipController(handle *TooltipHandle, base float64, l Layout) *TooltipController {
	*handle = TooltipHandle{State: TooltipHidden}
	return &TooltipController{
		handle:  handle,
		base:    base,
		offsetX: l.TooltipOffsetX,
		offsetY: l.TooltipOffsetY,
	}
}

// Enter shows the tooltip near the pointer, repopulating it if already visible.
func (t *TooltipController) Enter(c Cell, p Pointer) {
	*t.handle = TooltipHandle{
		State:    TooltipVisible,
		Left:     p.PageX + t.offsetX,
		Top:      p.PageY + t.offsetY,
		DataYear: c.Record.Year,
		Lines:    TooltipLines(c.Record, t.base),
	}
}

// Leave hides the tooltip.
func (t *TooltipController) Leave(Cell) {
	t.handle.State = TooltipHidden
}

// State reports the current state of the handle.
func (t *TooltipController) State() TooltipState {
	return t.handle.State
}
