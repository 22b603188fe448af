package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"sync"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/metrics"
)

// DefaultTitle heads the HTML page.
const DefaultTitle = "Monthly Global Land-Surface Temperature"

var funcMap = template.FuncMap{
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"sub": func(a, b float64) float64 { return a - b },
	"mul": func(i int, f float64) float64 { return float64(i) * f },
	"tooltip": func(r heatmap.Record, base float64) string {
		return heatmap.TooltipHandle{Lines: heatmap.TooltipLines(r, base)}.HTML()
	},
}

var (
	tmplOnce sync.Once
	tmpl     *template.Template
)

func templates() *template.Template {
	tmplOnce.Do(func() {
		tmpl = template.Must(template.New("heatmap").
			Funcs(funcMap).
			Parse(tmplBody + tmplDocument + tmplPage))
	})
	return tmpl
}

type pageData struct {
	Title string
	Chart *heatmap.Chart
}

// Page writes the HTML page. A nil chart yields the bare container.
func Page(w io.Writer, chart *heatmap.Chart, title string) error {
	if title == "" {
		title = DefaultTitle
	}
	if err := templates().ExecuteTemplate(w, "page", pageData{Title: title, Chart: chart}); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	metrics.RenderTotal.WithLabelValues("html").Inc()
	return nil
}

// SVG writes a standalone SVG document including the legend.
func SVG(w io.Writer, chart heatmap.Chart) error {
	if err := templates().ExecuteTemplate(w, "document", chart); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	metrics.RenderTotal.WithLabelValues("svg").Inc()
	return nil
}
