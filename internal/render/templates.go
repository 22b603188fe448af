package render

// ── Drawing surface: axes and cells ──────────────────────────────────────────

const tmplBody = `
{{define "body"}}<g id="{{.XAxis.ID}}" transform="translate({{num .XAxis.TranslateX}},{{num .XAxis.TranslateY}})">
<path class="domain" stroke="currentColor" fill="none" d="M{{num .XAxis.RangeStart}},6V0H{{num .XAxis.RangeEnd}}V6"/>
{{range .XAxis.Ticks}}<g class="tick" transform="translate({{num .Position}},0)"><line stroke="currentColor" y2="6"/><text fill="currentColor" y="9" dy="0.71em" text-anchor="middle">{{.Label}}</text></g>
{{end}}</g>
<g id="{{.YAxis.ID}}" transform="translate({{num .YAxis.TranslateX}},{{num .YAxis.TranslateY}})">
<path class="domain" stroke="currentColor" fill="none" d="M-6,{{num .YAxis.RangeStart}}H0V{{num .YAxis.RangeEnd}}H-6"/>
{{range .YAxis.Ticks}}<g class="tick" transform="translate(0,{{num .Position}})"><line stroke="currentColor" x2="-6"/><text fill="currentColor" x="-9" dy="0.32em" text-anchor="end">{{.Label}}</text></g>
{{end}}</g>
{{range .Cells}}<rect class="cell" data-month="{{.DataMonth}}" data-year="{{.DataYear}}" data-temp="{{num .DataTemp}}" data-tooltip="{{tooltip .Record $.BaseTemperature}}" x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}" fill="{{.Fill}}"/>
{{end}}{{end}}
`

// ── Standalone SVG document with an inline legend ────────────────────────────

const tmplDocument = `
{{define "document"}}<svg xmlns="http://www.w3.org/2000/svg" id="chart" width="{{num .Width}}" height="{{num .Height}}" viewBox="0 0 {{num .Width}} {{num .Height}}" font-family="sans-serif" font-size="10">
{{template "body" .}}<g id="legend" transform="translate({{num .Layout.Padding}},{{num (sub .Height 16)}})">
{{range .Legend.Swatches}}<g class="legend-cell" transform="translate({{num (mul .Index 90)}},0)"><rect width="14" height="10" fill="{{.Color}}"/><text class="legend-label" x="18" y="9">{{.Label}}</text></g>
{{end}}</g>
</svg>
{{end}}
`

// ── HTML page: container, tooltip, legend and hover script ───────────────────

const tmplPage = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
body{font-family:sans-serif;margin:0;padding:16px;color:#222}
h1{font-size:20px;margin:0 0 4px}
#description{color:#555;margin:0 0 12px}
#tooltip{position:absolute;display:none;pointer-events:none;background:rgba(0,0,0,.8);color:#fff;padding:6px 8px;border-radius:4px;font-size:12px;line-height:1.4}
#legend{display:flex;gap:4px;margin-top:8px}
.legend-cell{display:inline-block;width:90px;height:18px;position:relative}
.legend-label{position:absolute;top:20px;left:0;font-size:11px;white-space:nowrap}
</style>
</head>
<body>
<div id="container">
<h1 id="title">{{.Title}}</h1>
{{with .Chart}}<p id="description">{{.YearMin}} - {{.YearMax}}: base temperature {{printf "%.2f" .BaseTemperature}}°C</p>
<svg id="chart" width="{{num .Width}}" height="{{num .Height}}" font-family="sans-serif" font-size="10">
{{template "body" .}}</svg>
<div id="tooltip" style="display: none" data-offset-x="{{num .Layout.TooltipOffsetX}}" data-offset-y="{{num .Layout.TooltipOffsetY}}"></div>
<div id="legend">
{{range .Legend.Swatches}}<div class="legend-cell" style="background-color: {{.Color}}"><span class="legend-label">{{.Label}}</span></div>
{{end}}</div>
<script>
(function () {
  var tip = document.getElementById("tooltip");
  var ox = parseFloat(tip.getAttribute("data-offset-x"));
  var oy = parseFloat(tip.getAttribute("data-offset-y"));
  document.querySelectorAll("#chart .cell").forEach(function (cell) {
    cell.addEventListener("mouseover", function (ev) {
      tip.style.display = "block";
      tip.style.left = (ev.pageX + ox) + "px";
      tip.style.top = (ev.pageY + oy) + "px";
      tip.setAttribute("data-year", cell.getAttribute("data-year"));
      tip.innerHTML = cell.getAttribute("data-tooltip");
    });
    cell.addEventListener("mouseout", function () {
      tip.style.display = "none";
    });
  });
})();
</script>
{{end}}</div>
</body>
</html>
{{end}}
`
