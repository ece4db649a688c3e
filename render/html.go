package render

import (
	"bytes"
	"html/template"
)

var htmlTemplate = template.Must(template.New("tickets").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 4px 10px; text-align: center; }
th { background: #f0f0f0; }
.empty { color: #666; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>筛选: {{.Filters}}</p>
{{if .Rows}}<table>
<tr><th>车次</th><th>出发站</th><th>到达站</th><th>出发</th><th>到达</th><th>历时</th><th>可预订</th>{{range .SeatHeaders}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr><td>{{.TrainCode}}</td><td>{{.From}}</td><td>{{.To}}</td><td>{{.Depart}}</td><td>{{.Arrive}}</td><td>{{.Duration}}</td><td>{{.Bookable}}</td>{{range .Seats}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
{{else}}<p class="empty">无符合条件的车次。</p>
{{end}}</body>
</html>
`))

type htmlData struct {
	Title       string
	Filters     string
	SeatHeaders []string
	Rows        []row
}

// HTML renders the projection as a standalone HTML page.
func HTML(p Projection) ([]byte, error) {
	data := htmlData{
		Title:       p.Origin.Name + " → " + p.Destination.Name + " " + p.Date,
		Filters:     p.FilterDesc,
		SeatHeaders: seatHeaders(),
		Rows:        buildRows(p.Tickets),
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
