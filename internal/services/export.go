package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// EncodeCSV renders a report table in the dashboard's download format:
// UTF-8 BOM, every cell quoted with doubled inner quotes, semicolon
// separators, CRLF line endings. Spreadsheet apps with European locale
// settings expect exactly this shape.
func EncodeCSV(t *ReportTable) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}

	writeRow(t.Headers)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return []byte(b.String())
}

const reportHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; color: #333; margin: 40px; }
h1 { font-size: 22px; border-bottom: 2px solid #2563eb; padding-bottom: 8px; }
.meta { color: #777; font-size: 12px; margin-bottom: 20px; }
table { border-collapse: collapse; width: 100%; }
th { background-color: #f3f4f6; text-align: left; }
th, td { border: 1px solid #d1d5db; padding: 8px 12px; font-size: 13px; }
tr:nth-child(even) td { background-color: #fafafa; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">Generated {{.GeneratedAt}}</div>
<table>
<thead>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>`

var reportTmpl = template.Must(template.New("report").Parse(reportHTMLTemplate))

// EncodeHTML renders a report table as a standalone styled document.
func EncodeHTML(t *ReportTable, now time.Time) ([]byte, error) {
	data := struct {
		Title       string
		GeneratedAt string
		Headers     []string
		Rows        [][]string
	}{
		Title:       t.Title,
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Headers:     t.Headers,
		Rows:        t.Rows,
	}
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
