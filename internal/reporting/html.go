package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/olechiw/great-expectations/internal/models"
	"github.com/olechiw/great-expectations/internal/render"
)

var markdown = goldmark.New()

var htmlDocTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Validation Results</title>
</head>
<body>
{{if .Summary}}<p class="suite-summary">{{.Summary}}</p>
{{end}}<table class="{{.TableClasses}}"{{if .Searchable}} data-search="true"{{end}}>
<thead>
<tr>
{{range .Header}}<th{{if .Sortable}} data-sortable="true"{{end}}>{{.Label}}</th>
{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
{{range .}}<td>{{.}}</td>
{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type htmlHeaderCell struct {
	Label    string
	Sortable bool
}

type htmlDoc struct {
	Summary      string
	TableClasses string
	Searchable   bool
	Header       []htmlHeaderCell
	Rows         [][]template.HTML
}

// WriteHTML assembles the table into a self-contained HTML document. Plain
// text fragments are treated as markdown; styling classes and sortable
// header options pass through as attributes for the presentation layer.
// suite is optional and only feeds the summary line.
func WriteHTML(table *render.Table, suite *models.ValidationSuite, w io.Writer) error {
	doc := htmlDoc{
		TableClasses: strings.Join(table.Styling.Classes, " "),
		Searchable:   table.Options.Search,
	}
	if suite != nil {
		d := suite.Statistics
		doc.Summary = fmt.Sprintf("%d of %d expectations met (%.1f%%)",
			d.SuccessfulExpectations, d.EvaluatedExpectations, d.SuccessPercent)
	}

	for _, label := range table.Header {
		doc.Header = append(doc.Header, htmlHeaderCell{
			Label:    label,
			Sortable: table.HeaderOptions[label].Sortable,
		})
	}

	for _, row := range table.Rows {
		cells := make([]template.HTML, len(row))
		for i, cell := range row {
			html, err := cellHTML(cell)
			if err != nil {
				return err
			}
			cells[i] = html
		}
		doc.Rows = append(doc.Rows, cells)
	}

	return htmlDocTemplate.Execute(w, doc)
}

func cellHTML(cell render.Cell) (template.HTML, error) {
	var b strings.Builder
	for _, frag := range cell {
		html, err := fragmentHTML(frag)
		if err != nil {
			return "", err
		}
		b.WriteString(string(html))
	}
	return template.HTML(b.String()), nil
}

func fragmentHTML(frag render.Fragment) (template.HTML, error) {
	switch f := frag.(type) {
	case render.Text:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(string(f)), &buf); err != nil {
			return "", fmt.Errorf("rendering markdown fragment: %w", err)
		}
		return template.HTML(buf.String()), nil
	case *render.StringTemplate:
		classes := ""
		if f.Styling != nil && len(f.Styling.Classes) > 0 {
			classes = fmt.Sprintf(" class=%q", strings.Join(f.Styling.Classes, " "))
		}
		return template.HTML(fmt.Sprintf("<span%s>%s</span>", classes, template.HTMLEscapeString(f.String()))), nil
	case *render.SubTable:
		return subTableHTML(f)
	case *render.CollapseContent:
		var b strings.Builder
		b.WriteString("<details>")
		if f.Toggle != nil {
			toggle, err := fragmentHTML(f.Toggle)
			if err != nil {
				return "", err
			}
			b.WriteString("<summary>" + string(toggle) + "</summary>")
		}
		for _, child := range f.Collapse {
			html, err := fragmentHTML(child)
			if err != nil {
				return "", err
			}
			b.WriteString(string(html))
		}
		b.WriteString("</details>")
		return template.HTML(b.String()), nil
	default:
		return template.HTML(template.HTMLEscapeString(fmt.Sprintf("%v", frag))), nil
	}
}

func subTableHTML(t *render.SubTable) (template.HTML, error) {
	var b strings.Builder
	b.WriteString(`<table class="table">`)
	if len(t.Header) > 0 {
		b.WriteString("<thead><tr>")
		for _, label := range t.Header {
			b.WriteString("<th>" + template.HTMLEscapeString(label) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			html, err := cellHTML(cell)
			if err != nil {
				return "", err
			}
			b.WriteString("<td>" + string(html) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return template.HTML(b.String()), nil
}
