package board

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"job-board/internal/jobcard"
)

type Page struct {
	Title string
	Date  time.Time
	Saved int
	Cards []template.HTML
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 960px; margin: 0 auto; }
        .job-card { position: relative; margin: 20px 0; padding: 15px; border: 1px solid #ddd; border-radius: 8px; }
        .job-card-title { color: #2c5282; font-size: 18px; margin: 0 0 5px; }
        .job-card-company { color: #2b6cb0; font-weight: bold; }
        .job-card-description { color: #4a5568; }
        .badge { padding: 2px 8px; border-radius: 999px; font-size: 12px; }
        .badge-urgent { position: absolute; top: 12px; right: 12px; background: #fed7d7; color: #9b2c2c; }
        .badge-type { background: #ebf8ff; color: #2c5282; }
        .badge-remote { background: #f0fff4; color: #276749; }
        .detail { margin-right: 16px; color: #718096; font-size: 14px; }
        .detail-salary { color: #2f855a; }
        .job-card-actions form { display: inline; }
        .job-card-save button.saved { color: #c53030; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <p>{{len .Cards}} jobs, {{.Saved}} saved - {{.Date.Format "Jan 02, 2006"}}</p>
    {{range .Cards}}{{.}}{{end}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("board").Parse(pageTemplate))

// BuildPage renders every card in props, in order.
func BuildPage(r *jobcard.Renderer, title string, date time.Time, saved int, props []jobcard.Props) (Page, error) {
	page := Page{Title: title, Date: date, Saved: saved}
	for _, p := range props {
		card, err := r.Render(p).HTML()
		if err != nil {
			return Page{}, fmt.Errorf("rendering card %s: %w", p.ID, err)
		}
		page.Cards = append(page.Cards, card)
	}
	return page, nil
}

func WritePage(w io.Writer, page Page) error {
	if err := pageTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}
