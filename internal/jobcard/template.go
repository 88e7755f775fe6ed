package jobcard

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

const cardTemplate = `<div class="job-card{{with .ClassName}} {{.}}{{end}}" data-job-id="{{.ID}}">
    {{if .Urgent}}<span class="badge badge-urgent">Urgent</span>{{end}}
    <div class="job-card-header">
        {{with .Logo}}<div class="job-card-logo"><img src="{{.Src}}" alt="{{.Alt}}"></div>{{end}}
        <div class="job-card-heading">
            <h3 class="job-card-title">{{.Title}}</h3>
            <p class="job-card-company">{{.Company}}</p>
            {{with .Description}}<p class="job-card-description">{{.}}</p>{{end}}
        </div>
        <div class="job-card-badges">
            {{range .Badges}}<span class="badge badge-{{.Kind}}">{{.Text}}</span>{{end}}
        </div>
    </div>
    <div class="job-card-details">
        {{range .Details}}<span class="detail detail-{{.Kind}}">{{.Text}}</span>{{end}}
        <span class="detail detail-posted">{{.Posted}}</span>
    </div>
    <div class="job-card-actions">
        <a class="job-card-view" href="{{.DetailsURL}}">View Details</a>
        {{with .Apply}}<form class="job-card-apply" method="post" action="{{.Action}}">
            <button type="submit">Quick Apply</button>
        </form>{{end}}
        {{with .Save}}<form class="job-card-save" method="post" action="{{.Action}}">
            <button type="submit" class="{{if .Saved}}saved{{else}}unsaved{{end}}" title="{{.Label}}" aria-label="{{.Label}}" data-saved="{{.Saved}}">&#9829;</button>
        </form>{{end}}
    </div>
</div>
`

var cardTmpl = template.Must(template.New("card").Parse(cardTemplate))

func (v View) WriteHTML(w io.Writer) error {
	if err := cardTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("executing card template: %w", err)
	}
	return nil
}

// HTML renders the card for embedding in a larger page.
func (v View) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := v.WriteHTML(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
