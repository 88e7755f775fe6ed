package jobcard

import (
	"math"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	datePlaceholder   = "Date unavailable"
	salaryPlaceholder = "Salary undisclosed"

	saveLabel   = "Save job"
	unsaveLabel = "Remove from saved"
)

// View is the rendered card as a tree of optional sections. A nil pointer
// or empty slice means the section is absent.
type View struct {
	ID          string
	ClassName   string
	Urgent      bool
	Logo        *Logo
	Title       string
	Company     string
	Description string
	Badges      []Badge
	Details     []Detail
	Posted      string
	DetailsURL  string
	Apply       *Action
	Save        *SaveAction
}

type Logo struct {
	Src string
	Alt string
}

type Badge struct {
	Kind string
	Text string
}

type Detail struct {
	Kind string
	Text string
}

type Action struct {
	Action string
}

type SaveAction struct {
	Action string
	Saved  bool
	Label  string
}

// Renderer projects Props into a View. It keeps no per-card state, so one
// Renderer can serve concurrent requests.
type Renderer struct {
	now func() time.Time
	log zerolog.Logger
}

func NewRenderer(log zerolog.Logger) *Renderer {
	return &Renderer{now: time.Now, log: log}
}

// WithClock returns a copy of r that reads the current time from now.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	cp := *r
	cp.now = now
	return &cp
}

func (r *Renderer) Render(p Props) View {
	base := DetailsPath(p.ID)
	v := View{
		ID:          p.ID,
		ClassName:   p.ClassName,
		Urgent:      p.IsUrgent,
		Title:       p.Title,
		Company:     p.Company,
		Description: p.Description,
		Posted:      r.postedLabel(p),
		DetailsURL:  base,
	}

	if p.CompanyLogo != "" {
		v.Logo = &Logo{Src: p.CompanyLogo, Alt: p.Company + " logo"}
	}

	if p.Type != "" {
		v.Badges = append(v.Badges, Badge{Kind: "type", Text: p.Type})
	}
	if p.IsRemote {
		v.Badges = append(v.Badges, Badge{Kind: "remote", Text: "Remote"})
	}

	v.Details = append(v.Details, Detail{Kind: "location", Text: p.Location})
	if p.Category != "" {
		v.Details = append(v.Details, Detail{Kind: "category", Text: p.Category})
	}
	if p.Experience != "" {
		v.Details = append(v.Details, Detail{Kind: "experience", Text: p.Experience})
	}
	if p.ShowSalary && salaryPresent(p.Salary) {
		v.Details = append(v.Details, Detail{Kind: "salary", Text: r.salaryLabel(p)})
	}

	if p.OnApply != nil {
		v.Apply = &Action{Action: base + "/apply"}
	}
	if p.OnSave != nil {
		label := saveLabel
		if p.IsSaved {
			label = unsaveLabel
		}
		v.Save = &SaveAction{Action: base + "/save", Saved: p.IsSaved, Label: label}
	}

	return v
}

// DetailsPath is the route every card links to for the full listing.
func DetailsPath(id string) string {
	return "/jobs/" + url.PathEscape(id)
}

// salaryPresent treats zero and NaN as no salary at all.
func salaryPresent(amount float64) bool {
	return amount != 0 && !math.IsNaN(amount)
}

func (r *Renderer) postedLabel(p Props) string {
	label, err := FormatPostedDate(p.PostedDate, r.now())
	if err != nil {
		r.log.Warn().Err(err).Str("job_id", p.ID).Msg("Rendering date placeholder")
		return datePlaceholder
	}
	return label
}

func (r *Renderer) salaryLabel(p Props) string {
	label, err := FormatSalary(p.Salary)
	if err != nil {
		r.log.Warn().Err(err).Str("job_id", p.ID).Msg("Rendering salary placeholder")
		return salaryPlaceholder
	}
	return label
}
