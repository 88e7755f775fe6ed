package jobcard

import (
	"strings"

	"golang.org/x/net/html"

	"job-board/internal/models"
)

// Callback receives the id of the job the user acted on.
type Callback func(id string)

// Props is everything a card needs for one render. The card only reads it;
// the caller owns the data and any state behind IsSaved.
type Props struct {
	ID          string
	Title       string
	Company     string
	Location    string
	PostedDate  string
	Category    string
	Type        string
	Experience  string
	Description string
	CompanyLogo string
	Salary      float64
	IsUrgent    bool
	IsRemote    bool
	IsSaved     bool
	ShowSalary  bool
	ClassName   string
	OnApply     Callback
	OnSave      Callback
}

// FromJob copies a listing into card props. Callbacks and the saved/show
// flags are left for the caller to set.
func FromJob(job models.Job) Props {
	return Props{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		PostedDate:  job.PostedDate,
		Category:    job.Category,
		Type:        job.Type,
		Experience:  job.Experience,
		Description: plainText(job.Description),
		CompanyLogo: job.CompanyLogo,
		Salary:      job.Salary,
		IsUrgent:    job.IsUrgent,
		IsRemote:    job.IsRemote,
	}
}

// plainText flattens scraped descriptions that carry markup.
func plainText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var parts []string
	collectText(doc, &parts)
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
