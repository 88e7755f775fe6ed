package models

type Job struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	PostedDate  string  `json:"posted_date"`
	Category    string  `json:"category,omitempty"`
	Type        string  `json:"type,omitempty"`
	Experience  string  `json:"experience,omitempty"`
	Description string  `json:"description,omitempty"`
	CompanyLogo string  `json:"company_logo,omitempty"`
	Salary      float64 `json:"salary,omitempty"`
	IsUrgent    bool    `json:"is_urgent,omitempty"`
	IsRemote    bool    `json:"is_remote,omitempty"`
}
