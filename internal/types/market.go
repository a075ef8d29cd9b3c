package types

// MarketQuery describes one market-search request against the actor platform.
// Built deterministically from a RoleQuery; its normalized form is also the
// cache key material.
type MarketQuery struct {
	Keywords        string `json:"keywords"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	MaxResults      int    `json:"max_results"`
}

// ComparablePosting is one externally-sourced job listing used as a
// statistical sample. Never mutated after retrieval.
type ComparablePosting struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Salary          string   `json:"salary,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	PostedDate      string   `json:"posted_date,omitempty"`
	Applicants      int      `json:"applicants,omitempty"`
	URL             string   `json:"url,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Seniority       string   `json:"seniority,omitempty"`
	Industries      []string `json:"industries,omitempty"`
}
