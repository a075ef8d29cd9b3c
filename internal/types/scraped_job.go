package types

// ScrapedJobData is the raw extraction result for a single job posting URL.
// Produced once per scrape and never mutated afterwards.
type ScrapedJobData struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Salary           string   `json:"salary,omitempty"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	RawText          string   `json:"raw_text"`
	SourceBoard      string   `json:"source_board"`
	URL              string   `json:"url"`
}

// FallbackConfidence is the fixed confidence assigned when structured fields
// come from the deterministic extractor rather than the language model.
const FallbackConfidence = 0.5

// ParsedJobData holds the normalized structured fields derived from a
// ScrapedJobData. Confidence communicates provenance: model-derived results
// carry the model's own score, heuristic results are fixed at
// FallbackConfidence.
type ParsedJobData struct {
	IsJobPosting    bool     `json:"is_job_posting"`
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	WorkModel       string   `json:"work_model,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	MinSalary       string   `json:"min_salary,omitempty"`
	MaxSalary       string   `json:"max_salary,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Requirements    []string `json:"requirements,omitempty"`
	Timeline        string   `json:"timeline,omitempty"`
	Department      string   `json:"department,omitempty"`
	Confidence      float64  `json:"confidence"`
}
