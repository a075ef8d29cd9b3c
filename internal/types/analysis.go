package types

// SalaryAnalysis summarizes compensation across the comparable postings.
//
// Both endpoints of a parsed salary range are pooled as independent data
// points, so DataPoints counts endpoints, not postings. This matches the
// long-standing behavior the presentation layer was built against; see
// DESIGN.md before changing it.
type SalaryAnalysis struct {
	HasData     bool     `json:"has_data"`
	Min         float64  `json:"min"`
	Max         float64  `json:"max"`
	Mean        float64  `json:"mean"`
	Median      float64  `json:"median"`
	P25         float64  `json:"p25"`
	P75         float64  `json:"p75"`
	DataPoints  int      `json:"data_points"`
	Postings    int      `json:"postings"`
	WithSalary  int      `json:"with_salary"`
	IsEstimated bool     `json:"is_estimated"`
	Insights    []string `json:"insights"`
}

// SkillCount is one ranked skill with its posting frequency.
type SkillCount struct {
	Skill      string  `json:"skill"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SkillAnalysis ranks the most demanded skills across the sample.
type SkillAnalysis struct {
	TopSkills []SkillCount `json:"top_skills"`
	Postings  int          `json:"postings"`
	Insights  []string     `json:"insights"`
}

// CompanyCount is one hiring company with its posting count.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// MarketAnalysis summarizes competitive intensity across the sample.
type MarketAnalysis struct {
	TotalOpenPositions int            `json:"total_open_positions"`
	CompaniesHiring    int            `json:"companies_hiring"`
	AvgApplicants      float64        `json:"avg_applicants"`
	CompetitionLevel   string         `json:"competition_level"`
	DemandTrend        string         `json:"demand_trend"`
	TopCompanies       []CompanyCount `json:"top_companies"`
	Insights           []string       `json:"insights"`
}

// ResponsibilityCount is one common responsibility with its frequency.
type ResponsibilityCount struct {
	Responsibility string `json:"responsibility"`
	Count          int    `json:"count"`
}

// ResponsibilitiesAnalysis lists the most common responsibilities in the
// sample. FromModel records whether the list came from AI summarization or
// the pattern-matching fallback.
type ResponsibilitiesAnalysis struct {
	Common    []ResponsibilityCount `json:"common"`
	FromModel bool                  `json:"from_model"`
	Postings  int                   `json:"postings"`
	Insights  []string              `json:"insights"`
}
