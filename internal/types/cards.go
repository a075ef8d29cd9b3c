package types

// CardSet is the assembled output of one pipeline run, keyed by card id.
// Values are the per-card payload structs below.
type CardSet map[CardID]any

// PayCard presents compensation statistics.
type PayCard struct {
	SalaryRange string   `json:"salary_range"`
	Median      string   `json:"median"`
	P25         string   `json:"p25"`
	P75         string   `json:"p75"`
	Average     string   `json:"average"`
	IsEstimated bool     `json:"is_estimated"`
	DataSource  string   `json:"data_source"`
	Insights    []string `json:"insights"`
}

// MarketCard presents demand and competition figures.
type MarketCard struct {
	OpenPositions    int      `json:"open_positions"`
	CompaniesHiring  int      `json:"companies_hiring"`
	CompetitionLevel string   `json:"competition_level"`
	DemandTrend      string   `json:"demand_trend"`
	DataSource       string   `json:"data_source"`
	Insights         []string `json:"insights"`
}

// SkillCardItem is one displayed skill with a pre-formatted share.
type SkillCardItem struct {
	Name  string `json:"name"`
	Share string `json:"share"`
}

// SkillCard presents the ranked in-demand skills.
type SkillCard struct {
	TopSkills  []SkillCardItem `json:"top_skills"`
	DataSource string          `json:"data_source"`
	Insights   []string        `json:"insights"`
}

// TalentMapCard presents where the competition for talent sits.
type TalentMapCard struct {
	TopCompanies  []string `json:"top_companies"`
	AvgApplicants string   `json:"avg_applicants"`
	Location      string   `json:"location"`
	DataSource    string   `json:"data_source"`
	Insights      []string `json:"insights"`
}

// FunnelCard presents expected hiring-funnel figures.
type FunnelCard struct {
	ExpectedApplicants string   `json:"expected_applicants"`
	ScreeningRate      string   `json:"screening_rate"`
	InterviewRate      string   `json:"interview_rate"`
	OfferRate          string   `json:"offer_rate"`
	DataSource         string   `json:"data_source"`
	Insights           []string `json:"insights"`
}

// RoleCard presents the role definition enriched with market responsibilities.
type RoleCard struct {
	Title                  string   `json:"title"`
	Department             string   `json:"department"`
	ExperienceLevel        string   `json:"experience_level"`
	WorkModel              string   `json:"work_model"`
	CommonResponsibilities []string `json:"common_responsibilities"`
	DataSource             string   `json:"data_source"`
	Insights               []string `json:"insights"`
}

// RealityCard presents a hiring reality check with common red flags.
type RealityCard struct {
	MarketSummary    string   `json:"market_summary"`
	CompetitionLevel string   `json:"competition_level"`
	SalaryReality    string   `json:"salary_reality"`
	RedFlags         []string `json:"red_flags"`
	DataSource       string   `json:"data_source"`
	Insights         []string `json:"insights"`
}
