// Package types defines the shared data model for the market intelligence pipeline.
package types

// RoleQuery is the normalized role description supplied by the caller.
// It is the input to the analysis pipeline and, together with the comparable
// postings, the only context the analyzers ever see.
type RoleQuery struct {
	JobTitle            string   `json:"job_title" validate:"required,min=2"`
	Department          string   `json:"department,omitempty"`
	ExperienceLevel     string   `json:"experience_level,omitempty"`
	Location            string   `json:"location,omitempty"`
	WorkModel           string   `json:"work_model,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`
	RequiredSkills      []string `json:"required_skills,omitempty"`
	SalaryRange         string   `json:"salary_range,omitempty"`
	KeyResponsibilities []string `json:"key_responsibilities,omitempty"`
	HiringTimeline      string   `json:"hiring_timeline,omitempty"`
}

// CardID identifies one presentation card produced by the assembler.
type CardID string

// Card identifiers consumed by the presentation layer.
const (
	CardReality   CardID = "reality"
	CardRole      CardID = "role"
	CardSkill     CardID = "skill"
	CardMarket    CardID = "market"
	CardTalentMap CardID = "talentmap"
	CardPay       CardID = "pay"
	CardFunnel    CardID = "funnel"
)

// AllCardIDs lists every card the assembler produces, in presentation order.
func AllCardIDs() []CardID {
	return []CardID{CardReality, CardRole, CardSkill, CardMarket, CardTalentMap, CardPay, CardFunnel}
}
