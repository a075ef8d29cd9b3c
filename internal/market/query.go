package market

import (
	"strings"

	"github.com/jonathan/market-intel/internal/types"
)

// BuildQuery derives a MarketQuery from a role query. The mapping is
// deterministic: the same role always yields the same query, which is what
// makes the result cache effective.
func BuildQuery(role *types.RoleQuery, maxResults int) types.MarketQuery {
	keywords := strings.TrimSpace(role.JobTitle)

	jobType := ""
	if strings.EqualFold(role.WorkModel, "remote") {
		jobType = "remote"
	}

	return types.MarketQuery{
		Keywords:        keywords,
		Location:        strings.TrimSpace(role.Location),
		ExperienceLevel: strings.TrimSpace(role.ExperienceLevel),
		JobType:         jobType,
		MaxResults:      maxResults,
	}
}

// actorInput is the platform's expected input document. The platform
// rejects array-valued filters, so multi-valued fields must be joined into
// comma-separated strings before launch.
type actorInput struct {
	Keywords        string `json:"keywords"`
	Location        string `json:"location,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	JobType         string `json:"jobType,omitempty"`
	MaxResults      int    `json:"maxResults"`
}

func toActorInput(q types.MarketQuery) actorInput {
	return actorInput{
		Keywords:        q.Keywords,
		Location:        q.Location,
		ExperienceLevel: q.ExperienceLevel,
		JobType:         q.JobType,
		MaxResults:      q.MaxResults,
	}
}

// JoinFilter flattens a multi-valued filter into the comma-separated string
// form the platform accepts.
func JoinFilter(values []string) string {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return strings.Join(trimmed, ",")
}
