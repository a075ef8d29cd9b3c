package analysis

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jonathan/market-intel/internal/types"
)

// Competition levels, bucketed by mean applicant count.
const (
	CompetitionLow      = "Low"
	CompetitionMedium   = "Medium"
	CompetitionHigh     = "High"
	CompetitionVeryHigh = "Very High"
)

// Demand trends, derived from posting recency.
const (
	DemandGrowing   = "Growing"
	DemandStable    = "Stable"
	DemandDeclining = "Declining"
)

// TopCompanyCount caps the hiring-company ranking.
const TopCompanyCount = 10

// recentPostingPattern matches "posted X ago" strings no older than about
// two weeks.
var recentPostingPattern = regexp.MustCompile(`(?i)\b(just now|today|yesterday|\d+\s*(?:hour|minute)s?\s*ago|\d+\s*days?\s*ago|[12]\s*weeks?\s*ago)\b`)

// AnalyzeMarket summarizes competitive intensity: how many positions and
// companies are in play, how contested each opening is, and whether demand
// looks fresh. Zero postings produce a valid zero-valued result, never an
// error.
func AnalyzeMarket(postings []types.ComparablePosting) types.MarketAnalysis {
	if len(postings) == 0 {
		return types.MarketAnalysis{
			CompetitionLevel: CompetitionMedium,
			DemandTrend:      DemandStable,
			Insights:         []string{"No market data available for this role."},
		}
	}

	companyCounts := make(map[string]int)
	applicantSum := 0
	applicantKnown := 0
	recent := 0

	for _, p := range postings {
		if p.Company != "" {
			companyCounts[p.Company]++
		}
		if p.Applicants > 0 {
			applicantSum += p.Applicants
			applicantKnown++
		}
		if recentPostingPattern.MatchString(p.PostedDate) {
			recent++
		}
	}

	avgApplicants := 0.0
	if applicantKnown > 0 {
		avgApplicants = float64(applicantSum) / float64(applicantKnown)
	}

	result := types.MarketAnalysis{
		TotalOpenPositions: len(postings),
		CompaniesHiring:    len(companyCounts),
		AvgApplicants:      avgApplicants,
		CompetitionLevel:   competitionLevel(avgApplicants, applicantKnown),
		DemandTrend:        demandTrend(recent, len(postings)),
		TopCompanies:       topCompanies(companyCounts),
	}

	result.Insights = []string{
		fmt.Sprintf("%d open positions across %d companies.", result.TotalOpenPositions, result.CompaniesHiring),
		fmt.Sprintf("Competition for candidates is %s.", result.CompetitionLevel),
		fmt.Sprintf("Demand looks %s based on posting recency.", result.DemandTrend),
	}

	return result
}

// competitionLevel buckets the mean applicant count. Postings without
// applicant data default to Medium rather than skewing the buckets.
func competitionLevel(avgApplicants float64, known int) string {
	if known == 0 {
		return CompetitionMedium
	}
	switch {
	case avgApplicants < 50:
		return CompetitionLow
	case avgApplicants < 100:
		return CompetitionMedium
	case avgApplicants < 200:
		return CompetitionHigh
	default:
		return CompetitionVeryHigh
	}
}

// demandTrend classifies demand by the fraction of postings no older than
// about two weeks.
func demandTrend(recent, total int) string {
	fraction := float64(recent) / float64(total)
	switch {
	case fraction > 0.6:
		return DemandGrowing
	case fraction > 0.3:
		return DemandStable
	default:
		return DemandDeclining
	}
}

func topCompanies(counts map[string]int) []types.CompanyCount {
	ranked := make([]types.CompanyCount, 0, len(counts))
	for company, count := range counts {
		ranked = append(ranked, types.CompanyCount{Company: company, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Company < ranked[j].Company
	})

	if len(ranked) > TopCompanyCount {
		ranked = ranked[:TopCompanyCount]
	}
	return ranked
}
