// Package cards maps analysis results into presentation-ready payloads.
// Every builder is a pure function and never fails: absence of data
// degrades to static placeholder copy, recorded in the dataSource
// provenance string.
package cards

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/market-intel/internal/types"
)

// Assemble produces the full card set for one pipeline run.
func Assemble(role *types.RoleQuery, salary types.SalaryAnalysis, skills types.SkillAnalysis, market types.MarketAnalysis, resp types.ResponsibilitiesAnalysis) types.CardSet {
	return types.CardSet{
		types.CardReality:   BuildRealityCard(salary, market),
		types.CardRole:      BuildRoleCard(role, resp),
		types.CardSkill:     BuildSkillCard(skills),
		types.CardMarket:    BuildMarketCard(market),
		types.CardTalentMap: BuildTalentMapCard(role, market),
		types.CardPay:       BuildPayCard(salary),
		types.CardFunnel:    BuildFunnelCard(market),
	}
}

// BuildPayCard formats the salary analysis for display.
func BuildPayCard(salary types.SalaryAnalysis) types.PayCard {
	if !salary.HasData {
		return types.PayCard{
			SalaryRange: placeholderSalary,
			Median:      placeholderSalary,
			P25:         placeholderSalary,
			P75:         placeholderSalary,
			Average:     placeholderSalary,
			DataSource:  fmt.Sprintf("No salary data found in %d postings", salary.Postings),
			Insights:    salary.Insights,
		}
	}

	source := fmt.Sprintf("Based on %d salary data points from %d postings", salary.DataPoints, salary.Postings)
	if salary.IsEstimated {
		source = "Market estimate; no postings disclosed pay"
	}

	return types.PayCard{
		SalaryRange: fmt.Sprintf("%s - %s", money(salary.Min), money(salary.Max)),
		Median:      money(salary.Median),
		P25:         money(salary.P25),
		P75:         money(salary.P75),
		Average:     money(salary.Mean),
		IsEstimated: salary.IsEstimated,
		DataSource:  source,
		Insights:    salary.Insights,
	}
}

// BuildMarketCard formats the competition analysis for display.
func BuildMarketCard(market types.MarketAnalysis) types.MarketCard {
	return types.MarketCard{
		OpenPositions:    market.TotalOpenPositions,
		CompaniesHiring:  market.CompaniesHiring,
		CompetitionLevel: market.CompetitionLevel,
		DemandTrend:      market.DemandTrend,
		DataSource:       fmt.Sprintf("Based on %d comparable postings", market.TotalOpenPositions),
		Insights:         market.Insights,
	}
}

// BuildSkillCard formats the ranked skills for display.
func BuildSkillCard(skills types.SkillAnalysis) types.SkillCard {
	card := types.SkillCard{
		DataSource: fmt.Sprintf("Based on %d comparable postings", skills.Postings),
		Insights:   skills.Insights,
	}

	if len(skills.TopSkills) == 0 {
		card.Insights = append([]string{placeholderSkillsNote}, card.Insights...)
		return card
	}

	for _, s := range skills.TopSkills {
		card.TopSkills = append(card.TopSkills, types.SkillCardItem{
			Name:  s.Skill,
			Share: fmt.Sprintf("%.0f%%", s.Percentage),
		})
	}

	return card
}

// BuildTalentMapCard shows where the role competes for talent.
func BuildTalentMapCard(role *types.RoleQuery, market types.MarketAnalysis) types.TalentMapCard {
	location := placeholderLocation
	if role != nil && role.Location != "" {
		location = role.Location
	}

	applicants := placeholderApplicants
	if market.AvgApplicants > 0 {
		applicants = fmt.Sprintf("~%d applicants per posting", int(math.Round(market.AvgApplicants)))
	}

	companies := make([]string, 0, len(market.TopCompanies))
	for _, c := range market.TopCompanies {
		companies = append(companies, c.Company)
	}

	return types.TalentMapCard{
		TopCompanies:  companies,
		AvgApplicants: applicants,
		Location:      location,
		DataSource:    fmt.Sprintf("Based on %d comparable postings", market.TotalOpenPositions),
		Insights:      market.Insights,
	}
}

// BuildFunnelCard shows expected hiring-funnel figures.
func BuildFunnelCard(market types.MarketAnalysis) types.FunnelCard {
	expected := placeholderApplicants
	if market.AvgApplicants > 0 {
		expected = fmt.Sprintf("~%d applications expected", int(math.Round(market.AvgApplicants)))
	}

	return types.FunnelCard{
		ExpectedApplicants: expected,
		ScreeningRate:      funnelScreeningRate,
		InterviewRate:      funnelInterviewRate,
		OfferRate:          funnelOfferRate,
		DataSource:         fmt.Sprintf("Based on %d comparable postings", market.TotalOpenPositions),
		Insights:           market.Insights,
	}
}

// BuildRoleCard combines the original query with market responsibilities.
func BuildRoleCard(role *types.RoleQuery, resp types.ResponsibilitiesAnalysis) types.RoleCard {
	card := types.RoleCard{
		DataSource: fmt.Sprintf("Based on %d comparable postings", resp.Postings),
		Insights:   resp.Insights,
	}

	if role != nil {
		card.Title = role.JobTitle
		card.Department = role.Department
		card.ExperienceLevel = role.ExperienceLevel
		card.WorkModel = role.WorkModel
	}

	if len(resp.Common) == 0 {
		if role != nil && len(role.KeyResponsibilities) > 0 {
			card.CommonResponsibilities = role.KeyResponsibilities
			card.DataSource = "From the role description"
		} else {
			card.Insights = append([]string{placeholderRespNote}, card.Insights...)
		}
		return card
	}

	for _, r := range resp.Common {
		card.CommonResponsibilities = append(card.CommonResponsibilities, r.Responsibility)
	}

	return card
}

// BuildRealityCard gives the hiring reality check.
func BuildRealityCard(salary types.SalaryAnalysis, market types.MarketAnalysis) types.RealityCard {
	summary := placeholderRealityNote
	if market.TotalOpenPositions > 0 {
		summary = fmt.Sprintf("%d companies are hiring for comparable roles; competition for candidates is %s.",
			market.CompaniesHiring, strings.ToLower(market.CompetitionLevel))
	}

	salaryReality := placeholderSalary
	if salary.HasData {
		salaryReality = fmt.Sprintf("Expect to pay around %s to be competitive", money(salary.Median))
	}

	insights := append([]string{}, market.Insights...)
	insights = append(insights, salary.Insights...)

	return types.RealityCard{
		MarketSummary:    summary,
		CompetitionLevel: market.CompetitionLevel,
		SalaryReality:    salaryReality,
		RedFlags:         hiringRedFlags,
		DataSource:       fmt.Sprintf("Based on %d comparable postings", market.TotalOpenPositions),
		Insights:         insights,
	}
}

// money renders a dollar figure with thousands separators.
func money(v float64) string {
	n := int64(math.Round(v))
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return "$" + s
	}
	var out []string
	for len(s) > 3 {
		out = append([]string{s[len(s)-3:]}, out...)
		s = s[:len(s)-3]
	}
	out = append([]string{s}, out...)
	return "$" + strings.Join(out, ",")
}
