package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/market-intel/internal/types"
)

func sampleSalary() types.SalaryAnalysis {
	return types.SalaryAnalysis{
		HasData:    true,
		Min:        100000,
		Max:        130000,
		Mean:       115000,
		Median:     112000,
		P25:        105000,
		P75:        125000,
		DataPoints: 20,
		Postings:   25,
		WithSalary: 10,
		Insights:   []string{"Median pay is $112,000 across 20 salary data points."},
	}
}

func sampleMarket() types.MarketAnalysis {
	return types.MarketAnalysis{
		TotalOpenPositions: 25,
		CompaniesHiring:    18,
		AvgApplicants:      87.4,
		CompetitionLevel:   "Medium",
		DemandTrend:        "Growing",
		TopCompanies:       []types.CompanyCount{{Company: "Acme", Count: 3}, {Company: "Globex", Count: 2}},
		Insights:           []string{"25 open positions across 18 companies."},
	}
}

func TestAssemble_ProducesAllCards(t *testing.T) {
	role := &types.RoleQuery{JobTitle: "Backend Engineer", Location: "Austin, TX"}
	set := Assemble(role, sampleSalary(), types.SkillAnalysis{}, sampleMarket(), types.ResponsibilitiesAnalysis{})

	require.Len(t, set, len(types.AllCardIDs()))
	for _, id := range types.AllCardIDs() {
		assert.Contains(t, set, id)
	}
}

func TestAssemble_NeverFailsOnEmptyInput(t *testing.T) {
	set := Assemble(nil, types.SalaryAnalysis{}, types.SkillAnalysis{}, types.MarketAnalysis{}, types.ResponsibilitiesAnalysis{})
	require.Len(t, set, len(types.AllCardIDs()))
}

func TestBuildPayCard(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		card := BuildPayCard(sampleSalary())

		assert.Equal(t, "$100,000 - $130,000", card.SalaryRange)
		assert.Equal(t, "$112,000", card.Median)
		assert.Equal(t, "$105,000", card.P25)
		assert.Equal(t, "$125,000", card.P75)
		assert.False(t, card.IsEstimated)
		assert.Equal(t, "Based on 20 salary data points from 25 postings", card.DataSource)
	})

	t.Run("without data", func(t *testing.T) {
		card := BuildPayCard(types.SalaryAnalysis{Postings: 12})

		assert.Equal(t, placeholderSalary, card.SalaryRange)
		assert.Equal(t, placeholderSalary, card.Median)
		assert.Equal(t, "No salary data found in 12 postings", card.DataSource)
	})

	t.Run("estimated", func(t *testing.T) {
		salary := sampleSalary()
		salary.IsEstimated = true
		card := BuildPayCard(salary)

		assert.True(t, card.IsEstimated)
		assert.Equal(t, "Market estimate; no postings disclosed pay", card.DataSource)
	})
}

func TestBuildMarketCard(t *testing.T) {
	card := BuildMarketCard(sampleMarket())

	assert.Equal(t, 25, card.OpenPositions)
	assert.Equal(t, 18, card.CompaniesHiring)
	assert.Equal(t, "Medium", card.CompetitionLevel)
	assert.Equal(t, "Growing", card.DemandTrend)
	assert.Equal(t, "Based on 25 comparable postings", card.DataSource)
}

func TestBuildSkillCard(t *testing.T) {
	t.Run("with skills", func(t *testing.T) {
		card := BuildSkillCard(types.SkillAnalysis{
			TopSkills: []types.SkillCount{{Skill: "Go", Count: 15, Percentage: 60}},
			Postings:  25,
		})

		require.Len(t, card.TopSkills, 1)
		assert.Equal(t, "Go", card.TopSkills[0].Name)
		assert.Equal(t, "60%", card.TopSkills[0].Share)
	})

	t.Run("without skills", func(t *testing.T) {
		card := BuildSkillCard(types.SkillAnalysis{Postings: 3})

		assert.Empty(t, card.TopSkills)
		require.NotEmpty(t, card.Insights)
		assert.Equal(t, placeholderSkillsNote, card.Insights[0])
	})
}

func TestBuildTalentMapCard(t *testing.T) {
	role := &types.RoleQuery{JobTitle: "Backend Engineer", Location: "Austin, TX"}
	card := BuildTalentMapCard(role, sampleMarket())

	assert.Equal(t, []string{"Acme", "Globex"}, card.TopCompanies)
	assert.Equal(t, "~87 applicants per posting", card.AvgApplicants)
	assert.Equal(t, "Austin, TX", card.Location)

	t.Run("placeholders", func(t *testing.T) {
		card := BuildTalentMapCard(nil, types.MarketAnalysis{})
		assert.Equal(t, placeholderLocation, card.Location)
		assert.Equal(t, placeholderApplicants, card.AvgApplicants)
	})
}

func TestBuildFunnelCard(t *testing.T) {
	card := BuildFunnelCard(sampleMarket())

	assert.Equal(t, "~87 applications expected", card.ExpectedApplicants)
	assert.Equal(t, funnelScreeningRate, card.ScreeningRate)
	assert.Equal(t, funnelInterviewRate, card.InterviewRate)
	assert.Equal(t, funnelOfferRate, card.OfferRate)
}

func TestBuildRoleCard(t *testing.T) {
	role := &types.RoleQuery{
		JobTitle:            "Backend Engineer",
		Department:          "Engineering",
		ExperienceLevel:     "Senior",
		WorkModel:           "remote",
		KeyResponsibilities: []string{"Own the billing service"},
	}

	t.Run("market responsibilities win", func(t *testing.T) {
		resp := types.ResponsibilitiesAnalysis{
			Common:   []types.ResponsibilityCount{{Responsibility: "Design and build services", Count: 8}},
			Postings: 20,
		}
		card := BuildRoleCard(role, resp)

		assert.Equal(t, "Backend Engineer", card.Title)
		assert.Equal(t, []string{"Design and build services"}, card.CommonResponsibilities)
		assert.Equal(t, "Based on 20 comparable postings", card.DataSource)
	})

	t.Run("falls back to the query's responsibilities", func(t *testing.T) {
		card := BuildRoleCard(role, types.ResponsibilitiesAnalysis{})

		assert.Equal(t, []string{"Own the billing service"}, card.CommonResponsibilities)
		assert.Equal(t, "From the role description", card.DataSource)
	})

	t.Run("nothing available", func(t *testing.T) {
		card := BuildRoleCard(&types.RoleQuery{JobTitle: "Engineer"}, types.ResponsibilitiesAnalysis{})

		assert.Empty(t, card.CommonResponsibilities)
		require.NotEmpty(t, card.Insights)
		assert.Equal(t, placeholderRespNote, card.Insights[0])
	})
}

func TestBuildRealityCard(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		card := BuildRealityCard(sampleSalary(), sampleMarket())

		assert.Contains(t, card.MarketSummary, "18 companies are hiring")
		assert.Contains(t, card.MarketSummary, "medium")
		assert.Contains(t, card.SalaryReality, "$112,000")
		assert.Equal(t, hiringRedFlags, card.RedFlags)
	})

	t.Run("without data", func(t *testing.T) {
		card := BuildRealityCard(types.SalaryAnalysis{}, types.MarketAnalysis{})

		assert.Equal(t, placeholderRealityNote, card.MarketSummary)
		assert.Equal(t, placeholderSalary, card.SalaryReality)
		assert.Equal(t, hiringRedFlags, card.RedFlags, "red flags appear on every run")
	})
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$900", money(900))
	assert.Equal(t, "$87,500", money(87500))
	assert.Equal(t, "$1,000,000", money(1000000))
}
