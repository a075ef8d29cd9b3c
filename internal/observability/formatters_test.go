package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/market-intel/internal/types"
)

func TestPrintParsedJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedJob(&types.ParsedJobData{
		JobTitle:   "Backend Engineer",
		Company:    "Acme",
		Location:   "Austin, TX",
		MinSalary:  "120000",
		MaxSalary:  "150000",
		Confidence: 0.92,
	})

	out := buf.String()
	assert.Contains(t, out, "Parsed Job Posting")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "120000 - 150000")
	assert.Contains(t, out, "0.92")
}

func TestPrintParsedJob_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedJob(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCardSet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	set := types.CardSet{
		types.CardPay: types.PayCard{
			SalaryRange: "$120,000 - $150,000",
			Median:      "$135,000",
			DataSource:  "Based on 10 salary data points from 8 postings",
		},
		types.CardMarket: types.MarketCard{
			OpenPositions:    8,
			CompaniesHiring:  6,
			CompetitionLevel: "Medium",
			DemandTrend:      "Growing",
		},
		types.CardSkill: types.SkillCard{
			TopSkills: []types.SkillCardItem{
				{Name: "Go", Share: "75%"},
				{Name: "PostgreSQL", Share: "50%"},
			},
		},
	}

	p.PrintCardSet(set)

	out := buf.String()
	assert.Contains(t, out, "$135,000")
	assert.Contains(t, out, "Medium")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "75%")
}

func TestPrintCardSet_TruncatesLongSkillLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]types.SkillCardItem, 8)
	for i := range items {
		items[i] = types.SkillCardItem{Name: "Skill", Share: "10%"}
	}
	p.PrintCardSet(types.CardSet{types.CardSkill: types.SkillCard{TopSkills: items}})

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintInsights_Deduplicates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	set := types.CardSet{
		types.CardMarket: types.MarketCard{Insights: []string{"8 open positions."}},
		types.CardFunnel: types.FunnelCard{Insights: []string{"8 open positions."}},
	}
	p.PrintInsights(set)

	out := buf.String()
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("8 open positions.")))
}
