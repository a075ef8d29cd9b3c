// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/market-intel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedJob outputs a human-readable summary of a parsed posting.
func (p *Printer) PrintParsedJob(parsed *types.ParsedJobData) {
	if parsed == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %s\n", parsed.JobTitle))
	sb.WriteString(fmt.Sprintf("Company:    %s\n", parsed.Company))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", parsed.Location))
	if parsed.MinSalary != "" {
		sb.WriteString(fmt.Sprintf("Salary:     %s - %s\n", parsed.MinSalary, parsed.MaxSalary))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.2f", parsed.Confidence))

	p.printBox("Parsed Job Posting", sb.String())
}

// PrintCardSet outputs a compact view of the assembled cards.
func (p *Printer) PrintCardSet(set types.CardSet) {
	if set == nil {
		return
	}

	if pay, ok := set[types.CardPay].(types.PayCard); ok {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Range:  %s\n", pay.SalaryRange))
		sb.WriteString(fmt.Sprintf("Median: %s\n", pay.Median))
		sb.WriteString(pay.DataSource)
		p.printBox("Pay", sb.String())
	}

	if m, ok := set[types.CardMarket].(types.MarketCard); ok {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Open positions:  %d\n", m.OpenPositions))
		sb.WriteString(fmt.Sprintf("Companies:       %d\n", m.CompaniesHiring))
		sb.WriteString(fmt.Sprintf("Competition:     %s\n", m.CompetitionLevel))
		sb.WriteString(fmt.Sprintf("Demand:          %s", m.DemandTrend))
		p.printBox("Market", sb.String())
	}

	if s, ok := set[types.CardSkill].(types.SkillCard); ok {
		var sb strings.Builder
		for i, skill := range s.TopSkills {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more", len(s.TopSkills)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("%-20s %s\n", skill.Name, skill.Share))
		}
		if sb.Len() == 0 {
			sb.WriteString("no skill data")
		}
		p.printBox("Skills", strings.TrimRight(sb.String(), "\n"))
	}
}

// PrintInsights lists every insight string across the card set.
func (p *Printer) PrintInsights(set types.CardSet) {
	seen := make(map[string]bool)
	var sb strings.Builder

	for _, id := range types.AllCardIDs() {
		card, ok := set[id]
		if !ok {
			continue
		}
		for _, insight := range cardInsights(card) {
			if seen[insight] {
				continue
			}
			seen[insight] = true
			sb.WriteString("- " + insight + "\n")
		}
	}

	if sb.Len() > 0 {
		p.printBox("Insights", strings.TrimRight(sb.String(), "\n"))
	}
}

func cardInsights(card any) []string {
	switch c := card.(type) {
	case types.PayCard:
		return c.Insights
	case types.MarketCard:
		return c.Insights
	case types.SkillCard:
		return c.Insights
	case types.TalentMapCard:
		return c.Insights
	case types.FunnelCard:
		return c.Insights
	case types.RoleCard:
		return c.Insights
	case types.RealityCard:
		return c.Insights
	default:
		return nil
	}
}
