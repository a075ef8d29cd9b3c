// Package analysis computes derived market statistics from a set of
// comparable postings. Each analyzer is independent and side-effect free:
// the same postings always produce the same summary.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/market-intel/internal/llm"
	"github.com/jonathan/market-intel/internal/types"
)

// SalaryAnalyzer summarizes compensation. The optional model client powers
// the estimation fallback when no posting discloses pay.
type SalaryAnalyzer struct {
	client  llm.Client
	verbose bool
}

// NewSalaryAnalyzer creates the analyzer. client may be nil; the estimation
// fallback is then skipped and a no-data result is returned instead.
func NewSalaryAnalyzer(client llm.Client, verbose bool) *SalaryAnalyzer {
	return &SalaryAnalyzer{client: client, verbose: verbose}
}

var salaryRangePattern = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k)?\s*(?:-|–|—|to)\s*[$£€]?\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k)?`)
var salarySinglePattern = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k)?`)

// ParseSalaryText parses a free-text salary into its numeric endpoints.
// Ranges yield two values, a lone figure yields one, unparseable text
// yields none. A k suffix multiplies by 1000.
func ParseSalaryText(text string) []float64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if m := salaryRangePattern.FindStringSubmatch(text); m != nil {
		low := parseFigure(m[1], m[2])
		high := parseFigure(m[3], m[4])
		if low > 0 && high > 0 {
			return []float64{low, high}
		}
	}

	if m := salarySinglePattern.FindStringSubmatch(text); m != nil {
		if v := parseFigure(m[1], m[2]); v > 0 {
			return []float64{v}
		}
	}

	return nil
}

func parseFigure(num, kSuffix string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0
	}
	if kSuffix != "" {
		v *= 1000
	}
	return v
}

// Analyze pools every parsed salary endpoint across the postings into one
// flat list and reports its distribution. Both ends of a range count as
// independent data points; see the SalaryAnalysis doc for why this is kept.
// When nothing parses, a single estimation call is attempted using the
// original role query; when that also fails the result explicitly says no
// data is available rather than guessing.
func (a *SalaryAnalyzer) Analyze(ctx context.Context, postings []types.ComparablePosting, role *types.RoleQuery) types.SalaryAnalysis {
	var points []float64
	withSalary := 0
	for _, p := range postings {
		endpoints := ParseSalaryText(p.Salary)
		if len(endpoints) > 0 {
			withSalary++
			points = append(points, endpoints...)
		}
	}

	if len(points) == 0 {
		return a.estimate(ctx, role, len(postings))
	}

	sort.Float64s(points)

	result := types.SalaryAnalysis{
		HasData:    true,
		Min:        points[0],
		Max:        points[len(points)-1],
		Mean:       mean(points),
		Median:     nearestRank(points, 50),
		P25:        nearestRank(points, 25),
		P75:        nearestRank(points, 75),
		DataPoints: len(points),
		Postings:   len(postings),
		WithSalary: withSalary,
	}

	result.Insights = []string{
		fmt.Sprintf("Median pay is %s across %d salary data points.", formatMoney(result.Median), result.DataPoints),
		fmt.Sprintf("Disclosed salaries range from %s to %s.", formatMoney(result.Min), formatMoney(result.Max)),
		fmt.Sprintf("%d of %d comparable postings disclose pay.", withSalary, len(postings)),
	}

	return result
}

// estimationReply is the JSON contract for the market-estimate call.
type estimationReply struct {
	MinSalary float64 `json:"minSalary"`
	MaxSalary float64 `json:"maxSalary"`
}

func (a *SalaryAnalyzer) estimate(ctx context.Context, role *types.RoleQuery, postings int) types.SalaryAnalysis {
	noData := types.SalaryAnalysis{
		Postings: postings,
		Insights: []string{"No salary data available for this role."},
	}

	if a.client == nil || role == nil || role.JobTitle == "" {
		return noData
	}

	prompt := fmt.Sprintf(`You are a compensation analyst. Provide a market estimate of the annual base salary range for this role:
Title: %s
Experience level: %s
Location: %s

This is a market estimate, not extracted data. Return ONLY valid JSON:
{"minSalary": number, "maxSalary": number}`,
		role.JobTitle, role.ExperienceLevel, role.Location)

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		if a.verbose {
			log.Printf("[ANALYSIS] salary estimation failed: %v", err)
		}
		return noData
	}

	var reply estimationReply
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &reply); err != nil || reply.MinSalary <= 0 || reply.MaxSalary < reply.MinSalary {
		return noData
	}

	mid := (reply.MinSalary + reply.MaxSalary) / 2
	return types.SalaryAnalysis{
		HasData:     true,
		Min:         reply.MinSalary,
		Max:         reply.MaxSalary,
		Mean:        mid,
		Median:      mid,
		P25:         reply.MinSalary + (reply.MaxSalary-reply.MinSalary)/4,
		P75:         reply.MinSalary + 3*(reply.MaxSalary-reply.MinSalary)/4,
		Postings:    postings,
		IsEstimated: true,
		Insights: []string{
			fmt.Sprintf("No postings disclosed pay; showing a market estimate of %s to %s.", formatMoney(reply.MinSalary), formatMoney(reply.MaxSalary)),
		},
	}
}

// nearestRank returns the pth percentile of a sorted list using the
// nearest-rank method, without interpolation.
func nearestRank(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// formatMoney renders a dollar figure with thousands separators.
func formatMoney(v float64) string {
	n := int64(math.Round(v))
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return "$" + s
	}
	var sb strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		sb.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return "$" + sb.String()
}
