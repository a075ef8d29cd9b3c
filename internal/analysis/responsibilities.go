package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jonathan/market-intel/internal/llm"
	"github.com/jonathan/market-intel/internal/types"
)

// TopResponsibilityCount caps the ranked responsibility output.
const TopResponsibilityCount = 10

// maxSummaryInput bounds the concatenated description text sent to the
// model, keeping token usage predictable for large samples.
const maxSummaryInput = 12000

// ResponsibilitiesAnalyzer finds the most common responsibilities across
// the sample, preferring AI summarization and degrading to a
// fixed-vocabulary pattern matcher.
type ResponsibilitiesAnalyzer struct {
	client  llm.Client
	verbose bool
}

// NewResponsibilitiesAnalyzer creates the analyzer. client may be nil; the
// pattern matcher then runs directly.
func NewResponsibilitiesAnalyzer(client llm.Client, verbose bool) *ResponsibilitiesAnalyzer {
	return &ResponsibilitiesAnalyzer{client: client, verbose: verbose}
}

// Analyze returns the common responsibilities for the sample. Any model
// failure silently downgrades to the pattern matcher; zero postings yield a
// valid empty result.
func (a *ResponsibilitiesAnalyzer) Analyze(ctx context.Context, postings []types.ComparablePosting) types.ResponsibilitiesAnalysis {
	if len(postings) == 0 {
		return types.ResponsibilitiesAnalysis{
			Insights: []string{"No postings available for responsibilities analysis."},
		}
	}

	if a.client != nil {
		if result, err := a.summarize(ctx, postings); err == nil {
			return result
		} else if a.verbose {
			log.Printf("[ANALYSIS] responsibilities summarization failed, using pattern matcher: %v", err)
		}
	}

	return matchResponsibilities(postings)
}

type summaryReply struct {
	Responsibilities []struct {
		Responsibility string `json:"responsibility"`
		Count          int    `json:"count"`
	} `json:"responsibilities"`
}

func (a *ResponsibilitiesAnalyzer) summarize(ctx context.Context, postings []types.ComparablePosting) (types.ResponsibilitiesAnalysis, error) {
	var sb strings.Builder
	for i, p := range postings {
		if sb.Len() >= maxSummaryInput {
			break
		}
		fmt.Fprintf(&sb, "--- Posting %d: %s ---\n%s\n", i+1, p.Title, p.Description)
	}
	corpus := sb.String()
	if len(corpus) > maxSummaryInput {
		corpus = corpus[:maxSummaryInput]
	}

	prompt := fmt.Sprintf(`You are a job market analyst. Below are %d job posting descriptions for similar roles.
Identify the %d most common responsibilities across them, with how many postings mention each.

Return ONLY valid JSON:
{"responsibilities": [{"responsibility": "string", "count": number}]}

Postings:
%s`, len(postings), TopResponsibilityCount, corpus)

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.ResponsibilitiesAnalysis{}, err
	}

	var reply summaryReply
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &reply); err != nil {
		return types.ResponsibilitiesAnalysis{}, err
	}
	if len(reply.Responsibilities) == 0 {
		return types.ResponsibilitiesAnalysis{}, fmt.Errorf("model returned no responsibilities")
	}

	common := make([]types.ResponsibilityCount, 0, TopResponsibilityCount)
	for _, r := range reply.Responsibilities {
		if strings.TrimSpace(r.Responsibility) == "" {
			continue
		}
		common = append(common, types.ResponsibilityCount{Responsibility: r.Responsibility, Count: r.Count})
		if len(common) >= TopResponsibilityCount {
			break
		}
	}

	return types.ResponsibilitiesAnalysis{
		Common:    common,
		FromModel: true,
		Postings:  len(postings),
		Insights: []string{
			fmt.Sprintf("Top responsibilities summarized from %d comparable postings.", len(postings)),
		},
	}, nil
}

// matchResponsibilities is the deterministic fallback: a fixed-vocabulary
// pattern matcher scoped to each posting's responsibilities section when
// one is detectable, otherwise the whole description.
func matchResponsibilities(postings []types.ComparablePosting) types.ResponsibilitiesAnalysis {
	counts := make(map[string]int)

	for _, p := range postings {
		scope := responsibilitiesScope(p.Description)
		lower := strings.ToLower(scope)

		for canonical, terms := range responsibilityVocabulary {
			for _, term := range terms {
				if strings.Contains(lower, term) {
					counts[canonical]++
					break
				}
			}
		}
	}

	common := make([]types.ResponsibilityCount, 0, len(counts))
	for canonical, count := range counts {
		common = append(common, types.ResponsibilityCount{Responsibility: canonical, Count: count})
	}

	sort.Slice(common, func(i, j int) bool {
		if common[i].Count != common[j].Count {
			return common[i].Count > common[j].Count
		}
		return common[i].Responsibility < common[j].Responsibility
	})

	if len(common) > TopResponsibilityCount {
		common = common[:TopResponsibilityCount]
	}

	result := types.ResponsibilitiesAnalysis{
		Common:   common,
		Postings: len(postings),
	}

	if len(common) == 0 {
		result.Insights = []string{"No common responsibilities detected in the comparable postings."}
	} else {
		result.Insights = []string{
			fmt.Sprintf("Common responsibilities matched across %d comparable postings.", len(postings)),
		}
	}

	return result
}

// responsibilitiesScope narrows a description to its responsibilities
// section when a header is present.
func responsibilitiesScope(description string) string {
	lower := strings.ToLower(description)
	for _, header := range []string{"responsibilities", "what you'll do", "duties"} {
		if idx := strings.Index(lower, header); idx >= 0 {
			section := description[idx:]
			if len(section) > 2000 {
				section = section[:2000]
			}
			return section
		}
	}
	return description
}
