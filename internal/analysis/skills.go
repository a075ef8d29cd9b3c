package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/market-intel/internal/types"
)

// TopSkillCount caps the ranked skill output.
const TopSkillCount = 15

// skillPatterns precompiles a case-insensitive matcher per vocabulary term.
// Terms made of plain word characters get word boundaries; terms with
// punctuation (C++, .NET, Node.js) get custom edges so the boundary rules
// of \b don't silently drop them.
var skillPatterns = buildSkillPatterns()

var plainWord = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillVocabulary))
	for _, term := range skillVocabulary {
		var expr string
		if plainWord.MatchString(term) {
			expr = `(?i)\b` + regexp.QuoteMeta(term) + `\b`
		} else {
			expr = `(?i)(^|[^a-zA-Z0-9])` + regexp.QuoteMeta(term) + `($|[^a-zA-Z0-9+#])`
		}
		patterns[term] = regexp.MustCompile(expr)
	}
	return patterns
}

// AnalyzeSkills ranks skill demand across the postings. Each skill counts
// at most once per posting regardless of how often it is mentioned, so a
// verbose description cannot inflate a skill's share.
func AnalyzeSkills(postings []types.ComparablePosting) types.SkillAnalysis {
	if len(postings) == 0 {
		return types.SkillAnalysis{
			Insights: []string{"No postings available for skill analysis."},
		}
	}

	counts := make(map[string]int)
	for _, p := range postings {
		seen := make(map[string]bool)
		text := p.Title + "\n" + p.Description

		for term, pattern := range skillPatterns {
			if pattern.MatchString(text) {
				seen[term] = true
			}
		}

		// The explicit skills field counts too, canonicalized into the
		// vocabulary term when one matches.
		for _, explicit := range p.Skills {
			seen[canonicalSkill(explicit)] = true
		}
		delete(seen, "")

		for term := range seen {
			counts[term]++
		}
	}

	ranked := make([]types.SkillCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, types.SkillCount{
			Skill:      term,
			Count:      count,
			Percentage: float64(count) / float64(len(postings)) * 100,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Skill < ranked[j].Skill
	})

	if len(ranked) > TopSkillCount {
		ranked = ranked[:TopSkillCount]
	}

	result := types.SkillAnalysis{TopSkills: ranked, Postings: len(postings)}

	if len(ranked) == 0 {
		result.Insights = []string{"No recognizable skills found in the comparable postings."}
		return result
	}

	top := ranked[0]
	result.Insights = []string{
		fmt.Sprintf("%s is the most demanded skill, appearing in %.0f%% of postings.", top.Skill, top.Percentage),
		fmt.Sprintf("%d distinct skills appear across %d comparable postings.", len(counts), len(postings)),
	}

	return result
}

// canonicalSkill maps an explicit skill string onto its vocabulary form,
// or returns the trimmed input when the vocabulary doesn't know it.
func canonicalSkill(skill string) string {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return ""
	}
	for _, term := range skillVocabulary {
		if strings.EqualFold(term, skill) {
			return term
		}
	}
	return skill
}
